// Package sqlexport writes a loaded corpus into a SQLite database for
// consumers that want SQL access instead of the JSON artifacts.
package sqlexport

import (
	"fmt"

	"github.com/FocuswithJustin/RowanBible/core/corpus"
	"github.com/FocuswithJustin/RowanBible/internal/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT
);
CREATE TABLE IF NOT EXISTS books (
	id TEXT PRIMARY KEY,
	name TEXT,
	name_en TEXT,
	book_order INTEGER
);
CREATE TABLE IF NOT EXISTS verses (
	ref TEXT PRIMARY KEY,
	book TEXT,
	chapter INTEGER,
	verse INTEGER,
	text TEXT,
	text_en TEXT,
	FOREIGN KEY (book) REFERENCES books(id)
);
CREATE INDEX IF NOT EXISTS idx_verses_ref ON verses(book, chapter, verse);
`

// Export writes c into a new SQLite database at path. The whole corpus
// goes in one transaction, so a failed export leaves no partial rows.
func Export(path string, c *corpus.Corpus) error {
	db, err := sqlite.Open(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		"verse_count", fmt.Sprintf("%d", c.VerseCount()),
	); err != nil {
		return fmt.Errorf("writing meta: %w", err)
	}

	insertBook, err := tx.Prepare(
		"INSERT OR REPLACE INTO books (id, name, name_en, book_order) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing book insert: %w", err)
	}
	defer insertBook.Close()

	insertVerse, err := tx.Prepare(
		"INSERT OR REPLACE INTO verses (ref, book, chapter, verse, text, text_en) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing verse insert: %w", err)
	}
	defer insertVerse.Close()

	for _, b := range c.Books {
		if _, err := insertBook.Exec(b.ID, b.Name, b.NameEn, corpus.CanonOrder(b.ID)); err != nil {
			return fmt.Errorf("inserting book %s: %w", b.ID, err)
		}
		for _, ch := range b.Chapters {
			for _, v := range ch.Verses {
				ref := corpus.FormatRef(b.ID, ch.Chapter, v.Verse)
				if _, err := insertVerse.Exec(ref, b.ID, ch.Chapter, v.Verse, v.Text, v.TextEn); err != nil {
					return fmt.Errorf("inserting verse %s: %w", ref, err)
				}
			}
		}
	}

	return tx.Commit()
}
