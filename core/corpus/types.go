// Package corpus defines the normalized bilingual Bible corpus model
// and the on-disk artifact formats shared between the ingestion
// pipeline and the query engine.
package corpus

import "fmt"

// Verse is one verse with its source-script text and English translation.
// Both text fields are always populated; the ingestion pipeline never
// emits a half-paired verse.
type Verse struct {
	// Verse is the verse number (1-indexed, unique within its chapter).
	Verse int `json:"verse"`

	// Text is the source-script (Chinese) verse text.
	Text string `json:"text"`

	// TextEn is the English translation.
	TextEn string `json:"textEn"`
}

// Chapter is an ordered collection of verses for one book.
// Verses are sorted ascending by verse number with no duplicates.
type Chapter struct {
	// Chapter is the chapter number (1-indexed, unique within its book).
	Chapter int `json:"chapter"`

	// Verses is the ordered verse list. Never empty once the chapter exists.
	Verses []Verse `json:"verses"`
}

// Book is one canonical book of the corpus.
type Book struct {
	// ID is the canonical lowercase identifier (e.g. "psalms",
	// "1corinthians"). It is drawn from the fixed 66-entry canon and
	// used as the foreign key everywhere.
	ID string `json:"id"`

	// Name is the source-script display name.
	Name string `json:"name"`

	// NameEn is the English display name.
	NameEn string `json:"nameEn"`

	// Chapters is sorted ascending by chapter number, no duplicates.
	Chapters []Chapter `json:"chapters"`
}

// Corpus is the root of the normalized book/chapter/verse tree.
// It is built once by the ingestion pipeline and treated as read-only
// by everything downstream.
type Corpus struct {
	Books []Book `json:"books"`
}

// IndexEntry is a flattened, keyword-augmented projection of one verse,
// used by the text search scan. Entries are derived deterministically
// from the corpus and regenerated in full whenever it is.
type IndexEntry struct {
	// Ref is the globally unique "{bookId}:{chapter}:{verse}" key.
	Ref string `json:"ref"`

	BookID   string `json:"bookId"`
	BookName string `json:"bookName"`
	// BookNameEn is the English display name of the book.
	BookNameEn string `json:"bookNameEn"`

	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`

	Text   string `json:"text"`
	TextEn string `json:"textEn"`

	// Keywords is the deduplicated lowercase token set for both text
	// fields (>=2 runes for Han tokens, >=3 for Latin tokens).
	Keywords []string `json:"keywords"`
}

// FormatRef builds the canonical "{bookId}:{chapter}:{verse}" key.
func FormatRef(bookID string, chapter, verse int) string {
	return fmt.Sprintf("%s:%d:%d", bookID, chapter, verse)
}

// VerseCount returns the total number of verses in the corpus.
func (c *Corpus) VerseCount() int {
	n := 0
	for _, b := range c.Books {
		for _, ch := range b.Chapters {
			n += len(ch.Verses)
		}
	}
	return n
}

// ChapterCount returns the total number of chapters in the corpus.
func (c *Corpus) ChapterCount() int {
	n := 0
	for _, b := range c.Books {
		n += len(b.Chapters)
	}
	return n
}

// Entries flattens the corpus into its search index projection, one
// entry per verse in book/chapter/verse order.
func (c *Corpus) Entries() []IndexEntry {
	var entries []IndexEntry
	for _, b := range c.Books {
		for _, ch := range b.Chapters {
			for _, v := range ch.Verses {
				entries = append(entries, IndexEntry{
					Ref:        FormatRef(b.ID, ch.Chapter, v.Verse),
					BookID:     b.ID,
					BookName:   b.Name,
					BookNameEn: b.NameEn,
					Chapter:    ch.Chapter,
					Verse:      v.Verse,
					Text:       v.Text,
					TextEn:     v.TextEn,
					Keywords:   Keywords(v.Text, v.TextEn),
				})
			}
		}
	}
	return entries
}
