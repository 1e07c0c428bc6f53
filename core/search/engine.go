// Package search implements the in-memory query engine over a loaded
// corpus: point lookups, substring search over the flat index, and the
// snippet-scored search used by interactive result pages.
package search

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/RowanBible/core/corpus"
)

// Engine answers queries over one loaded corpus. All lookup maps are
// built in NewEngine and treated as read-only afterwards, so concurrent
// readers need no locking. The zero value is the unloaded state: every
// operation returns not-found or an empty result, never panics.
type Engine struct {
	corpus  *corpus.Corpus
	byID    map[string]*corpus.Book
	byName  map[string]*corpus.Book
	names   []string // registered display names, registration order
	entries []corpus.IndexEntry
}

// NewEngine builds an engine over c, deriving the flat search entries
// from the corpus itself.
func NewEngine(c *corpus.Corpus) *Engine {
	if c == nil {
		return &Engine{}
	}
	return NewEngineWithIndex(c, c.Entries())
}

// NewEngineWithIndex builds an engine over c using a precomputed
// search index, typically loaded from the shipped index artifact. The
// entries must be the flat projection of c in corpus order; loading
// them instead of re-deriving saves the keyword pass at startup.
func NewEngineWithIndex(c *corpus.Corpus, entries []corpus.IndexEntry) *Engine {
	e := &Engine{
		corpus:  c,
		byID:    make(map[string]*corpus.Book, len(c.Books)),
		byName:  make(map[string]*corpus.Book, 2*len(c.Books)),
		entries: entries,
	}
	for i := range c.Books {
		b := &c.Books[i]
		e.byID[b.ID] = b
		e.registerName(b.Name, b)
		e.registerName(strings.ToLower(b.NameEn), b)
	}
	return e
}

func (e *Engine) registerName(name string, b *corpus.Book) {
	if name == "" {
		return
	}
	if _, exists := e.byName[name]; !exists {
		e.names = append(e.names, name)
	}
	e.byName[name] = b
}

// Reload replaces the engine's corpus. The new maps are fully built
// before the swap, so a caller never observes a half-rebuilt engine;
// callers must still not reload concurrently with in-flight queries.
func (e *Engine) Reload(c *corpus.Corpus) {
	fresh := NewEngine(c)
	*e = *fresh
}

// Loaded reports whether a corpus has been supplied.
func (e *Engine) Loaded() bool {
	return e.corpus != nil
}

// Books returns the corpus book list in corpus order. Nil when unloaded.
func (e *Engine) Books() []corpus.Book {
	if !e.Loaded() {
		return nil
	}
	return e.corpus.Books
}

// VerseCount returns the number of indexed verses.
func (e *Engine) VerseCount() int {
	return len(e.entries)
}

// GetBook looks a book up by its canonical ID.
func (e *Engine) GetBook(id string) (*corpus.Book, bool) {
	b, ok := e.byID[id]
	return b, ok
}

// GetBookByName resolves a display name to a book. Resolution order,
// first match wins: exact registered name, case-insensitive registered
// name, then a permissive fuzzy pass accepting the first registered
// name that contains the query or is contained by it. The fuzzy tier
// can pick a different book than intended for very short queries;
// callers needing precision should use canonical IDs.
func (e *Engine) GetBookByName(name string) (*corpus.Book, bool) {
	if b, ok := e.byName[name]; ok {
		return b, true
	}
	if b, ok := e.byName[strings.ToLower(name)]; ok {
		return b, true
	}
	for _, registered := range e.names {
		if strings.Contains(registered, name) || strings.Contains(name, registered) {
			return e.byName[registered], true
		}
	}
	return nil, false
}

// GetChapter returns one chapter of a book.
func (e *Engine) GetChapter(bookID string, chapter int) (*corpus.Chapter, bool) {
	b, ok := e.byID[bookID]
	if !ok {
		return nil, false
	}
	for i := range b.Chapters {
		if b.Chapters[i].Chapter == chapter {
			return &b.Chapters[i], true
		}
	}
	return nil, false
}

// GetVerse returns one verse. The second result is false when the
// book, chapter, or verse does not exist; the contract does not
// distinguish which.
func (e *Engine) GetVerse(bookID string, chapter, verse int) (corpus.Verse, bool) {
	ch, ok := e.GetChapter(bookID, chapter)
	if !ok {
		return corpus.Verse{}, false
	}
	for _, v := range ch.Verses {
		if v.Verse == verse {
			return v, true
		}
	}
	return corpus.Verse{}, false
}

// GetVerseContext returns the verses surrounding one verse in its
// chapter: up to contextSize on each side, clamped at the chapter
// boundaries, with the verse itself in the middle. Nil when the verse
// does not exist. Used for "show in context" result views.
func (e *Engine) GetVerseContext(bookID string, chapter, verse, contextSize int) []corpus.Verse {
	ch, ok := e.GetChapter(bookID, chapter)
	if !ok {
		return nil
	}
	at := -1
	for i := range ch.Verses {
		if ch.Verses[i].Verse == verse {
			at = i
			break
		}
	}
	if at < 0 {
		return nil
	}
	if contextSize < 0 {
		contextSize = 0
	}

	start := at - contextSize
	if start < 0 {
		start = 0
	}
	end := at + contextSize + 1
	if end > len(ch.Verses) {
		end = len(ch.Verses)
	}

	out := make([]corpus.Verse, end-start)
	copy(out, ch.Verses[start:end])
	return out
}

// SearchText scans every index entry in corpus order and returns those
// whose primary or secondary text contains the query as a
// case-insensitive substring, or whose keyword set contains the query
// exactly (case-insensitively). An empty or whitespace-only query
// returns nil without scanning. Results keep corpus order; this
// operation does not rank.
func (e *Engine) SearchText(query string) []corpus.IndexEntry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	lower := strings.ToLower(trimmed)

	var results []corpus.IndexEntry
	for _, entry := range e.entries {
		if strings.Contains(strings.ToLower(entry.Text), lower) ||
			strings.Contains(strings.ToLower(entry.TextEn), lower) {
			results = append(results, entry)
			continue
		}
		for _, kw := range entry.Keywords {
			if strings.EqualFold(kw, lower) {
				results = append(results, entry)
				break
			}
		}
	}
	return results
}

// FormatReference renders a display reference like "Psalms 23:1",
// falling back to the raw ID when the book is unknown.
func (e *Engine) FormatReference(bookID string, chapter, verse int) string {
	if b, ok := e.byID[bookID]; ok {
		return fmt.Sprintf("%s %d:%d", b.NameEn, chapter, verse)
	}
	return fmt.Sprintf("%s %d:%d", bookID, chapter, verse)
}
