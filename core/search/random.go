package search

import (
	"math/rand"

	"github.com/FocuswithJustin/RowanBible/core/corpus"
)

// priorityBooks are favored by RandomVerse: devotional surfaces lean
// on Psalms and Proverbs.
var priorityBooks = map[string]bool{
	"psalms":   true,
	"proverbs": true,
}

// priorityChance is the probability of drawing from the priority books
// when any are present.
const priorityChance = 0.7

// RandomVerse picks a uniformly random verse, with a 70% bias toward
// the priority books. The rng is injected so tests can fix the seed.
// Returns not-found on an unloaded or empty engine.
func (e *Engine) RandomVerse(rng *rand.Rand) (corpus.IndexEntry, bool) {
	if !e.Loaded() || len(e.corpus.Books) == 0 {
		return corpus.IndexEntry{}, false
	}

	var priority, others []*corpus.Book
	for i := range e.corpus.Books {
		b := &e.corpus.Books[i]
		if priorityBooks[b.ID] {
			priority = append(priority, b)
		} else {
			others = append(others, b)
		}
	}

	pool := others
	if rng.Float64() < priorityChance && len(priority) > 0 {
		pool = priority
	}
	if len(pool) == 0 {
		pool = priority
	}
	if len(pool) == 0 {
		return corpus.IndexEntry{}, false
	}

	book := pool[rng.Intn(len(pool))]
	if len(book.Chapters) == 0 {
		return corpus.IndexEntry{}, false
	}
	chapter := book.Chapters[rng.Intn(len(book.Chapters))]
	if len(chapter.Verses) == 0 {
		return corpus.IndexEntry{}, false
	}
	verse := chapter.Verses[rng.Intn(len(chapter.Verses))]

	return corpus.IndexEntry{
		Ref:        corpus.FormatRef(book.ID, chapter.Chapter, verse.Verse),
		BookID:     book.ID,
		BookName:   book.Name,
		BookNameEn: book.NameEn,
		Chapter:    chapter.Chapter,
		Verse:      verse.Verse,
		Text:       verse.Text,
		TextEn:     verse.TextEn,
	}, true
}
