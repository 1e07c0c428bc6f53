package corpus

import "fmt"

// ValidateCorpus checks the structural invariants of a corpus:
// canonical unique book IDs, strictly increasing chapter and verse
// numbers, and both text fields populated on every verse. It returns
// all violations found, not just the first.
//
// The loaders call this before handing a corpus to the query engine,
// so a malformed artifact fails fast instead of producing wrong
// query results.
func ValidateCorpus(c *Corpus) []error {
	var errs []error
	if c == nil {
		return []error{fmt.Errorf("corpus is nil")}
	}

	seenBooks := make(map[string]bool)
	for _, b := range c.Books {
		if !IsCanonical(b.ID) {
			errs = append(errs, fmt.Errorf("book %q: not a canonical book ID", b.ID))
			continue
		}
		if seenBooks[b.ID] {
			errs = append(errs, fmt.Errorf("book %q: duplicate book ID", b.ID))
			continue
		}
		seenBooks[b.ID] = true

		if b.Name == "" {
			errs = append(errs, fmt.Errorf("book %q: missing name", b.ID))
		}
		if len(b.Chapters) == 0 {
			errs = append(errs, fmt.Errorf("book %q: no chapters", b.ID))
		}

		prevChapter := 0
		for _, ch := range b.Chapters {
			if ch.Chapter <= prevChapter {
				errs = append(errs, fmt.Errorf("book %q: chapter %d out of order after %d", b.ID, ch.Chapter, prevChapter))
			}
			prevChapter = ch.Chapter

			if len(ch.Verses) == 0 {
				errs = append(errs, fmt.Errorf("book %q chapter %d: no verses", b.ID, ch.Chapter))
			}

			prevVerse := 0
			for _, v := range ch.Verses {
				if v.Verse <= prevVerse {
					errs = append(errs, fmt.Errorf("book %q chapter %d: verse %d out of order after %d", b.ID, ch.Chapter, v.Verse, prevVerse))
				}
				prevVerse = v.Verse

				if v.Text == "" || v.TextEn == "" {
					errs = append(errs, fmt.Errorf("book %q %d:%d: verse missing text half", b.ID, ch.Chapter, v.Verse))
				}
			}
		}
	}
	return errs
}
