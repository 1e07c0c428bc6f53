package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/FocuswithJustin/RowanBible/core/corpus"
)

// Snippet window sizes, in runes.
const (
	snippetContext  = 20
	snippetFallback = 30
)

// Snippet match scores: a primary-text match is worth twice a
// secondary-text match.
const (
	scorePrimary   = 1.0
	scoreSecondary = 0.5
)

// SnippetResult is one scored, snippet-annotated search hit.
type SnippetResult struct {
	Entry   corpus.IndexEntry
	Score   float64
	Snippet string
}

// SearchWithSnippets scans the index for entries whose primary or
// secondary text contains the query as a case-insensitive substring.
// Primary matches score 1.0, secondary matches add 0.5, so scores are
// 0.5, 1.0, or 1.5. The snippet is the first primary-text occurrence
// with 20 runes of context on each side, ellipsis-marked where the
// window truncates the field; when only the secondary text matched,
// the snippet falls back to the opening of the primary text. Results
// sort by descending score, stable on corpus order, and are truncated
// to limit when limit is positive.
func (e *Engine) SearchWithSnippets(query string, limit int) []SnippetResult {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	lower := strings.ToLower(trimmed)

	var results []SnippetResult
	for _, entry := range e.entries {
		textLower := strings.ToLower(entry.Text)
		primaryAt := strings.Index(textLower, lower)

		score := 0.0
		if primaryAt >= 0 {
			score += scorePrimary
		}
		if strings.Contains(strings.ToLower(entry.TextEn), lower) {
			score += scoreSecondary
		}
		if score == 0 {
			continue
		}

		results = append(results, SnippetResult{
			Entry:   entry,
			Score:   score,
			Snippet: makeSnippet(entry.Text, primaryAt, utf8.RuneCountInString(lower)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// makeSnippet cuts the context window around the match at byte offset
// matchAt, or the opening of text when matchAt is negative. Offsets
// are converted to rune positions so multi-byte text never gets cut
// mid-character.
func makeSnippet(text string, matchAt, queryRunes int) string {
	runes := []rune(text)

	if matchAt < 0 {
		if len(runes) <= snippetFallback {
			return text
		}
		return string(runes[:snippetFallback]) + "..."
	}

	matchRune := utf8.RuneCountInString(text[:matchAt])
	start := matchRune - snippetContext
	if start < 0 {
		start = 0
	}
	end := matchRune + queryRunes + snippetContext
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet = snippet + "..."
	}
	return snippet
}
