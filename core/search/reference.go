package search

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/RowanBible/core/corpus"
)

// refGrammar parses references of the shape "<book> <chapter>:<verse>".
// The book name may carry a leading numeral ("1 John") or internal
// words ("Song of Solomon"), and may be a source-script name.
type refGrammar struct {
	Book    string `parser:"@Book"`
	Chapter int    `parser:"@Number"`
	Verse   int    `parser:"':' @Number"`
}

// refLexer tokenizes verse references. The Book rule is tried first,
// so a leading numeral followed by letters binds to the book name
// rather than to the chapter number.
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `(?:\d\s*)?\p{L}+(?:\s+(?:of\s+)?\p{L}+)*`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// ParseReference parses a reference string like "John 3:16",
// "1 John 3:16", or "诗篇 23:1". The returned book name is trimmed
// but not resolved.
func ParseReference(ref string) (book string, chapter, verse int, ok bool) {
	parsed, err := refParser.ParseString("", strings.TrimSpace(ref))
	if err != nil {
		return "", 0, 0, false
	}
	if parsed.Chapter <= 0 || parsed.Verse <= 0 {
		return "", 0, 0, false
	}
	return strings.TrimSpace(parsed.Book), parsed.Chapter, parsed.Verse, true
}

// SearchByReference resolves a textual reference to its index entry.
// Parse failures, unknown book names, and missing verses all return
// not-found; none of them are errors.
func (e *Engine) SearchByReference(ref string) (corpus.IndexEntry, bool) {
	bookName, chapter, verse, ok := ParseReference(ref)
	if !ok {
		return corpus.IndexEntry{}, false
	}
	book, ok := e.GetBookByName(bookName)
	if !ok {
		return corpus.IndexEntry{}, false
	}
	v, ok := e.GetVerse(book.ID, chapter, verse)
	if !ok {
		return corpus.IndexEntry{}, false
	}
	return corpus.IndexEntry{
		Ref:        corpus.FormatRef(book.ID, chapter, verse),
		BookID:     book.ID,
		BookName:   book.Name,
		BookNameEn: book.NameEn,
		Chapter:    chapter,
		Verse:      verse,
		Text:       v.Text,
		TextEn:     v.TextEn,
	}, true
}
