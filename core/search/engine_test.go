package search

import (
	"testing"

	"github.com/FocuswithJustin/RowanBible/core/corpus"
)

// searchCorpus is the shared fixture for the engine tests: a handful of
// books in canon order with enough text to exercise every query path.
func searchCorpus() *corpus.Corpus {
	return &corpus.Corpus{
		Books: []corpus.Book{
			{
				ID: "genesis", Name: "创世记", NameEn: "Genesis",
				Chapters: []corpus.Chapter{
					{Chapter: 1, Verses: []corpus.Verse{
						{Verse: 1, Text: "起初，神创造天地。", TextEn: "In the beginning God created the heaven and the earth."},
					}},
				},
			},
			{
				ID: "psalms", Name: "诗篇", NameEn: "Psalms",
				Chapters: []corpus.Chapter{
					{Chapter: 23, Verses: []corpus.Verse{
						{Verse: 1, Text: "耶和华是我的牧者，我必不至缺乏。", TextEn: "The LORD is my shepherd; I shall not want."},
						{Verse: 2, Text: "他使我躺卧在青草地上。", TextEn: "He maketh me to lie down in green pastures."},
					}},
				},
			},
			{
				ID: "john", Name: "约翰福音", NameEn: "John",
				Chapters: []corpus.Chapter{
					{Chapter: 3, Verses: []corpus.Verse{
						{Verse: 16, Text: "神爱世人，甚至将他的独生子赐给他们。", TextEn: "For God so loved the world, that he gave his only begotten Son."},
					}},
				},
			},
			{
				ID: "1john", Name: "约翰一书", NameEn: "1 John",
				Chapters: []corpus.Chapter{
					{Chapter: 4, Verses: []corpus.Verse{
						{Verse: 8, Text: "没有爱心的，就不认识神，因为神就是爱。", TextEn: "He that loveth not knoweth not God; for God is love."},
					}},
				},
			},
		},
	}
}

func TestGetBook(t *testing.T) {
	e := NewEngine(searchCorpus())

	b, ok := e.GetBook("psalms")
	if !ok {
		t.Fatal("psalms not found by ID")
	}
	if b.NameEn != "Psalms" {
		t.Errorf("NameEn = %q", b.NameEn)
	}
	if _, ok := e.GetBook("tobit"); ok {
		t.Error("unknown ID should not resolve")
	}
}

func TestGetBookByNameExact(t *testing.T) {
	e := NewEngine(searchCorpus())

	b, ok := e.GetBookByName("诗篇")
	if !ok || b.ID != "psalms" {
		t.Errorf("source-script name lookup: got %v, %v", b, ok)
	}
	b, ok = e.GetBookByName("john")
	if !ok || b.ID != "john" {
		t.Errorf("english name lookup: got %v, %v", b, ok)
	}
}

func TestGetBookByNameCaseInsensitive(t *testing.T) {
	e := NewEngine(searchCorpus())

	b, ok := e.GetBookByName("John")
	if !ok || b.ID != "john" {
		t.Errorf("got %v, %v", b, ok)
	}
	b, ok = e.GetBookByName("1 JOHN")
	if !ok || b.ID != "1john" {
		t.Errorf("got %v, %v", b, ok)
	}
}

func TestGetBookByNameFuzzy(t *testing.T) {
	e := NewEngine(searchCorpus())

	// Partial query contained in a registered name.
	b, ok := e.GetBookByName("psal")
	if !ok || b.ID != "psalms" {
		t.Errorf("partial query: got %v, %v", b, ok)
	}

	// "约翰" is a prefix of both 约翰福音 and 约翰一书; registration
	// order makes the gospel win.
	b, ok = e.GetBookByName("约翰")
	if !ok || b.ID != "john" {
		t.Errorf("ambiguous partial query: got %v, %v", b, ok)
	}

	if _, ok := e.GetBookByName("zzzz"); ok {
		t.Error("unmatched name should not resolve")
	}
}

func TestGetChapterAndVerse(t *testing.T) {
	e := NewEngine(searchCorpus())

	ch, ok := e.GetChapter("psalms", 23)
	if !ok || len(ch.Verses) != 2 {
		t.Fatalf("GetChapter: got %v, %v", ch, ok)
	}
	if _, ok := e.GetChapter("psalms", 151); ok {
		t.Error("missing chapter should not resolve")
	}

	v, ok := e.GetVerse("john", 3, 16)
	if !ok {
		t.Fatal("john 3:16 not found")
	}
	if v.TextEn == "" {
		t.Error("verse text missing")
	}
	if _, ok := e.GetVerse("john", 3, 17); ok {
		t.Error("missing verse should not resolve")
	}
	if _, ok := e.GetVerse("tobit", 1, 1); ok {
		t.Error("unknown book should not resolve")
	}
}

func TestGetVerseContext(t *testing.T) {
	c := &corpus.Corpus{
		Books: []corpus.Book{
			{
				ID: "proverbs", Name: "箴言", NameEn: "Proverbs",
				Chapters: []corpus.Chapter{
					{Chapter: 3, Verses: []corpus.Verse{
						{Verse: 1, Text: "一", TextEn: "one"},
						{Verse: 2, Text: "二", TextEn: "two"},
						{Verse: 3, Text: "三", TextEn: "three"},
						{Verse: 4, Text: "四", TextEn: "four"},
						{Verse: 5, Text: "五", TextEn: "five"},
					}},
				},
			},
		},
	}
	e := NewEngine(c)

	got := e.GetVerseContext("proverbs", 3, 3, 1)
	if len(got) != 3 || got[0].Verse != 2 || got[2].Verse != 4 {
		t.Errorf("mid-chapter window = %+v", got)
	}

	// Start-of-chapter clamp: nothing before verse 1.
	got = e.GetVerseContext("proverbs", 3, 1, 2)
	if len(got) != 3 || got[0].Verse != 1 || got[2].Verse != 3 {
		t.Errorf("start-of-chapter window = %+v", got)
	}

	// End-of-chapter clamp.
	got = e.GetVerseContext("proverbs", 3, 5, 2)
	if len(got) != 3 || got[0].Verse != 3 || got[2].Verse != 5 {
		t.Errorf("end-of-chapter window = %+v", got)
	}

	got = e.GetVerseContext("proverbs", 3, 2, 0)
	if len(got) != 1 || got[0].Verse != 2 {
		t.Errorf("zero context = %+v", got)
	}

	if got := e.GetVerseContext("proverbs", 3, 99, 2); got != nil {
		t.Errorf("missing verse should return nil, got %+v", got)
	}
	if got := e.GetVerseContext("tobit", 1, 1, 2); got != nil {
		t.Errorf("unknown book should return nil, got %+v", got)
	}
}

func TestSearchTextSubstring(t *testing.T) {
	e := NewEngine(searchCorpus())

	results := e.SearchText("牧者")
	if len(results) != 1 || results[0].Ref != "psalms:23:1" {
		t.Errorf("source-script search: got %+v", results)
	}

	// Case-insensitive on the secondary text.
	results = e.SearchText("SHEPHERD")
	if len(results) != 1 || results[0].Ref != "psalms:23:1" {
		t.Errorf("secondary-text search: got %+v", results)
	}
}

func TestSearchTextCorpusOrder(t *testing.T) {
	e := NewEngine(searchCorpus())

	results := e.SearchText("god")
	if len(results) < 2 {
		t.Fatalf("got %d results, want several", len(results))
	}
	if results[0].BookID != "genesis" {
		t.Errorf("results should keep corpus order, first = %s", results[0].BookID)
	}
}

func TestSearchTextEmptyQuery(t *testing.T) {
	e := NewEngine(searchCorpus())

	if got := e.SearchText(""); got != nil {
		t.Errorf("empty query: got %v, want nil", got)
	}
	if got := e.SearchText("   \t"); got != nil {
		t.Errorf("whitespace query: got %v, want nil", got)
	}
}

func TestSearchTextKeywordExactMatch(t *testing.T) {
	c := searchCorpus()
	entries := c.Entries()
	// Graft a keyword that appears in no verse text so only the keyword
	// tier can match it.
	entries[0].Keywords = append(entries[0].Keywords, "synthetic-tag")
	e := NewEngineWithIndex(c, entries)

	results := e.SearchText("Synthetic-Tag")
	if len(results) != 1 || results[0].Ref != entries[0].Ref {
		t.Errorf("keyword match: got %+v", results)
	}

	// Keyword matching is exact, not substring.
	if got := e.SearchText("synthetic"); len(got) != 0 {
		t.Errorf("keyword prefix should not match, got %+v", got)
	}
}

func TestUnloadedEngineIsSafe(t *testing.T) {
	var e Engine

	if e.Loaded() {
		t.Error("zero-value engine reports loaded")
	}
	if e.Books() != nil {
		t.Error("Books on unloaded engine should be nil")
	}
	if e.VerseCount() != 0 {
		t.Error("VerseCount on unloaded engine should be 0")
	}
	if _, ok := e.GetBook("genesis"); ok {
		t.Error("GetBook on unloaded engine should miss")
	}
	if _, ok := e.GetBookByName("Genesis"); ok {
		t.Error("GetBookByName on unloaded engine should miss")
	}
	if _, ok := e.GetVerse("genesis", 1, 1); ok {
		t.Error("GetVerse on unloaded engine should miss")
	}
	if got := e.SearchText("god"); got != nil {
		t.Errorf("SearchText on unloaded engine: got %v", got)
	}
}

func TestReload(t *testing.T) {
	var e Engine
	e.Reload(searchCorpus())

	if !e.Loaded() {
		t.Fatal("engine should be loaded after Reload")
	}
	if _, ok := e.GetVerse("john", 3, 16); !ok {
		t.Error("reloaded corpus not queryable")
	}

	// Reloading a smaller corpus must not leave stale books behind.
	e.Reload(&corpus.Corpus{Books: searchCorpus().Books[:1]})
	if _, ok := e.GetBook("john"); ok {
		t.Error("stale book survived Reload")
	}
	if _, ok := e.GetBook("genesis"); !ok {
		t.Error("book from the new corpus missing after Reload")
	}
}

func TestFormatReference(t *testing.T) {
	e := NewEngine(searchCorpus())

	if got := e.FormatReference("psalms", 23, 1); got != "Psalms 23:1" {
		t.Errorf("got %q", got)
	}
	if got := e.FormatReference("tobit", 1, 1); got != "tobit 1:1" {
		t.Errorf("unknown book fallback: got %q", got)
	}
}
