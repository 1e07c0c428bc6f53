package ingest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/FocuswithJustin/RowanBible/core/corpus"
	"github.com/FocuswithJustin/RowanBible/internal/logging"
)

// Options configures an ingestion run.
type Options struct {
	// Input is the fragment directory or .epub archive path.
	Input string

	// OutputDir receives the artifacts.
	OutputDir string

	// CorpusFile and IndexFile are the artifact file names inside
	// OutputDir. An .xz suffix enables compression.
	CorpusFile string
	IndexFile  string
}

// DefaultCorpusFile and DefaultIndexFile name the artifacts when the
// options leave them blank.
const (
	DefaultCorpusFile = "bibleData.json"
	DefaultIndexFile  = "searchIndex.json"
)

// Result summarizes a completed ingestion run.
type Result struct {
	Corpus *corpus.Corpus
	Index  []corpus.IndexEntry

	// FragmentsRead counts fragments successfully parsed;
	// FragmentsSkipped counts fragments dropped for parse failures.
	FragmentsRead    int
	FragmentsSkipped int

	// VersesDropped counts verses excluded because their book name had
	// no alias table entry.
	VersesDropped int
}

// Run executes the full pipeline: read fragments, recover the
// book/chapter/verse structure, write both artifacts plus the build
// manifest. Per-fragment and per-verse problems are logged and
// skipped; only an unreadable input path is fatal, and nothing is
// written in that case.
func Run(opts Options) (*Result, error) {
	if opts.CorpusFile == "" {
		opts.CorpusFile = DefaultCorpusFile
	}
	if opts.IndexFile == "" {
		opts.IndexFile = DefaultIndexFile
	}

	fragments, err := readFragments(opts.Input)
	if err != nil {
		return nil, err
	}

	result := Parse(fragments)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, err
	}
	corpusPath := filepath.Join(opts.OutputDir, opts.CorpusFile)
	indexPath := filepath.Join(opts.OutputDir, opts.IndexFile)
	if err := corpus.Save(corpusPath, result.Corpus); err != nil {
		return nil, err
	}
	if err := corpus.SaveIndex(indexPath, result.Index); err != nil {
		return nil, err
	}
	if err := WriteManifest(opts.OutputDir, []string{corpusPath, indexPath}, result); err != nil {
		return nil, err
	}

	logging.IngestSummary(
		len(result.Corpus.Books),
		result.Corpus.ChapterCount(),
		result.Corpus.VerseCount(),
		len(result.Index),
		"fragments_read", result.FragmentsRead,
		"fragments_skipped", result.FragmentsSkipped,
		"verses_dropped", result.VersesDropped,
	)
	return result, nil
}

func readFragments(input string) ([]RawFragment, error) {
	if strings.HasSuffix(strings.ToLower(input), ".epub") {
		return ReadEpubFragments(input)
	}
	return ReadDirFragments(input)
}

// rawVerse is a completed verse still tagged with its source-script
// book name, before alias resolution.
type rawVerse struct {
	bookName string
	chapter  int
	verse    int
	text     string
	textEn   string
}

// Parse runs the structural recovery over an ordered fragment
// sequence and builds the corpus and index in memory. Exposed
// separately from Run so tests can feed synthetic fragments without
// touching the filesystem.
func Parse(fragments []RawFragment) *Result {
	result := &Result{}

	var pairer Pairer
	var ctx ChapterContext
	haveCtx := false
	var raw []rawVerse

	for _, frag := range fragments {
		blocks, err := ExtractBlocks(frag)
		if err != nil {
			logging.FragmentSkipped(frag.ID, err)
			result.FragmentsSkipped++
			continue
		}
		result.FragmentsRead++

		for _, block := range blocks {
			if header, ok := ParseChapterHeader(block); ok {
				ctx = header
				haveCtx = true
				pairer.Reset()
				continue
			}
			if !haveCtx {
				continue
			}
			if v, ok := pairer.Step(block); ok {
				raw = append(raw, rawVerse{
					bookName: ctx.Name,
					chapter:  v.Chapter,
					verse:    v.Verse,
					text:     v.Text,
					textEn:   v.TextEn,
				})
			}
		}
	}

	result.Corpus, result.VersesDropped = assemble(raw)
	result.Index = result.Corpus.Entries()
	return result
}

// assemble groups completed verses into the normalized tree: alias
// resolution, grouping by (book, chapter), then a final ascending sort
// of chapters and verses. Grouping order during the scan is not
// assumed sorted.
func assemble(raw []rawVerse) (*corpus.Corpus, int) {
	type chapterAcc struct {
		verses []corpus.Verse
		seen   map[int]bool
	}
	type bookAcc struct {
		name     string
		chapters map[int]*chapterAcc
	}

	books := make(map[string]*bookAcc)
	dropped := 0

	for _, v := range raw {
		id, ok := corpus.ResolveAlias(v.bookName)
		if !ok {
			logging.UnknownBook(v.bookName, v.chapter, v.verse)
			dropped++
			continue
		}
		b := books[id]
		if b == nil {
			b = &bookAcc{name: v.bookName, chapters: make(map[int]*chapterAcc)}
			books[id] = b
		}
		ch := b.chapters[v.chapter]
		if ch == nil {
			ch = &chapterAcc{seen: make(map[int]bool)}
			b.chapters[v.chapter] = ch
		}
		if ch.seen[v.verse] {
			// First occurrence wins; duplicates only appear in
			// pathological input.
			continue
		}
		ch.seen[v.verse] = true
		ch.verses = append(ch.verses, corpus.Verse{
			Verse:  v.verse,
			Text:   v.text,
			TextEn: v.textEn,
		})
	}

	c := &corpus.Corpus{}
	for _, id := range corpus.CanonIDs() {
		b, ok := books[id]
		if !ok {
			continue
		}
		book := corpus.Book{
			ID:     id,
			Name:   b.name,
			NameEn: corpus.EnglishName(id),
		}
		chapterNums := make([]int, 0, len(b.chapters))
		for n := range b.chapters {
			chapterNums = append(chapterNums, n)
		}
		sort.Ints(chapterNums)
		for _, n := range chapterNums {
			ch := b.chapters[n]
			sort.Slice(ch.verses, func(i, j int) bool {
				return ch.verses[i].Verse < ch.verses[j].Verse
			})
			book.Chapters = append(book.Chapters, corpus.Chapter{
				Chapter: n,
				Verses:  ch.verses,
			})
		}
		c.Books = append(c.Books, book)
	}
	return c, dropped
}
