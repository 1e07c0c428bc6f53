// Command rowan is the CLI for the bilingual Bible corpus toolchain.
// It ingests raw EPUB/HTML exports into the corpus and search index
// artifacts, answers queries against them, and serves the query API.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/RowanBible/core/corpus"
	"github.com/FocuswithJustin/RowanBible/core/ingest"
	"github.com/FocuswithJustin/RowanBible/core/search"
	"github.com/FocuswithJustin/RowanBible/internal/api"
	"github.com/FocuswithJustin/RowanBible/internal/config"
	"github.com/FocuswithJustin/RowanBible/internal/logging"
	"github.com/FocuswithJustin/RowanBible/internal/sqlexport"
	"github.com/FocuswithJustin/RowanBible/internal/sqlite"
)

const version = "0.2.0"

// CLI defines the command-line interface for rowan.
var CLI struct {
	// Global flags
	Config    string `name:"config" short:"c" help:"Path to YAML config file" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text"`

	Ingest  IngestCmd   `cmd:"" help:"Parse raw fragments into the corpus and search index artifacts"`
	Search  SearchCmd   `cmd:"" help:"Run a snippet-scored text search against the artifacts"`
	Lookup  LookupCmd   `cmd:"" help:"Resolve a verse reference like 'John 3:16'"`
	Verify  VerifyCmd   `cmd:"" help:"Verify artifact digests against the build manifest"`
	Export  ExportGroup `cmd:"" help:"Export the corpus to other formats"`
	Serve   ServeCmd    `cmd:"" help:"Start the query API server"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// IngestCmd runs the corpus ingestion pipeline.
type IngestCmd struct {
	Input      string `help:"Fragment directory or .epub archive" type:"path"`
	Out        string `help:"Output directory for artifacts" type:"path"`
	CorpusFile string `help:"Corpus artifact file name (.xz suffix compresses)"`
	IndexFile  string `help:"Search index artifact file name (.xz suffix compresses)"`
}

func (c *IngestCmd) Run(cfg *config.Config) error {
	opts := ingest.Options{
		Input:      firstNonEmpty(c.Input, cfg.Ingest.Input),
		OutputDir:  firstNonEmpty(c.Out, cfg.Ingest.OutputDir),
		CorpusFile: firstNonEmpty(c.CorpusFile, cfg.Ingest.CorpusFile),
		IndexFile:  firstNonEmpty(c.IndexFile, cfg.Ingest.IndexFile),
	}
	_, err := ingest.Run(opts)
	return err
}

// SearchCmd searches the corpus and prints scored snippets.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `help:"Maximum number of results" default:"10"`
	Data  string `help:"Artifact directory" type:"path"`
}

func (c *SearchCmd) Run(cfg *config.Config) error {
	engine, err := loadEngine(cfg, c.Data)
	if err != nil {
		return err
	}
	results := engine.SearchWithSnippets(c.Query, c.Limit)
	if len(results) == 0 {
		fmt.Println("no results")
		return nil
	}
	for _, res := range results {
		ref := engine.FormatReference(res.Entry.BookID, res.Entry.Chapter, res.Entry.Verse)
		fmt.Printf("%-24s %.1f  %s\n", ref, res.Score, res.Snippet)
	}
	return nil
}

// LookupCmd resolves one verse reference.
type LookupCmd struct {
	Ref  string `arg:"" help:"Verse reference, e.g. 'John 3:16' or '诗篇 23:1'"`
	Data string `help:"Artifact directory" type:"path"`
}

func (c *LookupCmd) Run(cfg *config.Config) error {
	engine, err := loadEngine(cfg, c.Data)
	if err != nil {
		return err
	}
	entry, ok := engine.SearchByReference(c.Ref)
	if !ok {
		return fmt.Errorf("reference not found: %s", c.Ref)
	}
	fmt.Printf("%s %d:%d\n%s\n%s\n", entry.BookNameEn, entry.Chapter, entry.Verse, entry.Text, entry.TextEn)
	return nil
}

// VerifyCmd checks artifact digests against the manifest.
type VerifyCmd struct {
	Data string `help:"Artifact directory" type:"path"`
}

func (c *VerifyCmd) Run(cfg *config.Config) error {
	dir := firstNonEmpty(c.Data, cfg.Serve.DataDir)
	mismatched, err := ingest.VerifyManifest(dir)
	if err != nil {
		return err
	}
	if len(mismatched) > 0 {
		return fmt.Errorf("artifact digests do not match manifest: %v", mismatched)
	}
	fmt.Println("all artifacts match the manifest")
	return nil
}

// ExportGroup contains export targets.
type ExportGroup struct {
	Sqlite ExportSqliteCmd `cmd:"" help:"Export the corpus to a SQLite database"`
}

// ExportSqliteCmd writes the corpus into a SQLite database.
type ExportSqliteCmd struct {
	Out  string `required:"" help:"Output database path" type:"path"`
	Data string `help:"Artifact directory" type:"path"`
}

func (c *ExportSqliteCmd) Run(cfg *config.Config) error {
	dir := firstNonEmpty(c.Data, cfg.Serve.DataDir)
	corpusData, err := corpus.Load(corpusPath(cfg, dir))
	if err != nil {
		return err
	}
	if err := sqlexport.Export(c.Out, corpusData); err != nil {
		return err
	}
	logging.Info("sqlite export complete",
		"path", c.Out,
		"verses", corpusData.VerseCount(),
		"driver", sqlite.DriverName(),
		"cgo", sqlite.IsCGO())
	return nil
}

// ServeCmd starts the query API server.
type ServeCmd struct {
	Port int    `help:"Listen port"`
	Data string `help:"Artifact directory" type:"path"`
}

func (c *ServeCmd) Run(cfg *config.Config) error {
	engine, err := loadEngine(cfg, c.Data)
	if err != nil {
		return err
	}
	port := cfg.Serve.Port
	if c.Port != 0 {
		port = c.Port
	}
	return api.New(engine, api.Config{Port: port}).Start()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(cfg *config.Config) error {
	fmt.Printf("rowan version %s\n", version)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func corpusPath(cfg *config.Config, dir string) string {
	name := firstNonEmpty(cfg.Serve.CorpusFile, ingest.DefaultCorpusFile)
	return filepath.Join(dir, name)
}

// loadEngine loads both artifacts and builds the query engine. A
// missing index artifact is not fatal: the entries are re-derived from
// the corpus instead.
func loadEngine(cfg *config.Config, dataFlag string) (*search.Engine, error) {
	dir := firstNonEmpty(dataFlag, cfg.Serve.DataDir)
	c, err := corpus.Load(corpusPath(cfg, dir))
	if err != nil {
		return nil, err
	}

	indexName := firstNonEmpty(cfg.Serve.IndexFile, ingest.DefaultIndexFile)
	entries, err := corpus.LoadIndex(filepath.Join(dir, indexName))
	if err != nil {
		logging.Warn("search index artifact unavailable, deriving from corpus", "error", err)
		return search.NewEngine(c), nil
	}
	return search.NewEngineWithIndex(c, entries), nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("rowan"),
		kong.Description("Bilingual Bible corpus ingestion and search toolchain"),
		kong.UsageOnError(),
	)

	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		logging.Error("loading config", "error", err)
		os.Exit(1)
	}

	if err := ctx.Run(&cfg); err != nil {
		logging.Error("command failed", "error", err)
		os.Exit(1)
	}
}
