// Package ingest implements the offline corpus ingestion pipeline: it
// turns a directory (or EPUB archive) of per-chapter HTML fragments
// into the normalized corpus and search index artifacts.
package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	apperrors "github.com/FocuswithJustin/RowanBible/core/errors"
	"github.com/FocuswithJustin/RowanBible/internal/logging"
)

// RawFragment is one raw input page of markup, identified for logging
// by its file or archive entry name.
type RawFragment struct {
	ID   string
	Data []byte
}

// fragmentName matches exported fragment files and captures the
// embedded sequence number.
var fragmentName = regexp.MustCompile(`^index_split_(\d+)\.x?html?$`)

// paragraphExpr selects the text blocks of a fragment. Compiled once;
// the pipeline evaluates it against every fragment.
var paragraphExpr = xpath.MustCompile("//p")

// ReadDirFragments lists the fragment files in dir and reads them in
// ascending sequence-number order (numeric, so fragment 9 sorts before
// fragment 10). An unreadable directory is fatal; an unreadable
// individual file is logged and skipped.
func ReadDirFragments(dir string) ([]RawFragment, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.NewIO("read", dir, err)
	}

	type fragFile struct {
		name string
		seq  int
	}
	var files []fragFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := fragmentName.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		seq, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		files = append(files, fragFile{name: e.Name(), seq: seq})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].seq < files[j].seq })

	var fragments []RawFragment
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.name))
		if err != nil {
			logging.FragmentSkipped(f.name, err)
			continue
		}
		fragments = append(fragments, RawFragment{ID: f.name, Data: data})
	}
	return fragments, nil
}

// ExtractBlocks parses one fragment and returns the trimmed text of
// its paragraph nodes, skipping empty ones. A parse failure makes the
// whole fragment unusable and is reported to the caller, which logs
// and moves on to the next fragment.
func ExtractBlocks(fragment RawFragment) ([]string, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(fragment.Data))
	if err != nil {
		return nil, apperrors.NewParse("HTML", fragment.ID, err.Error())
	}
	nodes := xmlquery.QuerySelectorAll(doc, paragraphExpr)

	var blocks []string
	for _, n := range nodes {
		text := strings.TrimSpace(n.InnerText())
		if text == "" {
			continue
		}
		blocks = append(blocks, text)
	}
	return blocks, nil
}
