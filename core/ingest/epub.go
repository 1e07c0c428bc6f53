package ingest

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"sort"
	"strconv"

	"github.com/antchfx/xmlquery"

	apperrors "github.com/FocuswithJustin/RowanBible/core/errors"
	"github.com/FocuswithJustin/RowanBible/internal/logging"
)

// ReadEpubFragments opens an EPUB archive and returns its XHTML
// content documents as fragments in reading order. Order comes from
// the OPF spine when the package document can be located; otherwise
// the .html entries are ordered by their embedded sequence numbers
// like a plain fragment directory. An unreadable archive is fatal; a
// single unreadable or missing entry is logged and skipped.
func ReadEpubFragments(epubPath string) ([]RawFragment, error) {
	zr, err := zip.OpenReader(epubPath)
	if err != nil {
		return nil, apperrors.NewIO("open", epubPath, err)
	}
	defer zr.Close()

	byName := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		byName[f.Name] = f
	}

	names := spineDocuments(byName)
	if names == nil {
		names = htmlEntriesBySequence(zr.File)
	}

	var fragments []RawFragment
	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			logging.FragmentSkipped(name, apperrors.NewNotFound("archive entry", name))
			continue
		}
		data, err := readZipFile(f)
		if err != nil {
			logging.FragmentSkipped(name, err)
			continue
		}
		fragments = append(fragments, RawFragment{ID: name, Data: data})
	}
	return fragments, nil
}

// spineDocuments resolves the OPF package document via
// META-INF/container.xml and returns the spine's content documents in
// order. Returns nil when the package structure cannot be resolved.
func spineDocuments(byName map[string]*zip.File) []string {
	container, ok := byName["META-INF/container.xml"]
	if !ok {
		return nil
	}
	data, err := readZipFile(container)
	if err != nil {
		return nil
	}
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	rootfile := xmlquery.FindOne(doc, "//rootfile")
	if rootfile == nil {
		return nil
	}
	opfPath := rootfile.SelectAttr("full-path")
	opf, ok := byName[opfPath]
	if !ok {
		return nil
	}

	data, err = readZipFile(opf)
	if err != nil {
		return nil
	}
	pkg, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	// Manifest id -> href, then spine idrefs in document order.
	hrefs := make(map[string]string)
	for _, item := range xmlquery.Find(pkg, "//manifest/item") {
		hrefs[item.SelectAttr("id")] = item.SelectAttr("href")
	}
	opfDir := path.Dir(opfPath)

	var names []string
	for _, itemref := range xmlquery.Find(pkg, "//spine/itemref") {
		href, ok := hrefs[itemref.SelectAttr("idref")]
		if !ok || href == "" {
			continue
		}
		name := href
		if opfDir != "." {
			name = path.Join(opfDir, href)
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

// htmlEntriesBySequence falls back to the directory-scan ordering rule
// for archives without a usable spine.
func htmlEntriesBySequence(files []*zip.File) []string {
	type entry struct {
		name string
		seq  int
	}
	var entries []entry
	for _, f := range files {
		m := fragmentName.FindStringSubmatch(path.Base(f.Name))
		if m == nil {
			continue
		}
		seq, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, entry{name: f.Name, seq: seq})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, apperrors.NewIO("open", f.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, apperrors.NewIO("read", f.Name, err)
	}
	return data, nil
}
