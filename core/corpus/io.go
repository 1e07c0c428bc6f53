package corpus

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	apperrors "github.com/FocuswithJustin/RowanBible/core/errors"
)

// readArtifact reads a file, transparently decompressing when the path
// carries an .xz suffix.
func readArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewIO("read", path, err)
	}
	if !strings.HasSuffix(path, ".xz") {
		return data, nil
	}
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewParse("xz", path, err.Error())
	}
	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewParse("xz", path, err.Error())
	}
	return decompressed, nil
}

// writeArtifact writes a file, compressing when the path carries an
// .xz suffix.
func writeArtifact(path string, data []byte) error {
	if strings.HasSuffix(path, ".xz") {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return apperrors.NewIO("compress", path, err)
		}
		if _, err := w.Write(data); err != nil {
			return apperrors.NewIO("compress", path, err)
		}
		if err := w.Close(); err != nil {
			return apperrors.NewIO("compress", path, err)
		}
		data = buf.Bytes()
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.NewIO("write", path, err)
	}
	return nil
}

// Load reads and validates a corpus artifact. A missing or malformed
// file is fatal to the caller; there is no partial load.
func Load(path string) (*Corpus, error) {
	data, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, apperrors.NewParse("JSON", path, err.Error())
	}
	if errs := ValidateCorpus(&c); len(errs) > 0 {
		return nil, apperrors.NewParse("corpus", path, errs[0].Error())
	}
	return &c, nil
}

// Save serializes a corpus to path as indented JSON.
func Save(path string, c *Corpus) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, "encoding corpus")
	}
	return writeArtifact(path, data)
}

// LoadIndex reads a search index artifact.
func LoadIndex(path string) ([]IndexEntry, error) {
	data, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	var entries []IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, apperrors.NewParse("JSON", path, err.Error())
	}
	return entries, nil
}

// SaveIndex serializes a search index to path as indented JSON.
func SaveIndex(path string, entries []IndexEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, "encoding search index")
	}
	return writeArtifact(path, data)
}
