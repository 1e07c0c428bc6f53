package ingest

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	apperrors "github.com/FocuswithJustin/RowanBible/core/errors"
)

// ManifestFile is the manifest name written next to the artifacts.
const ManifestFile = "manifest.json"

// Manifest records a build's identity and artifact digests so a
// deployment can verify the shipped files match the ingestion run.
type Manifest struct {
	BuildID   string             `json:"build_id"`
	CreatedAt string             `json:"created_at"`
	Artifacts []ArtifactManifest `json:"artifacts"`
	Counts    ManifestCounts     `json:"counts"`
}

// ArtifactManifest is one output file with its BLAKE3 digest.
type ArtifactManifest struct {
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	BLAKE3 string `json:"blake3"`
}

// ManifestCounts summarizes what the artifacts contain.
type ManifestCounts struct {
	Books        int `json:"books"`
	Chapters     int `json:"chapters"`
	Verses       int `json:"verses"`
	IndexEntries int `json:"index_entries"`
}

// WriteManifest hashes the written artifacts and writes the build
// manifest into dir.
func WriteManifest(dir string, artifactPaths []string, result *Result) error {
	m := Manifest{
		BuildID:   uuid.New().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Counts: ManifestCounts{
			Books:        len(result.Corpus.Books),
			Chapters:     result.Corpus.ChapterCount(),
			Verses:       result.Corpus.VerseCount(),
			IndexEntries: len(result.Index),
		},
	}

	for _, p := range artifactPaths {
		data, err := os.ReadFile(p)
		if err != nil {
			return apperrors.NewIO("read", p, err)
		}
		sum := blake3.Sum256(data)
		m.Artifacts = append(m.Artifacts, ArtifactManifest{
			Name:   filepath.Base(p),
			Size:   int64(len(data)),
			BLAKE3: hex.EncodeToString(sum[:]),
		})
	}

	data, err := json.MarshalIndent(&m, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, "encoding manifest")
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.NewIO("write", path, err)
	}
	return nil
}

// VerifyManifest re-hashes the artifacts named in the manifest at dir
// and returns the names whose digests no longer match.
func VerifyManifest(dir string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, apperrors.NewIO("read", filepath.Join(dir, ManifestFile), err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, apperrors.NewParse("JSON", ManifestFile, err.Error())
	}

	var mismatched []string
	for _, a := range m.Artifacts {
		data, err := os.ReadFile(filepath.Join(dir, a.Name))
		if err != nil {
			mismatched = append(mismatched, a.Name)
			continue
		}
		sum := blake3.Sum256(data)
		if hex.EncodeToString(sum[:]) != a.BLAKE3 {
			mismatched = append(mismatched, a.Name)
		}
	}
	return mismatched, nil
}
