// Package dataset reads the bundled chapter/verse dataset that seeds the
// content store.
package dataset

import (
	"archive/zip"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//go:embed quran.json
var embedded []byte

type Verse struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type Chapter struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Transliteration string  `json:"transliteration"`
	Type            string  `json:"type"`
	TotalVerses     int     `json:"total_verses"`
	Verses          []Verse `json:"verses"`
}

// Load reads the dataset at path. An empty path selects the embedded sample;
// a .zip archive is searched for its first .json entry.
func Load(path string) ([]Chapter, error) {
	if path == "" {
		return Decode(bytes.NewReader(embedded))
	}

	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return loadZip(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode parses a dataset document.
func Decode(r io.Reader) ([]Chapter, error) {
	var chapters []Chapter
	if err := json.NewDecoder(r).Decode(&chapters); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return chapters, nil
}

func loadZip(path string) ([]Chapter, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if filepath.Ext(f.Name) != ".json" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		return Decode(rc)
	}

	return nil, fmt.Errorf("no JSON file found in %s", path)
}
