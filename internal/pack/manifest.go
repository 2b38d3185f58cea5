// Package pack reads CESP sound pack manifests. A pack is a directory
// under packs/ holding an openpeon.json manifest and the audio files it
// references, paths relative to the manifest.
package pack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the CESP manifest filename inside a pack directory.
const ManifestName = "openpeon.json"

// Manifest describes one sound pack.
type Manifest struct {
	Name        string              `json:"name"`
	DisplayName string              `json:"display_name"`
	Categories  map[string]Category `json:"categories"`
}

// Category holds the candidate sounds for one feedback category.
type Category struct {
	Sounds []Sound `json:"sounds"`
}

// Sound is a single manifest entry. Line is the spoken text, for display.
type Sound struct {
	File string `json:"file"`
	Line string `json:"line,omitempty"`
}

// Dir returns the directory of the named pack under baseDir.
func Dir(baseDir, name string) string {
	return filepath.Join(baseDir, "packs", name)
}

// Load reads and validates the named pack's manifest. Callers treating a
// pack as a sound source should map any error to "no candidates" rather
// than surfacing it.
func Load(baseDir, name string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(Dir(baseDir, name), ManifestName))
	if err != nil {
		return Manifest{}, err
	}
	return parse(data, name)
}

func parse(data []byte, fallbackName string) (Manifest, error) {
	if err := validate(data); err != nil {
		return Manifest{}, fmt.Errorf("manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: %w", err)
	}
	if m.Name == "" {
		m.Name = fallbackName
	}
	return m, nil
}

// List returns the manifests of every pack under baseDir, skipping any
// that fail to parse.
func List(baseDir string) ([]Manifest, error) {
	matches, err := filepath.Glob(filepath.Join(baseDir, "packs", "*", ManifestName))
	if err != nil {
		return nil, err
	}
	var packs []Manifest
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		m, err := parse(data, filepath.Base(filepath.Dir(path)))
		if err != nil {
			continue
		}
		packs = append(packs, m)
	}
	return packs, nil
}
