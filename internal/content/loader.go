// Package content loads page content documents from disk for the CLI. The
// validation core itself never touches files; this package is the caller-side
// bridge for the hybrid content source's static-file half.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and decodes one content document. JSON and YAML files are
// accepted; both decode into untyped trees (map[string]any at the root for
// well-formed page documents).
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}

	switch filepath.Ext(path) {
	case ".json":
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		return doc, nil
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported content file type: %s", filepath.Base(path))
	}
}

// Label derives the document label from a content file path: the filename
// without its extension (content/home.json -> "home").
func Label(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadDir loads every content document directly inside dir, keyed by label.
// Non-content files and subdirectories are skipped. Two files sharing a label
// (home.json and home.yaml) is an error since the content source would be
// ambiguous.
func LoadDir(dir string) (map[string]any, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	docs := make(map[string]any, len(paths))
	for _, path := range paths {
		label := Label(path)
		if _, exists := docs[label]; exists {
			return nil, fmt.Errorf("duplicate content label %q in %s", label, dir)
		}
		doc, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		docs[label] = doc
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no content documents found in %s", dir)
	}
	return docs, nil
}
