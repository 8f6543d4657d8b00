package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

var errNullEntry = errors.New("null value, expected an object")

// Load reads the manifest at path and returns its descriptors in file order.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
// The top-level value must be an array.
func Load(path string) ([]Descriptor, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	switch DetectFormat(path) {
	case FormatYAML:
		return parseYAML(data, path)
	default:
		return parseJSON(data, path)
	}
}

// DetectFormat returns FormatYAML for .yaml/.yml paths and FormatJSON otherwise.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func parseJSON(data []byte, path string) ([]Descriptor, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	if len(trimmed) > 0 && trimmed[0] != '[' {
		return nil, fmt.Errorf("parsing manifest %s: top-level value must be an array", path)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	descriptors := make([]Descriptor, 0, len(entries))
	for i, entry := range entries {
		d, err := decodeJSONEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("parsing manifest %s: entry %d: %w", path, i, err)
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

// decodeJSONEntry reads one manifest object. Keys match exactly, so "Title"
// or "SLUG" are ignored like any other unknown key.
func decodeJSONEntry(entry json.RawMessage) (Descriptor, error) {
	var d Descriptor
	if isJSONNull(entry) {
		return d, errNullEntry
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		return d, err
	}

	textFields := []struct {
		key string
		dst *string
	}{
		{"title", &d.Title},
		{"slug", &d.Slug},
		{"category", &d.Category},
		{"level", &d.Level},
		{"author", &d.Author},
	}
	for _, f := range textFields {
		if err := decodeField(fields, f.key, f.dst); err != nil {
			return d, err
		}
	}
	if err := decodeField(fields, "tags", &d.Tags); err != nil {
		return d, err
	}
	return d, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok || isJSONNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func parseYAML(data []byte, path string) ([]Descriptor, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("parsing manifest %s: top-level value must be a sequence", path)
	}

	for i, item := range doc.Content[0].Content {
		if item.Kind == yaml.ScalarNode && item.Tag == "!!null" {
			return nil, fmt.Errorf("parsing manifest %s: entry %d: %w", path, i, errNullEntry)
		}
	}

	var descriptors []Descriptor
	if err := doc.Content[0].Decode(&descriptors); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return descriptors, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
