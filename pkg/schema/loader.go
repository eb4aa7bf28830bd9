package schema

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a schema document from YAML or JSON bytes and validates it.
func Parse(raw []byte) (Schema, error) {
	if len(raw) == 0 {
		return Schema{}, fmt.Errorf("schema: empty document")
	}

	var doc Schema
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Schema{}, fmt.Errorf("schema: decode document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Schema{}, err
	}
	return doc, nil
}

// LoadFile reads and parses a schema document from disk.
func LoadFile(path string) (Schema, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Schema{}, fmt.Errorf("schema: path is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("schema: read %q: %w", path, err)
	}
	return Parse(raw)
}

// LoadFS reads and parses a schema document from an fs.FS.
func LoadFS(fsys fs.FS, path string) (Schema, error) {
	if fsys == nil {
		return Schema{}, fmt.Errorf("schema: filesystem is required")
	}
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Schema{}, fmt.Errorf("schema: read %q: %w", path, err)
	}
	return Parse(raw)
}
