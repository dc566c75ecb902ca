// Package manifest records what a merge run read and produced as a YAML
// sidecar, so the provenance of every row in the combined file can be traced
// without re-reading the inputs.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Input describes one merged file.
type Input struct {
	Path    string   `yaml:"path"`
	Source  string   `yaml:"source"`
	Rows    int      `yaml:"rows"`
	Columns []string `yaml:"columns"`
}

// Manifest is the document written by [Write].
type Manifest struct {
	GeneratedAt  time.Time `yaml:"generated_at"`
	Version      string    `yaml:"version"`
	InputDir     string    `yaml:"input_dir"`
	Output       string    `yaml:"output"`
	Format       string    `yaml:"format"`
	SourceColumn string    `yaml:"source_column"`
	SourceMode   string    `yaml:"source_mode"`
	Rows         int       `yaml:"rows"`
	Columns      []string  `yaml:"columns"`
	Inputs       []Input   `yaml:"inputs"`
}

// Marshal encodes m with two-space indentation.
func Marshal(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("manifest: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("manifest: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes m and writes it to path, creating parent directories.
func Write(path string, m *Manifest) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}

// Load reads a manifest previously produced by [Write].
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", path, err)
	}
	return &m, nil
}
