// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. All defaults match the legacy concat script so a bare
// invocation with no flags behaves exactly like it.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// OutputFormat selects the encoding of the combined table.
type OutputFormat string

const (
	FormatCSV     OutputFormat = "csv"     // Comma-separated text with header (default).
	FormatParquet OutputFormat = "parquet" // Columnar file, every column an optional UTF-8 string.
)

// SourceMode controls how the provenance tag is derived from a file path.
type SourceMode string

const (
	// SourceStrip removes any run of the characters '.', 'c', 's', 'v' from
	// both ends of the path. This is the legacy behavior (default).
	SourceStrip SourceMode = "strip"
	// SourceSuffix removes a single trailing ".csv" and nothing else.
	SourceSuffix SourceMode = "suffix"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Fixed legacy locations and names.
const (
	DefaultInputDir     = "data/raw_data"
	DefaultOutputPath   = "data/hfea-ivf.csv"
	DefaultMatch        = ".csv"
	DefaultSourceColumn = "source"
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths.
	InputDir   string // Default: "data/raw_data".
	OutputPath string // Default: "data/hfea-ivf.csv".

	// Merge behavior.
	Match        string       // Fixed: ".csv". Substring matched against the joined path.
	SourceColumn string       // Default: "source".
	SourceMode   SourceMode   // Default: "strip".
	Format       OutputFormat // Default: "csv".
	ManifestPath string       // Optional YAML run manifest.
	DryRun       bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config whose every field reproduces the legacy
// script. Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		InputDir:     DefaultInputDir,
		OutputPath:   DefaultOutputPath,
		Match:        DefaultMatch,
		SourceColumn: DefaultSourceColumn,
		SourceMode:   SourceStrip,
		Format:       FormatCSV,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and required values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatCSV, FormatParquet:
		// valid
	default:
		return errors.New("invalid format (use 'csv' or 'parquet')")
	}

	switch c.SourceMode {
	case SourceStrip, SourceSuffix:
		// valid
	default:
		return errors.New("invalid source mode (use 'strip' or 'suffix')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	c.SourceColumn = strings.TrimSpace(c.SourceColumn)
	if c.SourceColumn == "" {
		return errors.New("source column name must not be empty")
	}
	if c.Match == "" {
		return errors.New("match pattern must not be empty")
	}
	if c.InputDir == "" {
		return errors.New("input directory must not be empty")
	}
	if c.OutputPath == "" && !c.CheckOnly {
		return errors.New("output path must not be empty")
	}
	return nil
}

// ValidatePaths ensures the output would not be picked up as an input on the
// next run: an output file placed directly in the input directory whose joined
// path contains the match pattern is rejected. Both arguments must be
// absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	if filepath.Dir(outputAbs) != inputAbs {
		return nil
	}
	if strings.Contains(outputAbs, c.Match) {
		return fmt.Errorf("output %s would be read back as an input of %s", outputAbs, inputAbs)
	}
	return nil
}
