package config

// This file implements CLI flag parsing and help text.
// Every flag is optional: with no arguments the legacy fixed paths apply.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFlags parses args (normally os.Args[1:]) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (e.g. unknown
// flag, unexpected positional args).
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("csvconcat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(os.Stderr, version) }

	var negated negatedFlags

	definePathFlags(fs, cfg)
	defineMergeFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage(os.Stderr, version)
			os.Exit(0)
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(os.Stderr, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "csvconcat v"+version)
		os.Exit(0)
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s (paths are set with --input and --output)",
			strings.Join(fs.Args(), " "))
	}
	cfg.InputDir = NormalizeDirArg(cfg.InputDir)
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either override a default (e.g. noColor -> ColorMode=never) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// definePathFlags registers -i/--input and -o/--output.
func definePathFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.InputDir, "input", cfg.InputDir, "Directory scanned for CSV files")
	fs.StringVar(&cfg.InputDir, "i", cfg.InputDir, "Same as --input")
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "Combined output file")
	fs.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "Same as --output")
}

// defineMergeFlags registers --format, --source-mode, --source-column, --manifest, --dry-run.
func defineMergeFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&formatValue{&cfg.Format}, "format", "Output format: csv | parquet")
	fs.Var(&sourceModeValue{&cfg.SourceMode}, "source-mode", "Source tag derivation: strip | suffix")
	fs.StringVar(&cfg.SourceColumn, "source-column", cfg.SourceColumn, "Name of the provenance column")
	fs.StringVar(&cfg.ManifestPath, "manifest", "", "Write a YAML run manifest to this path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Load and report only; do not write output")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 30
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "csvconcat v" + version + " - merge a directory of CSV files into one table"},
		{"", ""},
		{"  csvconcat [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -i, --input <dir>", "Input directory (default: " + DefaultInputDir + ")"},
		{"  -o, --output <path>", "Output file (default: " + DefaultOutputPath + ")"},
		{"", ""},
		{"Merge", ""},
		{"  --format <csv|parquet>", "Output format (default: csv)"},
		{"  --source-mode <strip|suffix>", "Source tag derivation (default: strip)"},
		{"  --source-column <name>", "Provenance column (default: " + DefaultSourceColumn + ")"},
		{"  --manifest <path>", "Write a YAML run manifest"},
		{"  -d, --dry-run", "Load and report only; write nothing"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics (input directory, matches, output writable)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use enum types (OutputFormat, SourceMode) with flag.Var.

type formatValue struct{ p *OutputFormat }

func (f *formatValue) String() string {
	if f.p == nil {
		return ""
	}
	return string(*f.p)
}
func (f *formatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "csv":
		*f.p = FormatCSV
	case "parquet":
		*f.p = FormatParquet
	default:
		return fmt.Errorf("invalid format %q (use 'csv' or 'parquet')", s)
	}
	return nil
}

type sourceModeValue struct{ p *SourceMode }

func (m *sourceModeValue) String() string {
	if m.p == nil {
		return ""
	}
	return string(*m.p)
}
func (m *sourceModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "strip":
		*m.p = SourceStrip
	case "suffix":
		*m.p = SourceSuffix
	default:
		return fmt.Errorf("invalid source mode %q (use 'strip' or 'suffix')", s)
	}
	return nil
}
