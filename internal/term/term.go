// Package term holds the color palette shared by logging and display, and
// decides once at startup whether the palette is active.
//
// Colors are named after what they mark in csvconcat output (a log level,
// a source tag, a column list) rather than after the hue. With colors off
// every role is the empty string.
package term

import (
	"os"
	"strings"

	"github.com/yi-working/csvconcat/internal/config"
)

// Palette maps each output role to an ANSI sequence.
type Palette struct {
	Info    string
	Success string
	Warn    string
	Error   string
	Debug   string
	Banner  string
	Source  string // source tag values in the dry-run report
	Columns string // merged column list
	Heading string // report header row
	Reset   string
}

var active = Palette{
	Info:    "\033[1;94m",
	Success: "\033[1;92m",
	Warn:    "\033[1;93m",
	Error:   "\033[1;91m",
	Debug:   "\033[1;96m",
	Banner:  "\033[1;95m",
	Source:  "\033[0;36m",
	Columns: "\033[0;33m",
	Heading: "\033[1m",
	Reset:   "\033[0m",
}

// Colors is the palette in effect. Zero value until Configure enables it.
var Colors Palette

// Configure resolves mode and installs the matching palette. Called once
// from [logging.NewLogger].
func Configure(mode config.ColorMode) {
	if resolve(mode) {
		Colors = active
	} else {
		Colors = Palette{}
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return Colors.Reset != "" }

// Paint wraps s in color. With colors disabled, or an empty color, s is
// returned unchanged.
func Paint(color, s string) string {
	if color == "" || Colors.Reset == "" {
		return s
	}
	return color + s + Colors.Reset
}

// resolve honors NO_COLOR (https://no-color.org) and TERM=dumb in auto mode.
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
