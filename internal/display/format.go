// Package display formats sizes and counts for the run log and prints the
// startup banner.
package display

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable IEC size (B, KiB, MiB, …).
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatCount renders n with thousands separators (e.g. "12,345").
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatShape renders a table shape as "<rows> rows x <cols> columns".
func FormatShape(rows, cols int) string {
	return fmt.Sprintf("%s rows x %d columns", FormatCount(rows), cols)
}
