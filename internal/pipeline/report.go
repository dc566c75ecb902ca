package pipeline

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/yi-working/csvconcat/internal/config"
	"github.com/yi-working/csvconcat/internal/display"
	"github.com/yi-working/csvconcat/internal/term"
)

const maxNameWidth = 50

// printReport writes the dry-run table: one line per input with its row
// count, column count and source tag, then the merged column list.
func printReport(w io.Writer, merged *Merged, cfg *config.Config) {
	nameW := len("File")
	rowsW := len("Rows")
	colsW := len("Cols")
	for _, f := range merged.Files {
		nameW = max(nameW, len(f.Path))
		rowsW = max(rowsW, len(display.FormatCount(f.Rows)))
		colsW = max(colsW, len(fmt.Sprint(len(f.Columns))))
	}
	nameW = min(nameW, maxNameWidth)

	header := fmt.Sprintf("  %-*s  %*s  %*s  %s", nameW, "File", rowsW, "Rows", colsW, "Cols", cfg.SourceColumn)
	fmt.Fprintln(w, term.Paint(term.Colors.Heading, header))
	fmt.Fprintln(w, "  "+strings.Repeat("─", utf8.RuneCountInString(header)-2))

	for _, f := range merged.Files {
		name := f.Path
		if len(name) > nameW {
			name = "…" + name[len(name)-nameW+1:]
		}
		fmt.Fprintf(w, "  %-*s  %*s  %*d  %s\n",
			nameW, name,
			rowsW, display.FormatCount(f.Rows),
			colsW, len(f.Columns),
			term.Paint(term.Colors.Source, f.Source),
		)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Columns: %s\n", term.Paint(term.Colors.Columns, strings.Join(merged.Table.Columns, ", ")))
	fmt.Fprintln(w)
}
