package display

import (
	"fmt"
	"io"

	"github.com/yi-working/csvconcat/internal/term"
)

// PrintBanner prints the ASCII art banner in the banner color.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Paint(term.Colors.Banner, `                                              _
  ___ _____   _____ ___  _ __   ___ __ _| |_
 / __/ __\ \ / / __/ _ \| '_ \ / __/ _`+"`"+` | __|
| (__\__ \\ V / (_| (_) | | | | (_| (_| | |_
 \___|___/ \_/ \___\___/|_| |_|\___\__,_|\__|
`))
	fmt.Fprintln(w)
}
