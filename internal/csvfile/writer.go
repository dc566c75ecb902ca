package csvfile

import (
	"encoding/csv"
	"io"

	"github.com/yi-working/csvconcat/internal/table"
)

// Write encodes t as comma-separated text: one header line, then one line
// per row, no index column. Missing cells are written as empty fields.
func Write(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	rec := make([]string, t.Width())
	for _, row := range t.Rows {
		for i, cell := range row {
			if cell == nil {
				rec[i] = ""
			} else {
				rec[i] = *cell
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
