// Package table is the in-memory tabular model shared by the reader, the
// merger and the writers. Cells are *string so a missing value (nil) stays
// distinct from an empty string until it is encoded.
package table

import "fmt"

// Table is an ordered set of named columns and rows of cells. Every row has
// exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]*string

	colmap map[string]int
}

// New returns an empty table with the given columns.
func New(columns ...string) *Table {
	t := &Table{Columns: append([]string(nil), columns...)}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.colmap = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, dup := t.colmap[c]; !dup {
			t.colmap[c] = i
		}
	}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.Columns) }

// Index returns the position of column name, or -1.
func (t *Table) Index(name string) int {
	if t.colmap == nil {
		t.reindex()
	}
	i, ok := t.colmap[name]
	if !ok {
		return -1
	}
	return i
}

// Append adds a row. The row is stored as given, not copied.
func (t *Table) Append(row []*string) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// AppendStrings adds a row of present values.
func (t *Table) AppendStrings(values ...string) error {
	row := make([]*string, len(values))
	for i := range values {
		row[i] = &values[i]
	}
	return t.Append(row)
}

// Cell returns the value at (row, column name). ok is false when the column
// does not exist or the cell is missing.
func (t *Table) Cell(row int, name string) (string, bool) {
	i := t.Index(name)
	if i < 0 || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	v := t.Rows[row][i]
	if v == nil {
		return "", false
	}
	return *v, true
}

// Assign sets column name to value in every row, adding the column at the
// end when it does not exist and overwriting it when it does. All rows
// share one backing string.
func (t *Table) Assign(name, value string) {
	v := value
	i := t.Index(name)
	if i < 0 {
		t.Columns = append(t.Columns, name)
		t.colmap[name] = len(t.Columns) - 1
		for r := range t.Rows {
			t.Rows[r] = append(t.Rows[r], &v)
		}
		return
	}
	for r := range t.Rows {
		t.Rows[r][i] = &v
	}
}

// MoveToEnd moves column name to the last position. Unknown names are ignored.
func (t *Table) MoveToEnd(name string) {
	i := t.Index(name)
	if i < 0 || i == len(t.Columns)-1 {
		return
	}
	t.Columns = append(append(t.Columns[:i:i], t.Columns[i+1:]...), name)
	for r, row := range t.Rows {
		cell := row[i]
		t.Rows[r] = append(append(row[:i:i], row[i+1:]...), cell)
	}
	t.reindex()
}
