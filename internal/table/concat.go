package table

// Concat stacks tables row-wise. The result's columns are the union of the
// inputs' columns in order of first appearance; rows keep their table order
// and then their original order. Cells for columns a table lacks are nil.
//
// Concat of zero tables is an empty table with no columns.
func Concat(tables ...*Table) *Table {
	out := New()
	total := 0
	for _, t := range tables {
		for _, c := range t.Columns {
			if out.Index(c) < 0 {
				out.Columns = append(out.Columns, c)
				out.colmap[c] = len(out.Columns) - 1
			}
		}
		total += len(t.Rows)
	}

	out.Rows = make([][]*string, 0, total)
	width := len(out.Columns)
	for _, t := range tables {
		pos := make([]int, len(t.Columns))
		for i, c := range t.Columns {
			pos[i] = out.Index(c)
		}
		for _, row := range t.Rows {
			merged := make([]*string, width)
			for i, cell := range row {
				merged[pos[i]] = cell
			}
			out.Rows = append(out.Rows, merged)
		}
	}
	return out
}
