package table

// Table is the in-memory image of one loaded file, stored column-major:
// each field maps to its ordered cell values. Slot 0 of every column holds
// the header value; data rows are 1-indexed so that row indices line up
// with file order.
type Table struct {
	Fields   []string
	RowCount int

	cols map[string][]string
	pos  map[string]int
}

// New creates an empty table with the given fields. Each column starts with
// its header slot filled with the field name itself. Duplicate field names
// collapse to the last occurrence.
func New(fields []string) *Table {
	t := &Table{
		Fields: fields,
		cols:   make(map[string][]string, len(fields)),
		pos:    make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		t.cols[f] = []string{f}
		t.pos[f] = i
	}
	return t
}

// AddRow appends one data row. Cells are matched to fields positionally;
// missing cells become empty strings and extra cells are dropped.
func (t *Table) AddRow(cells []string) {
	for f, i := range t.pos {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		t.cols[f] = append(t.cols[f], v)
	}
	t.RowCount++
}

// Column returns the full cell slice for a field (header at index 0), or
// false if the field is unknown.
func (t *Table) Column(field string) ([]string, bool) {
	col, ok := t.cols[field]
	return col, ok
}

// Value returns the cell at a row index for a field. Unknown fields and
// out-of-range indices yield an empty string.
func (t *Table) Value(field string, row int) string {
	col, ok := t.cols[field]
	if !ok || row < 0 || row >= len(col) {
		return ""
	}
	return col[row]
}

// HasField reports whether the table knows the given field.
func (t *Table) HasField(field string) bool {
	_, ok := t.cols[field]
	return ok
}

// AllRows returns the full data row-index range [1, RowCount] in ascending
// order. Used when a query carries no WHERE clause.
func (t *Table) AllRows() []int {
	rows := make([]int, t.RowCount)
	for i := range rows {
		rows[i] = i + 1
	}
	return rows
}
