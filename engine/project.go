package engine

import (
	"bufio"
	"io"
	"strings"
)

// ProjectOptions controls output formatting.
type ProjectOptions struct {
	// OutputFS joins the projected field values of one row. Defaults to a
	// horizontal tab when empty at the call sites that own defaults.
	OutputFS string
	// Header prepends the table's header row (row index 0) to the output.
	// It is only emitted when at least one data row was selected.
	Header bool
}

// Project writes one output line per selected row, the chosen fields in
// order, joined by the output FS. Fields the table does not have project as
// empty values. Returns the number of data rows written; zero rows means
// nothing at all is written, not even a header.
func (r *Result) Project(w io.Writer, opts ProjectOptions) (int, error) {
	rows := r.Rows
	if len(rows) == 0 {
		return 0, nil
	}
	if opts.Header {
		rows = append([]int{0}, rows...)
	}

	bw := bufio.NewWriter(w)
	cells := make([]string, len(r.Query.SelectedFields))
	for _, row := range rows {
		for i, f := range r.Query.SelectedFields {
			cells[i] = r.Table.Value(f, row)
		}
		if _, err := bw.WriteString(strings.Join(cells, opts.OutputFS)); err != nil {
			return 0, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return 0, err
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return len(r.Rows), nil
}
