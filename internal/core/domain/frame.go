package domain

// Frame is an in-memory tabular export (CSV or spreadsheet dump).
// It is the unit handed to the analysis agent; Draftsman never
// interprets the cells itself.
type Frame struct {
	// Name is the originating file name.
	Name string

	// Columns are the header names in file order.
	Columns []string

	// Rows hold the cell values, one slice per data row.
	Rows [][]string
}

// Empty returns true when the frame has no columns or no data rows.
func (f *Frame) Empty() bool {
	return f == nil || len(f.Columns) == 0 || len(f.Rows) == 0
}

// Head returns up to n leading rows, for preview display.
func (f *Frame) Head(n int) [][]string {
	if f == nil || n <= 0 {
		return nil
	}
	if n > len(f.Rows) {
		n = len(f.Rows)
	}
	return f.Rows[:n]
}
