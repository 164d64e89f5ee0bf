package models

import "strconv"

// CellRow is one non-empty worksheet row read back from a workbook, keyed by
// 1-based column number.
type CellRow struct {
	R int               `json:"r"`
	C map[string]string `json:"c"`
}

// Cell returns the text at 1-based column col, or "" if the cell is empty.
func (r CellRow) Cell(col int) string {
	return r.C[strconv.Itoa(col)]
}

// Values returns the row's cells as a dense slice up to its last non-empty
// column; gaps become "".
func (r CellRow) Values() []string {
	last := 0
	for k := range r.C {
		if n, err := strconv.Atoi(k); err == nil && n > last {
			last = n
		}
	}
	out := make([]string, last)
	for i := range out {
		out[i] = r.Cell(i + 1)
	}
	return out
}
