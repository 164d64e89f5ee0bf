package models

// PrintArea is the rectangle a sheet prints, in 1-based inclusive coordinates.
type PrintArea struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// AnchoredArea returns the area from A1 to (lastRow, lastCol).
func AnchoredArea(lastRow, lastCol int) PrintArea {
	return PrintArea{R1: 1, C1: 1, R2: lastRow, C2: lastCol}
}

// Empty reports whether the area covers no cell.
func (a PrintArea) Empty() bool {
	return a.R1 < 1 || a.C1 < 1 || a.R2 < a.R1 || a.C2 < a.C1
}

// Rows returns the number of rows covered.
func (a PrintArea) Rows() int {
	if a.Empty() {
		return 0
	}
	return a.R2 - a.R1 + 1
}

// Cols returns the number of columns covered.
func (a PrintArea) Cols() int {
	if a.Empty() {
		return 0
	}
	return a.C2 - a.C1 + 1
}
