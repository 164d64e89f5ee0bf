package models

// ColumnLayout maps 1-based column positions to a display width and an
// alignment treatment. Columns not listed in Centered are left-aligned and
// wrapped.
type ColumnLayout struct {
	Widths   []float64 `json:"widths" yaml:"widths" mapstructure:"widths"`
	Centered []int     `json:"centered" yaml:"centered" mapstructure:"centered"`
}

// Span returns the number of columns the layout covers.
func (c ColumnLayout) Span() int {
	return len(c.Widths)
}

// IsCentered reports whether the 1-based column is rendered centered.
func (c ColumnLayout) IsCentered(col int) bool {
	for _, v := range c.Centered {
		if v == col {
			return true
		}
	}
	return false
}

// Layout holds the column rules for both sheet kinds.
type Layout struct {
	Index ColumnLayout `json:"index" yaml:"index" mapstructure:"index"`
	Table ColumnLayout `json:"table" yaml:"table" mapstructure:"table"`
}

// DefaultLayout returns the stock layout. Index columns are No, category,
// table name and description. Table-detail columns are No, column, type, NULL,
// default, key and description, with NULL and default centered.
func DefaultLayout() Layout {
	return Layout{
		Index: ColumnLayout{
			Widths:   []float64{6, 12, 30, 35},
			Centered: []int{1},
		},
		Table: ColumnLayout{
			Widths:   []float64{6, 25, 20, 8, 20, 10, 45},
			Centered: []int{1, 4, 5},
		},
	}
}
