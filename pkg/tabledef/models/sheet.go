package models

// SheetData represents what a generated worksheet contains.
type SheetData struct {
	// Name is the worksheet title.
	Name string `json:"name"`
	// Rows contains non-empty rows with their cell text.
	Rows []CellRow `json:"rows,omitempty"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:G12").
	UsedRange string `json:"used_range,omitempty"`
	// Merges lists merged ranges such as "A1:G1".
	Merges []string `json:"merges,omitempty"`
	// ColWidths holds the width of each column up to the used range.
	ColWidths []float64 `json:"col_widths,omitempty"`
	// PrintAreas contains the print areas defined for the sheet.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
