package models

// WorkbookData is a workbook read back into plain text, sheets in tab order.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the worksheets in tab order.
	Sheets []SheetData `json:"sheets"`
}

// SheetNames returns the worksheet titles in tab order.
func (w *WorkbookData) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// Sheet returns the named sheet, or nil.
func (w *WorkbookData) Sheet(name string) *SheetData {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i]
		}
	}
	return nil
}
