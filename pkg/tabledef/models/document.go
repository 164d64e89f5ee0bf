// Package models defines data structures shared by the extractor, the renderer
// and the workbook reader.
package models

// SectionKind distinguishes the table index from a table definition.
type SectionKind string

const (
	// SectionIndex is the table-of-contents block.
	SectionIndex SectionKind = "index"
	// SectionTable is a single table-definition block.
	SectionTable SectionKind = "table"
)

// Row is an ordered sequence of opaque cell values.
type Row []string

// Section is a contiguous span of source lines belonging to the index or to
// one table definition.
type Section struct {
	Kind SectionKind `json:"kind"`
	// Number is the heading sequence number, kept as written.
	Number string `json:"number,omitempty"`
	// Name is the table identifier.
	Name string `json:"name,omitempty"`
	// ShortDesc is the parenthesized heading description.
	ShortDesc string `json:"short_desc,omitempty"`
	// Description is the free-text line under the heading.
	Description string `json:"description,omitempty"`
	// Line is the 1-based source line of the heading.
	Line int `json:"line"`
	// Lines holds the raw row block.
	Lines []string `json:"-"`
}

// Table is a table definition ready to be rendered.
type Table struct {
	Number      string `json:"number" yaml:"number"`
	Name        string `json:"name" yaml:"name"`
	ShortDesc   string `json:"short_desc" yaml:"short_desc"`
	Description string `json:"description" yaml:"description"`
	// Rows holds the header at index 0 followed by data rows.
	Rows []Row `json:"rows" yaml:"rows"`
}

// Header returns the header row, or nil when the table has no rows.
func (t Table) Header() Row {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Data returns the rows following the header.
func (t Table) Data() []Row {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// Document is the renderer input: an optional index and tables in source order.
type Document struct {
	// Index holds the header and data rows of the table index. Nil when the
	// source has no index block.
	Index  []Row   `json:"index,omitempty" yaml:"index,omitempty"`
	Tables []Table `json:"tables" yaml:"tables"`
}
