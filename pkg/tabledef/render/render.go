// Package render lays parsed table definitions out as styled worksheets.
package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
	"github.com/xuri/excelize/v2"
)

// Rows 1 and 2 carry the table title and description, row 3 is blank.
const tableHeaderRow = 4

// Renderer writes worksheets into a single workbook. It is not safe for
// concurrent use.
type Renderer struct {
	f      *excelize.File
	layout models.Layout
	styles styleSet
	names  *sheetNamer
	logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithNamePolicy sets how sheet title collisions are handled.
func WithNamePolicy(p NamePolicy) Option {
	return func(r *Renderer) {
		r.names.policy = p
	}
}

// WithLogger sets the logger used for per-sheet debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New registers the cell styles in f and returns a Renderer for it.
func New(f *excelize.File, layout models.Layout, opts ...Option) (*Renderer, error) {
	styles, err := newStyleSet(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create styles: %w", err)
	}

	r := &Renderer{
		f:      f,
		layout: layout,
		styles: styles,
		names:  newSheetNamer(NameError),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RenderIndex turns the workbook's first sheet into the index sheet. Row 0 of
// rows is the header. With no rows the sheet is only renamed.
func (r *Renderer) RenderIndex(title string, rows []models.Row) (string, error) {
	name, err := r.names.reserve(Truncate(title, excelize.MaxSheetNameLength))
	if err != nil {
		return "", err
	}
	if first := r.f.GetSheetName(0); first != name {
		if err := r.f.SetSheetName(first, name); err != nil {
			return "", err
		}
	}
	if len(rows) == 0 {
		r.logger.Debug("index block not found, index sheet left empty", "sheet", name)
		return name, nil
	}

	for i, row := range rows {
		if err := r.writeRow(name, i+1, row, i == 0, r.layout.Index); err != nil {
			return name, err
		}
	}
	if err := r.applyWidths(name, r.layout.Index); err != nil {
		return name, err
	}
	if err := r.setPrintArea(name, models.AnchoredArea(len(rows), lastColumn(rows, r.layout.Index.Span()))); err != nil {
		return name, err
	}

	r.logger.Debug("rendered index sheet", "sheet", name, "rows", len(rows)-1)
	return name, nil
}

// RenderTable adds one worksheet for t and returns its title.
func (r *Renderer) RenderTable(t models.Table) (string, error) {
	name, err := r.names.reserve(SheetName(t.Number, t.Name))
	if err != nil {
		return "", err
	}
	if _, err := r.f.NewSheet(name); err != nil {
		return name, err
	}

	span := r.layout.Table.Span()
	if n := len(t.Header()); n > span {
		span = n
	}

	title := fmt.Sprintf("%s (%s)", t.Name, t.ShortDesc)
	if err := r.writeBanner(name, 1, span, title, r.styles.title); err != nil {
		return name, err
	}
	if err := r.writeBanner(name, 2, span, t.Description, r.styles.subtitle); err != nil {
		return name, err
	}

	for i, row := range t.Rows {
		if err := r.writeRow(name, tableHeaderRow+i, row, i == 0, r.layout.Table); err != nil {
			return name, err
		}
	}
	if err := r.applyWidths(name, r.layout.Table); err != nil {
		return name, err
	}

	lastRow := tableHeaderRow - 1 + len(t.Rows)
	if len(t.Rows) == 0 {
		lastRow = 2
	}
	if err := r.setPrintArea(name, models.AnchoredArea(lastRow, lastColumn(t.Rows, span))); err != nil {
		return name, err
	}

	r.logger.Debug("rendered table sheet", "sheet", name, "rows", len(t.Data()))
	return name, nil
}

// writeBanner writes an informational row merged across span columns.
func (r *Renderer) writeBanner(sheet string, row, span int, value string, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := r.f.SetCellStr(sheet, first, value); err != nil {
		return err
	}
	if err := r.f.SetCellStyle(sheet, first, first, style); err != nil {
		return err
	}
	if span < 2 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(span, row)
	if err != nil {
		return err
	}
	return r.f.MergeCell(sheet, first, last)
}

func (r *Renderer) writeRow(sheet string, rowNum int, row models.Row, header bool, layout models.ColumnLayout) error {
	for i, value := range row {
		col := i + 1
		cell, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return err
		}
		if err := r.f.SetCellStr(sheet, cell, value); err != nil {
			return err
		}

		style := r.styles.left
		switch {
		case header:
			style = r.styles.header
		case layout.IsCentered(col):
			style = r.styles.center
		}
		if err := r.f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) applyWidths(sheet string, layout models.ColumnLayout) error {
	for i, width := range layout.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := r.f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

// setPrintArea defines area as the sheet's print area.
func (r *Renderer) setPrintArea(sheet string, area models.PrintArea) error {
	if area.Empty() {
		return nil
	}
	origin, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	if err != nil {
		return err
	}
	corner, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	if err != nil {
		return err
	}
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	return r.f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("%s!%s:%s", quoted, origin, corner),
		Scope:    sheet,
	})
}

// lastColumn returns the widest of span and every row's cell count.
func lastColumn(rows []models.Row, span int) int {
	last := span
	for _, row := range rows {
		if len(row) > last {
			last = len(row)
		}
	}
	return last
}
