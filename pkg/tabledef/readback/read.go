// Package readback reads generated workbooks back into plain text structures.
package readback

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
	"github.com/xuri/excelize/v2"
)

// Read opens the workbook at path and returns its sheets in tab order.
func Read(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb, err := FromFile(f)
	if err != nil {
		return nil, err
	}
	wb.BookName = filepath.Base(path)
	return wb, nil
}

// FromFile reads an open workbook.
func FromFile(f *excelize.File) (*models.WorkbookData, error) {
	printAreas := ExtractPrintAreas(f)
	wb := &models.WorkbookData{}

	for _, sheetName := range f.GetSheetList() {
		sheet, err := readSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}
		sheet.PrintAreas = printAreas[sheetName]
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

func readSheet(f *excelize.File, sheetName string) (models.SheetData, error) {
	sheet := models.SheetData{Name: sheetName}

	rows, err := ExtractCells(f, sheetName)
	if err != nil {
		return sheet, err
	}
	sheet.Rows = rows

	if sheet.UsedRange, err = UsedRange(f, sheetName); err != nil {
		return sheet, err
	}
	if sheet.Merges, err = ExtractMerges(f, sheetName); err != nil {
		return sheet, err
	}

	if sheet.UsedRange != "" {
		_, lastCol, err := usedColumns(sheet.UsedRange)
		if err != nil {
			return sheet, err
		}
		if sheet.ColWidths, err = ColumnWidths(f, sheetName, lastCol); err != nil {
			return sheet, err
		}
	}

	return sheet, nil
}

func usedColumns(usedRange string) (int, int, error) {
	area := parseRangeToArea(usedRange)
	if area == nil {
		return 0, 0, fmt.Errorf("invalid range %q", usedRange)
	}
	return area.C1, area.C2, nil
}
