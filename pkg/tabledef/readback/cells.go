package readback

import (
	"strconv"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells extracts cell text from a sheet.
// It returns a slice of CellRow containing non-empty rows. Values are kept
// as the text shown in the cell; nothing is converted to numbers.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]string)
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = cellValue // 1-based column index as string
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// ExtractMerges lists the merged ranges of a sheet as "A1:G1" strings.
func ExtractMerges(f *excelize.File, sheetName string) ([]string, error) {
	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	var result []string
	for _, mc := range merges {
		result = append(result, mc.GetStartAxis()+":"+mc.GetEndAxis())
	}
	return result, nil
}
