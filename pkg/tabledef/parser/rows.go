// Package parser extracts table definitions from markdown documents.
package parser

import (
	"strings"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
)

// cellDelimiter separates cells in a pipe table row.
const cellDelimiter = "|"

// ParseRows converts pipe table lines into rows of trimmed cell text.
// Lines that do not start with "|", separator lines ("|-", "|--") and rows
// whose cells are nothing but dashes are dropped. Cell counts are not
// validated; ragged rows are returned as they are.
func ParseRows(lines []string) []models.Row {
	var rows []models.Row
	for _, line := range lines {
		if row, ok := ParseRow(line); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// ParseRow parses a single pipe table line.
func ParseRow(line string) (models.Row, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, cellDelimiter) || isSeparatorLine(line) {
		return nil, false
	}

	segments := strings.Split(line, cellDelimiter)
	// Drop the segments before the leading and after the trailing delimiter.
	segments = segments[1 : len(segments)-1]
	if len(segments) == 0 {
		return nil, false
	}

	row := make(models.Row, len(segments))
	for i, s := range segments {
		row[i] = strings.TrimSpace(s)
	}
	if isPlaceholderRow(row) {
		return nil, false
	}
	return row, true
}

// isSeparatorLine reports whether a trimmed line marks the header/body
// boundary of a pipe table.
func isSeparatorLine(line string) bool {
	return strings.HasPrefix(line, cellDelimiter+"-")
}

// isPlaceholderRow reports whether every cell is empty once dashes are removed.
func isPlaceholderRow(row models.Row) bool {
	for _, c := range row {
		if strings.ReplaceAll(c, "-", "") != "" {
			return false
		}
	}
	return true
}
