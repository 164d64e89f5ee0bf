package parser

import (
	"reflect"
	"testing"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
		ok       bool
	}{
		{"| 1 | name | VARCHAR(50) | NO | - | PK | Primary key |",
			[]string{"1", "name", "VARCHAR(50)", "NO", "-", "PK", "Primary key"}, true},
		{"  | No | 컬럼명 | 설명 |  ", []string{"No", "컬럼명", "설명"}, true},
		{"|---|---|---|---|---|---|---|", nil, false},
		{"|-|-|", nil, false},
		{"| --- | --- |", nil, false},
		{"| - | -- |", nil, false},
		{"|", nil, false},
		{"||", nil, false},
		{"| a |", []string{"a"}, true},
		{"| a | b", []string{"a"}, true},
		{"no pipes here", nil, false},
		{"", nil, false},
		{"| 2024-01-01 | TRUE | 3.14 |", []string{"2024-01-01", "TRUE", "3.14"}, true},
		{"| a |  | c |", []string{"a", "", "c"}, true},
	}

	for _, tt := range tests {
		row, ok := ParseRow(tt.line)
		if ok != tt.ok {
			t.Errorf("ParseRow(%q) ok = %v, expected %v", tt.line, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if !reflect.DeepEqual([]string(row), tt.expected) {
			t.Errorf("ParseRow(%q) = %q, expected %q", tt.line, row, tt.expected)
		}
	}
}

func TestParseRowsKeepsOrderAndRaggedRows(t *testing.T) {
	lines := []string{
		"| No | 컬럼명 | 타입 |",
		"|----|--------|------|",
		"| 1 | id | BIGINT | extra |",
		"",
		"| 2 | email |",
		"설명 문장",
	}

	rows := ParseRows(lines)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d: %q", len(rows), rows)
	}
	if len(rows[1]) != 4 {
		t.Errorf("Expected ragged row with 4 cells, got %d", len(rows[1]))
	}
	if len(rows[2]) != 2 {
		t.Errorf("Expected ragged row with 2 cells, got %d", len(rows[2]))
	}
	if rows[2][1] != "email" {
		t.Errorf("Expected 'email', got %q", rows[2][1])
	}
}

func TestParseRowsEmpty(t *testing.T) {
	if rows := ParseRows(nil); rows != nil {
		t.Errorf("Expected nil rows, got %q", rows)
	}
	if rows := ParseRows([]string{"|---|---|"}); rows != nil {
		t.Errorf("Expected nil rows for separator only, got %q", rows)
	}
}
