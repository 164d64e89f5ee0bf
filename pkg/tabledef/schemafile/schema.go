// Package schemafile loads declarative table schemas from YAML.
package schemafile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
)

//go:embed schema.json
var documentSchema string

var compiledSchema = jsonschema.MustCompileString("schema.json", documentSchema)

// ErrInvalidSchema indicates the schema file does not match the expected structure.
var ErrInvalidSchema = errors.New("invalid schema file")

var (
	// IndexHeader is the header row of the generated index.
	IndexHeader = models.Row{"No", "분류", "테이블명", "설명"}
	// ColumnHeader is the header row of every generated table sheet.
	ColumnHeader = models.Row{"No", "컬럼명", "데이터 타입", "NULL", "기본값", "PK/FK", "설명"}
)

// Column describes one table column.
type Column struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`
	Nullable bool   `yaml:"nullable" json:"nullable"`
	Default  string `yaml:"default" json:"default,omitempty"`
	Key      string `yaml:"key" json:"key,omitempty"`
	Desc     string `yaml:"desc" json:"desc,omitempty"`
}

// Table describes one database table.
type Table struct {
	Name        string   `yaml:"name" json:"name"`
	Desc        string   `yaml:"desc" json:"desc"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Columns     []Column `yaml:"columns" json:"columns"`
}

// Category groups related tables.
type Category struct {
	Name   string  `yaml:"name" json:"name"`
	Tables []Table `yaml:"tables" json:"tables"`
}

// Schema is the root of a schema file.
type Schema struct {
	Categories []Category `yaml:"categories" json:"categories"`
}

// Load reads and validates a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse validates data against the schema file definition and decodes it.
func Parse(data []byte) (*Schema, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	// Validation runs on the JSON data model.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	var doc any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return &s, nil
}

// TableCount returns the number of tables across all categories.
func (s *Schema) TableCount() int {
	n := 0
	for _, c := range s.Categories {
		n += len(c.Tables)
	}
	return n
}

// Document converts the schema into renderer input. Tables are numbered from
// 1 across categories in file order.
func (s *Schema) Document() *models.Document {
	doc := &models.Document{
		Index: []models.Row{cloneRow(IndexHeader)},
	}

	n := 0
	for _, c := range s.Categories {
		for _, t := range c.Tables {
			n++
			number := strconv.Itoa(n)
			doc.Index = append(doc.Index, models.Row{number, c.Name, t.Name, t.Desc})

			description := t.Description
			if description == "" {
				description = "[" + c.Name + "]"
			}
			rows := []models.Row{cloneRow(ColumnHeader)}
			for i, col := range t.Columns {
				rows = append(rows, col.row(i+1))
			}
			doc.Tables = append(doc.Tables, models.Table{
				Number:      number,
				Name:        t.Name,
				ShortDesc:   t.Desc,
				Description: description,
				Rows:        rows,
			})
		}
	}
	return doc
}

func (c Column) row(n int) models.Row {
	nullable := "NO"
	if c.Nullable {
		nullable = "YES"
	}
	return models.Row{strconv.Itoa(n), c.Name, c.Type, nullable, orDash(c.Default), orDash(c.Key), c.Desc}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func cloneRow(r models.Row) models.Row {
	return append(models.Row(nil), r...)
}
