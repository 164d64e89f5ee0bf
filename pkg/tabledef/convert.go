package tabledef

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/natefinch/atomic"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/parser"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/render"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/schemafile"
)

// Result summarizes a written workbook.
type Result struct {
	Output string   `json:"output"`
	Sheets []string `json:"sheets"`
	Tables int      `json:"tables"`
}

// ParseMarkdown decodes a markdown table-definition document and extracts
// its index and table sections.
func ParseMarkdown(data []byte, opts Options) (*models.Document, error) {
	text, err := parser.Decode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}

	doc := parser.Extract(text, parser.ExtractOptions{IndexTitle: opts.indexTitle()})
	if err := checkTableNumbers(doc, opts); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkTableNumbers reports duplicate sequence numbers: an error in strict
// mode, a warning otherwise.
func checkTableNumbers(doc *models.Document, opts Options) error {
	seen := make(map[string]string, len(doc.Tables))
	for _, t := range doc.Tables {
		key := t.Number
		if n, err := strconv.Atoi(t.Number); err == nil {
			key = strconv.Itoa(n)
		}
		first, dup := seen[key]
		if !dup {
			seen[key] = t.Name
			continue
		}
		if opts.Strict {
			return fmt.Errorf("%w: %s is used by %s and %s", ErrDuplicateTableNumber, t.Number, first, t.Name)
		}
		opts.logger().Warn("duplicate table number", "number", t.Number, "first", first, "second", t.Name)
	}
	return nil
}

// Build renders doc into a new workbook: the index sheet first, then one
// sheet per table in document order. The caller owns the returned file.
func Build(doc *models.Document, opts Options) (*excelize.File, error) {
	f := excelize.NewFile()

	r, err := render.New(f, opts.layout(),
		render.WithNamePolicy(opts.NamePolicy),
		render.WithLogger(opts.logger()),
	)
	if err != nil {
		f.Close()
		return nil, NewRenderError("", "styles", err)
	}

	if name, err := r.RenderIndex(opts.indexTitle(), doc.Index); err != nil {
		f.Close()
		return nil, NewRenderError(name, "index", err)
	}
	for _, t := range doc.Tables {
		if name, err := r.RenderTable(t); err != nil {
			f.Close()
			if name == "" {
				name = render.SheetName(t.Number, t.Name)
			}
			return nil, NewRenderError(name, "table", err)
		}
	}

	return f, nil
}

// ConvertMarkdown reads a markdown document and writes the workbook to output.
func ConvertMarkdown(input, output string, opts Options) (*Result, error) {
	data, err := readInput(input)
	if err != nil {
		return nil, err
	}
	doc, err := ParseMarkdown(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", input, err)
	}
	return write(doc, output, opts)
}

// ConvertSchema reads a YAML schema file and writes the workbook to output.
func ConvertSchema(input, output string, opts Options) (*Result, error) {
	data, err := readInput(input)
	if err != nil {
		return nil, err
	}
	s, err := schemafile.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", input, err)
	}
	return write(s.Document(), output, opts)
}

func write(doc *models.Document, output string, opts Options) (*Result, error) {
	f, err := Build(doc, opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := Save(f, output); err != nil {
		return nil, err
	}

	opts.logger().Info("workbook written", "output", output, "tables", len(doc.Tables))
	return &Result{
		Output: output,
		Sheets: f.GetSheetList(),
		Tables: len(doc.Tables),
	}, nil
}

// Save writes f to path atomically: the workbook is synced to a temporary
// file in the same directory and then moved over path. An existing file keeps
// its mode; a new one is created 0644.
func Save(f *excelize.File, path string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return NewRenderError("", "save", err)
	}

	_, statErr := os.Stat(path)
	if err := atomic.WriteFile(path, buf); err != nil {
		return NewRenderError("", "save", err)
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		if err := os.Chmod(path, 0o644); err != nil {
			return NewRenderError("", "save", err)
		}
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return data, err
}
