package tabledef

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/parser"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/render"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/schemafile"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrDuplicateTableNumber indicates two table headings share a sequence
// number while strict mode is on.
var ErrDuplicateTableNumber = errors.New("duplicate table number")

// Errors surfaced from the subpackages.
var (
	ErrInvalidEncoding    = parser.ErrInvalidEncoding
	ErrSheetNameCollision = render.ErrSheetNameCollision
	ErrInvalidSchema      = schemafile.ErrInvalidSchema
)

// RenderError represents an error while writing one worksheet.
type RenderError struct {
	SheetName string
	Component string // "styles", "index", "table", "save"
	Err       error
}

func (e *RenderError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("render error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("render error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(sheetName, component string, err error) *RenderError {
	return &RenderError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
