// Package tabledef converts database table-definition documents into
// formatted xlsx workbooks.
package tabledef

import (
	"log/slog"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/parser"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/render"
)

// Options configures conversion behavior.
type Options struct {
	// IndexTitle is both the markdown heading of the index block and the
	// title of the index worksheet.
	IndexTitle string
	// Encoding is the input text encoding label (default utf-8).
	Encoding string
	// Layout holds column widths and alignments for both sheet kinds.
	Layout models.Layout
	// NamePolicy decides how colliding sheet titles are handled.
	NamePolicy render.NamePolicy
	// Strict rejects documents with duplicate table sequence numbers.
	// If false, duplicates are logged and each gets its own sheet.
	Strict bool
	// Logger receives progress and warnings. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		IndexTitle: parser.DefaultIndexTitle,
		Encoding:   parser.DefaultEncoding,
		Layout:     models.DefaultLayout(),
		NamePolicy: render.NameError,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) indexTitle() string {
	if o.IndexTitle != "" {
		return o.IndexTitle
	}
	return parser.DefaultIndexTitle
}

// layout falls back to the default layout when none is configured.
func (o Options) layout() models.Layout {
	if len(o.Layout.Index.Widths) == 0 && len(o.Layout.Table.Widths) == 0 {
		return models.DefaultLayout()
	}
	return o.Layout
}
