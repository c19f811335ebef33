package api

import (
	"io"

	"github.com/okian/djtour/internal/domain/types"
	"github.com/okian/djtour/pkg/logger"
)

// Exporter renders rows into a downloadable file.
type Exporter interface {
	Write(w io.Writer, rows []types.Row) error
}

type options struct {
	logger   logger.Logger
	exporter Exporter
}

// Option configures the Server.
type Option func(*options)

// WithLogger sets the logger used for failed requests.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithExporter replaces the spreadsheet exporter.
func WithExporter(e Exporter) Option {
	return func(o *options) { o.exporter = e }
}
