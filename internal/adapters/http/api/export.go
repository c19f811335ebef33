package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/okian/djtour/internal/adapters/export"
	"github.com/okian/djtour/pkg/logger"
	"github.com/okian/djtour/pkg/metrics"
)

// ExportHandler serves the filtered rows as a spreadsheet download.
type ExportHandler struct {
	deps     Dependencies
	exporter Exporter
	logger   logger.Logger
}

// NewExportHandler creates a new export handler. A nil exporter selects the
// xlsx writer.
func NewExportHandler(deps Dependencies, e Exporter, l logger.Logger) *ExportHandler {
	if e == nil {
		e = export.NewXLSX()
	}
	return &ExportHandler{deps: deps, exporter: e, logger: l}
}

// HandleXLSX handles GET /api/export.xlsx?start&end&entity.
func (h *ExportHandler) HandleXLSX(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_xlsx"
	q, err := parseQuery(r)
	if err != nil {
		writeFailure(r.Context(), w, h.logger, err)
		return
	}
	rows, err := h.deps.Events(r.Context(), q)
	if err != nil {
		writeFailure(r.Context(), w, h.logger, Wrap(op, err))
		return
	}

	// Buffer so a failed render can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.exporter.Write(&buf, rows); err != nil {
		writeFailure(r.Context(), w, h.logger, Wrap(op, err))
		return
	}
	metrics.RecordExport("xlsx")

	name := "dj_events.xlsx"
	if q.Entity != "" {
		name = "dj_events_" + fileSafe(q.Entity) + ".xlsx"
	}
	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// fileSafe replaces anything but letters and digits with underscores.
func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, s)
}
