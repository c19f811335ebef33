// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/djtour/internal/domain/model"
	"github.com/okian/djtour/internal/domain/types"
	"github.com/okian/djtour/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Filters(ctx context.Context) (types.Filters, error)
	Summary(ctx context.Context, q Query) (types.Summary, error)
	Tour(ctx context.Context, q Query) (types.Tour, error)
	Events(ctx context.Context, q Query) ([]types.Row, error)
}

// Query mirrors the filter selection accepted by every view endpoint.
type Query = types.Query

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	viewsHandler     *ViewsHandler
	exportHandler    *ExportHandler
	dashboardHandler *dashboardHandler
	logger           logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		dashboardHandler: newDashboardHandler(),
		logger:           logger.Nop(),
	}
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger != nil {
		s.logger = cfg.logger
	}
	s.viewsHandler = NewViewsHandler(deps, s.logger)
	s.exportHandler = NewExportHandler(deps, cfg.exporter, s.logger)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	handle := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestID(MetricsMiddleware(h, endpoint)))
	}

	handle("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	handle("GET /stats", "stats", s.statsHandler.HandleStats)
	handle("GET /dashboard", "dashboard", s.dashboardHandler.HandleDashboard)
	handle("GET /api/filters", "filters", s.viewsHandler.HandleFilters)
	handle("GET /api/summary", "summary", s.viewsHandler.HandleSummary)
	handle("GET /api/tour", "tour", s.viewsHandler.HandleTour)
	handle("GET /api/events", "events", s.viewsHandler.HandleEvents)
	handle("GET /api/export.xlsx", "export", s.exportHandler.HandleXLSX)
	mux.Handle("GET /{$}", http.RedirectHandler("/dashboard", http.StatusFound))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure maps err to a status: bad requests are the caller's fault,
// everything else is logged and reported as a server error.
func writeFailure(ctx context.Context, w http.ResponseWriter, l logger.Logger, err error) {
	if errors.Is(err, ErrBadRequest) {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	l.Error(ctx, "request failed", logger.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", NewKind("api", ErrInternal))
}

// parseQuery reads start, end, entity and top from the URL. Missing values
// stay zero; present but unparseable values are rejected.
func parseQuery(r *http.Request) (Query, error) {
	const op = "api.parse_query"
	v := r.URL.Query()
	var q Query
	var err error

	if s := strings.TrimSpace(v.Get("start")); s != "" {
		if q.Start, err = model.ParseDate(s); err != nil {
			return q, WrapKind(op, ErrBadRequest, fmt.Errorf("start must be YYYY-MM-DD, got %q", s))
		}
	}
	if s := strings.TrimSpace(v.Get("end")); s != "" {
		if q.End, err = model.ParseDate(s); err != nil {
			return q, WrapKind(op, ErrBadRequest, fmt.Errorf("end must be YYYY-MM-DD, got %q", s))
		}
	}
	if s := strings.TrimSpace(v.Get("top")); s != "" {
		if q.Top, err = strconv.Atoi(s); err != nil || q.Top < 0 {
			return q, WrapKind(op, ErrBadRequest, fmt.Errorf("top must be a non-negative integer, got %q", s))
		}
	}
	q.Entity = strings.TrimSpace(v.Get("entity"))
	return q, nil
}
