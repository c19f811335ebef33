package api

import (
	"net/http"

	"github.com/okian/djtour/pkg/logger"
)

// ViewsHandler serves the JSON views the dashboard page renders.
type ViewsHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewViewsHandler creates a new views handler.
func NewViewsHandler(deps Dependencies, l logger.Logger) *ViewsHandler {
	return &ViewsHandler{deps: deps, logger: l}
}

// HandleFilters handles GET /api/filters.
func (h *ViewsHandler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_filters"
	out, err := h.deps.Filters(r.Context())
	if err != nil {
		writeFailure(r.Context(), w, h.logger, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleSummary handles GET /api/summary?start&end&entity&top.
func (h *ViewsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_summary"
	q, err := parseQuery(r)
	if err != nil {
		writeFailure(r.Context(), w, h.logger, err)
		return
	}
	out, err := h.deps.Summary(r.Context(), q)
	if err != nil {
		writeFailure(r.Context(), w, h.logger, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleTour handles GET /api/tour?entity&start&end.
func (h *ViewsHandler) HandleTour(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_tour"
	q, err := parseQuery(r)
	if err != nil {
		writeFailure(r.Context(), w, h.logger, err)
		return
	}
	if q.Entity == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	out, err := h.deps.Tour(r.Context(), q)
	if err != nil {
		writeFailure(r.Context(), w, h.logger, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleEvents handles GET /api/events?start&end&entity.
func (h *ViewsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_events"
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
	writeJSON(w, http.StatusOK, rows)
}
