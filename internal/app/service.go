// Package service is the dashboard façade. It owns the loaded event table
// and answers each interaction with freshly computed views.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/djtour/internal/adapters/repository"
	"github.com/okian/djtour/internal/domain/aggregate"
	"github.com/okian/djtour/internal/domain/model"
	"github.com/okian/djtour/internal/domain/tour"
	"github.com/okian/djtour/internal/domain/types"
	"github.com/okian/djtour/pkg/logger"
	"github.com/okian/djtour/pkg/metrics"
)

const (
	defaultTopN    = 10
	defaultMaxTopN = 100
)

// Query is one filter selection.
type Query = types.Query

// Service serves aggregate views over an immutable event table.
type Service struct {
	mu sync.RWMutex

	store repository.Store
	table *model.Table

	topN     int
	maxTopN  int
	tourOpts []tour.Option
	now      func() time.Time

	started bool
	logger  logger.Logger
}

// New constructs a Service. Without WithStore it has nothing to load and
// Start fails.
func New(opts ...Option) *Service {
	s := &Service{
		topN:    defaultTopN,
		maxTopN: defaultMaxTopN,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.topN > s.maxTopN {
		s.topN = s.maxTopN
	}
	return s
}

// Start loads the event table.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		return fmt.Errorf("service.start: %w: no store configured", repository.ErrLoad)
	}

	table, err := s.store.Table(ctx)
	if err != nil {
		return fmt.Errorf("service.start: %w", err)
	}
	s.table = table
	s.started = true

	st := table.Stats()
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("rows", table.Len()),
		logger.Int("rejected", st.RowsRejected),
		logger.Int("duplicates", st.DuplicateRows),
	)
	return nil
}

// Stop releases the table handle.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.table = nil
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

func (s *Service) events() ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.table.Events(), nil
}

// window resolves zero bounds against the table's date range.
func window(events []model.Event, q Query) (start, end time.Time) {
	start, end = q.Start, q.End
	lo, hi, ok := aggregate.DateBounds(events)
	if !ok {
		return start, end
	}
	if start.IsZero() {
		start = lo
	}
	if end.IsZero() {
		end = hi
	}
	return start, end
}

func (s *Service) filtered(q Query) ([]model.Event, time.Time, time.Time, error) {
	events, err := s.events()
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	start, end := window(events, q)
	return aggregate.Filter(events, start, end, q.Entity), start, end, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}

func sinceMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}

// Filters lists the entities and the date range the dashboard can select.
func (s *Service) Filters(ctx context.Context) (types.Filters, error) {
	events, err := s.events()
	if err != nil {
		return types.Filters{}, err
	}
	out := types.Filters{Entities: aggregate.Entities(events)}
	if lo, hi, ok := aggregate.DateBounds(events); ok {
		out.MinDate, out.MaxDate = formatDate(lo), formatDate(hi)
	}
	return out, nil
}

// clampTop picks the ranking length for a request.
func (s *Service) clampTop(n int) int {
	switch {
	case n <= 0:
		return s.topN
	case n > s.maxTopN:
		return s.maxTopN
	default:
		return n
	}
}

// Summary computes every chart of the dashboard for one selection.
func (s *Service) Summary(ctx context.Context, q Query) (types.Summary, error) {
	began := time.Now()
	view, start, end, err := s.filtered(q)
	if err != nil {
		return types.Summary{}, err
	}

	out := types.Summary{
		Start:       formatDate(start),
		End:         formatDate(end),
		Entity:      q.Entity,
		Stats:       aggregate.KeyStats(view),
		TopEntities: aggregate.TopNByCount(view, aggregate.FieldEntity, s.clampTop(q.Top)),
		Months:      aggregate.CountsByMonth(view),
		EventTypes:  aggregate.CountsByCategory(view, aggregate.FieldEventType),
		Genres:      aggregate.CountsByCategory(view, aggregate.FieldGenre),
		Locations:   aggregate.LocationVisitCounts(view),
	}
	metrics.RecordAggregation("summary", len(view), sinceMs(began))
	s.logger.Debug(ctx, "summary computed",
		logger.String("start", out.Start),
		logger.String("end", out.End),
		logger.String("entity", q.Entity),
		logger.Int("rows", len(view)),
	)
	return out, nil
}

// Tour builds the route animation of the selected entity.
func (s *Service) Tour(ctx context.Context, q Query) (types.Tour, error) {
	if q.Entity == "" {
		return types.Tour{}, ErrEntityRequired
	}
	began := time.Now()
	view, _, _, err := s.filtered(q)
	if err != nil {
		return types.Tour{}, err
	}

	frames := tour.BuildFrames(view, s.tourOpts...)
	out := types.Tour{Entity: q.Entity, Frames: make([]types.Frame, len(frames))}
	for i, f := range frames {
		points := make([]types.Point, len(f.Points))
		for j, p := range f.Points {
			points[j] = types.Point{
				Date:      formatDate(p.Date),
				Venue:     p.VenueName,
				EventName: p.EventName,
				City:      p.Location.City,
				Country:   p.Location.Country,
				Latitude:  p.Location.Latitude,
				Longitude: p.Location.Longitude,
				CityCount: p.CityCount,
				Size:      p.MarkerSize,
			}
		}
		out.Frames[i] = types.Frame{Index: f.Index, Points: points}
	}

	metrics.RecordFramesBuilt(len(frames))
	metrics.RecordAggregation("tour", len(view), sinceMs(began))
	s.logger.Debug(ctx, "tour built", logger.String("entity", q.Entity), logger.Int("frames", len(frames)))
	return out, nil
}

// Events returns the filtered rows, each classified against today.
func (s *Service) Events(ctx context.Context, q Query) ([]types.Row, error) {
	began := time.Now()
	view, _, _, err := s.filtered(q)
	if err != nil {
		return nil, err
	}

	ref := s.now()
	rows := make([]types.Row, len(view))
	for i, e := range view {
		rows[i] = types.Row{
			Date:        formatDate(e.Date),
			Entity:      e.EntityName,
			Genre:       e.Genre,
			EventType:   e.EventType,
			EventName:   e.EventName,
			Venue:       e.VenueName,
			City:        e.City,
			Country:     e.Country,
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
			Attendance:  e.Attendance,
			TicketPrice: e.TicketPrice,
			Timing:      string(model.Classify(e.Date, ref)),
		}
	}
	metrics.RecordAggregation("events", len(view), sinceMs(began))
	return rows, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started": s.started,
		"topN":    s.topN,
		"maxTopN": s.maxTopN,
	}
	if s.started {
		events := s.table.Events()
		stats["rows"] = s.table.Len()
		stats["load"] = s.table.Stats()
		stats["entities"] = len(aggregate.Entities(events))
		if lo, hi, ok := aggregate.DateBounds(events); ok {
			stats["minDate"] = formatDate(lo)
			stats["maxDate"] = formatDate(hi)
		}
	}
	return stats
}
