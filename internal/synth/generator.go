// Package synth produces the synthetic tour-date table the dashboard reads.
package synth

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/okian/djtour/internal/domain/dedupe"
	"github.com/okian/djtour/internal/domain/model"
	"github.com/okian/djtour/pkg/logger"
)

const (
	defaultRows = 200

	minAttendance = 1000
	maxAttendance = 70000
	minPrice      = 50
	maxPrice      = 400

	pcgStream = 0x9e3779b97f4a7c15
)

// DefaultStart and DefaultEnd bound the default window, end excluded.
var (
	DefaultStart = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultEnd   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// Generator builds event tables from a roster and a venue list.
type Generator struct {
	rows       int
	seed       uint64
	start, end time.Time
	roster     []DJ
	venues     []Venue
	eventTypes []string
	logger     logger.Logger
}

// New creates a Generator with the default roster, venues and window.
func New(opts ...Option) *Generator {
	g := &Generator{
		rows:       defaultRows,
		start:      DefaultStart,
		end:        DefaultEnd,
		roster:     Roster,
		venues:     Venues,
		eventTypes: EventTypes,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) days() int {
	return int(g.end.Sub(g.start) / (24 * time.Hour))
}

func (g *Generator) validate() error {
	switch {
	case g.rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, g.rows)
	case g.days() <= 0:
		return fmt.Errorf("%w: window %s..%s is empty", ErrInvalidConfig,
			g.start.Format(model.DateLayout), g.end.Format(model.DateLayout))
	case len(g.roster) == 0 || len(g.venues) == 0 || len(g.eventTypes) == 0:
		return fmt.Errorf("%w: roster, venues and event types must be non-empty", ErrInvalidConfig)
	}
	if capacity := len(g.roster) * g.days() * len(g.venues); g.rows > capacity {
		return fmt.Errorf("%w: %d > %d", ErrTooManyRows, g.rows, capacity)
	}
	return nil
}

// Generate returns exactly the configured number of rows, unique on
// (date, dj, venue). Every DJ first gets its quota of distinct dates; the
// rest is topped up with random rows.
func (g *Generator) Generate(ctx context.Context) ([]model.Event, error) {
	const op = "synth.generate"
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r := rand.New(rand.NewPCG(g.seed, g.seed^pcgStream))
	days := g.days()
	seen := dedupe.New(dedupe.WithCapacity(g.rows))
	events := make([]model.Event, 0, g.rows)

	add := func(e model.Event) {
		if len(events) < g.rows && !seen.SeenAndRecord(e.Key()) {
			events = append(events, e)
		}
	}

	for _, dj := range g.roster {
		for _, d := range r.Perm(days)[:min(dj.Events, days)] {
			add(g.event(r, dj, d))
		}
	}

	for len(events) < g.rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		dj := g.roster[r.IntN(len(g.roster))]
		add(g.event(r, dj, r.IntN(days)))
	}

	g.logger.Info(ctx, "generated events",
		logger.Int("rows", len(events)),
		logger.Int("djs", len(g.roster)),
		logger.Int("venues", len(g.venues)),
	)
	return events, nil
}

func (g *Generator) event(r *rand.Rand, dj DJ, day int) model.Event {
	kind := g.eventTypes[r.IntN(len(g.eventTypes))]
	v := g.venues[r.IntN(len(g.venues))]
	return model.Event{
		Date:        g.start.AddDate(0, 0, day),
		EntityName:  dj.Name,
		Genre:       dj.Genre,
		EventType:   kind,
		EventName:   kind + " featuring " + dj.Name,
		VenueName:   v.Name,
		City:        v.City,
		Country:     v.Country,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		Attendance:  minAttendance + r.IntN(maxAttendance-minAttendance+1),
		TicketPrice: minPrice + r.IntN(maxPrice-minPrice+1),
	}
}
