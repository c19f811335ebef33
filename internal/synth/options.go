package synth

import (
	"time"

	"github.com/okian/djtour/internal/domain/model"
	"github.com/okian/djtour/pkg/logger"
)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRows sets the number of rows to produce.
func WithRows(n int) Option {
	return func(g *Generator) { g.rows = n }
}

// WithSeed fixes the random source. The same seed yields the same table.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.seed = seed }
}

// WithWindow sets the date range. start is included, end is not.
func WithWindow(start, end time.Time) Option {
	return func(g *Generator) { g.start, g.end = model.Day(start), model.Day(end) }
}

// WithRoster replaces the performer list.
func WithRoster(djs []DJ) Option {
	return func(g *Generator) { g.roster = djs }
}

// WithVenues replaces the venue list.
func WithVenues(venues []Venue) Option {
	return func(g *Generator) { g.venues = venues }
}

// WithEventTypes replaces the event type list.
func WithEventTypes(types []string) Option {
	return func(g *Generator) { g.eventTypes = types }
}

// WithLogger sets the logger used for progress output.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}
