package service

import (
	"time"

	"github.com/okian/djtour/internal/adapters/repository"
	"github.com/okian/djtour/internal/domain/tour"
	"github.com/okian/djtour/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets where the event table comes from.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTopN sets how many entities the summary ranks when the caller does
// not ask for a specific number.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithMaxTopN caps the ranking length a caller may request.
func WithMaxTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTopN = n
		}
	}
}

// WithTourOptions passes marker sizing options to the frame builder.
func WithTourOptions(opts ...tour.Option) Option {
	return func(s *Service) {
		s.tourOpts = append(s.tourOpts, opts...)
	}
}

// WithClock sets the source of the reference date used to classify events.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
