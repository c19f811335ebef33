package dedupe

import "github.com/okian/djtour/internal/domain/model"

// Option applies a configuration option to the key set.
type Option func(*keySet)

// WithCapacity pre-sizes the set for n keys.
func WithCapacity(n int) Option {
	return func(d *keySet) {
		if n > 0 {
			d.capacity = n
		}
	}
}

// WithKey overrides the key used by Events.
func WithKey(fn func(model.Event) string) Option {
	return func(d *keySet) {
		if fn != nil {
			d.keyFn = fn
		}
	}
}
