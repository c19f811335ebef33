// Package dedupe removes rows that repeat a natural key.
package dedupe

import "github.com/okian/djtour/internal/domain/model"

// Deduper records seen keys.
type Deduper interface {
	// SeenAndRecord reports whether key was already seen and records it if not.
	SeenAndRecord(key string) bool

	Size() int
}

// keySet implements Deduper with a plain map. Tables are small and loaded
// once, so there is no eviction.
type keySet struct {
	seen     map[string]struct{}
	capacity int
	keyFn    func(model.Event) string
}

// New creates an empty Deduper.
func New(opts ...Option) Deduper {
	return newKeySet(opts...)
}

func newKeySet(opts ...Option) *keySet {
	d := &keySet{keyFn: model.Event.Key}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{}, d.capacity)
	return d
}

func (d *keySet) SeenAndRecord(key string) bool {
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

func (d *keySet) Size() int {
	return len(d.seen)
}

// Events returns events without rows whose key was already seen, keeping the
// first occurrence and the original order. It also returns how many rows
// were dropped. The default key is (date, entity_name, venue_name).
func Events(events []model.Event, opts ...Option) ([]model.Event, int) {
	d := newKeySet(append([]Option{WithCapacity(len(events))}, opts...)...)
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if d.SeenAndRecord(d.keyFn(e)) {
			continue
		}
		out = append(out, e)
	}
	return out, len(events) - len(out)
}
