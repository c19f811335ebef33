// Package tour builds the route-replay animation for one performer.
package tour

import (
	"math"
	"sort"

	"github.com/okian/djtour/internal/domain/model"
)

// Sizer turns a city visit count into a marker diameter. Marker area grows
// linearly with the count and the largest count in the sequence maps to a
// fixed diameter, whatever the absolute event volume.
type Sizer struct {
	maxMarker float64
	minMarker float64
}

// NewSizer creates a Sizer with the default 40px reference and 4px floor.
func NewSizer(opts ...Option) Sizer {
	s := Sizer{maxMarker: defaultMaxMarker, minMarker: defaultMinMarker}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// SizeRef returns the area scale 2*maxCount/maxMarker².
func (s Sizer) SizeRef(maxCount int) float64 {
	return 2 * float64(maxCount) / (s.maxMarker * s.maxMarker)
}

// Size returns the diameter for count, given the largest count of the full
// sequence. The result never drops below the floor.
func (s Sizer) Size(count, maxCount int) float64 {
	if count <= 0 || maxCount <= 0 {
		return s.minMarker
	}
	return math.Max(math.Sqrt(float64(count)/s.SizeRef(maxCount)), s.minMarker)
}

// sortByDate returns a date-ascending copy. Same-day events keep their
// table order.
func sortByDate(events []model.Event) []model.Event {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// CityCounts returns the number of events per (city, country).
func CityCounts(events []model.Event) map[model.CityKey]int {
	out := make(map[model.CityKey]int)
	for _, e := range events {
		out[e.Location().CityKey()]++
	}
	return out
}

// BuildFrames returns frames 1..N for the entity's events, where frame k
// holds the first k events in date order. Each point's CityCount is computed
// over its own frame only. Empty input yields no frames.
func BuildFrames(events []model.Event, opts ...Option) []model.Frame {
	sizer := NewSizer(opts...)
	sorted := sortByDate(events)

	maxCount := 0
	for _, c := range CityCounts(sorted) {
		maxCount = max(maxCount, c)
	}

	frames := make([]model.Frame, 0, len(sorted))
	counts := make(map[model.CityKey]int)
	for k := 1; k <= len(sorted); k++ {
		counts[sorted[k-1].Location().CityKey()]++

		points := make([]model.FramePoint, k)
		for i, e := range sorted[:k] {
			c := counts[e.Location().CityKey()]
			points[i] = model.FramePoint{
				Date:       e.Date,
				EntityName: e.EntityName,
				EventName:  e.EventName,
				VenueName:  e.VenueName,
				Location:   e.Location(),
				CityCount:  c,
				MarkerSize: sizer.Size(c, maxCount),
			}
		}
		frames = append(frames, model.Frame{Index: k, Points: points})
	}
	return frames
}
