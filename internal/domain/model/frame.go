package model

import "time"

// FramePoint is one visited stop inside an animation frame.
type FramePoint struct {
	Date       time.Time
	EntityName string
	EventName  string
	VenueName  string
	Location   Location
	// CityCount is how many of the frame's events took place in this
	// point's city (City+Country). It only reflects the frame's own prefix.
	CityCount int
	// MarkerSize is the rendered marker diameter derived from CityCount.
	MarkerSize float64
}

// Frame is the chronological prefix of the first Index events.
type Frame struct {
	Index  int // 1-based
	Points []FramePoint
}

// CityCounts returns the per-city visit counts of the frame, keyed by the
// (city, country) pair of each point.
func (f Frame) CityCounts() map[CityKey]int {
	out := make(map[CityKey]int)
	for _, p := range f.Points {
		out[p.Location.CityKey()] = p.CityCount
	}
	return out
}

// CityKey identifies a city independent of the venue inside it.
type CityKey struct {
	City    string
	Country string
}

// CityKey returns the (city, country) pair of the location.
func (l Location) CityKey() CityKey {
	return CityKey{City: l.City, Country: l.Country}
}
