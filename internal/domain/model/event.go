// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// DateLayout is the on-disk and on-wire encoding of an event date.
const DateLayout = "2006-01-02"

// Event is one row of the tour-date table.
type Event struct {
	Date        time.Time // calendar date, midnight UTC
	EntityName  string    // performer, e.g. "Carl Cox"
	Genre       string    // stable per entity
	EventType   string    // "Festival", "Club Gig", "Concert", ...
	EventName   string    // display name, e.g. "Festival featuring Carl Cox"
	VenueName   string
	City        string
	Country     string
	Latitude    float64 // harmonized per (venue, city)
	Longitude   float64
	Attendance  int
	TicketPrice int
}

// Key returns the natural key of the row: (date, entity_name, venue_name).
func (e Event) Key() string {
	var b strings.Builder
	b.Grow(len(DateLayout) + len(e.EntityName) + len(e.VenueName) + 2)
	b.WriteString(e.Date.Format(DateLayout))
	b.WriteByte(0x1f)
	b.WriteString(e.EntityName)
	b.WriteByte(0x1f)
	b.WriteString(e.VenueName)
	return b.String()
}

// Location identifies a place on the map. City+Country name the place and the
// coordinates are harmonized, so equal locations compare equal with ==.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

// Location returns where the event took place.
func (e Event) Location() Location {
	return Location{Latitude: e.Latitude, Longitude: e.Longitude, City: e.City, Country: e.Country}
}

// Day truncates t to a calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}
