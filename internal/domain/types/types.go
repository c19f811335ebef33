// Package types contains common types used across the application
package types

import "time"

// Query is one filter selection. A zero Start or End falls back to the
// table's first or last date. An empty Entity selects every performer.
type Query struct {
	Start  time.Time
	End    time.Time
	Entity string
	Top    int // ranking length; 0 means the configured default
}

// Count is a (label, count) pair returned by grouping aggregates.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MonthCount is the number of events in one calendar month.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// LocationCount is the number of events held at one location.
type LocationCount struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Count     int     `json:"count"`
}

// KeyStats summarizes a filtered view.
type KeyStats struct {
	TotalEvents     int     `json:"total_events"`
	Cities          int     `json:"cities"`
	Countries       int     `json:"countries"`
	Entities        int     `json:"entities"`
	TotalAttendance int     `json:"total_attendance"`
	AvgTicketPrice  float64 `json:"avg_ticket_price"`
}

// Summary is the full set of views rendered for one filter selection.
type Summary struct {
	Start       string          `json:"start"`
	End         string          `json:"end"`
	Entity      string          `json:"entity,omitempty"`
	Stats       KeyStats        `json:"stats"`
	TopEntities []Count         `json:"top_entities"`
	Months      []MonthCount    `json:"months"`
	EventTypes  []Count         `json:"event_types"`
	Genres      []Count         `json:"genres"`
	Locations   []LocationCount `json:"locations"`
}

// Filters lists the selectable values of the loaded table.
type Filters struct {
	Entities []string `json:"entities"`
	MinDate  string   `json:"min_date,omitempty"`
	MaxDate  string   `json:"max_date,omitempty"`
}

// Row is one event as shown in the dashboard table.
type Row struct {
	Date        string  `json:"date"`
	Entity      string  `json:"entity"`
	Genre       string  `json:"genre"`
	EventType   string  `json:"event_type"`
	EventName   string  `json:"event_name"`
	Venue       string  `json:"venue"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Attendance  int     `json:"attendance"`
	TicketPrice int     `json:"ticket_price"`
	Timing      string  `json:"timing"` // past, today, future
}

// Point is one marker of an animation frame.
type Point struct {
	Date      string  `json:"date"`
	Venue     string  `json:"venue"`
	EventName string  `json:"event_name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CityCount int     `json:"city_count"`
	Size      float64 `json:"size"`
}

// Frame is one step of the tour-route animation.
type Frame struct {
	Index  int     `json:"index"`
	Points []Point `json:"points"`
}

// Tour is the frame sequence for one entity.
type Tour struct {
	Entity string  `json:"entity"`
	Frames []Frame `json:"frames"`
}
