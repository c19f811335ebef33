package model

import "time"

// Timing classifies an event date against a reference date.
type Timing string

const (
	Past   Timing = "past"
	Today  Timing = "today"
	Future Timing = "future"
)

// Classify reports whether eventDate is before, on, or after ref, compared
// at calendar-day granularity.
func Classify(eventDate, ref time.Time) Timing {
	e, r := Day(eventDate), Day(ref)
	switch {
	case e.Before(r):
		return Past
	case e.After(r):
		return Future
	default:
		return Today
	}
}
