// Package aggregate derives the dashboard views from a table of events.
//
// Every function is pure: it never mutates its input and returns the same
// output for the same input. Empty input yields empty, non-nil results.
package aggregate

import (
	"sort"
	"time"

	"github.com/okian/djtour/internal/domain/model"
	"github.com/okian/djtour/internal/domain/types"
)

const monthLayout = "2006-01"

// Filter returns the rows with start <= date <= end, restricted to entity
// when it is non-empty. An inverted range yields an empty view.
func Filter(events []model.Event, start, end time.Time, entity string) []model.Event {
	out := make([]model.Event, 0, len(events))
	start, end = model.Day(start), model.Day(end)
	if start.After(end) {
		return out
	}
	for _, e := range events {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		if entity != "" && e.EntityName != entity {
			continue
		}
		out = append(out, e)
	}
	return out
}

// group counts rows per key in first-seen order.
func group(events []model.Event, key func(model.Event) string) []types.Count {
	index := make(map[string]int)
	out := make([]types.Count, 0)
	for _, e := range events {
		k := key(e)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, types.Count{Label: k})
		}
		out[i].Count++
	}
	return out
}

// TopNByCount returns the n most frequent values of field, descending by
// count. Ties keep the order in which the values first appear.
func TopNByCount(events []model.Event, field Field, n int) []types.Count {
	if n <= 0 {
		return []types.Count{}
	}
	counts := group(events, field.value)
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// CountsByCategory returns the count per value of field in first-seen order.
func CountsByCategory(events []model.Event, field Field) []types.Count {
	return group(events, field.value)
}

// CountsByMonth buckets rows by calendar month in time order. Months without
// events are omitted.
func CountsByMonth(events []model.Event) []types.MonthCount {
	counts := group(events, func(e model.Event) string {
		return e.Date.Format(monthLayout)
	})
	// YYYY-MM sorts lexically in time order.
	sort.Slice(counts, func(i, j int) bool { return counts[i].Label < counts[j].Label })

	out := make([]types.MonthCount, len(counts))
	for i, c := range counts {
		out[i] = types.MonthCount{Month: c.Label, Count: c.Count}
	}
	return out
}

// LocationVisitCounts returns one row per distinct (latitude, longitude,
// city, country) with the number of events held there, in first-seen order.
// Coordinates are compared exactly.
func LocationVisitCounts(events []model.Event) []types.LocationCount {
	index := make(map[model.Location]int)
	out := make([]types.LocationCount, 0)
	for _, e := range events {
		loc := e.Location()
		i, ok := index[loc]
		if !ok {
			i = len(out)
			index[loc] = i
			out = append(out, types.LocationCount{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
				City:      loc.City,
				Country:   loc.Country,
			})
		}
		out[i].Count++
	}
	return out
}

// KeyStats returns headline numbers for the view.
func KeyStats(events []model.Event) types.KeyStats {
	cities := make(map[string]struct{})
	countries := make(map[string]struct{})
	entities := make(map[string]struct{})
	var attendance, price int
	for _, e := range events {
		cities[e.City] = struct{}{}
		countries[e.Country] = struct{}{}
		entities[e.EntityName] = struct{}{}
		attendance += e.Attendance
		price += e.TicketPrice
	}

	stats := types.KeyStats{
		TotalEvents:     len(events),
		Cities:          len(cities),
		Countries:       len(countries),
		Entities:        len(entities),
		TotalAttendance: attendance,
	}
	if len(events) > 0 {
		stats.AvgTicketPrice = float64(price) / float64(len(events))
	}
	return stats
}

// Entities returns the distinct entity names in ascending order.
func Entities(events []model.Event) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range events {
		if _, ok := seen[e.EntityName]; ok {
			continue
		}
		seen[e.EntityName] = struct{}{}
		out = append(out, e.EntityName)
	}
	sort.Strings(out)
	return out
}

// DateBounds returns the earliest and latest event date. ok is false when
// events is empty.
func DateBounds(events []model.Event) (minDate, maxDate time.Time, ok bool) {
	for i, e := range events {
		if i == 0 || e.Date.Before(minDate) {
			minDate = e.Date
		}
		if i == 0 || e.Date.After(maxDate) {
			maxDate = e.Date
		}
	}
	return minDate, maxDate, len(events) > 0
}
