package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/okian/djtour/internal/domain/dedupe"
	"github.com/okian/djtour/internal/domain/model"
	"github.com/okian/djtour/pkg/logger"
)

type column int

const (
	colDate column = iota
	colEntity
	colEventType
	colEventName
	colVenue
	colCity
	colCountry
	colLatitude
	colLongitude
	colGenre
	colAttendance
	colTicketPrice
	numColumns
)

// Header is the column order written by WriteCSV. The first accepted name of
// every column below is the one written.
var Header = []string{
	"date", "dj_name", "event_type", "event_name", "venue", "city", "country",
	"latitude", "longitude", "genre", "attendance", "ticket_price",
}

// columnNames lists accepted header names per column, canonical name first.
var columnNames = [numColumns][]string{
	colDate:        {"date"},
	colEntity:      {"dj_name", "entity_name"},
	colEventType:   {"event_type"},
	colEventName:   {"event_name"},
	colVenue:       {"venue", "venue_name"},
	colCity:        {"city"},
	colCountry:     {"country"},
	colLatitude:    {"latitude"},
	colLongitude:   {"longitude"},
	colGenre:       {"genre"},
	colAttendance:  {"attendance"},
	colTicketPrice: {"ticket_price"},
}

func optional(c column) bool {
	return c == colGenre || c == colEventName
}

// indexColumns maps each column to its position in header; -1 when absent.
func indexColumns(header []string) ([numColumns]int, error) {
	var idx [numColumns]int
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var missing []string
	for c := column(0); c < numColumns; c++ {
		idx[c] = -1
		for _, name := range columnNames[c] {
			if i, ok := pos[name]; ok {
				idx[c] = i
				break
			}
		}
		if idx[c] < 0 && !optional(c) {
			missing = append(missing, columnNames[c][0])
		}
	}
	if len(missing) > 0 {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseRow validates one record. Every required field must be present and
// parse; counts must be positive and coordinates on the globe.
func parseRow(rec []string, idx [numColumns]int) (model.Event, error) {
	get := func(c column) string {
		if idx[c] < 0 || idx[c] >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx[c]])
	}

	var e model.Event
	var err error
	if e.Date, err = model.ParseDate(get(colDate)); err != nil {
		return e, fmt.Errorf("%w: date %q", ErrMalformedRow, get(colDate))
	}

	e.EntityName = get(colEntity)
	e.EventType = get(colEventType)
	e.VenueName = get(colVenue)
	e.City = get(colCity)
	e.Country = get(colCountry)
	for c, v := range map[column]string{
		colEntity: e.EntityName, colEventType: e.EventType, colVenue: e.VenueName,
		colCity: e.City, colCountry: e.Country,
	} {
		if v == "" {
			return e, fmt.Errorf("%w: empty %s", ErrMalformedRow, columnNames[c][0])
		}
	}
	e.Genre = get(colGenre)
	e.EventName = get(colEventName)
	if e.EventName == "" {
		e.EventName = e.EventType + " featuring " + e.EntityName
	}

	if e.Latitude, err = parseCoord(get(colLatitude), 90); err != nil {
		return e, fmt.Errorf("%w: latitude: %w", ErrMalformedRow, err)
	}
	if e.Longitude, err = parseCoord(get(colLongitude), 180); err != nil {
		return e, fmt.Errorf("%w: longitude: %w", ErrMalformedRow, err)
	}
	if e.Attendance, err = parsePositive(get(colAttendance)); err != nil {
		return e, fmt.Errorf("%w: attendance: %w", ErrMalformedRow, err)
	}
	if e.TicketPrice, err = parsePositive(get(colTicketPrice)); err != nil {
		return e, fmt.Errorf("%w: ticket_price: %w", ErrMalformedRow, err)
	}
	return e, nil
}

func parseCoord(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.Abs(v) > limit {
		return 0, fmt.Errorf("%q out of range", s)
	}
	return v, nil
}

func parsePositive(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%d is not positive", v)
	}
	return v, nil
}

// Load reads a CSV event table. Malformed rows are skipped and counted;
// rows repeating (date, entity, venue) are dropped after the first one.
// An unreadable stream or a header without the required columns fails the
// whole load.
func Load(ctx context.Context, r io.Reader, log logger.Logger) (*model.Table, error) {
	const op = "repository.load"
	if log == nil {
		log = logger.Nop()
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: empty file", op, ErrMissingColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrLoad, err)
	}
	idx, err := indexColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var stats model.LoadStats
	events := make([]model.Event, 0)
	for record := 1; ; record++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if err != nil && !errors.As(err, &perr) {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrLoad, err)
		}
		stats.RowsRead++
		if err == nil {
			var e model.Event
			if e, err = parseRow(rec, idx); err == nil {
				events = append(events, e)
				continue
			}
		}
		stats.RowsRejected++
		log.Warn(ctx, "rejected row", logger.Int("record", record), logger.Error(err))
	}

	events, stats.DuplicateRows = dedupe.Events(events)
	stats.GenreConflicts = harmonizeGenres(ctx, events, log)

	log.Info(ctx, "event table loaded",
		logger.Int("rows", len(events)),
		logger.Int("read", stats.RowsRead),
		logger.Int("rejected", stats.RowsRejected),
		logger.Int("duplicates", stats.DuplicateRows),
	)
	return model.NewTable(events, stats), nil
}

// harmonizeGenres gives every row of an entity the first non-empty genre
// seen for it and returns how many rows disagreed.
func harmonizeGenres(ctx context.Context, events []model.Event, log logger.Logger) int {
	first := make(map[string]string)
	for _, e := range events {
		if _, ok := first[e.EntityName]; !ok && e.Genre != "" {
			first[e.EntityName] = e.Genre
		}
	}
	conflicts := 0
	for i := range events {
		g := first[events[i].EntityName]
		if events[i].Genre == g {
			continue
		}
		if events[i].Genre != "" {
			conflicts++
			log.Warn(ctx, "conflicting genre",
				logger.String("entity", events[i].EntityName),
				logger.String("genre", events[i].Genre),
				logger.String("kept", g),
			)
		}
		events[i].Genre = g
	}
	return conflicts
}

// WriteCSV writes events with Header as the first line.
func WriteCSV(w io.Writer, events []model.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range events {
		rec := []string{
			e.Date.Format(model.DateLayout),
			e.EntityName,
			e.EventType,
			e.EventName,
			e.VenueName,
			e.City,
			e.Country,
			strconv.FormatFloat(e.Latitude, 'f', -1, 64),
			strconv.FormatFloat(e.Longitude, 'f', -1, 64),
			e.Genre,
			strconv.Itoa(e.Attendance),
			strconv.Itoa(e.TicketPrice),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
