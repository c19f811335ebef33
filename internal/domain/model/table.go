package model

// LoadStats describes what happened while a table was read.
type LoadStats struct {
	RowsRead       int `json:"rows_read"`
	RowsRejected   int `json:"rows_rejected"`
	DuplicateRows  int `json:"duplicate_rows"`
	GenreConflicts int `json:"genre_conflicts"`
}

// Table is an immutable, loaded set of events. It is built once per session
// and shared by every request.
type Table struct {
	events []Event
	stats  LoadStats
}

// NewTable wraps events. The slice is copied so later changes by the caller
// do not leak into the table.
func NewTable(events []Event, stats LoadStats) *Table {
	cp := make([]Event, len(events))
	copy(cp, events)
	return &Table{events: cp, stats: stats}
}

// Events returns a copy of the rows in table order.
func (t *Table) Events() []Event {
	if t == nil {
		return []Event{}
	}
	cp := make([]Event, len(t.events))
	copy(cp, t.events)
	return cp
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.events)
}

// Stats returns load statistics.
func (t *Table) Stats() LoadStats {
	if t == nil {
		return LoadStats{}
	}
	return t.stats
}
