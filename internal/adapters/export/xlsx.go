// Package export renders dashboard rows as downloadable files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/okian/djtour/internal/domain/types"
)

// ContentTypeXLSX is the MIME type of the spreadsheet output.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Columns is the header row of the exported sheet.
var Columns = []string{
	"Date", "DJ", "Genre", "Event Type", "Event Name", "Venue", "City", "Country",
	"Latitude", "Longitude", "Attendance", "Ticket Price", "Timing",
}

var columnWidths = map[string]float64{"A": 12, "B": 20, "E": 36, "F": 22}

// XLSX writes rows to a single-sheet workbook.
type XLSX struct {
	sheet       string
	headerColor string
}

// Option configures the XLSX exporter.
type Option func(*XLSX)

// WithSheetName sets the worksheet name.
func WithSheetName(name string) Option {
	return func(x *XLSX) {
		if name != "" {
			x.sheet = name
		}
	}
}

// NewXLSX creates an exporter writing to a sheet named "Events".
func NewXLSX(opts ...Option) *XLSX {
	x := &XLSX{sheet: "Events", headerColor: "1F4E79"}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Write renders rows with a frozen, filterable header line.
func (x *XLSX) Write(w io.Writer, rows []types.Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", x.sheet); err != nil {
		return fmt.Errorf("export.xlsx: rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{x.headerColor}},
	})
	if err != nil {
		return fmt.Errorf("export.xlsx: header style: %w", err)
	}
	if err := f.SetSheetRow(x.sheet, "A1", &Columns); err != nil {
		return fmt.Errorf("export.xlsx: header: %w", err)
	}
	last, _ := excelize.ColumnNumberToName(len(Columns))
	if err := f.SetCellStyle(x.sheet, "A1", last+"1", header); err != nil {
		return fmt.Errorf("export.xlsx: header style: %w", err)
	}
	for col, width := range columnWidths {
		if err := f.SetColWidth(x.sheet, col, col, width); err != nil {
			return fmt.Errorf("export.xlsx: width: %w", err)
		}
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			r.Date, r.Entity, r.Genre, r.EventType, r.EventName, r.Venue, r.City, r.Country,
			r.Latitude, r.Longitude, r.Attendance, r.TicketPrice, r.Timing,
		}
		if err := f.SetSheetRow(x.sheet, cell, &values); err != nil {
			return fmt.Errorf("export.xlsx: row %d: %w", i+1, err)
		}
	}

	if err := f.SetPanes(x.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("export.xlsx: panes: %w", err)
	}
	if err := f.AutoFilter(x.sheet, fmt.Sprintf("A1:%s%d", last, len(rows)+1), nil); err != nil {
		return fmt.Errorf("export.xlsx: filter: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.xlsx: write: %w", err)
	}
	return nil
}
