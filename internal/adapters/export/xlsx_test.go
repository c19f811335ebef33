package export_test

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"

	"github.com/okian/djtour/internal/adapters/export"
	"github.com/okian/djtour/internal/domain/types"
)

func TestXLSX(t *testing.T) {
	Convey("Given two dashboard rows", t, func() {
		rows := []types.Row{
			{Date: "2024-01-01", Entity: "Charlotte de Witte", EventType: "Festival", Venue: "Tomorrowland",
				City: "Boom", Country: "Belgium", Attendance: 60000, TicketPrice: 300, Timing: "past"},
			{Date: "2025-06-01", Entity: "Charlotte de Witte", EventType: "Club Night", Venue: "Berghain",
				City: "Berlin", Country: "Germany", Attendance: 1500, TicketPrice: 60, Timing: "future"},
		}

		Convey("When written to a workbook", func() {
			var buf bytes.Buffer
			err := export.NewXLSX(export.WithSheetName("Tour")).Write(&buf, rows)
			So(err, ShouldBeNil)

			f, err := excelize.OpenReader(&buf)
			So(err, ShouldBeNil)
			defer f.Close()

			got, err := f.GetRows("Tour")
			So(err, ShouldBeNil)

			Convey("Then the header and every row should be present", func() {
				So(got, ShouldHaveLength, 3)
				So(got[0], ShouldResemble, export.Columns)
				So(got[1][0], ShouldEqual, "2024-01-01")
				So(got[2][5], ShouldEqual, "Berghain")
				So(got[2][10], ShouldEqual, "1500")
				So(got[2][12], ShouldEqual, "future")
			})
		})
	})

	Convey("Given no rows", t, func() {
		var buf bytes.Buffer
		err := export.NewXLSX().Write(&buf, nil)

		Convey("Then a header-only workbook should be written", func() {
			So(err, ShouldBeNil)
			f, err := excelize.OpenReader(&buf)
			So(err, ShouldBeNil)
			got, _ := f.GetRows("Events")
			So(got, ShouldHaveLength, 1)
		})
	})
}
