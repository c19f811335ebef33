package repository_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/okian/djtour/internal/adapters/repository"
	"github.com/okian/djtour/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

const header = "date,dj_name,event_type,venue,city,country,latitude,longitude,attendance,ticket_price,genre\n"

func load(body string) (*model.Table, error) {
	return repository.Load(context.Background(), strings.NewReader(body), nil)
}

func TestLoad(t *testing.T) {
	Convey("Given a well-formed file", t, func() {
		body := header +
			"2024-01-01,Peggy Gou,Festival,Tomorrowland,Boom,Belgium,51.09,4.38,60000,300,House\n" +
			"2024-02-01,Peggy Gou,Club Night,Berghain,Berlin,Germany,52.51,13.44,1500,60,House\n"

		Convey("When loading", func() {
			table, err := load(body)

			Convey("Then every row should be kept", func() {
				So(err, ShouldBeNil)
				So(table.Len(), ShouldEqual, 2)
				So(table.Stats().RowsRead, ShouldEqual, 2)
				So(table.Stats().RowsRejected, ShouldEqual, 0)
			})

			Convey("Then fields should be parsed", func() {
				e := table.Events()[0]
				So(e.EntityName, ShouldEqual, "Peggy Gou")
				So(e.Date.Format(model.DateLayout), ShouldEqual, "2024-01-01")
				So(e.Latitude, ShouldAlmostEqual, 51.09)
				So(e.Attendance, ShouldEqual, 60000)
				So(e.TicketPrice, ShouldEqual, 300)
				So(e.Genre, ShouldEqual, "House")
			})

			Convey("Then a missing event name should be derived", func() {
				So(table.Events()[1].EventName, ShouldEqual, "Club Night featuring Peggy Gou")
			})
		})
	})

	Convey("Given a file with malformed rows", t, func() {
		body := header +
			"2024-01-01,A,Festival,V1,C,X,1,1,100,10,\n" +
			"not-a-date,A,Festival,V1,C,X,1,1,100,10,\n" +
			"2024-01-02,,Festival,V1,C,X,1,1,100,10,\n" +
			"2024-01-03,A,Festival,V1,C,X,1,1,0,10,\n" +
			"2024-01-04,A,Festival,V1,C,X,1,1,100,-5,\n" +
			"2024-01-05,A,Festival,V1,C,X,95,1,100,10,\n" +
			"2024-01-06,A,Festival\n"

		Convey("When loading", func() {
			table, err := load(body)

			Convey("Then bad rows should be rejected and the rest kept", func() {
				So(err, ShouldBeNil)
				So(table.Len(), ShouldEqual, 1)
				So(table.Stats().RowsRead, ShouldEqual, 7)
				So(table.Stats().RowsRejected, ShouldEqual, 6)
			})
		})
	})

	Convey("Given duplicate keys and aliased headers", t, func() {
		body := "entity_name,date,venue_name,event_type,city,country,latitude,longitude,attendance,ticket_price\n" +
			"A,2024-01-01,V1,Festival,C,X,1,1,100,10\n" +
			"A,2024-01-01,V1,Festival,C,X,1,1,999,99\n" +
			"A,2024-01-01,V2,Festival,C,X,1,1,100,10\n"

		Convey("When loading", func() {
			table, err := load(body)

			Convey("Then the first occurrence should win", func() {
				So(err, ShouldBeNil)
				So(table.Len(), ShouldEqual, 2)
				So(table.Stats().DuplicateRows, ShouldEqual, 1)
				So(table.Events()[0].Attendance, ShouldEqual, 100)
			})
		})
	})

	Convey("Given an entity listed with two genres", t, func() {
		body := header +
			"2024-01-01,A,Festival,V1,C,X,1,1,100,10,Techno\n" +
			"2024-01-02,A,Festival,V1,C,X,1,1,100,10,House\n"

		Convey("When loading", func() {
			table, err := load(body)

			Convey("Then the first genre should be kept", func() {
				So(err, ShouldBeNil)
				So(table.Stats().GenreConflicts, ShouldEqual, 1)
				for _, e := range table.Events() {
					So(e.Genre, ShouldEqual, "Techno")
				}
			})
		})
	})

	Convey("Given a header without required columns", t, func() {
		_, err := load("date,dj_name\n2024-01-01,A\n")

		Convey("Then loading should fail", func() {
			So(errors.Is(err, repository.ErrMissingColumns), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "ticket_price")
		})
	})

	Convey("Given an empty file", t, func() {
		_, err := load("")

		Convey("Then loading should fail", func() {
			So(errors.Is(err, repository.ErrMissingColumns), ShouldBeTrue)
		})
	})

	Convey("Given only a header", t, func() {
		table, err := load(header)

		Convey("Then the table should be empty", func() {
			So(err, ShouldBeNil)
			So(table.Len(), ShouldEqual, 0)
			So(table.Events(), ShouldBeEmpty)
		})
	})
}

func TestWriteCSV(t *testing.T) {
	Convey("Given events written to CSV", t, func() {
		d, _ := model.ParseDate("2023-05-06")
		events := []model.Event{{
			Date: d, EntityName: "Amelie Lens", Genre: "Techno", EventType: "Festival",
			EventName: "Festival featuring Amelie Lens", VenueName: "Awakenings",
			City: "Amsterdam", Country: "Netherlands", Latitude: 52.37, Longitude: 4.9,
			Attendance: 35000, TicketPrice: 120,
		}}
		var buf bytes.Buffer
		So(repository.WriteCSV(&buf, events), ShouldBeNil)

		Convey("Then the header should come first", func() {
			first, _, _ := strings.Cut(buf.String(), "\n")
			So(first, ShouldEqual, strings.Join(repository.Header, ","))
		})

		Convey("Then loading the output should give the same events", func() {
			table, err := load(buf.String())
			So(err, ShouldBeNil)
			So(table.Events(), ShouldResemble, events)
		})
	})
}

func TestCSVStore(t *testing.T) {
	Convey("Given a store with an in-memory opener", t, func() {
		opens := 0
		store := repository.NewCSVStore("events.csv", repository.WithOpener(func() (io.ReadCloser, error) {
			opens++
			return io.NopCloser(strings.NewReader(header + "2024-01-01,A,Festival,V1,C,X,1,1,100,10,\n")), nil
		}))

		Convey("When the table is requested twice", func() {
			a, errA := store.Table(context.Background())
			b, errB := store.Table(context.Background())

			Convey("Then the file should be read once", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(opens, ShouldEqual, 1)
				So(a, ShouldEqual, b)
				So(a.Len(), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a store whose file cannot be opened", t, func() {
		store := repository.NewCSVStore("missing.csv", repository.WithOpener(func() (io.ReadCloser, error) {
			return nil, errors.New("no such file")
		}))

		Convey("Then loading should fail with ErrLoad", func() {
			_, err := store.Table(context.Background())
			So(errors.Is(err, repository.ErrLoad), ShouldBeTrue)
		})
	})

	Convey("Given a static store", t, func() {
		table := model.NewTable(nil, model.LoadStats{})
		got, err := repository.NewStatic(table).Table(context.Background())

		Convey("Then it should return the wrapped table", func() {
			So(err, ShouldBeNil)
			So(got, ShouldEqual, table)
		})
	})
}
