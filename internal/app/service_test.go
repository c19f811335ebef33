package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/okian/djtour/internal/adapters/repository"
	service "github.com/okian/djtour/internal/app"
	"github.com/okian/djtour/internal/domain/model"
	"github.com/okian/djtour/internal/domain/tour"
	"github.com/okian/djtour/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func day(s string) time.Time {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ev(date, entity, genre, kind, venue, city, country string, lat, lon float64) model.Event {
	return model.Event{
		Date: day(date), EntityName: entity, Genre: genre, EventType: kind,
		EventName: kind + " featuring " + entity, VenueName: venue,
		City: city, Country: country, Latitude: lat, Longitude: lon,
		Attendance: 1000, TicketPrice: 100,
	}
}

func fixture() *model.Table {
	return model.NewTable([]model.Event{
		ev("2023-01-10", "A", "Techno", "Festival", "Awakenings", "Amsterdam", "Netherlands", 52.37, 4.9),
		ev("2023-03-05", "A", "Techno", "Club Night", "Berghain", "Berlin", "Germany", 52.51, 13.44),
		ev("2023-02-01", "A", "Techno", "Club Night", "Tresor", "Berlin", "Germany", 52.51, 13.42),
		ev("2023-02-15", "B", "House", "Festival", "Tomorrowland", "Boom", "Belgium", 51.09, 4.38),
		ev("2024-07-01", "B", "House", "Concert", "Berghain", "Berlin", "Germany", 52.51, 13.44),
	}, model.LoadStats{RowsRead: 6, RowsRejected: 1})
}

func started(opts ...service.Option) *service.Service {
	opts = append([]service.Option{service.WithStore(repository.NewStatic(fixture()))}, opts...)
	svc := service.New(opts...)
	So(svc.Start(context.Background()), ShouldBeNil)
	return svc
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a service without a store", t, func() {
		svc := service.New()

		Convey("Then starting should fail", func() {
			err := svc.Start(context.Background())
			So(errors.Is(err, repository.ErrLoad), ShouldBeTrue)
		})

		Convey("Then queries should report it is not started", func() {
			_, err := svc.Filters(context.Background())
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
		})
	})

	Convey("Given a started service", t, func() {
		svc := started()

		Convey("Then stats should describe the table", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, true)
			So(stats["rows"], ShouldEqual, 5)
			So(stats["entities"], ShouldEqual, 2)
			So(stats["minDate"], ShouldEqual, "2023-01-10")
			So(stats["maxDate"], ShouldEqual, "2024-07-01")
		})

		Convey("When stopped", func() {
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Filters(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := started()
		f, err := svc.Filters(context.Background())

		Convey("Then it should list entities and date bounds", func() {
			So(err, ShouldBeNil)
			So(f.Entities, ShouldResemble, []string{"A", "B"})
			So(f.MinDate, ShouldEqual, "2023-01-10")
			So(f.MaxDate, ShouldEqual, "2024-07-01")
		})
	})
}

func TestService_Summary(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := started(service.WithTopN(1))
		ctx := context.Background()

		Convey("When summarizing without bounds", func() {
			s, err := svc.Summary(ctx, service.Query{})

			Convey("Then the whole table should be used", func() {
				So(err, ShouldBeNil)
				So(s.Start, ShouldEqual, "2023-01-10")
				So(s.End, ShouldEqual, "2024-07-01")
				So(s.Stats.TotalEvents, ShouldEqual, 5)
				So(s.Stats.Cities, ShouldEqual, 3)
				So(s.Stats.Countries, ShouldEqual, 3)
			})

			Convey("Then the default top length should apply", func() {
				So(s.TopEntities, ShouldHaveLength, 1)
				So(s.TopEntities[0].Label, ShouldEqual, "A")
				So(s.TopEntities[0].Count, ShouldEqual, 3)
			})

			Convey("Then months should be in time order", func() {
				So(s.Months[0].Month, ShouldEqual, "2023-01")
				So(s.Months[len(s.Months)-1].Month, ShouldEqual, "2024-07")
			})
		})

		Convey("When filtering on 2023 for entity B", func() {
			s, err := svc.Summary(ctx, service.Query{
				Start: day("2023-01-01"), End: day("2023-12-31"), Entity: "B", Top: 5,
			})

			Convey("Then only B's 2023 event should count", func() {
				So(err, ShouldBeNil)
				So(s.Stats.TotalEvents, ShouldEqual, 1)
				So(s.Locations, ShouldHaveLength, 1)
				So(s.Locations[0].City, ShouldEqual, "Boom")
			})
		})

		Convey("When the range is inverted", func() {
			s, err := svc.Summary(ctx, service.Query{Start: day("2024-01-01"), End: day("2023-01-01")})

			Convey("Then every view should be empty", func() {
				So(err, ShouldBeNil)
				So(s.Stats.TotalEvents, ShouldEqual, 0)
				So(s.TopEntities, ShouldBeEmpty)
				So(s.Months, ShouldBeEmpty)
				So(s.Locations, ShouldBeEmpty)
			})
		})

		Convey("When asking for more entities than allowed", func() {
			svc := started(service.WithMaxTopN(1))
			s, err := svc.Summary(ctx, service.Query{Top: 50})

			Convey("Then the ranking should be capped", func() {
				So(err, ShouldBeNil)
				So(s.TopEntities, ShouldHaveLength, 1)
			})
		})
	})
}

func TestService_Tour(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := started(service.WithTourOptions(tour.WithMaxMarker(40), tour.WithMinMarker(4)))
		ctx := context.Background()

		Convey("When no entity is selected", func() {
			_, err := svc.Tour(ctx, service.Query{})

			Convey("Then it should be rejected", func() {
				So(errors.Is(err, service.ErrEntityRequired), ShouldBeTrue)
			})
		})

		Convey("When building A's tour", func() {
			tr, err := svc.Tour(ctx, service.Query{Entity: "A"})

			Convey("Then there should be one frame per event in date order", func() {
				So(err, ShouldBeNil)
				So(tr.Frames, ShouldHaveLength, 3)
				So(tr.Frames[0].Points, ShouldHaveLength, 1)
				So(tr.Frames[0].Points[0].City, ShouldEqual, "Amsterdam")
				So(tr.Frames[1].Points[1].Venue, ShouldEqual, "Tresor")
			})

			Convey("Then Berlin's count should grow with the prefix", func() {
				So(tr.Frames[1].Points[1].CityCount, ShouldEqual, 1)
				So(tr.Frames[2].Points[2].CityCount, ShouldEqual, 2)
				So(tr.Frames[2].Points[2].Size, ShouldAlmostEqual, math.Sqrt(800), 1e-9)
			})
		})

		Convey("When the entity has no events", func() {
			tr, err := svc.Tour(ctx, service.Query{Entity: "Nobody"})

			Convey("Then the frame list should be empty", func() {
				So(err, ShouldBeNil)
				So(tr.Frames, ShouldNotBeNil)
				So(tr.Frames, ShouldBeEmpty)
			})
		})
	})
}

func TestService_Events(t *testing.T) {
	Convey("Given a service whose clock reads 2023-03-05", t, func() {
		svc := started(service.WithClock(func() time.Time {
			return time.Date(2023, 3, 5, 18, 30, 0, 0, time.UTC)
		}))

		Convey("When listing A's events", func() {
			rows, err := svc.Events(context.Background(), service.Query{Entity: "A"})

			Convey("Then each row should be classified against that day", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 3)
				byDate := map[string]string{}
				for _, r := range rows {
					byDate[r.Date] = r.Timing
				}
				So(byDate["2023-01-10"], ShouldEqual, "past")
				So(byDate["2023-03-05"], ShouldEqual, "today")
			})
		})

		Convey("When listing events after the last date", func() {
			rows, err := svc.Events(context.Background(), service.Query{Start: day("2025-01-01")})

			Convey("Then no rows should come back", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldBeEmpty)
			})
		})
	})
}
