package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/djtour/internal/config"
	"github.com/okian/djtour/internal/domain/types"
	"github.com/okian/djtour/internal/synth"
	"github.com/okian/djtour/pkg/logger"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	events, err := synth.New(synth.WithSeed(11)).Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "dj_events.csv")
	if err := synth.WriteFile(path, events); err != nil {
		t.Fatal(err)
	}
	return path
}

func get(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return w
}

func TestApplication(t *testing.T) {
	convey.Convey("Given a generated dataset and default configuration", t, func() {
		ctx := context.Background()
		cfg := config.New()
		cfg.DataFile = writeDataset(t)

		svc := newService(cfg, logger.Nop())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()
		mux := newMux(ctx, svc, logger.Nop())

		convey.Convey("Then the summary should cover all 200 rows", func() {
			w := get(mux, "/api/summary")
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			var s types.Summary
			convey.So(json.Unmarshal(w.Body.Bytes(), &s), convey.ShouldBeNil)
			convey.So(s.Stats.TotalEvents, convey.ShouldEqual, 200)
			convey.So(s.TopEntities, convey.ShouldHaveLength, cfg.TopN)
			convey.So(s.TopEntities[0].Count, convey.ShouldBeGreaterThanOrEqualTo, synth.Roster[0].Events)
		})

		convey.Convey("Then a tour should have one frame per event", func() {
			rows := get(mux, "/api/events?entity=Amelie%20Lens")
			var events []types.Row
			convey.So(json.Unmarshal(rows.Body.Bytes(), &events), convey.ShouldBeNil)

			w := get(mux, "/api/tour?entity=Amelie%20Lens")
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			var tr types.Tour
			convey.So(json.Unmarshal(w.Body.Bytes(), &tr), convey.ShouldBeNil)
			convey.So(tr.Frames, convey.ShouldHaveLength, len(events))
		})

		convey.Convey("Then the API reference should be mounted", func() {
			convey.So(get(mux, "/openapi.yaml").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(get(mux, "/api-docs").Code, convey.ShouldEqual, http.StatusOK)
		})

		convey.Convey("Then system metrics should update without panicking", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})
	})

	convey.Convey("Given a missing data file", t, func() {
		cfg := config.New()
		cfg.DataFile = filepath.Join(os.TempDir(), "djtour-does-not-exist.csv")

		convey.Convey("Then the service should refuse to start", func() {
			err := newService(cfg, logger.Nop()).Start(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestSystemMetricsUpdater(t *testing.T) {
	convey.Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		convey.Convey("Then the updater should return", func() {
			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx)
				close(done)
			}()
			<-done
		})
	})
}
