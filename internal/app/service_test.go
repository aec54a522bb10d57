package app_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hepmix/ckstar/internal/adapters/feed"
	"github.com/hepmix/ckstar/internal/app"
	"github.com/hepmix/ckstar/internal/config"
	"github.com/hepmix/ckstar/internal/domain/model"
)

// testStream builds a JSONL stream of events that exercise both passes:
// each event holds one selectable pion, one selectable K-short, and its
// two daughter tracks.
func testStream(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	enc := json.NewEncoder(&sb)

	var trackID, v0ID int64 = 100, 500
	for i := 0; i < n; i++ {
		eventID := int64(i + 1)
		pos := model.Track{
			ID: trackID + 1, EventID: eventID,
			Pt: 0.8, Eta: 0.2, Phi: 1.1, Sign: +1,
			HasTPC: true, TPCCrossedRows: 100, TPCCrossedRowsOverFindable: 1.0,
			TPCClusters: 100, DCAxy: 0.2, DCAz: 0.2, TPCNSigmaPi: 1.0,
			GlobalTrackWoDCA: true,
		}
		neg := pos
		neg.ID = trackID + 2
		neg.Sign = -1
		pi := pos
		pi.ID = trackID + 3
		pi.Pt = 1.0
		pi.Eta = 0.1
		trackID += 3

		v0ID++
		ev := &model.Event{
			ID:       eventID,
			VertexZ:  1.0 + float64(i%3)*0.1, // all in one mixing bin
			Sel8:     true,
			CentFT0C: 20,
			Tracks:   []model.Track{pi, pos, neg},
			V0s: []model.V0Candidate{{
				ID: v0ID, EventID: eventID,
				PosTrackID: pos.ID, NegTrackID: neg.ID,
				Pt: 2.0, Eta: 0.2, Phi: 2.0,
				DCADaughters: 0.3, DCAToPV: 0.1, CosPA: 0.999, TransRadius: 5.0,
				QtArm: 0.12, Alpha: 0.3,
				MassK0Short: 0.497, RapidityK0Short: 0.2, DistOverTotMom: 10.0,
			}},
		}
		if err := enc.Encode(ev); err != nil {
			t.Fatal(err)
		}
	}
	return sb.String()
}

func runPipeline(t *testing.T, stream string) *app.Service {
	t.Helper()
	cfg := config.New()
	svc := app.New(cfg)
	r := feed.NewReader(strings.NewReader(stream), &feed.Filters{
		VertexZMax:  cfg.VertexZCut,
		TrackPtMin:  cfg.TrackPtMin,
		TrackEtaMax: cfg.TrackEtaMax,
		DCAxyMax:    cfg.TrackDCAxyMax,
		DCAzMax:     cfg.TrackDCAzMax,
	})
	if err := svc.Run(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestServiceRun(t *testing.T) {
	Convey("Given a stream of five signal events", t, func() {
		stream := testStream(t, 5)

		Convey("The same-event pass fills one entry per event", func() {
			svc := runPipeline(t, stream)
			So(svc.Events(), ShouldEqual, 5)
			So(svc.Accumulator().UnlikeSign.Entries(), ShouldEqual, 5)
		})

		Convey("The mixer pairs events within the shared bin", func() {
			svc := runPipeline(t, stream)
			// Events 2..5 each pair with every earlier buffered event:
			// 1+2+3+4 = 10 pairs, three track x V0 fills each.
			So(svc.Accumulator().Mixed.Entries(), ShouldEqual, 30)
		})

		Convey("Two identical runs accumulate identical contents", func() {
			first := runPipeline(t, stream)
			second := runPipeline(t, stream)

			So(second.Accumulator().UnlikeSign.NonEmpty(),
				ShouldResemble, first.Accumulator().UnlikeSign.NonEmpty())
			So(second.Accumulator().Mixed.NonEmpty(),
				ShouldResemble, first.Accumulator().Mixed.NonEmpty())
			So(second.Accumulator().VertexZ.Entries(),
				ShouldEqual, first.Accumulator().VertexZ.Entries())
		})
	})

	Convey("Given a cancelled context", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := app.New(config.New())
		r := feed.NewReader(strings.NewReader(testStream(t, 2)), nil)

		Convey("Run stops with the context error", func() {
			err := svc.Run(ctx, r)
			So(err, ShouldEqual, context.Canceled)
		})
	})
}
