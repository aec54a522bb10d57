package selection_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hepmix/ckstar/internal/domain/model"
	"github.com/hepmix/ckstar/internal/domain/selection"
)

func TestTrackCuts(t *testing.T) {
	Convey("Given the manual DCA policy", t, func() {
		cuts := selection.TrackCuts{
			ManualDCA:      true,
			ITSClustersMin: 0,
			DCAxyMax:       2.0,
			DCAzMax:        2.0,
		}

		Convey("A global-without-DCA track passes on the flag alone", func() {
			tr := &model.Track{GlobalTrackWoDCA: true, DCAxy: 5, DCAz: 5}
			So(cuts.Accept(tr), ShouldBeTrue)
		})

		Convey("A PV contributor passes", func() {
			tr := &model.Track{PVContributor: true, DCAxy: 5, DCAz: 5}
			So(cuts.Accept(tr), ShouldBeTrue)
		})

		Convey("A tight DCAxy passes even with everything else failing", func() {
			tr := &model.Track{DCAxy: 1.5, DCAz: 5}
			So(cuts.Accept(tr), ShouldBeTrue)
		})

		Convey("ITS clusters above the minimum pass", func() {
			tr := &model.Track{ITSClusters: 3, DCAxy: 5, DCAz: 5}
			So(cuts.Accept(tr), ShouldBeTrue)
		})

		Convey("A track failing every alternative is rejected", func() {
			tr := &model.Track{DCAxy: 5, DCAz: 5, ITSClusters: 0}
			So(cuts.Accept(tr), ShouldBeFalse)
		})
	})

	Convey("Given the custom DCA policy", t, func() {
		cuts := selection.TrackCuts{CustomDCA: true, ITSClustersMin: 2}

		Convey("Global tracks pass", func() {
			So(cuts.Accept(&model.Track{GlobalTrack: true}), ShouldBeTrue)
		})

		Convey("Non-global non-contributor tracks need ITS clusters", func() {
			So(cuts.Accept(&model.Track{ITSClusters: 3}), ShouldBeTrue)
			So(cuts.Accept(&model.Track{ITSClusters: 2}), ShouldBeFalse)
		})
	})

	Convey("Given both policies enabled", t, func() {
		cuts := selection.TrackCuts{
			CustomDCA: true,
			ManualDCA: true,
			DCAxyMax:  2.0,
			DCAzMax:   2.0,
		}

		Convey("Both are applied as independent necessary conditions", func() {
			// Passes manual through the DCA window but fails custom.
			tr := &model.Track{DCAxy: 0.1, DCAz: 0.1}
			So(cuts.Accept(tr), ShouldBeFalse)

			// A global track passes both.
			tr = &model.Track{GlobalTrack: true, GlobalTrackWoDCA: true}
			So(cuts.Accept(tr), ShouldBeTrue)
		})
	})

	Convey("Given both policies disabled, everything passes", t, func() {
		So(selection.TrackCuts{}.Accept(&model.Track{}), ShouldBeTrue)
	})
}
