package selection_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hepmix/ckstar/internal/domain/model"
	"github.com/hepmix/ckstar/internal/domain/selection"
)

func goodDaughter(sign int) *model.Track {
	return &model.Track{
		Sign:                       sign,
		Eta:                        0.2,
		HasTPC:                     true,
		TPCCrossedRows:             100,
		TPCCrossedRowsOverFindable: 1.0,
		TPCClusters:                100,
		DCAxy:                      0.2,
		TPCNSigmaPi:                1.0,
	}
}

func TestDaughterCuts(t *testing.T) {
	Convey("Given the reference daughter cuts", t, func() {
		cuts := selection.DaughterCuts{
			EtaMax:         0.8,
			TPCClustersMin: 70,
			DCAMin:         0.06,
			PIDSigmaMax:    4.0,
		}

		Convey("A good daughter with matching sign passes", func() {
			So(cuts.Accept(goodDaughter(+1), +1), ShouldBeTrue)
			So(cuts.Accept(goodDaughter(-1), -1), ShouldBeTrue)
		})

		Convey("Only an explicit sign mismatch rejects", func() {
			So(cuts.Accept(goodDaughter(-1), +1), ShouldBeFalse)
			So(cuts.Accept(goodDaughter(+1), -1), ShouldBeFalse)

			unset := goodDaughter(0)
			So(cuts.Accept(unset, +1), ShouldBeTrue)
			So(cuts.Accept(unset, -1), ShouldBeTrue)
		})

		Convey("Missing TPC signal rejects", func() {
			tr := goodDaughter(+1)
			tr.HasTPC = false
			So(cuts.Accept(tr, +1), ShouldBeFalse)
		})

		Convey("Crossed rows below 70 reject", func() {
			tr := goodDaughter(+1)
			tr.TPCCrossedRows = 69
			So(cuts.Accept(tr, +1), ShouldBeFalse)
		})

		Convey("Rows-over-findable below 0.8 rejects", func() {
			tr := goodDaughter(+1)
			tr.TPCCrossedRowsOverFindable = 0.79
			So(cuts.Accept(tr, +1), ShouldBeFalse)
		})

		Convey("Eta beyond the window rejects", func() {
			tr := goodDaughter(+1)
			tr.Eta = 0.9
			So(cuts.Accept(tr, +1), ShouldBeFalse)
		})

		Convey("Too few TPC clusters reject", func() {
			tr := goodDaughter(+1)
			tr.TPCClusters = 69
			So(cuts.Accept(tr, +1), ShouldBeFalse)
		})

		Convey("A DCAxy below the threshold rejects, as in the reference", func() {
			tr := goodDaughter(+1)
			tr.DCAxy = 0.05
			So(cuts.Accept(tr, +1), ShouldBeFalse)

			tr.DCAxy = -0.05
			So(cuts.Accept(tr, +1), ShouldBeFalse)

			tr.DCAxy = 0.07
			So(cuts.Accept(tr, +1), ShouldBeTrue)
		})

		Convey("PID significance beyond the cut rejects", func() {
			tr := goodDaughter(+1)
			tr.TPCNSigmaPi = 4.5
			So(cuts.Accept(tr, +1), ShouldBeFalse)
		})
	})
}
