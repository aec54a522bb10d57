package selection_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hepmix/ckstar/internal/domain/model"
	"github.com/hepmix/ckstar/internal/domain/selection"
)

func referenceV0Cuts() selection.V0Cuts {
	return selection.V0Cuts{
		PtMin:       0.0,
		DCADaughMax: 1.0,
		CPAMin:      0.985,
		TransRadMin: 0.5,
		TransRadMax: 200.0,
		LifetimeMax: 15.0,
		DCAToPVMax:  0.3,
		MassSigma:   4.0,
		MassWidth:   0.005,
	}
}

func goodV0() *model.V0Candidate {
	return &model.V0Candidate{
		Pt:              2.0,
		DCAToPV:         0.1,
		RapidityK0Short: 0.2,
		QtArm:           0.12,
		Alpha:           0.3,
		DCADaughters:    0.3,
		CosPA:           0.999,
		TransRadius:     5.0,
		MassK0Short:     0.497,
		DistOverTotMom:  10.0,
	}
}

type qaRecorder struct {
	calls int
	mass  float64
}

func (r *qaRecorder) FillV0QA(mass, pt, act, daughterDCA, lifetime, cosPA float64) {
	r.calls++
	r.mass = mass
}

func TestV0Selector(t *testing.T) {
	Convey("Given the reference topological cuts", t, func() {
		sel := selection.NewV0Selector(referenceV0Cuts())

		Convey("A good candidate passes", func() {
			So(sel.Accept(goodV0(), 20), ShouldBeTrue)
		})

		Convey("PV DCA beyond the cut rejects", func() {
			v0 := goodV0()
			v0.DCAToPV = 0.4
			So(sel.Accept(v0, 20), ShouldBeFalse)
			v0.DCAToPV = -0.4
			So(sel.Accept(v0, 20), ShouldBeFalse)
		})

		Convey("Rapidity beyond 0.5 rejects", func() {
			v0 := goodV0()
			v0.RapidityK0Short = 0.6
			So(sel.Accept(v0, 20), ShouldBeFalse)
		})

		Convey("An Armenteros ratio below 0.2 rejects", func() {
			v0 := goodV0()
			v0.QtArm = 0.05
			v0.Alpha = 0.3 // ratio 0.167
			So(sel.Accept(v0, 20), ShouldBeFalse)
		})

		Convey("Daughter DCA beyond the cut rejects", func() {
			v0 := goodV0()
			v0.DCADaughters = 1.1
			So(sel.Accept(v0, 20), ShouldBeFalse)
		})

		Convey("A pointing-angle cosine below the cut rejects", func() {
			v0 := goodV0()
			v0.CosPA = 0.98
			So(sel.Accept(v0, 20), ShouldBeFalse)
		})

		Convey("A decay radius outside the window rejects", func() {
			v0 := goodV0()
			v0.TransRadius = 0.4
			So(sel.Accept(v0, 20), ShouldBeFalse)
			v0.TransRadius = 250
			So(sel.Accept(v0, 20), ShouldBeFalse)
		})

		Convey("A lifetime proxy beyond the cut rejects", func() {
			v0 := goodV0()
			v0.DistOverTotMom = 40 // 40 * 0.497611 > 15
			So(sel.Accept(v0, 20), ShouldBeFalse)
		})

		Convey("A mass outside the window rejects regardless of topology", func() {
			// Window is 0.497 +- 4*0.005 = [0.477, 0.517].
			v0 := goodV0()
			v0.MassK0Short = 0.476
			So(sel.Accept(v0, 20), ShouldBeFalse)
			v0.MassK0Short = 0.518
			So(sel.Accept(v0, 20), ShouldBeFalse)
			v0.MassK0Short = 0.516
			So(sel.Accept(v0, 20), ShouldBeTrue)
		})
	})

	Convey("Given an attached diagnostics sink", t, func() {
		rec := &qaRecorder{}
		sel := selection.NewV0Selector(referenceV0Cuts(), selection.WithDiagnostics(rec))

		Convey("Accepted candidates are recorded", func() {
			So(sel.Accept(goodV0(), 20), ShouldBeTrue)
			So(rec.calls, ShouldEqual, 1)
			So(rec.mass, ShouldEqual, 0.497)
		})

		Convey("Rejected candidates are not recorded", func() {
			v0 := goodV0()
			v0.CosPA = 0.9
			So(sel.Accept(v0, 20), ShouldBeFalse)
			So(rec.calls, ShouldEqual, 0)
		})
	})
}
