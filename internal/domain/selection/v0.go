package selection

import (
	"math"

	"github.com/hepmix/ckstar/internal/domain/model"
	"github.com/hepmix/ckstar/internal/domain/pdg"
)

// The mass window is centered on this value, not the full-precision PDG
// mass, matching the reference analysis.
const ks0WindowCenter = 0.497

// Armenteros qt/alpha floor separating K0s from Lambda topologies.
const armenterosRatioMin = 0.2

// Rapidity acceptance of the K-short hypothesis.
const ks0RapidityMax = 0.5

// V0Cuts are the topological and kinematic thresholds of the V0 selector.
type V0Cuts struct {
	PtMin       float64
	DCADaughMax float64
	CPAMin      float64
	TransRadMin float64
	TransRadMax float64
	LifetimeMax float64
	DCAToPVMax  float64
	MassSigma   float64
	MassWidth   float64
}

// V0Diagnostics receives topology distributions of accepted candidates.
type V0Diagnostics interface {
	FillV0QA(mass, pt, act, daughterDCA, lifetime, cosPA float64)
}

// V0Option applies a configuration option to the V0Selector.
type V0Option func(*V0Selector)

// WithDiagnostics attaches a QA sink recording accepted candidates.
func WithDiagnostics(d V0Diagnostics) V0Option {
	return func(s *V0Selector) { s.diag = d }
}

// V0Selector accepts or rejects a V0 as a K-short candidate. Cuts are
// evaluated sequentially and the first failure rejects.
type V0Selector struct {
	cuts V0Cuts
	diag V0Diagnostics
}

// NewV0Selector creates a selector with the given cuts.
func NewV0Selector(cuts V0Cuts, opts ...V0Option) *V0Selector {
	s := &V0Selector{cuts: cuts}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Accept reports whether v0 passes the K-short selection, recording
// diagnostics on acceptance when a sink is attached. act is the event
// activity, used only as a diagnostic axis.
func (s *V0Selector) Accept(v0 *model.V0Candidate, act float64) bool {
	if math.Abs(v0.DCAToPV) > s.cuts.DCAToPVMax {
		return false
	}
	if math.Abs(v0.RapidityK0Short) > ks0RapidityMax {
		return false
	}
	if v0.QtArm/v0.Alpha < armenterosRatioMin {
		return false
	}
	if v0.Pt < s.cuts.PtMin {
		return false
	}
	if v0.DCADaughters > s.cuts.DCADaughMax {
		return false
	}
	if v0.CosPA < s.cuts.CPAMin {
		return false
	}
	if v0.TransRadius < s.cuts.TransRadMin || v0.TransRadius > s.cuts.TransRadMax {
		return false
	}

	lifetime := v0.DistOverTotMom * pdg.K0ShortMass
	window := s.cuts.MassWidth * s.cuts.MassSigma
	if math.Abs(lifetime) > s.cuts.LifetimeMax ||
		v0.MassK0Short < ks0WindowCenter-window ||
		v0.MassK0Short > ks0WindowCenter+window {
		return false
	}

	if s.diag != nil {
		s.diag.FillV0QA(v0.MassK0Short, v0.Pt, act, v0.DCADaughters, lifetime, v0.CosPA)
	}
	return true
}
