// Package hist owns the histogram state accumulated by the combiners.
// The main spectra are sparse (activity, pt, mass) counters; diagnostics
// are hbook 1D histograms gated by the QA toggles.
package hist

import "go-hep.org/x/hep/hbook"

// Set is the write-only accumulator handed to the combiners. It is not
// safe for concurrent fills; the pipeline is single-threaded so that two
// runs over the same input produce bitwise-identical contents.
type Set struct {
	qaTrack bool // both before and after toggles set
	qaV0    bool

	// Resonance spectra.
	UnlikeSign *H3
	Mixed      *H3

	// Event diagnostics, always on.
	VertexZ  *hbook.H1D
	Activity *hbook.H1D

	// Track diagnostics before selection.
	NSigmaTPCBefore *hbook.H1D
	NSigmaTOFBefore *hbook.H1D

	// Track diagnostics after selection.
	EtaAfter       *hbook.H1D
	DCAxyAfter     *hbook.H1D
	DCAzAfter      *hbook.H1D
	NSigmaTPCAfter *hbook.H1D
	NSigmaTOFAfter *hbook.H1D

	// V0 diagnostics on accepted candidates.
	MassPtActivity *H3
	DaughterDCA    *hbook.H1D
	Lifetime       *hbook.H1D
	CosPA          *hbook.H1D
}

// Option applies a configuration option to the Set.
type Option func(*setConfig)

type setConfig struct {
	nBins    int
	qaBefore bool
	qaAfter  bool
	qaV0     bool
}

// WithNBins sets the bin count of the vertex-z diagnostic.
func WithNBins(n int) Option {
	return func(c *setConfig) {
		if n > 0 {
			c.nBins = n
		}
	}
}

// WithTrackQA enables the before/after track diagnostics. Both toggles
// must be set for the group to be recorded, as in the reference analysis.
func WithTrackQA(before, after bool) Option {
	return func(c *setConfig) {
		c.qaBefore = before
		c.qaAfter = after
	}
}

// WithV0QA enables the V0 topology diagnostics.
func WithV0QA(enabled bool) Option {
	return func(c *setConfig) { c.qaV0 = enabled }
}

// NewSet allocates the accumulator with the reference axis definitions.
func NewSet(opts ...Option) *Set {
	cfg := setConfig{nBins: 100}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Set{
		qaTrack: cfg.qaBefore && cfg.qaAfter,
		qaV0:    cfg.qaV0,

		UnlikeSign: NewH3(
			Axis{Bins: 200, Min: 0, Max: 200},  // activity
			Axis{Bins: 200, Min: 0, Max: 20},   // pt
			Axis{Bins: 90, Min: 0.6, Max: 1.5}, // invariant mass
		),
		Mixed: NewH3(
			Axis{Bins: 200, Min: 0, Max: 200},
			Axis{Bins: 200, Min: 0, Max: 20},
			Axis{Bins: 90, Min: 0.6, Max: 1.5},
		),

		VertexZ:  hbook.NewH1D(cfg.nBins, -10, 10),
		Activity: hbook.NewH1D(200, 0, 200),
	}

	if s.qaTrack {
		s.NSigmaTPCBefore = hbook.NewH1D(200, -10, 10)
		s.NSigmaTOFBefore = hbook.NewH1D(200, -10, 10)
		s.EtaAfter = hbook.NewH1D(200, -1, 1)
		s.DCAxyAfter = hbook.NewH1D(200, -10, 10)
		s.DCAzAfter = hbook.NewH1D(200, -10, 10)
		s.NSigmaTPCAfter = hbook.NewH1D(200, -10, 10)
		s.NSigmaTOFAfter = hbook.NewH1D(200, -10, 10)
	}

	if s.qaV0 {
		s.MassPtActivity = NewH3(
			Axis{Bins: 200, Min: 0.45, Max: 0.55},
			Axis{Bins: 200, Min: 0, Max: 20},
			Axis{Bins: 100, Min: 0, Max: 100},
		)
		s.DaughterDCA = hbook.NewH1D(50, 0, 5)
		s.Lifetime = hbook.NewH1D(100, 0, 50)
		s.CosPA = hbook.NewH1D(100, 0.95, 1)
	}

	return s
}

// FillEventQA records the vertex-z position and activity of an event
// entering the same-event pass.
func (s *Set) FillEventQA(vertexZ, activity float64) {
	s.VertexZ.Fill(vertexZ, 1)
	s.Activity.Fill(activity, 1)
}

// FillTrackBefore records pre-selection PID significances.
func (s *Set) FillTrackBefore(tpcNSigma, tofNSigma float64) {
	if !s.qaTrack {
		return
	}
	s.NSigmaTPCBefore.Fill(tpcNSigma, 1)
	s.NSigmaTOFBefore.Fill(tofNSigma, 1)
}

// FillTrackAfter records kinematics and PID of an accepted pion track.
func (s *Set) FillTrackAfter(eta, dcaXY, dcaZ, tpcNSigma, tofNSigma float64) {
	if !s.qaTrack {
		return
	}
	s.EtaAfter.Fill(eta, 1)
	s.DCAxyAfter.Fill(dcaXY, 1)
	s.DCAzAfter.Fill(dcaZ, 1)
	s.NSigmaTPCAfter.Fill(tpcNSigma, 1)
	s.NSigmaTOFAfter.Fill(tofNSigma, 1)
}

// FillV0QA records topology diagnostics of an accepted V0.
func (s *Set) FillV0QA(mass, pt, act, daughterDCA, lifetime, cosPA float64) {
	if !s.qaV0 {
		return
	}
	s.Lifetime.Fill(lifetime, 1)
	s.MassPtActivity.Fill(mass, pt, act, 1)
	s.DaughterDCA.Fill(daughterDCA, 1)
	s.CosPA.Fill(cosPA, 1)
}

// FillUnlikeSign records a same-event pair.
func (s *Set) FillUnlikeSign(act, pt, mass float64) {
	s.UnlikeSign.Fill(act, pt, mass, 1)
}

// FillMixed records a mixed-event pair.
func (s *Set) FillMixed(act, pt, mass float64) {
	s.Mixed.Fill(act, pt, mass, 1)
}

// TrackQAEnabled reports whether the before/after track group is recorded.
func (s *Set) TrackQAEnabled() bool { return s.qaTrack }

// V0QAEnabled reports whether the V0 topology group is recorded.
func (s *Set) V0QAEnabled() bool { return s.qaV0 }
