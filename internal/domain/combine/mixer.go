package combine

import (
	"math"

	"go-hep.org/x/hep/fmom"

	"github.com/hepmix/ckstar/internal/domain/activity"
	"github.com/hepmix/ckstar/internal/domain/model"
	"github.com/hepmix/ckstar/internal/hist"
	"github.com/hepmix/ckstar/pkg/metrics"
)

// binKey is the discretized (vertex-z, activity) similarity class.
// Only events in the same class are mixed.
type binKey struct {
	iz   int
	iact int
}

// Mixer estimates the combinatorial background by pairing each incoming
// event with recent events of the same similarity class. Per class it
// retains a FIFO window of at most depth events; an incoming event is
// combined with every buffered partner, tracks from the incoming event
// against V0s from the partner.
type Mixer struct {
	sel   Selectors
	est   activity.Estimator
	acc   *hist.Set
	met   *metrics.Manager
	depth int

	zAxis   hist.Axis
	actAxis hist.Axis

	buffers map[binKey][]*model.Event
}

// MixerOption applies a configuration option to the Mixer.
type MixerOption func(*Mixer)

// WithDepth sets the number of partner events retained per similarity
// class. Values below one are ignored.
func WithDepth(depth int) MixerOption {
	return func(m *Mixer) {
		if depth >= 1 {
			m.depth = depth
		}
	}
}

// WithVertexZAxis sets the vertex-z binning of the similarity classes.
func WithVertexZAxis(a hist.Axis) MixerOption {
	return func(m *Mixer) { m.zAxis = a }
}

// WithActivityAxis sets the activity binning of the similarity classes.
func WithActivityAxis(a hist.Axis) MixerOption {
	return func(m *Mixer) { m.actAxis = a }
}

// NewMixer creates the event-mixing combiner.
func NewMixer(sel Selectors, est activity.Estimator, acc *hist.Set, met *metrics.Manager, opts ...MixerOption) *Mixer {
	if met == nil {
		met = metrics.Nop()
	}
	m := &Mixer{
		sel:     sel,
		est:     est,
		acc:     acc,
		met:     met,
		depth:   5,
		zAxis:   hist.Axis{Bins: 20, Min: -10, Max: 10},
		actAxis: hist.Axis{Bins: 20, Min: 0, Max: 100},
		buffers: make(map[binKey][]*model.Event),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Process mixes ev with the buffered events of its similarity class and
// then buffers ev itself, evicting the oldest partner beyond the depth.
// Events falling outside the class axes are not mixed at all.
func (m *Mixer) Process(ev *model.Event) {
	key, ok := m.key(ev)
	if !ok {
		return
	}

	for _, partner := range m.buffers[key] {
		m.combine(ev, partner)
	}

	buf := append(m.buffers[key], ev)
	if len(buf) > m.depth {
		buf = buf[1:]
	}
	m.buffers[key] = buf
}

func (m *Mixer) key(ev *model.Event) (binKey, bool) {
	iz, ok := m.zAxis.Index(ev.VertexZ)
	if !ok {
		return binKey{}, false
	}
	iact, ok := m.actAxis.Index(m.est.Estimate(ev))
	if !ok {
		return binKey{}, false
	}
	return binKey{iz: iz, iact: iact}, true
}

// combine crosses the tracks of a with the V0 candidates of b. The
// orientation is fixed; pairs are never symmetrized. Activity is taken
// from a, the first event of the pair.
func (m *Mixer) combine(a, b *model.Event) {
	if !a.Sel8 || !b.Sel8 {
		return
	}
	m.met.MixedPair()

	act := m.est.Estimate(a)
	idx := model.IndexTracks(b)

	for i := range a.Tracks {
		t := &a.Tracks[i]
		if !m.sel.Track.Accept(t) {
			continue
		}
		if !m.sel.PID.AcceptPion(t) {
			continue
		}

		for j := range b.V0s {
			v0 := &b.V0s[j]
			if !m.sel.V0.Accept(v0, act) {
				continue
			}
			if !acceptDaughters(m.sel.Daughter, idx, v0) {
				continue
			}
			// Cannot collide across distinct events; kept for symmetry
			// with the same-event pass.
			if t.ID == v0.PosTrackID || t.ID == v0.NegTrackID {
				continue
			}

			pi := pionP4(t)
			ks := kshortP4(v0)
			sum := fmom.Add(&pi, &ks)
			if math.Abs(sum.Rapidity()) < pairRapidityMax {
				m.acc.FillMixed(act, sum.Pt(), sum.M())
				m.met.MixedFill()
			}
		}
	}
}
