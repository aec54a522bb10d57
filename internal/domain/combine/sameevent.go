package combine

import (
	"math"

	"go-hep.org/x/hep/fmom"

	"github.com/hepmix/ckstar/internal/domain/activity"
	"github.com/hepmix/ckstar/internal/domain/model"
	"github.com/hepmix/ckstar/internal/hist"
	"github.com/hepmix/ckstar/pkg/metrics"
)

// SameEvent pairs accepted pions with accepted K-shorts within one event
// and fills the unlike-sign spectrum.
type SameEvent struct {
	sel Selectors
	est activity.Estimator
	acc *hist.Set
	met *metrics.Manager
}

// NewSameEvent creates the same-event combiner. The accumulator is owned
// by the caller; the combiner only appends to it.
func NewSameEvent(sel Selectors, est activity.Estimator, acc *hist.Set, met *metrics.Manager) *SameEvent {
	if met == nil {
		met = metrics.Nop()
	}
	return &SameEvent{sel: sel, est: est, acc: acc, met: met}
}

// Process runs the per-event pass: event quality, activity, candidate
// building, and the pion x K-short cross product.
func (c *SameEvent) Process(ev *model.Event) {
	if !ev.Sel8 {
		c.met.EventSkipped("sel8")
		return
	}

	act := c.est.Estimate(ev)
	c.acc.FillEventQA(ev.VertexZ, act)
	c.met.EventProcessed()

	pions := c.buildPions(ev)
	kshorts := c.buildKShorts(ev, act)

	for i := range pions {
		for j := range kshorts {
			pi, ks := &pions[i], &kshorts[j]
			if pi.trackID == ks.posID || pi.trackID == ks.negID {
				continue // pion track is one of the V0 daughters
			}
			if pi.eventID != ks.eventID {
				continue
			}
			sum := fmom.Add(&pi.p4, &ks.p4)
			if math.Abs(sum.Rapidity()) < pairRapidityMax {
				c.acc.FillUnlikeSign(act, sum.Pt(), sum.M())
				c.met.SameEventFill()
			}
		}
	}
}

// buildPions applies PID then track-quality selection, recording the
// PID diagnostics around the cuts.
func (c *SameEvent) buildPions(ev *model.Event) []pion {
	var out []pion
	for i := range ev.Tracks {
		t := &ev.Tracks[i]
		c.met.TrackSeen()
		c.acc.FillTrackBefore(t.TPCNSigmaPi, t.TOFNSigmaPi)

		if !c.sel.PID.AcceptPion(t) {
			continue
		}
		if !c.sel.Track.Accept(t) {
			continue
		}

		c.acc.FillTrackAfter(t.Eta, t.DCAxy, t.DCAz, t.TPCNSigmaPi, t.TOFNSigmaPi)
		c.met.PionAccepted()
		out = append(out, pion{p4: pionP4(t), trackID: t.ID, eventID: t.EventID})
	}
	return out
}

// buildKShorts applies the daughter selection to both resolved daughters
// and the topological selection to the V0 itself.
func (c *SameEvent) buildKShorts(ev *model.Event, act float64) []kshort {
	idx := model.IndexTracks(ev)
	var out []kshort
	for i := range ev.V0s {
		v0 := &ev.V0s[i]
		c.met.V0Seen()

		if !acceptDaughters(c.sel.Daughter, idx, v0) {
			continue
		}
		if !c.sel.V0.Accept(v0, act) {
			continue
		}

		c.met.KShortAccepted()
		out = append(out, kshort{
			p4:      kshortP4(v0),
			posID:   v0.PosTrackID,
			negID:   v0.NegTrackID,
			eventID: v0.EventID,
		})
	}
	return out
}
