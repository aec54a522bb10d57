// Package combine builds the invariant-mass spectra: same-event pion x V0
// pairs for signal+background and similarity-binned mixed-event pairs for
// the combinatorial background estimate.
package combine

import (
	"go-hep.org/x/hep/fmom"

	"github.com/hepmix/ckstar/internal/domain/model"
	"github.com/hepmix/ckstar/internal/domain/pdg"
	"github.com/hepmix/ckstar/internal/domain/selection"
)

// Combined-candidate rapidity acceptance.
const pairRapidityMax = 0.5

// Selectors bundles the four selection stages applied by both combiners.
type Selectors struct {
	Track    selection.TrackCuts
	PID      selection.PIDCuts
	Daughter selection.DaughterCuts
	V0       *selection.V0Selector
}

// pion is an accepted track candidate tagged with its provenance.
type pion struct {
	p4      fmom.PtEtaPhiM
	trackID int64
	eventID int64
}

// kshort is an accepted V0 candidate tagged with its daughters.
type kshort struct {
	p4      fmom.PtEtaPhiM
	posID   int64
	negID   int64
	eventID int64
}

func pionP4(t *model.Track) fmom.PtEtaPhiM {
	return fmom.NewPtEtaPhiM(t.Pt, t.Eta, t.Phi, pdg.PionMass)
}

func kshortP4(v0 *model.V0Candidate) fmom.PtEtaPhiM {
	return fmom.NewPtEtaPhiM(v0.Pt, v0.Eta, v0.Phi, pdg.K0ShortMass)
}

// acceptDaughters resolves and selects both daughters of v0 through idx.
// Unresolvable identifiers reject the candidate.
func acceptDaughters(cuts selection.DaughterCuts, idx model.TrackIndex, v0 *model.V0Candidate) bool {
	posTrack, negTrack := idx.Daughters(v0)
	if posTrack == nil || negTrack == nil {
		return false
	}
	return cuts.Accept(posTrack, +1) && cuts.Accept(negTrack, -1)
}
