package selection

import (
	"math"

	"github.com/hepmix/ckstar/internal/domain/model"
)

// TPC acceptance floor for V0 daughters.
const (
	daughCrossedRowsMin      = 70
	daughRowsOverFindableMin = 0.8
)

// DaughterCuts selects the daughter tracks of a V0 candidate.
type DaughterCuts struct {
	EtaMax         float64
	TPCClustersMin int
	DCAMin         float64 // |DCAxy| must be below this; kept as in the reference
	PIDSigmaMax    float64
}

// Accept reports whether t qualifies as a V0 daughter with the given
// expected charge sign. Only an explicit sign mismatch rejects; a zero
// (unset) sign passes.
func (c DaughterCuts) Accept(t *model.Track, expectedSign int) bool {
	if !t.HasTPC {
		return false
	}
	if t.TPCCrossedRows < daughCrossedRowsMin {
		return false
	}
	if t.TPCCrossedRowsOverFindable < daughRowsOverFindableMin {
		return false
	}
	if expectedSign < 0 && t.Sign > 0 {
		return false
	}
	if expectedSign > 0 && t.Sign < 0 {
		return false
	}
	if math.Abs(t.Eta) > c.EtaMax {
		return false
	}
	if t.TPCClusters < c.TPCClustersMin {
		return false
	}
	if math.Abs(t.DCAxy) < c.DCAMin {
		return false
	}
	if math.Abs(t.TPCNSigmaPi) > c.PIDSigmaMax {
		return false
	}
	return true
}
