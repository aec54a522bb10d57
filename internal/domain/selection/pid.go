package selection

import (
	"math"

	"github.com/hepmix/ckstar/internal/domain/model"
)

// PIDCuts identifies pion candidates from TPC and TOF significances.
type PIDCuts struct {
	CombinedMax float64 // quadrature TPC+TOF cut, used when TOF is present
	TPCMax      float64 // TPC-only cut, used when TOF is absent
}

// AcceptPion reports whether t is compatible with the pion hypothesis.
func (c PIDCuts) AcceptPion(t *model.Track) bool {
	if t.HasTOF {
		return t.TOFNSigmaPi*t.TOFNSigmaPi+t.TPCNSigmaPi*t.TPCNSigmaPi < c.CombinedMax*c.CombinedMax
	}
	return math.Abs(t.TPCNSigmaPi) < c.TPCMax
}
