// Package activity selects the per-event activity estimator used both as a
// histogram axis and as the event-mixing bin coordinate.
package activity

import "github.com/hepmix/ckstar/internal/domain/model"

// Mode identifies which estimator is read from an event.
type Mode int

const (
	// MultFT0 sums the zero-equalized FT0-A and FT0-C multiplicities.
	MultFT0 Mode = iota
	// CentFT0C reads the FT0-C centrality percentile.
	CentFT0C
	// CentFT0M reads the FT0-M centrality percentile.
	CentFT0M
)

func (m Mode) String() string {
	switch m {
	case MultFT0:
		return "multFT0"
	case CentFT0C:
		return "centFT0C"
	case CentFT0M:
		return "centFT0M"
	}
	return "unknown"
}

// Estimator computes the activity scalar of an event under a fixed Mode.
type Estimator struct {
	mode Mode
}

// New resolves the two configuration flags into an Estimator.
// multFT0 wins over centFT0C; with both unset CentFT0M is used.
func New(multFT0, centFT0C bool) Estimator {
	switch {
	case multFT0:
		return Estimator{mode: MultFT0}
	case centFT0C:
		return Estimator{mode: CentFT0C}
	default:
		return Estimator{mode: CentFT0M}
	}
}

// Mode reports the selected estimator.
func (e Estimator) Mode() Mode { return e.mode }

// Estimate returns the activity of ev under the selected estimator.
func (e Estimator) Estimate(ev *model.Event) float64 {
	switch e.mode {
	case MultFT0:
		return ev.MultFT0A + ev.MultFT0C
	case CentFT0C:
		return ev.CentFT0C
	default:
		return ev.CentFT0M
	}
}
