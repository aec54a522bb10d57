package combine_test

import (
	"github.com/hepmix/ckstar/internal/domain/combine"
	"github.com/hepmix/ckstar/internal/domain/model"
	"github.com/hepmix/ckstar/internal/domain/selection"
)

// referenceSelectors mirrors the default configuration.
func referenceSelectors() combine.Selectors {
	return combine.Selectors{
		Track: selection.TrackCuts{
			ManualDCA: true,
			DCAxyMax:  2.0,
			DCAzMax:   2.0,
		},
		PID: selection.PIDCuts{CombinedMax: 3.0, TPCMax: 3.0},
		Daughter: selection.DaughterCuts{
			EtaMax:         0.8,
			TPCClustersMin: 70,
			DCAMin:         0.06,
			PIDSigmaMax:    4.0,
		},
		V0: selection.NewV0Selector(selection.V0Cuts{
			DCADaughMax: 1.0,
			CPAMin:      0.985,
			TransRadMin: 0.5,
			TransRadMax: 200.0,
			LifetimeMax: 15.0,
			DCAToPVMax:  0.3,
			MassSigma:   4.0,
			MassWidth:   0.005,
		}),
	}
}

// pionTrack passes PID (TPC-only), the manual track policy, and the
// daughter quality cuts, so it can double as a V0 daughter in tests.
func pionTrack(id, eventID int64, eta float64) model.Track {
	return model.Track{
		ID:                         id,
		EventID:                    eventID,
		Pt:                         1.0,
		Eta:                        eta,
		Phi:                        1.6, // near the V0 phi so the pair mass stays on the spectrum axis
		Sign:                       +1,
		HasTPC:                     true,
		TPCCrossedRows:             100,
		TPCCrossedRowsOverFindable: 1.0,
		TPCClusters:                100,
		TPCNSigmaPi:                1.0,
		GlobalTrackWoDCA:           true,
		DCAxy:                      0.2,
		DCAz:                       0.2,
	}
}

// daughterTrack passes the daughter cuts for the given sign. It also
// passes the pion selection, so it enters the pion list too.
func daughterTrack(id, eventID int64, sign int) model.Track {
	return model.Track{
		ID:                         id,
		EventID:                    eventID,
		Pt:                         0.8,
		Eta:                        0.2,
		Phi:                        1.1,
		Sign:                       sign,
		HasTPC:                     true,
		TPCCrossedRows:             100,
		TPCCrossedRowsOverFindable: 1.0,
		TPCClusters:                100,
		DCAxy:                      0.2,
		DCAz:                       0.2,
		TPCNSigmaPi:                1.0,
		GlobalTrackWoDCA:           true,
	}
}

// goodV0 passes the topological selection.
func goodV0(id, eventID, posID, negID int64, eta float64) model.V0Candidate {
	return model.V0Candidate{
		ID:              id,
		EventID:         eventID,
		PosTrackID:      posID,
		NegTrackID:      negID,
		Pt:              2.0,
		Eta:             eta,
		Phi:             2.0,
		DCADaughters:    0.3,
		DCAToPV:         0.1,
		CosPA:           0.999,
		TransRadius:     5.0,
		QtArm:           0.12,
		Alpha:           0.3,
		MassK0Short:     0.497,
		RapidityK0Short: 0.2,
		DistOverTotMom:  10.0,
	}
}

// signalEvent holds one pion, one V0 and its two daughters; everything
// passes selection. Track IDs start at base+1.
func signalEvent(id, base int64, vertexZ, centFT0C float64) *model.Event {
	pos := daughterTrack(base+2, id, +1)
	neg := daughterTrack(base+3, id, -1)
	return &model.Event{
		ID:       id,
		VertexZ:  vertexZ,
		Sel8:     true,
		CentFT0C: centFT0C,
		Tracks:   []model.Track{pionTrack(base+1, id, 0.1), pos, neg},
		V0s:      []model.V0Candidate{goodV0(base+4, id, pos.ID, neg.ID, 0.2)},
	}
}
