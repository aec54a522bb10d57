// Package selection holds the per-particle and per-candidate accept/reject
// logic: track quality, pion PID, V0 daughter quality, and V0 topology.
// Selectors are pure predicates over the narrow record fields they need;
// a failed cut silently excludes the candidate.
package selection

import (
	"math"

	"github.com/hepmix/ckstar/internal/domain/model"
)

// TrackCuts selects primary-track candidates. Two policies exist and both
// are applied as independent necessary conditions when both are enabled;
// the reference analysis ships with only the manual policy on.
type TrackCuts struct {
	CustomDCA bool
	ManualDCA bool

	ITSClustersMin int
	DCAxyMax       float64
	DCAzMax        float64
}

// Accept reports whether t passes the enabled track-quality policies.
func (c TrackCuts) Accept(t *model.Track) bool {
	if c.CustomDCA &&
		!(t.GlobalTrack || t.PVContributor || t.ITSClusters > c.ITSClustersMin) {
		return false
	}
	if c.ManualDCA &&
		!(t.GlobalTrackWoDCA || t.PVContributor ||
			math.Abs(t.DCAxy) < c.DCAxyMax ||
			math.Abs(t.DCAz) < c.DCAzMax ||
			t.ITSClusters > c.ITSClustersMin) {
		return false
	}
	return true
}
