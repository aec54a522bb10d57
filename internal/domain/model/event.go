// Package model contains the read-only records flowing through the pipeline.
package model

// Event is one processed collision together with its reconstructed
// tracks and V0 candidates. Fields mirror the upstream columnar contract;
// everything is precomputed by the data supply and immutable here.
type Event struct {
	ID int64 `json:"id"`

	// Primary vertex position (cm).
	VertexX float64 `json:"vertex_x"`
	VertexY float64 `json:"vertex_y"`
	VertexZ float64 `json:"vertex_z"`

	// Sel8 is the baseline event-quality flag.
	Sel8 bool `json:"sel8"`

	// Activity estimators.
	MultFT0A float64 `json:"mult_ft0a"` // zero-equalized FT0-A multiplicity
	MultFT0C float64 `json:"mult_ft0c"` // zero-equalized FT0-C multiplicity
	CentFT0C float64 `json:"cent_ft0c"` // FT0-C centrality percentile
	CentFT0M float64 `json:"cent_ft0m"` // FT0-M centrality percentile

	Tracks []Track       `json:"tracks"`
	V0s    []V0Candidate `json:"v0s"`
}

// Track is a reconstructed charged track with its quality and PID columns.
type Track struct {
	ID      int64 `json:"id"`       // globally unique
	EventID int64 `json:"event_id"` // parent collision

	Pt   float64 `json:"pt"`
	Eta  float64 `json:"eta"`
	Phi  float64 `json:"phi"`
	Sign int     `json:"sign"` // charge sign; 0 means unset

	ITSClusters                int     `json:"its_clusters"`
	TPCClusters                int     `json:"tpc_clusters"`
	TPCCrossedRows             int     `json:"tpc_crossed_rows"`
	TPCCrossedRowsOverFindable float64 `json:"tpc_crossed_rows_over_findable"`
	HasTPC                     bool    `json:"has_tpc"`
	HasTOF                     bool    `json:"has_tof"`

	// Distance of closest approach to the primary vertex (cm).
	DCAxy float64 `json:"dca_xy"`
	DCAz  float64 `json:"dca_z"`

	// Pion-hypothesis PID significances.
	TPCNSigmaPi float64 `json:"tpc_nsigma_pi"`
	TOFNSigmaPi float64 `json:"tof_nsigma_pi"`

	// Track-selection flags from the upstream selection table.
	GlobalTrack      bool `json:"global_track"`
	GlobalTrackWoDCA bool `json:"global_track_wo_dca"`
	PVContributor    bool `json:"pv_contributor"`
}

// V0Candidate is a reconstructed secondary vertex hypothesized as a
// K-short decaying into two oppositely charged daughters.
type V0Candidate struct {
	ID         int64 `json:"id"`
	EventID    int64 `json:"event_id"`
	PosTrackID int64 `json:"pos_track_id"`
	NegTrackID int64 `json:"neg_track_id"`

	Pt  float64 `json:"pt"`
	Eta float64 `json:"eta"`
	Phi float64 `json:"phi"`

	DCADaughters float64 `json:"dca_daughters"` // DCA between the two daughters (cm)
	DCAToPV      float64 `json:"dca_to_pv"`     // DCA of the V0 to the primary vertex (cm)
	CosPA        float64 `json:"cos_pa"`        // cosine of pointing angle
	TransRadius  float64 `json:"trans_radius"`  // transverse decay radius (cm)

	// Armenteros-Podolanski variables.
	QtArm float64 `json:"qt_arm"`
	Alpha float64 `json:"alpha"`

	// K-short hypothesis quantities.
	MassK0Short     float64 `json:"mass_k0short"`
	RapidityK0Short float64 `json:"rapidity_k0short"`

	// Decay distance from the primary vertex divided by total momentum.
	// Multiplied by the nominal K0s mass this is the proper-lifetime proxy.
	DistOverTotMom float64 `json:"dist_over_tot_mom"`
}

// TrackIndex is an ID-keyed view over an event's tracks so daughter
// resolution is a map lookup instead of a positional join.
type TrackIndex map[int64]*Track

// IndexTracks builds a TrackIndex for ev. The pointers reference ev's
// own slice; the index is only valid while ev is.
func IndexTracks(ev *Event) TrackIndex {
	idx := make(TrackIndex, len(ev.Tracks))
	for i := range ev.Tracks {
		idx[ev.Tracks[i].ID] = &ev.Tracks[i]
	}
	return idx
}

// Daughters resolves the positive and negative daughter tracks of v0.
// Either result is nil when the identifier is unknown to the index.
func (idx TrackIndex) Daughters(v0 *V0Candidate) (pos, neg *Track) {
	return idx[v0.PosTrackID], idx[v0.NegTrackID]
}
