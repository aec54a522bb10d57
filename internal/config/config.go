// Package config defines the analysis configuration and its loading.
//
// Conventions follow the rest of the repo: defaults come from New, a YAML
// file and CKSTAR_-prefixed environment variables may override them, and
// external errors are wrapped with this package's sentinels.
package config

// Config holds every cut and toggle of the reconstruction pipeline.
// Defaults reproduce the reference analysis settings.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr is the Prometheus scrape address; empty disables it.
	MetricsAddr string `koanf:"metrics_addr"`

	// OutputDir receives the exported spectra and the run manifest.
	OutputDir string `koanf:"output_dir"`

	// NBins sets the bin count of the vertex-z diagnostic histogram.
	NBins int `koanf:"n_bins"`

	// Event selection.
	VertexZCut float64 `koanf:"vertex_z_cut"` // accepted |vertex z| (cm)

	// Primary-track prefilter and selection.
	TrackPtMin     float64 `koanf:"track_pt_min"`
	TrackEtaMax    float64 `koanf:"track_eta_max"`
	TrackDCAxyMax  float64 `koanf:"track_dca_xy_max"`
	TrackDCAzMax   float64 `koanf:"track_dca_z_max"`
	ITSClustersMin int     `koanf:"its_clusters_min"`
	CustomDCACut   bool    `koanf:"custom_dca_cut"`
	ManualDCACut   bool    `koanf:"manual_dca_cut"`

	// PID selection (pion hypothesis).
	NSigmaTPC      float64 `koanf:"nsigma_tpc"`
	NSigmaCombined float64 `koanf:"nsigma_combined"`

	// V0 topological selection.
	V0PtMin       float64 `koanf:"v0_pt_min"`
	V0DCADaughMax float64 `koanf:"v0_dca_daugh_max"`
	V0CPAMin      float64 `koanf:"v0_cpa_min"`
	V0TransRadMin float64 `koanf:"v0_trans_rad_min"`
	V0TransRadMax float64 `koanf:"v0_trans_rad_max"`
	V0LifetimeMax float64 `koanf:"v0_lifetime_max"`
	V0DCAToPVMax  float64 `koanf:"v0_dca_to_pv_max"`
	K0sMassSigma  float64 `koanf:"k0s_mass_sigma"`
	K0sMassWidth  float64 `koanf:"k0s_mass_width"`

	// V0 daughter-track selection.
	DaughEtaMax         float64 `koanf:"daugh_eta_max"`
	DaughTPCClustersMin int     `koanf:"daugh_tpc_clusters_min"`
	DaughDCAMin         float64 `koanf:"daugh_dca_min"`
	DaughPIDSigmaMax    float64 `koanf:"daugh_pid_sigma_max"`

	// Activity estimator: MultFT0 wins, else CentFT0C, else CentFT0M.
	MultFT0  bool `koanf:"mult_ft0"`
	CentFT0C bool `koanf:"cent_ft0c"`

	// Event mixing.
	MixingDepth     int     `koanf:"mixing_depth"` // partner events per event
	MixVertexZBins  int     `koanf:"mix_vertex_z_bins"`
	MixVertexZMin   float64 `koanf:"mix_vertex_z_min"`
	MixVertexZMax   float64 `koanf:"mix_vertex_z_max"`
	MixActivityBins int     `koanf:"mix_activity_bins"`
	MixActivityMin  float64 `koanf:"mix_activity_min"`
	MixActivityMax  float64 `koanf:"mix_activity_max"`

	// Diagnostic histogram toggles.
	QABefore bool `koanf:"qa_before"`
	QAAfter  bool `koanf:"qa_after"`
	QAV0     bool `koanf:"qa_v0"`
}

// New returns a Config with the reference defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		OutputDir: "out",
		NBins:     100,

		VertexZCut: 10.0,

		TrackPtMin:     0.2,
		TrackEtaMax:    0.8,
		TrackDCAxyMax:  2.0,
		TrackDCAzMax:   2.0,
		ITSClustersMin: 0,
		CustomDCACut:   false,
		ManualDCACut:   true,

		NSigmaTPC:      3.0,
		NSigmaCombined: 3.0,

		V0PtMin:       0.0,
		V0DCADaughMax: 1.0,
		V0CPAMin:      0.985,
		V0TransRadMin: 0.5,
		V0TransRadMax: 200.0,
		V0LifetimeMax: 15.0,
		V0DCAToPVMax:  0.3,
		K0sMassSigma:  4.0,
		K0sMassWidth:  0.005,

		DaughEtaMax:         0.8,
		DaughTPCClustersMin: 70,
		DaughDCAMin:         0.06,
		DaughPIDSigmaMax:    4.0,

		MultFT0:  false,
		CentFT0C: true,

		MixingDepth:     5,
		MixVertexZBins:  20,
		MixVertexZMin:   -10.0,
		MixVertexZMax:   10.0,
		MixActivityBins: 20,
		MixActivityMin:  0.0,
		MixActivityMax:  100.0,

		QABefore: false,
		QAAfter:  false,
		QAV0:     false,
	}
}
