// Package export serializes the accumulated histograms at shutdown:
// CSV dumps of the sparse spectra, YODA files for the 1D diagnostics,
// rendered mass projections, and a run manifest.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"

	"github.com/hepmix/ckstar/internal/hist"
)

// Writer dumps histogram state into a target directory.
type Writer struct {
	dir string
}

// NewWriter creates the output directory and returns a Writer for it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}
	return &Writer{dir: dir}, nil
}

// WriteSpectra dumps the unlike-sign and mixed spectra as CSV plus their
// invariant-mass projections as PNG.
func (w *Writer) WriteSpectra(s *hist.Set) error {
	if err := w.writeH3CSV("spectra_unlike.csv", s.UnlikeSign); err != nil {
		return err
	}
	if err := w.writeH3CSV("spectra_mixed.csv", s.Mixed); err != nil {
		return err
	}
	if err := w.writeMassProjection("unlike_mass.png", "Unlike-sign pairs", s.UnlikeSign); err != nil {
		return err
	}
	return w.writeMassProjection("mixed_mass.png", "Mixed-event pairs", s.Mixed)
}

// WriteQA dumps whichever diagnostic groups were recorded, as YODA files
// plus a CSV for the sparse mass-pt-activity diagnostic.
func (w *Writer) WriteQA(s *hist.Set) error {
	h1ds := map[string]*hbook.H1D{
		"qa_vertex_z": s.VertexZ,
		"qa_activity": s.Activity,
	}
	if s.TrackQAEnabled() {
		h1ds["qa_nsigma_tpc_before"] = s.NSigmaTPCBefore
		h1ds["qa_nsigma_tof_before"] = s.NSigmaTOFBefore
		h1ds["qa_eta_after"] = s.EtaAfter
		h1ds["qa_dca_xy_after"] = s.DCAxyAfter
		h1ds["qa_dca_z_after"] = s.DCAzAfter
		h1ds["qa_nsigma_tpc_after"] = s.NSigmaTPCAfter
		h1ds["qa_nsigma_tof_after"] = s.NSigmaTOFAfter
	}
	if s.V0QAEnabled() {
		h1ds["qa_v0_daughter_dca"] = s.DaughterDCA
		h1ds["qa_v0_lifetime"] = s.Lifetime
		h1ds["qa_v0_cospa"] = s.CosPA
		if err := w.writeH3CSV("qa_v0_mass_pt_activity.csv", s.MassPtActivity); err != nil {
			return err
		}
	}
	for name, h := range h1ds {
		if err := w.writeYODA(name+".yoda", h); err != nil {
			return err
		}
	}
	return nil
}

// Manifest describes one completed run.
type Manifest struct {
	RunID      string         `json:"run_id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Events     int64          `json:"events"`
	Config     map[string]any `json:"config,omitempty"`
}

// WriteManifest dumps the run manifest as JSON.
func (w *Writer) WriteManifest(m Manifest) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, "run.json"), raw, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

func (w *Writer) writeH3CSV(name string, h *hist.H3) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"activity", "pt", "mass", "content"}); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	for _, bin := range h.NonEmpty() {
		rec := []string{
			formatFloat(h.X.BinCenter(bin.IX)),
			formatFloat(h.Y.BinCenter(bin.IY)),
			formatFloat(h.Z.BinCenter(bin.IZ)),
			formatFloat(bin.Content),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("%w: %w", ErrExport, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

func (w *Writer) writeYODA(name string, h *hbook.H1D) error {
	raw, err := h.MarshalYODA()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, name), raw, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

// writeMassProjection collapses the activity and pt axes and renders the
// invariant-mass distribution.
func (w *Writer) writeMassProjection(name, title string, h *hist.H3) error {
	proj := hbook.NewH1D(h.Z.Bins, h.Z.Min, h.Z.Max)
	for _, bin := range h.NonEmpty() {
		proj.Fill(h.Z.BinCenter(bin.IZ), bin.Content)
	}

	p := hplot.New()
	p.Title.Text = title
	p.X.Label.Text = "Mass (GeV)"
	p.Y.Label.Text = "Counts"
	p.Add(hplot.NewH1D(proj))

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(w.dir, name)); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
