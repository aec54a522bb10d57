// Package feed reads the upstream event stream: one JSON-encoded event
// per line, tracks and V0 candidates nested in the event object. It also
// applies the upstream table filters so the core sees the same input the
// reference analysis does.
package feed

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hepmix/ckstar/internal/domain/model"
)

// Filters reproduces the upstream table prefilters: an event-level
// vertex-z window and per-track acceptance cuts. V0 candidates are not
// prefiltered.
type Filters struct {
	VertexZMax  float64 // |vertex z| must be below this (cm)
	TrackPtMin  float64
	TrackEtaMax float64
	DCAxyMax    float64
	DCAzMax     float64
}

// Reader decodes events from a JSONL stream.
type Reader struct {
	sc      *bufio.Scanner
	filters *Filters
	line    int
}

// NewReader wraps r. When filters is non-nil they are applied to each
// decoded event before it is handed out.
func NewReader(r io.Reader, filters *Filters) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), 64<<20) // events with many tracks get long lines
	return &Reader{sc: sc, filters: filters}
}

// Open opens a JSONL file and returns a Reader plus a close function.
func Open(path string, filters *Filters) (*Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpenFeed, err)
	}
	return NewReader(f, filters), f.Close, nil
}

// Next decodes the next event. It returns io.EOF at end of stream.
// An event removed entirely by the vertex filter is skipped, not
// surfaced; its tracks and V0s are never seen by the caller.
func (r *Reader) Next() (*model.Event, error) {
	for r.sc.Scan() {
		r.line++
		raw := bytes.TrimSpace(r.sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		var ev model.Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrDecodeEvent, r.line, err)
		}

		if r.filters != nil {
			if math.Abs(ev.VertexZ) >= r.filters.VertexZMax {
				continue
			}
			ev.Tracks = filterTracks(ev.Tracks, r.filters)
		}
		return &ev, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeEvent, err)
	}
	return nil, io.EOF
}

func filterTracks(tracks []model.Track, f *Filters) []model.Track {
	out := tracks[:0]
	for _, t := range tracks {
		if math.Abs(t.Eta) >= f.TrackEtaMax || math.Abs(t.Pt) <= f.TrackPtMin {
			continue
		}
		if math.Abs(t.DCAxy) >= f.DCAxyMax || math.Abs(t.DCAz) >= f.DCAzMax {
			continue
		}
		out = append(out, t)
	}
	return out
}
