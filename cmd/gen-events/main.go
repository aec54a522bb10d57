// Command gen-events writes a synthetic JSONL event stream shaped like
// the upstream contract, for exercising the pipeline end to end.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/hepmix/ckstar/internal/domain/model"
)

const (
	pionTPCSigmaSpread = 1.2
	k0sMassMean        = 0.497
	k0sMassSpread      = 0.004
)

func main() {
	var (
		count  = flag.Int("n", 1000, "number of events to generate")
		seed   = flag.Int64("seed", 1, "random seed")
		output = flag.String("output", "events.jsonl", "output file")
	)
	flag.Parse()

	if err := run(*count, *seed, *output); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(count int, seed int64, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	rng := rand.New(rand.NewSource(seed))
	enc := json.NewEncoder(w)

	var trackID, v0ID int64
	for i := 0; i < count; i++ {
		ev := genEvent(rng, int64(i+1), &trackID, &v0ID)
		if err := enc.Encode(ev); err != nil {
			return fmt.Errorf("encode event %d: %w", i, err)
		}
	}
	return nil
}

func genEvent(rng *rand.Rand, id int64, trackID, v0ID *int64) *model.Event {
	ev := &model.Event{
		ID:       id,
		VertexX:  rng.NormFloat64() * 0.01,
		VertexY:  rng.NormFloat64() * 0.01,
		VertexZ:  rng.Float64()*19 - 9.5,
		Sel8:     rng.Float64() > 0.05,
		MultFT0A: rng.Float64() * 100,
		MultFT0C: rng.Float64() * 100,
		CentFT0C: rng.Float64() * 100,
		CentFT0M: rng.Float64() * 100,
	}

	nTracks := 2 + rng.Intn(12)
	for i := 0; i < nTracks; i++ {
		*trackID++
		ev.Tracks = append(ev.Tracks, genTrack(rng, *trackID, id))
	}

	nV0s := rng.Intn(4)
	for i := 0; i < nV0s; i++ {
		*v0ID++
		// Daughters are fresh tracks so the same-event exclusion stays
		// exercisable but rarely triggers.
		*trackID++
		pos := genDaughter(rng, *trackID, id, +1)
		*trackID++
		neg := genDaughter(rng, *trackID, id, -1)
		ev.Tracks = append(ev.Tracks, pos, neg)
		ev.V0s = append(ev.V0s, genV0(rng, *v0ID, id, pos.ID, neg.ID))
	}
	return ev
}

func genTrack(rng *rand.Rand, id, eventID int64) model.Track {
	sign := 1
	if rng.Float64() < 0.5 {
		sign = -1
	}
	return model.Track{
		ID:      id,
		EventID: eventID,
		Pt:      0.25 + rng.ExpFloat64()*0.8,
		Eta:     rng.Float64()*1.5 - 0.75,
		Phi:     rng.Float64() * 2 * math.Pi,
		Sign:    sign,

		ITSClusters:                rng.Intn(8),
		TPCClusters:                60 + rng.Intn(100),
		TPCCrossedRows:             60 + rng.Intn(100),
		TPCCrossedRowsOverFindable: 0.7 + rng.Float64()*0.4,
		HasTPC:                     true,
		HasTOF:                     rng.Float64() < 0.6,

		DCAxy: rng.NormFloat64() * 0.5,
		DCAz:  rng.NormFloat64() * 0.5,

		TPCNSigmaPi: rng.NormFloat64() * pionTPCSigmaSpread,
		TOFNSigmaPi: rng.NormFloat64() * pionTPCSigmaSpread,

		GlobalTrack:      rng.Float64() < 0.8,
		GlobalTrackWoDCA: rng.Float64() < 0.9,
		PVContributor:    rng.Float64() < 0.5,
	}
}

func genDaughter(rng *rand.Rand, id, eventID int64, sign int) model.Track {
	t := genTrack(rng, id, eventID)
	t.Sign = sign
	t.TPCCrossedRows = 80 + rng.Intn(60)
	t.TPCCrossedRowsOverFindable = 0.85 + rng.Float64()*0.2
	t.TPCClusters = 80 + rng.Intn(60)
	t.DCAxy = 0.1 + rng.Float64()*0.5 // displaced from the primary vertex
	if rng.Float64() < 0.5 {
		t.DCAxy = -t.DCAxy
	}
	return t
}

func genV0(rng *rand.Rand, id, eventID, posID, negID int64) model.V0Candidate {
	return model.V0Candidate{
		ID:         id,
		EventID:    eventID,
		PosTrackID: posID,
		NegTrackID: negID,

		Pt:  0.4 + rng.ExpFloat64()*1.2,
		Eta: rng.Float64()*1.4 - 0.7,
		Phi: rng.Float64() * 2 * math.Pi,

		DCADaughters: rng.Float64() * 1.2,
		DCAToPV:      rng.NormFloat64() * 0.15,
		CosPA:        0.98 + rng.Float64()*0.02,
		TransRadius:  0.5 + rng.ExpFloat64()*10,

		QtArm: 0.12 + rng.Float64()*0.1,
		Alpha: rng.Float64()*0.8 - 0.4,

		MassK0Short:     k0sMassMean + rng.NormFloat64()*k0sMassSpread,
		RapidityK0Short: rng.Float64()*1.2 - 0.6,
		DistOverTotMom:  rng.Float64() * 40,
	}
}
