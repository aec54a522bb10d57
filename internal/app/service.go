// Package app wires the selectors, combiners and accumulator into the
// pipeline run over the event stream.
package app

import (
	"context"
	"errors"
	"io"

	"github.com/hepmix/ckstar/internal/adapters/feed"
	"github.com/hepmix/ckstar/internal/config"
	"github.com/hepmix/ckstar/internal/domain/activity"
	"github.com/hepmix/ckstar/internal/domain/combine"
	"github.com/hepmix/ckstar/internal/domain/selection"
	"github.com/hepmix/ckstar/internal/hist"
	"github.com/hepmix/ckstar/pkg/logger"
	"github.com/hepmix/ckstar/pkg/metrics"
)

// Service runs both passes over a stream of events. Processing is
// single-threaded so histogram contents are reproducible bit for bit.
type Service struct {
	log logger.Logger
	met *metrics.Manager

	acc   *hist.Set
	same  *combine.SameEvent
	mixer *combine.Mixer

	events int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the metrics manager shared with the runner.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.met = m
		}
	}
}

// New builds the pipeline from the configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		log: nopLogger{},
		met: metrics.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.acc = hist.NewSet(
		hist.WithNBins(cfg.NBins),
		hist.WithTrackQA(cfg.QABefore, cfg.QAAfter),
		hist.WithV0QA(cfg.QAV0),
	)

	sel := combine.Selectors{
		Track: selection.TrackCuts{
			CustomDCA:      cfg.CustomDCACut,
			ManualDCA:      cfg.ManualDCACut,
			ITSClustersMin: cfg.ITSClustersMin,
			DCAxyMax:       cfg.TrackDCAxyMax,
			DCAzMax:        cfg.TrackDCAzMax,
		},
		PID: selection.PIDCuts{
			CombinedMax: cfg.NSigmaCombined,
			TPCMax:      cfg.NSigmaTPC,
		},
		Daughter: selection.DaughterCuts{
			EtaMax:         cfg.DaughEtaMax,
			TPCClustersMin: cfg.DaughTPCClustersMin,
			DCAMin:         cfg.DaughDCAMin,
			PIDSigmaMax:    cfg.DaughPIDSigmaMax,
		},
		V0: selection.NewV0Selector(selection.V0Cuts{
			PtMin:       cfg.V0PtMin,
			DCADaughMax: cfg.V0DCADaughMax,
			CPAMin:      cfg.V0CPAMin,
			TransRadMin: cfg.V0TransRadMin,
			TransRadMax: cfg.V0TransRadMax,
			LifetimeMax: cfg.V0LifetimeMax,
			DCAToPVMax:  cfg.V0DCAToPVMax,
			MassSigma:   cfg.K0sMassSigma,
			MassWidth:   cfg.K0sMassWidth,
		}, selection.WithDiagnostics(s.acc)),
	}

	est := activity.New(cfg.MultFT0, cfg.CentFT0C)

	s.same = combine.NewSameEvent(sel, est, s.acc, s.met)
	s.mixer = combine.NewMixer(sel, est, s.acc, s.met,
		combine.WithDepth(cfg.MixingDepth),
		combine.WithVertexZAxis(hist.Axis{
			Bins: cfg.MixVertexZBins,
			Min:  cfg.MixVertexZMin,
			Max:  cfg.MixVertexZMax,
		}),
		combine.WithActivityAxis(hist.Axis{
			Bins: cfg.MixActivityBins,
			Min:  cfg.MixActivityMin,
			Max:  cfg.MixActivityMax,
		}),
	)

	return s
}

// Run drains the reader, feeding every event through the same-event pass
// and the mixer. It stops on end of stream, a decode error, or context
// cancellation.
func (s *Service) Run(ctx context.Context, r *feed.Reader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			s.log.Info(ctx, "event stream drained", logger.Int64("events", s.events))
			return nil
		}
		if err != nil {
			return err
		}

		s.events++
		s.same.Process(ev)
		s.mixer.Process(ev)
	}
}

// Accumulator exposes the histogram state for export after Run returns.
func (s *Service) Accumulator() *hist.Set { return s.acc }

// Events reports how many events were read from the stream.
func (s *Service) Events() int64 { return s.events }

// nopLogger is the default until a logger is injected.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...logger.Field) {}
func (nopLogger) Info(context.Context, string, ...logger.Field)  {}
func (nopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (nopLogger) Error(context.Context, string, ...logger.Field) {}
func (nopLogger) Named(string) logger.Logger                     { return nopLogger{} }
