// Command ckstar runs the charged-K* reconstruction over a JSONL event
// stream and writes the resulting spectra, diagnostics, and run manifest.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hepmix/ckstar/internal/adapters/export"
	"github.com/hepmix/ckstar/internal/adapters/feed"
	"github.com/hepmix/ckstar/internal/app"
	"github.com/hepmix/ckstar/internal/config"
	"github.com/hepmix/ckstar/pkg/logger"
	"github.com/hepmix/ckstar/pkg/metrics"
)

const metricsReadHeaderTimeout = 5 * time.Second

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <events.jsonl>\n\noptions:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	output := flag.String("output", "", "output directory (overrides config)")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		return fmt.Errorf("expected exactly one input file")
	}

	logger.Init()
	log := logger.Named("ckstar")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level, using info", logger.String("log_level", cfg.LogLevel))
	}
	if *output != "" {
		cfg.OutputDir = *output
	}

	met := metrics.NewManager()
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, log, cfg.MetricsAddr, met)
	}

	reader, closeFeed, err := feed.Open(flag.Arg(0), &feed.Filters{
		VertexZMax:  cfg.VertexZCut,
		TrackPtMin:  cfg.TrackPtMin,
		TrackEtaMax: cfg.TrackEtaMax,
		DCAxyMax:    cfg.TrackDCAxyMax,
		DCAzMax:     cfg.TrackDCAzMax,
	})
	if err != nil {
		return err
	}
	defer closeFeed()

	svc := app.New(cfg, app.WithLogger(log), app.WithMetrics(met))

	started := time.Now().UTC()
	log.Info(ctx, "starting run",
		logger.String("input", flag.Arg(0)),
		logger.String("output", cfg.OutputDir))

	if err := svc.Run(ctx, reader); err != nil {
		return err
	}

	writer, err := export.NewWriter(cfg.OutputDir)
	if err != nil {
		return err
	}
	if err := writer.WriteSpectra(svc.Accumulator()); err != nil {
		return err
	}
	if err := writer.WriteQA(svc.Accumulator()); err != nil {
		return err
	}
	manifest := export.Manifest{
		RunID:      uuid.NewString(),
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		Events:     svc.Events(),
		Config: map[string]any{
			"mult_ft0":     cfg.MultFT0,
			"cent_ft0c":    cfg.CentFT0C,
			"mixing_depth": cfg.MixingDepth,
			"vertex_z_cut": cfg.VertexZCut,
		},
	}
	if err := writer.WriteManifest(manifest); err != nil {
		return err
	}

	log.Info(ctx, "run complete",
		logger.Int64("events", svc.Events()),
		logger.String("run_id", manifest.RunID))
	return nil
}

// serveMetrics exposes the Prometheus registry for scraping while the
// run is in flight.
func serveMetrics(ctx context.Context, log logger.Logger, addr string, met *metrics.Manager) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(met.Registry(), promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Warn(ctx, "metrics server stopped", logger.Err(err))
	}
}
