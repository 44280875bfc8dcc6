package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/dd0wney/cluso-seedexpand/pkg/config"
	"github.com/dd0wney/cluso-seedexpand/pkg/evaluation"
	"github.com/dd0wney/cluso-seedexpand/pkg/loader"
	"github.com/dd0wney/cluso-seedexpand/pkg/logging"
	"github.com/dd0wney/cluso-seedexpand/pkg/metrics"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Reject bad settings before touching any input
	strategy, err := evaluation.ParseStrategy(cfg.Strategy)
	if err != nil {
		log.Fatalf("%v", err)
	}
	compression, err := loader.ParseCompression(cfg.Compression)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewCLILogger(cfg.LogLevel)
	reg := metrics.NewRegistry()

	if err := run(ctx, cfg, strategy, compression, logger, reg); err != nil {
		stop()
		log.Fatalf("Evaluation failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, strategy evaluation.SeedStrategy, compression loader.Compression, logger logging.Logger, reg *metrics.Registry) error {
	ld := loader.New(loader.NewFileSource(cfg.S3), compression,
		loader.WithLogger(logger),
		loader.WithMetrics(reg),
	)

	fmt.Println("Loading graph...")
	g, err := ld.LoadGraph(ctx, cfg.GraphPath)
	if err != nil {
		return err
	}
	fmt.Printf("  Nodes: %d, Edges: %d\n", g.NodeCount(), g.EdgeCount())

	fmt.Println("Loading ground-truth communities...")
	labels, err := ld.LoadCommunities(ctx, cfg.LabelsPath)
	if err != nil {
		return err
	}
	reg.SetGraphSize(g.NodeCount(), g.EdgeCount(), labels.CommunityCount())

	harness := evaluation.NewHarness(evaluation.Options{
		Workers:       cfg.Workers,
		MaxIterations: cfg.MaxIterations,
		Logger:        logger,
		Metrics:       reg,
	})

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	report, err := harness.Evaluate(ctx, g, labels, cfg.Seeds, strategy, rng)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(renderReport(report))

	if cfg.MetricsOut != "" {
		if err := reg.WriteTextfile(cfg.MetricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", logging.Path(cfg.MetricsOut))
	}
	return nil
}
