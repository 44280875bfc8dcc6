// Package config assembles evaluation settings from command-line flags and
// an optional YAML file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-seedexpand/pkg/loader"
)

// Defaults applied before the YAML file and flags
const (
	DefaultSeeds      = 20
	DefaultStrategy   = "random"
	DefaultRandomSeed = 42
	DefaultWorkers    = 1
)

// Config holds everything one evaluation run needs
type Config struct {
	GraphPath     string          `yaml:"graph" validate:"required"`
	LabelsPath    string          `yaml:"labels" validate:"required"`
	Compression   string          `yaml:"compression" validate:"oneof=none gzip snappy"`
	Seeds         int             `yaml:"seeds" validate:"gte=0"`
	Strategy      string          `yaml:"strategy" validate:"required"`
	RandomSeed    int64           `yaml:"random_seed"`
	MaxIterations int             `yaml:"max_iterations" validate:"gte=0"`
	Workers       int             `yaml:"workers" validate:"gte=1,lte=1024"`
	LogLevel      string          `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	MetricsOut    string          `yaml:"metrics_out"`
	S3            loader.S3Config `yaml:"s3"`
}

// Default returns the settings used when nothing overrides them
func Default() *Config {
	return &Config{
		Compression: string(loader.CompressionNone),
		Seeds:       DefaultSeeds,
		Strategy:    DefaultStrategy,
		RandomSeed:  DefaultRandomSeed,
		Workers:     DefaultWorkers,
	}
}

// LoadFile decodes a YAML file over cfg. Keys absent from the file keep
// their current values; unknown keys are rejected.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.GraphPath, "graph", cfg.GraphPath, "Path or s3:// URI of the edge list")
	fs.StringVar(&cfg.LabelsPath, "labels", cfg.LabelsPath, "Path or s3:// URI of the community labels")
	fs.BoolFunc("gz", "Inputs are gzip-compressed (same as -compression gzip)", func(string) error {
		cfg.Compression = string(loader.CompressionGzip)
		return nil
	})
	fs.StringVar(&cfg.Compression, "compression", cfg.Compression, "Input compression: none, gzip or snappy")
	fs.IntVar(&cfg.Seeds, "seeds", cfg.Seeds, "Number of seed trials")
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Seed selection: random or maxdeg")
	fs.Int64Var(&cfg.RandomSeed, "random-seed", cfg.RandomSeed, "Seed for the sampling random source")
	fs.IntVar(&cfg.MaxIterations, "max-iter", cfg.MaxIterations, "Cap on accepted additions per expansion (0 = unbounded)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Trials evaluated concurrently")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.MetricsOut, "metrics-out", cfg.MetricsOut, "Write Prometheus metrics to this file after the run")
}

// Parse builds a Config from command-line arguments. Defaults come first,
// then the file named by -config, then any flag set explicitly.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	configPath := fs.String("config", "", "YAML configuration file")
	bindFlags(fs, Default())

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := Default()
	if *configPath != "" {
		if err := LoadFile(*configPath, cfg); err != nil {
			return nil, err
		}
	}

	// Replay explicitly set flags on top of the file
	overlay := flag.NewFlagSet(name, flag.ContinueOnError)
	overlay.SetOutput(io.Discard)
	bindFlags(overlay, cfg)

	var replayErr error
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || replayErr != nil {
			return
		}
		replayErr = overlay.Set(f.Name, f.Value.String())
	})
	if replayErr != nil {
		return nil, replayErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
