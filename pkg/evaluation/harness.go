// Package evaluation measures how well seed expansion recovers known
// communities, averaged over many seeds.
package evaluation

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-seedexpand/pkg/algorithms"
	"github.com/dd0wney/cluso-seedexpand/pkg/groundtruth"
	"github.com/dd0wney/cluso-seedexpand/pkg/logging"
	"github.com/dd0wney/cluso-seedexpand/pkg/metrics"
	"github.com/dd0wney/cluso-seedexpand/pkg/parallel"
)

// Graph is what seed selection and expansion read from the input graph.
// *graph.Graph satisfies it.
type Graph interface {
	algorithms.Graph
	HasVertex(v int64) bool
	NodeCount() int
	EdgeCount() int
}

// Options configures a Harness
type Options struct {
	Workers       int // Trials run concurrently; values below 1 mean 1
	MaxIterations int // Per-expansion cap; 0 means unbounded
	Logger        logging.Logger
	Metrics       *metrics.Registry
}

// Harness runs seed trials and scores them against ground truth
type Harness struct {
	workers   int
	expansion algorithms.ExpansionOptions
	logger    logging.Logger
	metrics   *metrics.Registry
}

// NewHarness creates a harness from opts
func NewHarness(opts Options) *Harness {
	h := &Harness{
		workers:   max(opts.Workers, 1),
		expansion: algorithms.ExpansionOptions{MaxIterations: opts.MaxIterations},
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
	if h.logger == nil {
		h.logger = logging.NewNopLogger()
	}
	return h
}

// Evaluate selects seeds with strategy, expands a community from each one,
// and averages precision, recall and F1 over the trials.
//
// Seed selection consumes rng sequentially before any trial starts, so the
// report is identical for a given rng seed whatever the worker count.
func (h *Harness) Evaluate(ctx context.Context, g Graph, labels *groundtruth.Labels, trials int, strategy SeedStrategy, rng *rand.Rand) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:           uuid.New().String(),
		Strategy:        strategy.Name(),
		RequestedTrials: trials,
		Nodes:           g.NodeCount(),
		Edges:           g.EdgeCount(),
	}
	logger := h.logger.With(
		logging.Component("evaluation"),
		logging.RunID(report.RunID),
		logging.Strategy(report.Strategy),
	)

	seeds, err := h.selectSeeds(g, labels, trials, strategy, rng)
	if err != nil {
		h.recordFailure(strategy.Name())
		logger.Error("seed selection failed", logging.Error(err))
		return nil, err
	}
	logger.Debug("seeds selected", logging.Count(len(seeds)), logging.Int("requested", trials))

	report.Trials = make([]TrialResult, len(seeds))
	err = parallel.ForEach(ctx, h.workers, len(seeds), func(i int) error {
		report.Trials[i] = h.runTrial(g, labels, seeds[i])

		t := report.Trials[i]
		if h.metrics != nil {
			h.metrics.RecordTrial(report.Strategy, t.F1)
		}
		logger.Debug("trial finished",
			logging.Trial(i),
			logging.Seed(t.Seed),
			logging.CommunityID(t.CommunityID),
			logging.Int("detected", t.DetectedSize),
			logging.Iterations(t.Iterations),
			logging.Conductance(t.Conductance),
			logging.Float64("f1", t.F1),
		)
		return nil
	})
	if err != nil {
		h.recordFailure(strategy.Name())
		logger.Error("evaluation aborted", logging.Error(err))
		return nil, err
	}

	report.aggregate()
	report.Duration = time.Since(start)

	if h.metrics != nil {
		h.metrics.RecordEvaluation(report.Strategy, report.MeanPrecision, report.MeanRecall, report.MeanF1)
	}
	logger.Info("evaluation finished",
		logging.Count(len(report.Trials)),
		logging.Float64("precision", report.MeanPrecision),
		logging.Float64("recall", report.MeanRecall),
		logging.Float64("f1", report.MeanF1),
		logging.Latency(report.Duration),
	)
	return report, nil
}

func (h *Harness) selectSeeds(g Graph, labels *groundtruth.Labels, trials int, strategy SeedStrategy, rng *rand.Rand) ([]int64, error) {
	if trials < 0 {
		return nil, &EvaluationError{
			Op:        "select",
			Strategy:  strategy.Name(),
			Requested: trials,
			Cause:     ErrInvalidTrialCount,
		}
	}

	seeds, err := strategy.SelectSeeds(g, labels, trials, rng)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, EmptyTrialSetError(strategy.Name(), trials, 0)
	}
	return seeds, nil
}

// runTrial expands from seed with no shared mutable state, so trials may
// run concurrently.
func (h *Harness) runTrial(g Graph, labels *groundtruth.Labels, seed int64) TrialResult {
	start := time.Now()
	result := algorithms.Expand(g, []int64{seed}, h.expansion)
	elapsed := time.Since(start)

	if h.metrics != nil {
		h.metrics.RecordExpansion(string(result.Stop), result.Iterations, result.Size(), result.Conductance, elapsed)
	}

	cid, _ := labels.CommunityOf(seed)
	truth := labels.Members(cid)
	precision, recall, f1 := Score(result.Members, truth)

	return TrialResult{
		Seed:         seed,
		CommunityID:  cid,
		DetectedSize: result.Size(),
		TruthSize:    len(truth),
		Overlap:      intersectionSize(result.Members, truth),
		Precision:    precision,
		Recall:       recall,
		F1:           f1,
		Conductance:  result.Conductance,
		Density:      algorithms.Density(g, result.Members),
		Iterations:   result.Iterations,
		Stop:         result.Stop,
	}
}

func (h *Harness) recordFailure(strategy string) {
	if h.metrics != nil {
		h.metrics.RecordEvaluationFailure(strategy)
	}
}

// Evaluate runs a sequential evaluation with default options and returns
// the mean precision, recall and F1.
func Evaluate(ctx context.Context, g Graph, labels *groundtruth.Labels, trials int, strategy SeedStrategy, rng *rand.Rand) (precision, recall, f1 float64, err error) {
	report, err := NewHarness(Options{}).Evaluate(ctx, g, labels, trials, strategy, rng)
	if err != nil {
		return 0, 0, 0, err
	}
	return report.MeanPrecision, report.MeanRecall, report.MeanF1, nil
}
