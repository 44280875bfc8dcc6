package evaluation

import (
	"time"

	"github.com/dd0wney/cluso-seedexpand/pkg/algorithms"
)

// TrialResult is the outcome of expanding from one seed
type TrialResult struct {
	Seed         int64
	CommunityID  int // Ground-truth community of the seed
	DetectedSize int
	TruthSize    int
	Overlap      int
	Precision    float64
	Recall       float64
	F1           float64
	Conductance  float64
	Density      float64
	Iterations   int
	Stop         algorithms.StopReason
}

// Report aggregates every trial of one evaluation run
type Report struct {
	RunID           string
	Strategy        string
	RequestedTrials int
	Nodes           int
	Edges           int
	Trials          []TrialResult
	MeanPrecision   float64
	MeanRecall      float64
	MeanF1          float64
	Duration        time.Duration
}

// Seeds returns the seed of every trial in evaluation order
func (r *Report) Seeds() []int64 {
	out := make([]int64, len(r.Trials))
	for i, t := range r.Trials {
		out[i] = t.Seed
	}
	return out
}

// aggregate fills the means from the trials, summing in trial order
func (r *Report) aggregate() {
	var p, rc, f float64
	for _, t := range r.Trials {
		p += t.Precision
		rc += t.Recall
		f += t.F1
	}
	n := float64(len(r.Trials))
	r.MeanPrecision = p / n
	r.MeanRecall = rc / n
	r.MeanF1 = f / n
}
