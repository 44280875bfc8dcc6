package evaluation

import (
	"math/rand"

	"github.com/dd0wney/cluso-seedexpand/pkg/groundtruth"
)

// Strategy names accepted by ParseStrategy
const (
	StrategyRandom    = "random"
	StrategyMaxDegree = "maxdeg"
)

// SeedStrategy chooses the seed vertices an evaluation runs from. All
// randomness comes from rng so runs are reproducible.
type SeedStrategy interface {
	Name() string
	SelectSeeds(g Graph, labels *groundtruth.Labels, trials int, rng *rand.Rand) ([]int64, error)
}

// ParseStrategy returns the strategy registered under name
func ParseStrategy(name string) (SeedStrategy, error) {
	switch name {
	case StrategyRandom:
		return RandomStrategy{}, nil
	case StrategyMaxDegree:
		return MaxDegreeStrategy{}, nil
	default:
		return nil, InvalidStrategyError(name)
	}
}

// RandomStrategy draws distinct labeled vertices uniformly at random
type RandomStrategy struct{}

// Name returns the strategy name
func (RandomStrategy) Name() string { return StrategyRandom }

// SelectSeeds samples trials labeled vertices present in g without
// replacement. It fails when fewer than trials vertices are eligible.
func (s RandomStrategy) SelectSeeds(g Graph, labels *groundtruth.Labels, trials int, rng *rand.Rand) ([]int64, error) {
	eligible := labels.LabeledVertices(g)
	if trials > len(eligible) {
		return nil, InsufficientSeedPoolError(s.Name(), trials, len(eligible))
	}
	return sample(eligible, trials, rng), nil
}

// MaxDegreeStrategy takes the highest-degree present member of each
// ground-truth community
type MaxDegreeStrategy struct{}

// Name returns the strategy name
func (MaxDegreeStrategy) Name() string { return StrategyMaxDegree }

// SelectSeeds picks one seed per community in community ID order, breaking
// degree ties by lowest vertex ID. Communities with no member in g are
// skipped. When more seeds than trials result, a uniform sample of trials
// of them is kept.
func (MaxDegreeStrategy) SelectSeeds(g Graph, labels *groundtruth.Labels, trials int, rng *rand.Rand) ([]int64, error) {
	seeds := make([]int64, 0, labels.CommunityCount())
	for _, cid := range labels.Communities() {
		if seed, ok := maxDegreeMember(g, labels.Members(cid)); ok {
			seeds = append(seeds, seed)
		}
	}

	if len(seeds) > trials {
		seeds = sample(seeds, trials, rng)
	}
	return seeds, nil
}

func maxDegreeMember(g Graph, members map[int64]struct{}) (int64, bool) {
	var (
		best    int64
		bestDeg = -1
	)
	for v := range members {
		if !g.HasVertex(v) {
			continue
		}
		d := g.Degree(v)
		if d > bestDeg || (d == bestDeg && v < best) {
			best, bestDeg = v, d
		}
	}
	return best, bestDeg >= 0
}

// sample returns k distinct elements of pool chosen uniformly at random,
// in draw order. pool is not modified.
func sample(pool []int64, k int, rng *rand.Rand) []int64 {
	if k <= 0 {
		return []int64{}
	}

	work := make([]int64, len(pool))
	copy(work, pool)

	// Partial Fisher-Yates
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:k]
}
