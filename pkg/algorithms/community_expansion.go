package algorithms

// Expand grows a community from seeds by greedy boundary selection.
//
// Each iteration scores every boundary vertex with LocalDensityScore and
// picks the highest (ties go to the lowest vertex ID). The pick is accepted
// only if it strictly lowers conductance; the first rejection ends the run.
// The run also ends when the boundary empties or opts.MaxIterations
// additions have been accepted.
//
// Cut and volume are tracked incrementally, so each candidate conductance
// costs O(deg(v)) yet equals Conductance(graph, community ∪ {v}) exactly.
func Expand(graph Graph, seeds []int64, opts ExpansionOptions) *ExpansionResult {
	community := NewVertexSet(seeds...)
	cut, vol := cutAndVolume(graph, community)
	total := graph.Volume()
	best := conductanceRatio(cut, vol, total-vol)

	boundary := make(VertexSet)
	for s := range community {
		for _, n := range graph.Neighbors(s) {
			if !community.Contains(n) {
				boundary.Add(n)
			}
		}
	}

	result := &ExpansionResult{
		Seeds:   community.Sorted(),
		Members: community,
		Stop:    StopBoundaryExhausted,
	}

	for len(boundary) > 0 {
		if opts.MaxIterations > 0 && result.Iterations >= opts.MaxIterations {
			result.Stop = StopMaxIterations
			break
		}

		candidate, score, inside := selectCandidate(graph, community, boundary)

		// Adding v turns its inside edges from cut to internal and its
		// remaining edges into new cut edges.
		k := graph.Degree(candidate)
		nextCut := cut + k - 2*inside
		nextVol := vol + k
		next := conductanceRatio(nextCut, nextVol, total-nextVol)

		if next >= best {
			result.Stop = StopRejected
			break
		}

		community.Add(candidate)
		delete(boundary, candidate)
		for _, n := range graph.Neighbors(candidate) {
			if !community.Contains(n) {
				boundary.Add(n)
			}
		}

		cut, vol, best = nextCut, nextVol, next
		result.Iterations++
		result.Steps = append(result.Steps, ExpansionStep{
			Vertex:      candidate,
			Score:       score,
			Conductance: next,
			Size:        len(community),
		})
	}

	result.Conductance = best
	return result
}

// selectCandidate returns the boundary vertex with the highest local
// density score, its score, and its number of neighbors inside community.
func selectCandidate(graph Graph, community, boundary VertexSet) (int64, float64, int) {
	var (
		bestVertex int64
		bestScore  = -1.0
		bestInside int
	)

	for v := range boundary {
		inside := insideNeighbors(graph, community, v)
		score := 0.0
		if k := graph.Degree(v); k > 0 {
			score = float64(inside) / float64(k)
		}

		if score > bestScore || (score == bestScore && v < bestVertex) {
			bestVertex, bestScore, bestInside = v, score, inside
		}
	}

	return bestVertex, bestScore, bestInside
}

// Density returns the fraction of vertex pairs in s that are adjacent.
// Sets with fewer than two vertices have density 0.
func Density(graph Graph, s VertexSet) float64 {
	n := len(s)
	if n < 2 {
		return 0.0
	}

	internal := 0
	for v := range s {
		internal += insideNeighbors(graph, s, v)
	}
	// Each internal edge was seen from both endpoints
	internal /= 2

	return float64(internal) / float64(n*(n-1)/2)
}
