package algorithms

// LocalDensityScore returns the fraction of v's neighbors that already lie
// in community. A vertex with no neighbors scores 0.
func LocalDensityScore(graph Graph, community VertexSet, v int64) float64 {
	k := graph.Degree(v)
	if k == 0 {
		return 0.0
	}
	return float64(insideNeighbors(graph, community, v)) / float64(k)
}

// insideNeighbors counts v's neighbors that are members of community
func insideNeighbors(graph Graph, community VertexSet, v int64) int {
	inside := 0
	for _, n := range graph.Neighbors(v) {
		if community.Contains(n) {
			inside++
		}
	}
	return inside
}

// Cut counts the edges with exactly one endpoint in s
func Cut(graph Graph, s VertexSet) int {
	cut, _ := cutAndVolume(graph, s)
	return cut
}

// VolumeOf sums the degrees of the vertices in s
func VolumeOf(graph Graph, s VertexSet) int {
	_, vol := cutAndVolume(graph, s)
	return vol
}

func cutAndVolume(graph Graph, s VertexSet) (cut, vol int) {
	for v := range s {
		vol += graph.Degree(v)
		for _, n := range graph.Neighbors(v) {
			if !s.Contains(n) {
				cut++
			}
		}
	}
	return cut, vol
}

// Conductance computes cut(S, V\S) / min(vol(S), vol(V\S)).
// Lower is better. When the denominator is zero (S empty, S covering the
// whole graph, or only isolated vertices involved) the result is 1.0.
func Conductance(graph Graph, s VertexSet) float64 {
	cut, vol := cutAndVolume(graph, s)
	return conductanceRatio(cut, vol, graph.Volume()-vol)
}

func conductanceRatio(cut, volInside, volOutside int) float64 {
	denom := min(volInside, volOutside)
	if denom <= 0 {
		return 1.0
	}
	return float64(cut) / float64(denom)
}
