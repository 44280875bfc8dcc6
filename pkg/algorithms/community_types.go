package algorithms

import "slices"

// VertexSet is a set of vertex IDs
type VertexSet map[int64]struct{}

// NewVertexSet creates a set holding the given vertices
func NewVertexSet(ids ...int64) VertexSet {
	s := make(VertexSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether v is in the set
func (s VertexSet) Contains(v int64) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v
func (s VertexSet) Add(v int64) {
	s[v] = struct{}{}
}

// Sorted returns the members in ascending order
func (s VertexSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Graph is the read-only view of an undirected graph that the metrics and
// the expansion need. *graph.Graph satisfies it.
type Graph interface {
	Neighbors(v int64) []int64
	Degree(v int64) int
	Volume() int
}

// StopReason records why an expansion run ended
type StopReason string

const (
	// StopBoundaryExhausted means no vertex was left adjacent to the community
	StopBoundaryExhausted StopReason = "boundary_exhausted"
	// StopMaxIterations means the iteration cap was reached
	StopMaxIterations StopReason = "max_iterations"
	// StopRejected means the best boundary vertex did not lower conductance
	StopRejected StopReason = "rejected"
)

// ExpansionOptions configures a single expansion run
type ExpansionOptions struct {
	MaxIterations int // Accepted additions allowed; 0 means unbounded
}

// ExpansionStep is one accepted addition
type ExpansionStep struct {
	Vertex      int64
	Score       float64 // Local density score at selection time
	Conductance float64 // Conductance after the addition
	Size        int     // Community size after the addition
}

// ExpansionResult contains the community grown from a set of seeds
type ExpansionResult struct {
	Seeds       []int64
	Members     VertexSet
	Conductance float64
	Iterations  int
	Stop        StopReason
	Steps       []ExpansionStep
}

// Size returns the number of vertices in the detected community
func (r *ExpansionResult) Size() int {
	return len(r.Members)
}

// SortedMembers returns the detected community in ascending order
func (r *ExpansionResult) SortedMembers() []int64 {
	return r.Members.Sorted()
}
