// Package graph holds the in-memory undirected graph that community
// expansion and evaluation run against.
package graph

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
)

// Graph is an unweighted undirected graph keyed by integer vertex IDs.
// It is built once by a loader and treated as read-only afterwards, so
// concurrent readers need no locking.
type Graph struct {
	g      *simple.UndirectedGraph
	degree map[int64]int
	edges  int
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		g:      simple.NewUndirectedGraph(),
		degree: make(map[int64]int),
	}
}

// AddVertex inserts v without edges. Adding an existing vertex is a no-op.
func (gr *Graph) AddVertex(v int64) {
	if gr.g.Node(v) != nil {
		return
	}
	gr.g.AddNode(simple.Node(v))
	gr.degree[v] = 0
}

// AddEdge inserts the undirected edge {u, v}. Self-loops and edges that
// already exist are dropped; the return value reports whether the graph
// changed.
func (gr *Graph) AddEdge(u, v int64) bool {
	if u == v {
		return false
	}
	if gr.g.HasEdgeBetween(u, v) {
		return false
	}

	gr.AddVertex(u)
	gr.AddVertex(v)
	gr.g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})

	gr.degree[u]++
	gr.degree[v]++
	gr.edges++
	return true
}

// HasVertex reports whether v is present
func (gr *Graph) HasVertex(v int64) bool {
	_, ok := gr.degree[v]
	return ok
}

// HasEdge reports whether u and v are adjacent
func (gr *Graph) HasEdge(u, v int64) bool {
	return gr.g.HasEdgeBetween(u, v)
}

// Degree returns the number of neighbors of v, or 0 if v is absent.
func (gr *Graph) Degree(v int64) int {
	return gr.degree[v]
}

// Neighbors returns the neighbors of v in ascending ID order.
// Absent vertices have no neighbors.
func (gr *Graph) Neighbors(v int64) []int64 {
	if !gr.HasVertex(v) {
		return nil
	}

	it := gr.g.From(v)
	out := make([]int64, 0, it.Len())
	for it.Next() {
		out = append(out, it.Node().ID())
	}
	slices.Sort(out)
	return out
}

// Vertices returns every vertex ID in ascending order
func (gr *Graph) Vertices() []int64 {
	out := make([]int64, 0, len(gr.degree))
	for v := range gr.degree {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// NodeCount returns the number of vertices
func (gr *Graph) NodeCount() int {
	return len(gr.degree)
}

// EdgeCount returns the number of undirected edges
func (gr *Graph) EdgeCount() int {
	return gr.edges
}

// Volume returns the sum of all vertex degrees, i.e. twice the edge count.
func (gr *Graph) Volume() int {
	return 2 * gr.edges
}
