package algorithms

import (
	"math"
	"testing"

	"github.com/dd0wney/cluso-seedexpand/pkg/graph"
)

// buildScenarioGraph creates the two-community test graph:
// triangle 1-2-3 attached through 3-4 to the pendant pair 4-5.
func buildScenarioGraph(t *testing.T) *graph.Graph {
	t.Helper()

	g := graph.New()
	for _, e := range [][2]int64{{1, 2}, {2, 3}, {1, 3}, {3, 4}, {4, 5}} {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestLocalDensityScore tests the inside-neighbor fraction
func TestLocalDensityScore(t *testing.T) {
	g := buildScenarioGraph(t)

	tests := []struct {
		name      string
		community VertexSet
		vertex    int64
		expected  float64
	}{
		{"half inside", NewVertexSet(1), 2, 0.5},
		{"third inside", NewVertexSet(1), 3, 1.0 / 3.0},
		{"two thirds inside", NewVertexSet(1, 2), 3, 2.0 / 3.0},
		{"fully inside", NewVertexSet(4), 5, 1.0},
		{"none inside", NewVertexSet(5), 1, 0.0},
		{"isolated vertex", NewVertexSet(1), 99, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalDensityScore(g, tt.community, tt.vertex)
			if !almostEqual(got, tt.expected) {
				t.Errorf("LocalDensityScore(%d) = %f, want %f", tt.vertex, got, tt.expected)
			}
		})
	}
}

// TestConductance tests cut over the smaller side's volume
func TestConductance(t *testing.T) {
	g := buildScenarioGraph(t)

	tests := []struct {
		name     string
		set      VertexSet
		expected float64
	}{
		{"single seed", NewVertexSet(1), 1.0},
		{"pair", NewVertexSet(1, 2), 0.5},
		{"triangle", NewVertexSet(1, 2, 3), 1.0 / 3.0},
		{"triangle plus bridge", NewVertexSet(1, 2, 3, 4), 1.0},
		{"pendant pair", NewVertexSet(4, 5), 1.0 / 3.0},
		{"empty set", NewVertexSet(), 1.0},
		{"whole graph", NewVertexSet(1, 2, 3, 4, 5), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Conductance(g, tt.set)
			if !almostEqual(got, tt.expected) {
				t.Errorf("Conductance(%v) = %f, want %f", tt.set.Sorted(), got, tt.expected)
			}
		})
	}
}

// TestConductance_IsolatedVertices tests the zero-volume fallback
func TestConductance_IsolatedVertices(t *testing.T) {
	g := graph.New()
	g.AddVertex(1)
	g.AddVertex(2)

	if got := Conductance(g, NewVertexSet(1)); got != 1.0 {
		t.Errorf("Expected 1.0 for zero-volume graph, got %f", got)
	}
}

// TestCutAndVolume tests the raw counters
func TestCutAndVolume(t *testing.T) {
	g := buildScenarioGraph(t)
	s := NewVertexSet(1, 2, 3)

	if got := Cut(g, s); got != 1 {
		t.Errorf("Cut = %d, want 1", got)
	}
	if got := VolumeOf(g, s); got != 7 {
		t.Errorf("VolumeOf = %d, want 7", got)
	}
}

// TestDensity tests internal edge density
func TestDensity(t *testing.T) {
	g := buildScenarioGraph(t)

	if got := Density(g, NewVertexSet(1, 2, 3)); !almostEqual(got, 1.0) {
		t.Errorf("Triangle density = %f, want 1.0", got)
	}
	if got := Density(g, NewVertexSet(1, 2, 3, 4)); !almostEqual(got, 4.0/6.0) {
		t.Errorf("Density = %f, want %f", got, 4.0/6.0)
	}
	if got := Density(g, NewVertexSet(1)); got != 0.0 {
		t.Errorf("Singleton density = %f, want 0", got)
	}
}
