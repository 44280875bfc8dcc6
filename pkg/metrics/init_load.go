package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLoadMetrics() {
	r.LoadLinesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedexpand_load_lines_total",
			Help: "Input lines read, by file kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	r.LoadDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seedexpand_load_duration_seconds",
			Help:    "Time spent loading an input file",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"kind"},
	)

	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "seedexpand_graph_nodes",
			Help: "Vertices in the loaded graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "seedexpand_graph_edges",
			Help: "Undirected edges in the loaded graph",
		},
	)

	r.GroundTruthClusters = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "seedexpand_ground_truth_communities",
			Help: "Non-empty ground-truth communities loaded",
		},
	)
}
