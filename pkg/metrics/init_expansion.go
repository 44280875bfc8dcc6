package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initExpansionMetrics() {
	r.ExpansionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedexpand_expansions_total",
			Help: "Expansion runs, by stop reason",
		},
		[]string{"stop"},
	)

	r.ExpansionIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seedexpand_expansion_iterations",
			Help:    "Accepted additions per expansion run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	r.ExpansionCommunitySize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seedexpand_expansion_community_size",
			Help:    "Vertices in each detected community",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	r.ExpansionConductance = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seedexpand_expansion_conductance",
			Help:    "Final conductance of each detected community",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	r.ExpansionDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seedexpand_expansion_duration_seconds",
			Help:    "Wall time of each expansion run",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
	)
}
