package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initEvaluationMetrics() {
	r.TrialsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedexpand_trials_total",
			Help: "Seed trials scored, by seed strategy",
		},
		[]string{"strategy"},
	)

	r.TrialF1 = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seedexpand_trial_f1",
			Help:    "F1 score of each seed trial",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
		[]string{"strategy"},
	)

	r.EvaluationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "seedexpand_evaluations_total",
			Help: "Evaluation runs, by strategy and status",
		},
		[]string{"strategy", "status"},
	)

	r.MeanPrecision = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "seedexpand_mean_precision",
			Help: "Mean precision of the latest evaluation",
		},
		[]string{"strategy"},
	)

	r.MeanRecall = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "seedexpand_mean_recall",
			Help: "Mean recall of the latest evaluation",
		},
		[]string{"strategy"},
	)

	r.MeanF1 = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "seedexpand_mean_f1",
			Help: "Mean F1 of the latest evaluation",
		},
		[]string{"strategy"},
	)
}
