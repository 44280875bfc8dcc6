package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordLoad records one input file load
func (r *Registry) RecordLoad(kind string, parsed, skipped int, duration time.Duration) {
	r.LoadLinesTotal.WithLabelValues(kind, "parsed").Add(float64(parsed))
	r.LoadLinesTotal.WithLabelValues(kind, "skipped").Add(float64(skipped))
	r.LoadDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordLoadFailure records a load aborted by malformed input
func (r *Registry) RecordLoadFailure(kind string) {
	r.LoadLinesTotal.WithLabelValues(kind, "malformed").Inc()
}

// SetGraphSize publishes the loaded graph and ground-truth sizes
func (r *Registry) SetGraphSize(nodes, edges, communities int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
	r.GroundTruthClusters.Set(float64(communities))
}

// RecordExpansion records one expansion run
func (r *Registry) RecordExpansion(stop string, iterations, size int, conductance float64, duration time.Duration) {
	r.ExpansionsTotal.WithLabelValues(stop).Inc()
	r.ExpansionIterations.Observe(float64(iterations))
	r.ExpansionCommunitySize.Observe(float64(size))
	r.ExpansionConductance.Observe(conductance)
	r.ExpansionDuration.Observe(duration.Seconds())
}

// RecordTrial records one scored seed trial
func (r *Registry) RecordTrial(strategy string, f1 float64) {
	r.TrialsTotal.WithLabelValues(strategy).Inc()
	r.TrialF1.WithLabelValues(strategy).Observe(f1)
}

// RecordEvaluation records the outcome of a whole evaluation
func (r *Registry) RecordEvaluation(strategy string, precision, recall, f1 float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.EvaluationsTotal.WithLabelValues(strategy, "ok").Inc()
	r.MeanPrecision.WithLabelValues(strategy).Set(precision)
	r.MeanRecall.WithLabelValues(strategy).Set(recall)
	r.MeanF1.WithLabelValues(strategy).Set(f1)
}

// RecordEvaluationFailure records an evaluation that returned an error
func (r *Registry) RecordEvaluationFailure(strategy string) {
	r.EvaluationsTotal.WithLabelValues(strategy, "error").Inc()
}

// WriteTextfile writes every metric in Prometheus text format, for
// node_exporter's textfile collector or a later push.
func (r *Registry) WriteTextfile(path string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return prometheus.WriteToTextfile(path, r.registry)
}
