package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for an evaluation run
type Registry struct {
	// Load Metrics
	LoadLinesTotal      *prometheus.CounterVec
	LoadDuration        *prometheus.HistogramVec
	GraphNodesTotal     prometheus.Gauge
	GraphEdgesTotal     prometheus.Gauge
	GroundTruthClusters prometheus.Gauge

	// Expansion Metrics
	ExpansionsTotal        *prometheus.CounterVec
	ExpansionIterations    prometheus.Histogram
	ExpansionCommunitySize prometheus.Histogram
	ExpansionConductance   prometheus.Histogram
	ExpansionDuration      prometheus.Histogram

	// Evaluation Metrics
	TrialsTotal      *prometheus.CounterVec
	TrialF1          *prometheus.HistogramVec
	EvaluationsTotal *prometheus.CounterVec
	MeanPrecision    *prometheus.GaugeVec
	MeanRecall       *prometheus.GaugeVec
	MeanF1           *prometheus.GaugeVec

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initLoadMetrics()
	r.initExpansionMetrics()
	r.initEvaluationMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
