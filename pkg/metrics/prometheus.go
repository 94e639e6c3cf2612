// Package metrics provides Prometheus metrics for the staffsight service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Recompute cycle metrics - the core unit of work
	recomputes        prometheus.Counter
	recomputeDuration prometheus.Histogram
	lastRecomputeUnix prometheus.Gauge

	// Filter metrics
	filterMutations *prometheus.CounterVec
	invalidRanges   prometheus.Counter

	// Dataset metrics
	datasetRows  prometheus.Gauge
	filteredRows prometheus.Gauge
	attritionPct prometheus.Gauge
	loadDuration prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithHistogramBuckets overrides the duration histogram buckets.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry registers metrics on the given registry instead of the
// default one.
func WithRegistry(r prometheus.Registerer) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its instruments.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "staffsight",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recomputes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recomputes_total",
		Help:      "Total number of filter-and-aggregate recompute cycles",
	})

	m.recomputeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recompute_duration_milliseconds",
		Help:      "Full recompute cycle duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.lastRecomputeUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_recompute_unix",
		Help:      "Unix timestamp of the last published snapshot",
	})

	m.filterMutations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "filter_mutations_total",
			Help:      "Total number of filter mutations by dimension",
		},
		[]string{"dimension"},
	)

	m.invalidRanges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_age_ranges_total",
		Help:      "Total number of rejected age range mutations",
	})

	m.datasetRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rows",
		Help:      "Number of records in the loaded dataset",
	})

	m.filteredRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "filtered_rows",
		Help:      "Number of records in the current filtered view",
	})

	m.attritionPct = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "attrition_rate_percent",
		Help:      "Top-line attrition rate of the current filtered view",
	})

	m.loadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_milliseconds",
		Help:      "Dataset load and index duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// Package-level helpers operating on the global manager.

// RecordRecompute counts one recompute cycle and its duration.
func RecordRecompute(durationMs float64, completedUnix int64) {
	globalManager.recomputes.Inc()
	globalManager.recomputeDuration.Observe(durationMs)
	globalManager.lastRecomputeUnix.Set(float64(completedUnix))
}

// RecordFilterMutation counts one mutation of the named dimension.
func RecordFilterMutation(dimension string) {
	globalManager.filterMutations.WithLabelValues(dimension).Inc()
}

// RecordInvalidRange counts one rejected age range.
func RecordInvalidRange() {
	globalManager.invalidRanges.Inc()
}

// UpdateDatasetRows sets the loaded dataset size.
func UpdateDatasetRows(n int) {
	globalManager.datasetRows.Set(float64(n))
}

// UpdateFilteredRows sets the current filtered view size.
func UpdateFilteredRows(n int) {
	globalManager.filteredRows.Set(float64(n))
}

// UpdateAttritionRate sets the top-line attrition percentage.
func UpdateAttritionRate(pct float64) {
	globalManager.attritionPct.Set(pct)
}

// RecordLoadDuration records one dataset load duration.
func RecordLoadDuration(durationMs float64) {
	globalManager.loadDuration.Observe(durationMs)
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry served on /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
