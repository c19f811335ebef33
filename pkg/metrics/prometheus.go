package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the dashboard.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Dataset load
	rowsLoaded     prometheus.Gauge
	rowsRejected   prometheus.Counter
	rowsDuplicate  prometheus.Counter
	genreConflicts prometheus.Counter
	loadDuration   prometheus.Histogram
	loadFailures   prometheus.Counter

	// Per-interaction computation
	aggregationLatency *prometheus.HistogramVec
	framesBuilt        prometheus.Counter
	viewRows           prometheus.Histogram

	// Exports
	exportsTotal *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager. Without WithPrometheusRegistry it
// registers on a fresh private registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "djtour",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		constLabels:      map[string]string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) histogram(name, help string, buckets []float64) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		Buckets: buckets,
	})
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.rowsLoaded = m.gauge("rows_loaded", "Number of events in the loaded table after validation and deduplication")
	m.rowsRejected = m.counter("rows_rejected_total", "Rows rejected at load time because a field could not be parsed")
	m.rowsDuplicate = m.counter("rows_duplicate_total", "Rows dropped because (date, entity, venue) repeated")
	m.genreConflicts = m.counter("genre_conflicts_total", "Rows whose genre disagreed with the first genre seen for the entity")
	m.loadDuration = m.histogram("load_duration_milliseconds", "Time spent reading and validating the event table", m.histogramBuckets)
	m.loadFailures = m.counter("load_failures_total", "Table loads that failed fatally")

	m.aggregationLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "aggregation_latency_milliseconds",
		Help:        "Time spent computing one view (summary, tour, rows)",
		ConstLabels: m.constLabels,
		Buckets:     m.histogramBuckets,
	}, []string{"view"})
	m.framesBuilt = m.counter("frames_built_total", "Animation frames built for tour replays")
	m.viewRows = m.histogram("view_rows", "Rows in each filtered view", prometheus.ExponentialBuckets(1, 2, 10))

	m.exportsTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "exports_total",
		Help:        "Filtered views exported by format",
		ConstLabels: m.constLabels,
	}, []string{"format"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		ConstLabels: m.constLabels,
		Buckets:     m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_by_endpoint_total",
		Help:        "HTTP errors by endpoint and error type",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = m.gauge("system_memory_bytes", "Heap bytes allocated")
	m.systemGoroutineCount = m.gauge("system_goroutines", "Number of goroutines")
	m.systemGCPauseTime = m.histogram("system_gc_pause_milliseconds", "Average GC pause", m.histogramBuckets)
}

// Instance methods. Each is a no-op when metrics are disabled.

func (m *Manager) RecordTableLoad(rows, rejected, duplicates, genreConflicts int, durationMs float64) {
	if !m.enabled {
		return
	}
	m.rowsLoaded.Set(float64(rows))
	m.rowsRejected.Add(float64(rejected))
	m.rowsDuplicate.Add(float64(duplicates))
	m.genreConflicts.Add(float64(genreConflicts))
	m.loadDuration.Observe(durationMs)
}

func (m *Manager) RecordLoadFailure() {
	if m.enabled {
		m.loadFailures.Inc()
	}
}

func (m *Manager) RecordAggregation(view string, rows int, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.aggregationLatency.WithLabelValues(view).Observe(latencyMs)
	m.viewRows.Observe(float64(rows))
}

func (m *Manager) RecordFramesBuilt(n int) {
	if m.enabled {
		m.framesBuilt.Add(float64(n))
	}
}

func (m *Manager) RecordExport(format string) {
	if m.enabled {
		m.exportsTotal.WithLabelValues(format).Inc()
	}
}

func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

func (m *Manager) RecordErrorByEndpoint(endpoint, method, errorType string) {
	if m.enabled {
		m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

func (m *Manager) UpdateSystem(memBytes uint64, goroutines int, avgGCPauseMs float64) {
	if !m.enabled {
		return
	}
	m.systemMemoryUsage.Set(float64(memBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
	if avgGCPauseMs > 0 {
		m.systemGCPauseTime.Observe(avgGCPauseMs)
	}
}

// Package-level helpers delegate to the global manager.

// RecordTableLoad records the outcome of a successful table load.
func RecordTableLoad(rows, rejected, duplicates, genreConflicts int, durationMs float64) {
	globalManager.RecordTableLoad(rows, rejected, duplicates, genreConflicts, durationMs)
}

// RecordLoadFailure counts a fatal load failure.
func RecordLoadFailure() { globalManager.RecordLoadFailure() }

// RecordAggregation records the latency and size of one computed view.
func RecordAggregation(view string, rows int, latencyMs float64) {
	globalManager.RecordAggregation(view, rows, latencyMs)
}

// RecordFramesBuilt counts animation frames.
func RecordFramesBuilt(n int) { globalManager.RecordFramesBuilt(n) }

// RecordExport counts an export by format.
func RecordExport(format string) { globalManager.RecordExport(format) }

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordErrorByEndpoint counts an HTTP error.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.RecordErrorByEndpoint(endpoint, method, errorType)
}

// UpdateSystem refreshes process-level gauges.
func UpdateSystem(memBytes uint64, goroutines int, avgGCPauseMs float64) {
	globalManager.UpdateSystem(memBytes, goroutines, avgGCPauseMs)
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
