// Package metrics provides Prometheus metrics for the mulens acquisition
// and analysis pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Acquisition metrics
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	remoteFetches prometheus.Counter
	remoteRetries prometheus.Counter
	remoteErrors  *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	docsSaved     *prometheus.CounterVec

	// Analysis metrics
	analysesRun prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "mulens",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all metric collectors on the configured registry.
func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.cacheHits = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_hits_total",
		Help:      "Number of document requests served from the local cache.",
	})

	m.cacheMisses = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_misses_total",
		Help:      "Number of document requests not found in the local cache.",
	})

	m.remoteFetches = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "remote_fetches_total",
		Help:      "Number of documents retrieved from the remote archive.",
	})

	m.remoteRetries = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "remote_retries_total",
		Help:      "Number of reconnect-and-retry cycles after transient failures.",
	})

	m.remoteErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "remote_errors_total",
		Help:      "Number of terminal retrieval failures by kind.",
	}, []string{"kind"})

	m.fetchDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_duration_seconds",
		Help:      "Wall-clock duration of remote document retrievals.",
		Buckets:   m.histogramBuckets,
	})

	m.docsSaved = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "documents_saved_total",
		Help:      "Bulk-save outcomes by result (written or exists).",
	}, []string{"outcome"})

	m.analysesRun = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analyses_run_total",
		Help:      "Number of completed event analyses.",
	})
}

// Registry returns the registry backing the global manager, for exposition.
func Registry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers recording against the global manager.

// RecordCacheHit increments the cache hit counter.
func RecordCacheHit() {
	if globalManager.enabled {
		globalManager.cacheHits.Inc()
	}
}

// RecordCacheMiss increments the cache miss counter.
func RecordCacheMiss() {
	if globalManager.enabled {
		globalManager.cacheMisses.Inc()
	}
}

// RecordRemoteFetch increments the remote fetch counter.
func RecordRemoteFetch() {
	if globalManager.enabled {
		globalManager.remoteFetches.Inc()
	}
}

// RecordRemoteRetry increments the transient retry counter.
func RecordRemoteRetry() {
	if globalManager.enabled {
		globalManager.remoteRetries.Inc()
	}
}

// RecordRemoteError increments the terminal failure counter for a kind
// ("invalid_path", "access_disabled", "permanent", "retry_exhausted").
func RecordRemoteError(kind string) {
	if globalManager.enabled {
		globalManager.remoteErrors.WithLabelValues(kind).Inc()
	}
}

// ObserveFetchDuration records the duration of one remote retrieval.
func ObserveFetchDuration(seconds float64) {
	if globalManager.enabled {
		globalManager.fetchDuration.Observe(seconds)
	}
}

// RecordDocumentSaved increments the save counter for an outcome
// ("written" or "exists").
func RecordDocumentSaved(outcome string) {
	if globalManager.enabled {
		globalManager.docsSaved.WithLabelValues(outcome).Inc()
	}
}

// RecordAnalysis increments the completed-analysis counter.
func RecordAnalysis() {
	if globalManager.enabled {
		globalManager.analysesRun.Inc()
	}
}
