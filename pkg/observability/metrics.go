package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Global metrics instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Engine metrics
	SuggestionsComputed  prometheus.Counter
	CandidatesDiscovered prometheus.Counter
	BrokenEdgesSkipped   prometheus.Counter
	ActionsRecorded      *prometheus.CounterVec

	// Store metrics
	StoreOperations *prometheus.CounterVec
	StoreDuration   *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Use singleton pattern to avoid duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	suggestionsComputed := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestions_computed_total",
			Help:      "Total number of suggestion lists computed",
		},
	)

	candidatesDiscovered := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_discovered_total",
			Help:      "Total number of second-degree candidates discovered",
		},
	)

	brokenEdgesSkipped := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broken_edges_skipped_total",
			Help:      "Total number of edges skipped because their target contact was missing",
		},
	)

	actionsRecorded := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestion_actions_recorded_total",
			Help:      "Total number of suggestion feedback actions recorded",
		},
		[]string{"kind"},
	)

	storeOperations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of contact graph store operations",
		},
		[]string{"operation", "status"},
	)

	storeDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Contact graph store operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		suggestionsComputed,
		candidatesDiscovered,
		brokenEdgesSkipped,
		actionsRecorded,
		storeOperations,
		storeDuration,
	)

	globalCollector = &Collector{
		registry:             registry,
		HTTPRequests:         httpRequests,
		HTTPDuration:         httpDuration,
		SuggestionsComputed:  suggestionsComputed,
		CandidatesDiscovered: candidatesDiscovered,
		BrokenEdgesSkipped:   brokenEdgesSkipped,
		ActionsRecorded:      actionsRecorded,
		StoreOperations:      storeOperations,
		StoreDuration:        storeDuration,
	}
	return globalCollector
}

// Handler returns an HTTP handler exposing the registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
