package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server that
// exposes it at /metrics.
type Metrics struct {
	// Server exposes the /metrics endpoint for Prometheus scraping.
	Server *http.Server

	// Registry is the service's isolated Prometheus registry. Isolation
	// prevents metric name collisions when multiple services share a process.
	Registry *prometheus.Registry

	// Core built-in metrics
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	matchesReturned  prometheus.Histogram
	embeddingLookups *prometheus.CounterVec
}

// NewMetrics sets up a dedicated registry, registers the built-in metric set
// plus the default Go/process collectors, wraps everything with a constant
// `service` label, and prepares the HTTP server exposing /metrics.
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// Every metric the service emits carries service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec("http_requests_total", "Total number of HTTP requests handled", []string{"endpoint", "status"})
	m.requestDuration = createHistogramVec("http_request_duration_seconds", "Duration of HTTP requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.matchesReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "match_results_returned",
		Help:    "Number of matches returned per match request",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})
	m.embeddingLookups = createCounterVec("embedding_lookups_total", "Embedding lookups by outcome (cache_hit, cache_miss, error)", []string{"outcome"})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.matchesReturned,
		m.embeddingLookups,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
	return m
}
