package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "market_dashboard_"

// Service constants
const (
	ServiceMarkets     = "markets"
	ServiceCoins       = "coins"
	ServiceMarketChart = "market-chart"
)

var (
	// Global upstream request counter (all services)
	// Cardinality: ~4 (success, error, rate_limited, http_error)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to the market data API across all services",
		},
		[]string{"status"},
	)

	// Service-specific upstream request counter
	// Cardinality: ~12 (3 services × 4 statuses)
	ServiceUpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_upstream_requests_total",
			Help: "Total number of HTTP requests to the market data API per service",
		},
		[]string{"service", "status"},
	)

	// Service cache size
	// Cardinality: ~3 (number of services)
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)

	// Cache lookups by outcome
	// Cardinality: ~9 (3 services × hit/miss/bypass)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_lookups_total",
			Help: "Cache lookups by service and outcome",
		},
		[]string{"service", "status"},
	)

	// Upstream request latency per endpoint
	// Cardinality: ~3 (one endpoint per service)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "Upstream HTTP request latency by service and endpoint",
		},
		[]string{"service", "endpoint"},
	)

	// Rate limit hits counter
	// Cardinality: ~3 (number of services)
	RateLimitCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "rate_limit_hits_total",
			Help: "Total number of upstream rate limit responses per service",
		},
		[]string{"service"},
	)

	// Inbound HTTP requests served by the dashboard
	// Cardinality: ~40 (routes × status codes)
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "http_requests_total",
			Help: "Requests served by route and status code",
		},
		[]string{"route", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "http_request_duration_seconds",
			Help: "Time to serve a request by route",
		},
		[]string{"route"},
	)
)

// MetricsWriter records metrics for a single service
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordUpstreamRequest counts one upstream request with its outcome
func (mw *MetricsWriter) RecordUpstreamRequest(status string) {
	UpstreamRequestsTotal.WithLabelValues(status).Inc()
	ServiceUpstreamRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordRequestLatency records upstream latency for an endpoint
func (mw *MetricsWriter) RecordRequestLatency(endpoint string, duration time.Duration) {
	RequestLatencyHistogram.WithLabelValues(mw.serviceName, endpoint).Observe(duration.Seconds())
}

// RecordCacheSize records the number of items in service cache
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// RecordCacheLookup counts a cache lookup by outcome (hit, miss, bypass)
func (mw *MetricsWriter) RecordCacheLookup(status string) {
	CacheLookupsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// OnRequest implements coingecko_common.IHttpStatusHandler
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordUpstreamRequest(status)
}

// OnRateLimited implements coingecko_common.IHttpStatusHandler
func (mw *MetricsWriter) OnRateLimited() {
	RateLimitCounter.WithLabelValues(mw.serviceName).Inc()
}

// RecordHTTPRequest records a request served by the dashboard itself
func RecordHTTPRequest(route string, code int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(route, statusLabel(code)).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
