package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "litepool",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Count of miner API requests.",
	}, []string{"method", "code"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "litepool",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Duration of miner API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "code"})
	apiCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "litepool",
		Subsystem: "api",
		Name:      "cache_lookups_total",
		Help:      "Count of mining block cache lookups.",
	}, []string{"result"})
)

// API tracks metrics for the miner-facing HTTP API.
type API struct{}

// NewAPI constructs an API metrics collector.
func NewAPI() *API {
	return &API{}
}

// Observe records a request with its RPC error code (0 on success).
func (m API) Observe(method string, code int, started time.Time) {
	if method == "" {
		method = "unknown"
	}
	c := strconv.Itoa(code)
	apiRequestsTotal.WithLabelValues(method, c).Inc()
	apiRequestDuration.WithLabelValues(method, c).Observe(time.Since(started).Seconds())
}

// ObserveCache records a cache hit or miss.
func (m API) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	apiCacheHitsTotal.WithLabelValues(result).Inc()
}
