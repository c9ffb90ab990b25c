package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storageOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "litepool",
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "Count of persistent store operations.",
	}, []string{"operation", "backend", "status"})
	storageOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "litepool",
		Subsystem: "storage",
		Name:      "operation_duration_seconds",
		Help:      "Duration of persistent store operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "backend", "status"})
)

// Storage tracks metrics for persistent store operations.
type Storage struct {
	backend string
}

// NewStorage creates a Storage metrics collector for a backend name.
func NewStorage(backend string) *Storage {
	if backend == "" {
		backend = "unknown"
	}
	return &Storage{backend: backend}
}

// Observe records duration and status of a store operation.
func (m Storage) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	storageOperationsTotal.WithLabelValues(operation, m.backend, status).Inc()
	storageOperationDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}
