package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "litepool",
		Subsystem: "sync_engine",
		Name:      "requests_total",
		Help:      "Count of block requests sent to peers.",
	}, []string{"stage", "kind", "status"})

	syncRequestOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "litepool",
		Subsystem: "sync_engine",
		Name:      "request_outcomes_total",
		Help:      "Count of block requests ending by outcome.",
	}, []string{"outcome"})

	syncFinalizeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "litepool",
		Subsystem: "sync_engine",
		Name:      "finalize_duration_seconds",
		Help:      "Duration of block finalization.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	syncFinalizeTransactions = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "litepool",
		Subsystem: "sync_engine",
		Name:      "finalize_transactions",
		Help:      "Number of transactions per finalized block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	})

	syncNetworkHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "litepool",
		Subsystem: "sync_engine",
		Name:      "network_block_height",
		Help:      "Highest block height reported by peers.",
	})

	syncBacklogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "litepool",
		Subsystem: "sync_engine",
		Name:      "backlog_size",
		Help:      "Number of block numbers waiting to be fetched.",
	})
)

// SyncEngine tracks metrics for the block synchronization pipeline.
type SyncEngine struct{}

// NewSyncEngine constructs a SyncEngine metrics collector.
func NewSyncEngine() *SyncEngine {
	return &SyncEngine{}
}

// ObserveRequest records a block request sent to the network.
func (m SyncEngine) ObserveRequest(stage, kind string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncRequestsTotal.WithLabelValues(stage, kind, status).Inc()
}

// ObserveOutcome records how a request ended (finalized, abandoned, reset, fast_path).
func (m SyncEngine) ObserveOutcome(outcome string) {
	syncRequestOutcomesTotal.WithLabelValues(outcome).Inc()
}

// ObserveFinalize records finalization of a block.
func (m SyncEngine) ObserveFinalize(err error, txs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncFinalizeDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	syncFinalizeTransactions.Observe(float64(txs))
}

// SetNetworkHeight publishes the known network height.
func (m SyncEngine) SetNetworkHeight(height uint64) {
	syncNetworkHeight.Set(float64(height))
}

// SetBacklog publishes the backlog length.
func (m SyncEngine) SetBacklog(size int) {
	syncBacklogSize.Set(float64(size))
}
