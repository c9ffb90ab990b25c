package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	miningSharesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "litepool",
		Subsystem: "mining",
		Name:      "shares_total",
		Help:      "Count of share submissions by outcome.",
	}, []string{"status"})

	miningShareDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "litepool",
		Subsystem: "mining",
		Name:      "share_duration_seconds",
		Help:      "Duration of share verification.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"status"})

	miningResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "litepool",
		Subsystem: "mining",
		Name:      "block_resolutions_total",
		Help:      "Count of active block resets by resolution.",
	}, []string{"resolution"})

	miningActiveBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "litepool",
		Subsystem: "mining",
		Name:      "active_block",
		Help:      "Block number currently presented to miners, zero when none.",
	})

	miningPoolDifficulty = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "litepool",
		Subsystem: "mining",
		Name:      "pool_difficulty",
		Help:      "Adjusted pool difficulty.",
	})

	miningSharesPerSecond = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "litepool",
		Subsystem: "mining",
		Name:      "shares_per_second",
		Help:      "Accepted shares per second over the last window.",
	})
)

// Mining tracks metrics for block selection, difficulty and shares.
type Mining struct{}

// NewMining constructs a Mining metrics collector.
func NewMining() *Mining {
	return &Mining{}
}

// ObserveShare records the outcome of a share submission.
func (m Mining) ObserveShare(status string, started time.Time) {
	miningSharesTotal.WithLabelValues(status).Inc()
	miningShareDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveResolution records an active block reset.
func (m Mining) ObserveResolution(resolution string) {
	miningResolutionsTotal.WithLabelValues(resolution).Inc()
}

// SetActiveBlock publishes the active block number.
func (m Mining) SetActiveBlock(blockNum uint64) {
	miningActiveBlock.Set(float64(blockNum))
}

// SetPoolDifficulty publishes the adjusted difficulty.
func (m Mining) SetPoolDifficulty(difficulty uint64) {
	miningPoolDifficulty.Set(float64(difficulty))
}

// SetSharesPerSecond publishes the measured share rate.
func (m Mining) SetSharesPerSecond(rate float64) {
	miningSharesPerSecond.Set(rate)
}
