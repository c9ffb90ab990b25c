package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walletRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "litepool",
		Subsystem: "wallet_gateway",
		Name:      "operations_total",
		Help:      "Count of DLT node gateway operations.",
	}, []string{"operation", "status"})
	walletRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "litepool",
		Subsystem: "wallet_gateway",
		Name:      "operation_duration_seconds",
		Help:      "Duration of DLT node gateway operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// WalletGateway tracks metrics for calls to the DLT node API.
type WalletGateway struct{}

// NewWalletGateway constructs a metrics collector for gateway calls.
func NewWalletGateway() *WalletGateway {
	return &WalletGateway{}
}

// Observe records a single gateway call outcome and duration.
func (m WalletGateway) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	walletRequestsTotal.WithLabelValues(operation, status).Inc()
	walletRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
