package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	peerMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "litepool",
		Subsystem: "peer",
		Name:      "messages_total",
		Help:      "Count of peer messages by direction and outcome.",
	}, []string{"direction", "type", "status"})
	peerSendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "litepool",
		Subsystem: "peer",
		Name:      "send_duration_seconds",
		Help:      "Duration of outbound peer messages.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"type", "status"})
	peerConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "litepool",
		Subsystem: "peer",
		Name:      "connected",
		Help:      "Number of connected peers.",
	})
)

// Peer tracks metrics for the peer transport.
type Peer struct{}

// NewPeer constructs a Peer metrics collector.
func NewPeer() *Peer {
	return &Peer{}
}

// ObserveInbound records an inbound message; status is ok, limited or invalid.
func (m Peer) ObserveInbound(msgType, status string) {
	peerMessagesTotal.WithLabelValues("inbound", msgType, status).Inc()
}

// ObserveSend records an outbound message.
func (m Peer) ObserveSend(msgType string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	peerMessagesTotal.WithLabelValues("outbound", msgType, status).Inc()
	peerSendDuration.WithLabelValues(msgType, status).Observe(time.Since(started).Seconds())
}

// SetConnected publishes the connected peer count.
func (m Peer) SetConnected(n int) {
	peerConnected.Set(float64(n))
}
