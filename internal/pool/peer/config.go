package peer

import "time"

const (
	defaultInboundRate  = 50
	defaultInboundBurst = 100
	defaultDialWorkers  = 4
	defaultLowWater     = 16
	defaultHighWater    = 64
	streamTimeout       = 30 * time.Second
	dialTimeout         = 10 * time.Second
)

// Config configures the peer node.
type Config struct {
	ListenAddrs []string
	// Bootstrap holds full multiaddrs including the /p2p/<id> suffix.
	Bootstrap []string
	MaxPeers  int
	// InboundRate is the messages per second accepted from a single peer.
	InboundRate  float64
	InboundBurst int
	DialWorkers  int
}

func (c Config) withDefaults() Config {
	if len(c.ListenAddrs) == 0 {
		c.ListenAddrs = []string{"/ip4/0.0.0.0/tcp/10234"}
	}
	if c.MaxPeers <= 0 {
		c.MaxPeers = defaultHighWater
	}
	if c.InboundRate <= 0 {
		c.InboundRate = defaultInboundRate
	}
	if c.InboundBurst <= 0 {
		c.InboundBurst = defaultInboundBurst
	}
	if c.DialWorkers <= 0 {
		c.DialWorkers = defaultDialWorkers
	}
	return c
}
