package peer

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	libp2ppeer "github.com/libp2p/go-libp2p/core/peer"
	libp2pprotocol "github.com/libp2p/go-libp2p/core/protocol"
	"github.com/libp2p/go-libp2p/p2p/net/connmgr"
	ma "github.com/multiformats/go-multiaddr"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNoPeers is returned when no connected peer can take a request.
var ErrNoPeers = errors.New("no connected peers")

// Info describes a connected peer.
type Info struct {
	Endpoint protocol.Endpoint
	Addrs    []string
	Height   uint64
}

// Node is a libp2p host speaking the pool message protocol.
type Node struct {
	logger  *zap.Logger
	host    host.Host
	handler Handler
	metrics Metrics
	cfg     Config
	intn    func(n int) int

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	limiters map[libp2ppeer.ID]*rate.Limiter
	heights  map[protocol.Endpoint]uint64
}

// NewNode starts a libp2p host listening on cfg.ListenAddrs. Inbound messages
// are dispatched to handler.
func NewNode(ctx context.Context, cfg Config, handler Handler, metrics Metrics, logger *zap.Logger) (*Node, error) {
	switch {
	case handler == nil:
		return nil, errors.New("peer handler is required")
	case metrics == nil:
		return nil, errors.New("peer metrics is required")
	}
	cfg = cfg.withDefaults()

	cm, err := connmgr.NewConnManager(min(defaultLowWater, cfg.MaxPeers), cfg.MaxPeers, connmgr.WithGracePeriod(time.Minute))
	if err != nil {
		return nil, fmt.Errorf("create connection manager: %w", err)
	}
	h, err := libp2p.New(
		libp2p.ListenAddrStrings(cfg.ListenAddrs...),
		libp2p.ConnectionManager(cm),
	)
	if err != nil {
		return nil, fmt.Errorf("create libp2p host: %w", err)
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	n := &Node{
		logger:   logger.Named("peer"),
		host:     h,
		handler:  handler,
		metrics:  metrics,
		cfg:      cfg,
		intn:     rand.IntN,
		ctx:      ctx,
		cancel:   cancel,
		limiters: make(map[libp2ppeer.ID]*rate.Limiter),
		heights:  make(map[protocol.Endpoint]uint64),
	}
	h.SetStreamHandler(libp2pprotocol.ID(protocol.ProtocolID), n.handleStream)
	h.Network().Notify(&network.NotifyBundle{
		ConnectedF:    func(network.Network, network.Conn) { n.updateConnected() },
		DisconnectedF: n.disconnected,
	})

	for _, addr := range n.Addrs() {
		n.logger.Info("listening", zap.String("addr", addr))
	}
	return n, nil
}

// ID returns the local peer id.
func (n *Node) ID() protocol.Endpoint {
	return protocol.Endpoint(n.host.ID().String())
}

// Addrs returns the dialable addresses of this node including the peer id.
func (n *Node) Addrs() []string {
	out := make([]string, 0, len(n.host.Addrs()))
	for _, addr := range n.host.Addrs() {
		out = append(out, fmt.Sprintf("%s/p2p/%s", addr, n.host.ID()))
	}
	return out
}

// Peers returns the connected peers with their last announced heights.
func (n *Node) Peers() []Info {
	ids := n.host.Network().Peers()
	out := make([]Info, 0, len(ids))

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, id := range ids {
		ep := protocol.Endpoint(id.String())
		info := Info{Endpoint: ep, Height: n.heights[ep]}
		for _, addr := range n.host.Peerstore().Addrs(id) {
			info.Addrs = append(info.Addrs, addr.String())
		}
		out = append(out, info)
	}
	return out
}

// PeerCount returns the number of connected peers.
func (n *Node) PeerCount() int {
	return len(n.host.Network().Peers())
}

// Close stops inbound handling and shuts the host down.
func (n *Node) Close() error {
	n.cancel()
	n.host.RemoveStreamHandler(libp2pprotocol.ID(protocol.ProtocolID))
	if err := n.host.Close(); err != nil {
		return fmt.Errorf("close libp2p host: %w", err)
	}
	return nil
}

func (n *Node) updateConnected() {
	n.metrics.SetConnected(n.PeerCount())
}

func (n *Node) disconnected(nw network.Network, conn network.Conn) {
	id := conn.RemotePeer()
	if nw.Connectedness(id) != network.Connected {
		n.mu.Lock()
		delete(n.limiters, id)
		delete(n.heights, protocol.Endpoint(id.String()))
		n.mu.Unlock()
	}
	n.updateConnected()
}

func (n *Node) limiter(id libp2ppeer.ID) *rate.Limiter {
	n.mu.Lock()
	defer n.mu.Unlock()
	l, ok := n.limiters[id]
	if !ok {
		l = rate.NewLimiter(rate.Limit(n.cfg.InboundRate), n.cfg.InboundBurst)
		n.limiters[id] = l
	}
	return l
}

func (n *Node) recordHeight(from protocol.Endpoint, height uint64) {
	n.mu.Lock()
	if height > n.heights[from] {
		n.heights[from] = height
	}
	n.mu.Unlock()
}

func parseBootstrap(addrs []string) ([]libp2ppeer.AddrInfo, error) {
	infos := make([]libp2ppeer.AddrInfo, 0, len(addrs))
	for _, raw := range addrs {
		maddr, err := ma.NewMultiaddr(raw)
		if err != nil {
			return nil, fmt.Errorf("parse bootstrap address %q: %w", raw, err)
		}
		info, err := libp2ppeer.AddrInfoFromP2pAddr(maddr)
		if err != nil {
			return nil, fmt.Errorf("parse bootstrap peer %q: %w", raw, err)
		}
		infos = append(infos, *info)
	}
	return infos, nil
}
