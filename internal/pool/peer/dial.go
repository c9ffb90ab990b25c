package peer

import (
	"context"
	"fmt"

	"github.com/bogdanadnan/Ixian-LitePool/pkg/workerpool"
	libp2ppeer "github.com/libp2p/go-libp2p/core/peer"
	"go.uber.org/zap"
)

// Connect dials every bootstrap peer. It fails only when peers are configured
// and none of them could be reached.
func (n *Node) Connect(ctx context.Context) error {
	infos, err := parseBootstrap(n.cfg.Bootstrap)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		n.logger.Warn("no bootstrap peers configured")
		return nil
	}

	err = workerpool.ForEach(ctx, n.cfg.DialWorkers, infos, func(ctx context.Context, info libp2ppeer.AddrInfo) error {
		dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()
		if err := n.host.Connect(dialCtx, info); err != nil {
			n.logger.Warn("bootstrap peer unreachable", zap.Stringer("peer", info.ID), zap.Error(err))
			return fmt.Errorf("connect %s: %w", info.ID, err)
		}
		n.logger.Info("bootstrap peer connected", zap.Stringer("peer", info.ID))
		return nil
	})
	if connected := n.PeerCount(); connected == 0 && err != nil {
		return fmt.Errorf("connect bootstrap peers: %w", err)
	}
	return nil
}
