package peer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
	libp2ppeer "github.com/libp2p/go-libp2p/core/peer"
	libp2pprotocol "github.com/libp2p/go-libp2p/core/protocol"
	"go.uber.org/zap"
)

// BroadcastGetBlock sends req to preferred when it is connected, otherwise to
// a random peer other than skip, favoring peers known to hold the block.
func (n *Node) BroadcastGetBlock(ctx context.Context, req protocol.GetBlock, skip, preferred protocol.Endpoint) (protocol.Endpoint, error) {
	connected := make([]protocol.Endpoint, 0)
	for _, id := range n.host.Network().Peers() {
		connected = append(connected, protocol.Endpoint(id.String()))
	}

	n.mu.Lock()
	target, ok := choosePeer(connected, n.heights, req.BlockNum, skip, preferred, n.intn)
	n.mu.Unlock()
	if !ok {
		return "", ErrNoPeers
	}

	if err := n.Send(ctx, target, protocol.MsgGetBlock, req); err != nil {
		return "", err
	}
	return target, nil
}

// Send opens a stream to the peer and writes a single enveloped message.
func (n *Node) Send(ctx context.Context, to protocol.Endpoint, t protocol.MessageType, msg any) (err error) {
	started := time.Now()
	defer func() {
		n.metrics.ObserveSend(t.String(), err, started)
	}()

	id, err := libp2ppeer.Decode(string(to))
	if err != nil {
		return fmt.Errorf("decode peer id %s: %w", to, err)
	}
	data, err := protocol.Wrap(t, msg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t, err)
	}

	ctx, cancel := context.WithTimeout(ctx, streamTimeout)
	defer cancel()
	stream, err := n.host.NewStream(ctx, id, libp2pprotocol.ID(protocol.ProtocolID))
	if err != nil {
		return fmt.Errorf("open stream to %s: %w", to, err)
	}
	defer stream.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}
	if _, err := stream.Write(data); err != nil {
		_ = stream.Reset()
		return fmt.Errorf("write %s to %s: %w", t, to, err)
	}
	if err := stream.CloseWrite(); err != nil {
		return fmt.Errorf("close stream to %s: %w", to, err)
	}

	n.logger.Debug("message sent", zap.Stringer("type", t), zap.String("peer", string(to)), zap.Int("bytes", len(data)))
	return nil
}

func choosePeer(
	connected []protocol.Endpoint,
	heights map[protocol.Endpoint]uint64,
	blockNum uint64,
	skip, preferred protocol.Endpoint,
	intn func(int) int,
) (protocol.Endpoint, bool) {
	if len(connected) == 0 {
		return "", false
	}
	sort.Slice(connected, func(i, j int) bool { return connected[i] < connected[j] })

	var others, holders []protocol.Endpoint
	for _, ep := range connected {
		if preferred != "" && ep == preferred {
			return ep, true
		}
		if ep == skip {
			continue
		}
		others = append(others, ep)
		if heights[ep] >= blockNum {
			holders = append(holders, ep)
		}
	}

	switch {
	case len(holders) > 0:
		return holders[intn(len(holders))], true
	case len(others) > 0:
		return others[intn(len(others))], true
	}
	// only the skipped peer is left
	return connected[0], true
}
