package peer

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
	"github.com/libp2p/go-libp2p/core/network"
	"go.uber.org/zap"
)

const (
	statusOK      = "ok"
	statusLimited = "limited"
	statusInvalid = "invalid"
	statusIgnored = "ignored"
	statusFailed  = "failed"
)

func (n *Node) handleStream(stream network.Stream) {
	defer stream.Close()
	_ = stream.SetReadDeadline(time.Now().Add(streamTimeout))

	remote := stream.Conn().RemotePeer()
	from := protocol.Endpoint(remote.String())

	if !n.limiter(remote).Allow() {
		n.metrics.ObserveInbound("unknown", statusLimited)
		n.logger.Debug("peer over inbound rate", zap.String("peer", string(from)))
		_ = stream.Reset()
		return
	}

	data, err := io.ReadAll(io.LimitReader(stream, protocol.MaxMessageSize+1))
	if err != nil {
		n.metrics.ObserveInbound("unknown", statusInvalid)
		n.logger.Debug("peer read failed", zap.String("peer", string(from)), zap.Error(err))
		return
	}

	env, err := protocol.DecodeEnvelope(data)
	if err != nil {
		n.metrics.ObserveInbound("unknown", statusInvalid)
		n.logger.Debug("peer sent malformed envelope", zap.String("peer", string(from)), zap.Error(err))
		return
	}

	status := statusOK
	if err := n.dispatch(n.ctx, env, from); err != nil {
		status = statusFailed
		if errors.Is(err, errIgnored) {
			status = statusIgnored
		} else {
			n.logger.Debug("peer message not handled",
				zap.Stringer("type", env.Type),
				zap.String("peer", string(from)),
				zap.Error(err),
			)
		}
	}
	n.metrics.ObserveInbound(env.Type.String(), status)
}

var errIgnored = errors.New("message ignored")

func (n *Node) dispatch(ctx context.Context, env *protocol.Envelope, from protocol.Endpoint) error {
	switch env.Type {
	case protocol.MsgBlockHeader:
		if block, err := protocol.DecodeBlock(env.Payload); err == nil {
			n.recordHeight(from, block.BlockNum)
		}
		return n.handler.OnBlockHeader(ctx, env.Payload, from)
	case protocol.MsgTransactionChunk:
		return n.handler.OnTransactionChunk(ctx, env.Payload, from)
	case protocol.MsgInventory:
		if inv, err := protocol.DecodeInventory(env.Payload); err == nil {
			for _, item := range inv.Items {
				if item.Type == protocol.InvBlock {
					n.recordHeight(from, item.BlockNum)
				}
			}
		}
		return n.handler.OnInventory(ctx, env.Payload, from)
	case protocol.MsgHeightAnnouncement:
		if ann, err := protocol.DecodeHeightAnnouncement(env.Payload); err == nil {
			n.recordHeight(from, ann.BlockNum)
		}
		return n.handler.OnBlockHeightAnnouncement(ctx, env.Payload, from)
	default:
		// the pool does not serve blocks or relay transactions
		return errIgnored
	}
}
