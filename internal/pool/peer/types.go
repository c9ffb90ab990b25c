// Package peer carries protocol messages between the pool and block relay
// peers over libp2p streams.
package peer

import (
	"context"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Handler interface {
		OnBlockHeader(ctx context.Context, payload []byte, from protocol.Endpoint) error
		OnTransactionChunk(ctx context.Context, payload []byte, from protocol.Endpoint) error
		OnInventory(ctx context.Context, payload []byte, from protocol.Endpoint) error
		OnBlockHeightAnnouncement(ctx context.Context, payload []byte, from protocol.Endpoint) error
	}
	Metrics interface {
		ObserveInbound(msgType, status string)
		ObserveSend(msgType string, err error, started time.Time)
		SetConnected(n int)
	}
)
