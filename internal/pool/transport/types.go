// Package transport serves the miner-facing JSON-RPC API over HTTP.
package transport

import (
	"context"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/mining"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/status"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Mining interface {
		GetMiningBlock(ctx context.Context, req mining.MiningBlockRequest) (mining.MiningBlock, error)
		RecordActivity(ctx context.Context, req mining.MiningBlockRequest)
		SubmitShare(ctx context.Context, req mining.ShareRequest) (bool, error)
		VerifySolution(ctx context.Context, nonce string, blockNum, difficulty uint64) (bool, error)
	}
	Wallet interface {
		PrimaryAddress() []byte
		Balance(ctx context.Context, address []byte) (decimal.Decimal, error)
	}
	StatusReporter interface {
		Snapshot(ctx context.Context) status.Snapshot
	}
	Metrics interface {
		Observe(method string, code int, started time.Time)
		ObserveCache(hit bool)
	}
)
