package syncer

import (
	"context"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Network interface {
		BroadcastGetBlock(ctx context.Context, req protocol.GetBlock, skip, preferred protocol.Endpoint) (protocol.Endpoint, error)
	}
	SolverSource interface {
		BlockSolversByMinedBlock(ctx context.Context, minedIn uint64) ([]model.BlockSolver, error)
	}
	Consensus interface {
		RedactedWindowSize() uint64
		MiningReward(blockNum uint64) decimal.Decimal
	}
	ResolutionListener interface {
		NotifyResolution(ctx context.Context, blockNum uint64, resolution model.Resolution) error
	}
	PaymentVerifier interface {
		VerifyPayments(ctx context.Context, txIDs []string) (int, error)
	}
	Metrics interface {
		ObserveRequest(stage, kind string, err error)
		ObserveOutcome(outcome string)
		ObserveFinalize(err error, txs int, started time.Time)
		SetNetworkHeight(height uint64)
		SetBacklog(size int)
	}
)
