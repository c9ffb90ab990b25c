// Package mining presents the active block to miners, verifies their shares
// and adapts the pool difficulty to the observed share rate.
package mining

import (
	"context"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		Get(blockNum uint64) (model.RepositoryBlock, bool)
		Candidates(exclude func(blockNum uint64) bool) []model.RepositoryBlock
	}
	SolvedChecker interface {
		IsSolved(target uint64) bool
	}
	PoolBlockStore interface {
		GetPoolBlock(ctx context.Context, blockNum uint64) (model.PoolBlockRecord, error)
		UpsertPoolBlock(ctx context.Context, rec model.PoolBlockRecord) error
	}
	StateStore interface {
		PoolStates(ctx context.Context) (map[string]string, error)
		SetPoolState(ctx context.Context, key, value string) error
	}
	ShareStore interface {
		ShareExists(ctx context.Context, nonce string) (bool, error)
		AddShare(ctx context.Context, share model.Share) error
		UpsertMiners(ctx context.Context, miners []model.Miner) error
		UpsertWorkers(ctx context.Context, workers []model.Worker) error
		GetWorker(ctx context.Context, id uint64) (model.Worker, error)
	}
	Wallet interface {
		PrimaryAddress() []byte
		SendSolution(ctx context.Context, blockNum uint64, nonce string) error
	}
	CacheInvalidator interface {
		Purge()
	}
	Metrics interface {
		ObserveShare(status string, started time.Time)
		ObserveResolution(resolution string)
		SetActiveBlock(blockNum uint64)
		SetPoolDifficulty(difficulty uint64)
		SetSharesPerSecond(rate float64)
	}
)

type (
	ActiveBlockReader interface {
		ActiveBlock() (model.ActivePoolBlock, bool)
	}
)
