package console

import (
	"context"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/status"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/syncer"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Sync interface {
		Pause()
		Resume()
		Status() syncer.Status
		RequestBlock(blockNum uint64) bool
	}
	Blocks interface {
		Get(blockNum uint64) (model.RepositoryBlock, bool)
		CleanUpOlderThan(ctx context.Context, below uint64) error
	}
	Solvers interface {
		Solvers(target uint64) []model.BlockSolver
	}
	ShareCleaner interface {
		CleanUpShares(ctx context.Context, before time.Time) error
	}
	Notifications interface {
		AddNotification(ctx context.Context, n model.Notification) (uint64, error)
		SetNotificationActive(ctx context.Context, id uint64, active bool) error
	}
	APILock interface {
		Lock()
		Unlock()
		Locked() bool
	}
	Difficulty interface {
		Adjusted() uint64
		Difficulty() uint64
		SetDifficulty(ctx context.Context, difficulty uint64) error
	}
	Wallet interface {
		PrimaryAddress() []byte
		Balance(ctx context.Context, address []byte) (decimal.Decimal, error)
	}
	StatusReporter interface {
		Snapshot(ctx context.Context) status.Snapshot
	}
	Consensus interface {
		RedactedWindowSize() uint64
	}
)
