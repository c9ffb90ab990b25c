package main

import (
	"context"
	"fmt"

	"github.com/bogdanadnan/Ixian-LitePool/internal/metrics"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/blockrepo"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/console"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/mining"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/status"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/syncer"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/storage/bolt"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/storage/clickhouse"
	"go.uber.org/zap"
)

// poolStore is what the node needs from either storage backend.
type poolStore interface {
	blockrepo.Storage
	syncer.SolverSource
	syncer.PaymentVerifier
	mining.PoolBlockStore
	mining.StateStore
	mining.ShareStore
	console.ShareCleaner
	console.Notifications
	status.NotificationSource
	Close() error
}

var (
	_ poolStore = (*bolt.Store)(nil)
	_ poolStore = (*clickhouse.Store)(nil)
)

func openStore(ctx context.Context, logger *zap.Logger) (poolStore, error) {
	cfg := config.Storage
	switch cfg.Backend {
	case backendBolt:
		store, err := bolt.NewStore(cfg.BoltPath, metrics.NewStorage(backendBolt), logger)
		if err != nil {
			return nil, fmt.Errorf("open bolt store: %w", err)
		}
		return store, nil
	case backendClickhouse:
		if cfg.Migrate {
			applied, err := clickhouse.MigrateUp(ctx, cfg.MigrationsDir, cfg.ClickhouseDSN)
			if err != nil {
				return nil, fmt.Errorf("migrate clickhouse: %w", err)
			}
			logger.Info("clickhouse schema ready", zap.Bool("migrated", applied))
		}
		store, err := clickhouse.NewStore(cfg.ClickhouseDSN, metrics.NewStorage(backendClickhouse))
		if err != nil {
			return nil, fmt.Errorf("open clickhouse store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
