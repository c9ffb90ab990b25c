package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
)

// UpsertMiners writes miner activity rows.
func (s *Store) UpsertMiners(ctx context.Context, miners []model.Miner) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_miners", err, start)
	}()

	if len(miners) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `INSERT INTO miners (id, address, last_seen) VALUES`)
	if err != nil {
		return fmt.Errorf("prepare miners batch: %w", err)
	}
	for _, m := range miners {
		if err = batch.Append(m.ID, m.Address, m.LastSeen); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append miner %d: %w", m.ID, err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert miners: %w", err)
	}
	return nil
}

// UpsertWorkers writes worker activity rows.
func (s *Store) UpsertWorkers(ctx context.Context, workers []model.Worker) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_workers", err, start)
	}()

	if len(workers) == 0 {
		return nil
	}

	const query = `
INSERT INTO workers (
	id,
	miner_id,
	name,
	mining_app,
	hashrate,
	last_seen
) VALUES`

	batch, err := s.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare workers batch: %w", err)
	}
	for _, w := range workers {
		if err = batch.Append(w.ID, w.MinerID, w.Name, w.MiningApp, w.Hashrate, w.LastSeen); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append worker %d: %w", w.ID, err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert workers: %w", err)
	}
	return nil
}

// GetWorker reads the latest row of a worker.
func (s *Store) GetWorker(ctx context.Context, id uint64) (w model.Worker, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("get_worker", err, start)
	}()

	const query = `
SELECT miner_id, name, mining_app, hashrate, last_seen
FROM workers FINAL
WHERE id = ?
LIMIT 1`

	rows, err := s.conn.Query(ctx, query, id)
	if err != nil {
		return model.Worker{}, fmt.Errorf("query worker %d: %w", id, err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Worker{}, fmt.Errorf("iterate worker %d: %w", id, err)
		}
		err = fmt.Errorf("get worker %d: %w", id, model.ErrNotFound)
		return model.Worker{}, err
	}

	w.ID = id
	if err = rows.Scan(&w.MinerID, &w.Name, &w.MiningApp, &w.Hashrate, &w.LastSeen); err != nil {
		return model.Worker{}, fmt.Errorf("scan worker %d: %w", id, err)
	}
	w.LastSeen = w.LastSeen.UTC()
	return w, rows.Err()
}
