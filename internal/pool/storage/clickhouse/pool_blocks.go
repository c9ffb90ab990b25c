package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
)

// GetPoolBlock reads the latest pool record of a block.
func (s *Store) GetPoolBlock(ctx context.Context, blockNum uint64) (rec model.PoolBlockRecord, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("get_pool_block", err, start)
	}()

	const query = `
SELECT mining_start, mining_end, resolution, pool_difficulty
FROM pool_blocks FINAL
WHERE block_num = ?
LIMIT 1`

	rows, err := s.conn.Query(ctx, query, blockNum)
	if err != nil {
		return model.PoolBlockRecord{}, fmt.Errorf("query pool block %d: %w", blockNum, err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.PoolBlockRecord{}, fmt.Errorf("iterate pool block %d: %w", blockNum, err)
		}
		err = fmt.Errorf("get pool block %d: %w", blockNum, model.ErrNotFound)
		return model.PoolBlockRecord{}, err
	}

	var (
		end        *time.Time
		resolution uint8
	)
	rec.BlockNum = blockNum
	if err = rows.Scan(&rec.MiningStart, &end, &resolution, &rec.PoolDifficulty); err != nil {
		return model.PoolBlockRecord{}, fmt.Errorf("scan pool block %d: %w", blockNum, err)
	}
	rec.MiningStart = rec.MiningStart.UTC()
	if end != nil {
		utc := end.UTC()
		rec.MiningEnd = &utc
	}
	rec.Resolution = model.Resolution(resolution)

	if err = rows.Err(); err != nil {
		return model.PoolBlockRecord{}, fmt.Errorf("iterate pool block %d: %w", blockNum, err)
	}
	return rec, nil
}

// UpsertPoolBlock writes a new version of a pool block record.
func (s *Store) UpsertPoolBlock(ctx context.Context, rec model.PoolBlockRecord) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_pool_block", err, start)
	}()

	const query = `
INSERT INTO pool_blocks (
	block_num,
	mining_start,
	mining_end,
	resolution,
	pool_difficulty,
	updated_at
) VALUES`

	batch, err := s.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare pool block batch: %w", err)
	}
	if err = batch.Append(
		rec.BlockNum,
		rec.MiningStart,
		rec.MiningEnd,
		uint8(rec.Resolution),
		rec.PoolDifficulty,
		s.now(),
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append pool block: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert pool block %d: %w", rec.BlockNum, err)
	}
	return nil
}
