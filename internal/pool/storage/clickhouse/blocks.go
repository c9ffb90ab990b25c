package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
)

// HasBlock reports whether a block is stored.
func (s *Store) HasBlock(ctx context.Context, blockNum uint64) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("has_block", err, start)
	}()

	const query = `
SELECT count()
FROM chain_blocks
WHERE block_num = ?`

	count, err := queryCount(ctx, s.conn, query, blockNum)
	if err != nil {
		return false, fmt.Errorf("count block %d: %w", blockNum, err)
	}
	return count > 0, nil
}

// GetBlock reads a stored block.
func (s *Store) GetBlock(ctx context.Context, blockNum uint64) (block model.RepositoryBlock, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("get_block", err, start)
	}()

	const query = `
SELECT version, difficulty, checksum, timestamp
FROM chain_blocks FINAL
WHERE block_num = ?
LIMIT 1`

	rows, err := s.conn.Query(ctx, query, blockNum)
	if err != nil {
		return model.RepositoryBlock{}, fmt.Errorf("query block %d: %w", blockNum, err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.RepositoryBlock{}, fmt.Errorf("iterate block %d: %w", blockNum, err)
		}
		err = fmt.Errorf("get block %d: %w", blockNum, model.ErrNotFound)
		return model.RepositoryBlock{}, err
	}

	var checksum string
	block.BlockNum = blockNum
	if err = rows.Scan(&block.Version, &block.Difficulty, &checksum, &block.Timestamp); err != nil {
		return model.RepositoryBlock{}, fmt.Errorf("scan block %d: %w", blockNum, err)
	}
	block.Checksum = []byte(checksum)
	block.Timestamp = block.Timestamp.UTC()

	if err = rows.Err(); err != nil {
		return model.RepositoryBlock{}, fmt.Errorf("iterate block %d: %w", blockNum, err)
	}
	return block, nil
}

// AddBlock stores a block.
func (s *Store) AddBlock(ctx context.Context, block model.RepositoryBlock) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("add_block", err, start)
	}()

	const query = `
INSERT INTO chain_blocks (
	block_num,
	version,
	difficulty,
	checksum,
	timestamp,
	updated_at
) VALUES`

	batch, err := s.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}
	if err = batch.Append(
		block.BlockNum,
		block.Version,
		block.Difficulty,
		string(block.Checksum),
		block.Timestamp,
		s.now(),
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append block: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

// CleanUpBlocks deletes blocks and solver sets below the bound.
func (s *Store) CleanUpBlocks(ctx context.Context, below uint64) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("clean_up_blocks", err, start)
	}()

	if err = s.conn.Exec(ctx, `DELETE FROM chain_blocks WHERE block_num < ?`, below); err != nil {
		return fmt.Errorf("delete blocks below %d: %w", below, err)
	}
	if err = s.conn.Exec(ctx, `DELETE FROM block_solvers WHERE target < ?`, below); err != nil {
		return fmt.Errorf("delete solvers below %d: %w", below, err)
	}
	return nil
}
