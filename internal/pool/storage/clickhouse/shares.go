package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
)

// AddShare appends a share. Nonce uniqueness is checked before the insert.
func (s *Store) AddShare(ctx context.Context, share model.Share) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("add_share", err, start)
	}()

	count, err := queryCount(ctx, s.conn, `SELECT count() FROM shares WHERE nonce = ?`, share.Nonce)
	if err != nil {
		return fmt.Errorf("check share nonce: %w", err)
	}
	if count > 0 {
		err = fmt.Errorf("%w: %s", model.ErrDuplicateNonce, share.Nonce)
		return err
	}

	const query = `
INSERT INTO shares (
	miner_id,
	worker_id,
	timestamp,
	block_num,
	difficulty,
	nonce,
	block_resolved,
	processed
) VALUES`

	batch, err := s.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare share batch: %w", err)
	}
	if err = batch.Append(
		share.MinerID,
		share.WorkerID,
		share.Timestamp,
		share.BlockNum,
		share.Difficulty,
		share.Nonce,
		share.BlockResolved,
		share.Processed,
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append share: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert share: %w", err)
	}
	return nil
}

// ShareExists reports whether a nonce was already recorded.
func (s *Store) ShareExists(ctx context.Context, nonce string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("share_exists", err, start)
	}()

	count, err := queryCount(ctx, s.conn, `SELECT count() FROM shares WHERE nonce = ?`, nonce)
	if err != nil {
		return false, fmt.Errorf("check share nonce: %w", err)
	}
	return count > 0, nil
}

// CleanUpShares deletes processed shares older than the cutoff.
func (s *Store) CleanUpShares(ctx context.Context, before time.Time) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("clean_up_shares", err, start)
	}()

	if err = s.conn.Exec(ctx, `DELETE FROM shares WHERE processed AND timestamp < ?`, before); err != nil {
		return fmt.Errorf("delete shares before %s: %w", before.Format(time.RFC3339), err)
	}
	return nil
}
