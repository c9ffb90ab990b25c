package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// PoolStates returns the latest value of every pool state key.
func (s *Store) PoolStates(ctx context.Context) (out map[string]string, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("pool_states", err, start)
	}()

	const query = `
SELECT key, argMax(value, updated_at)
FROM pool_state
GROUP BY key`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query pool state: %w", err)
	}
	defer closeRows(rows, &err)

	out = make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan pool state: %w", err)
		}
		out[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pool state: %w", err)
	}
	return out, nil
}

// SetPoolState writes a new value for a key.
func (s *Store) SetPoolState(ctx context.Context, key, value string) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("set_pool_state", err, start)
	}()

	batch, err := s.conn.PrepareBatch(ctx, `INSERT INTO pool_state (key, value, updated_at) VALUES`)
	if err != nil {
		return fmt.Errorf("prepare pool state batch: %w", err)
	}
	if err = batch.Append(key, value, s.now()); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append pool state %s: %w", key, err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert pool state %s: %w", key, err)
	}
	return nil
}
