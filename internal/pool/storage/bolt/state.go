package bolt

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// PoolStates returns every stored pool state entry.
func (s *Store) PoolStates(_ context.Context) (map[string]string, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("pool_states", err, start)
	}()

	out := make(map[string]string)
	err = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).ForEach(func(k, v []byte) error {
			out[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read pool state: %w", err)
	}
	return out, nil
}

// SetPoolState stores a pool state entry.
func (s *Store) SetPoolState(_ context.Context, key, value string) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("set_pool_state", err, start)
	}()

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set pool state %s: %w", key, err)
	}
	return nil
}
