package bolt

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.etcd.io/bbolt"
)

// HasBlock reports whether a block is stored.
func (s *Store) HasBlock(_ context.Context, blockNum uint64) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("has_block", err, start)
	}()

	var found bool
	err = s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketBlocks).Get(u64Key(blockNum)) != nil
		return nil
	})
	return found, err
}

// GetBlock reads a stored block.
func (s *Store) GetBlock(_ context.Context, blockNum uint64) (model.RepositoryBlock, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("get_block", err, start)
	}()

	var rec blockRecord
	err = s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketBlocks).Get(u64Key(blockNum))
		if v == nil {
			return model.ErrNotFound
		}
		return decode(v, &rec)
	})
	if err != nil {
		return model.RepositoryBlock{}, fmt.Errorf("get block %d: %w", blockNum, err)
	}

	return model.RepositoryBlock{
		BlockNum:   blockNum,
		Version:    rec.Version,
		Difficulty: rec.Difficulty,
		Checksum:   rec.Checksum,
		Timestamp:  fromMillis(rec.Timestamp),
	}, nil
}

// AddBlock stores a block, replacing any previous copy.
func (s *Store) AddBlock(_ context.Context, block model.RepositoryBlock) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("add_block", err, start)
	}()

	data, err := encode(blockRecord{
		Version:    block.Version,
		Difficulty: block.Difficulty,
		Checksum:   block.Checksum,
		Timestamp:  toMillis(block.Timestamp),
	})
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBlocks).Put(u64Key(block.BlockNum), data)
	})
	if err != nil {
		return fmt.Errorf("put block %d: %w", block.BlockNum, err)
	}
	return nil
}

// CleanUpBlocks deletes blocks and solver sets whose number is below the bound.
func (s *Store) CleanUpBlocks(_ context.Context, below uint64) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("clean_up_blocks", err, start)
	}()

	bound := u64Key(below)
	err = s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketBlocks, bucketSolvers} {
			if err := deleteBelow(tx.Bucket(name), bound); err != nil {
				return err
			}
		}

		idx := tx.Bucket(bucketSolversByMine)
		var stale [][]byte
		c := idx.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if bytes.Compare(k[:8], bound) < 0 || bytes.Compare(k[8:], bound) < 0 {
				stale = append(stale, bytes.Clone(k))
			}
		}
		for _, k := range stale {
			if err := idx.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clean up blocks below %d: %w", below, err)
	}
	return nil
}

func deleteBelow(b *bbolt.Bucket, bound []byte) error {
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.First(); k != nil && bytes.Compare(k, bound) < 0; k, _ = c.Next() {
		keys = append(keys, bytes.Clone(k))
	}
	for _, k := range keys {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}
