package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.etcd.io/bbolt"
)

// ReplaceBlockSolvers swaps the whole solver set of a target block.
func (s *Store) ReplaceBlockSolvers(_ context.Context, target uint64, solvers []model.BlockSolver) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("replace_block_solvers", err, start)
	}()

	data, err := encode(toSolverRecords(solvers))
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSolvers)
		idx := tx.Bucket(bucketSolversByMine)

		if old := b.Get(u64Key(target)); old != nil {
			var prev []solverRecord
			if err := decode(old, &prev); err != nil {
				return err
			}
			for _, r := range prev {
				if err := idx.Delete(pairKey(r.MinedIn, target)); err != nil {
					return err
				}
			}
		}

		if err := b.Put(u64Key(target), data); err != nil {
			return err
		}
		for _, sv := range solvers {
			if err := idx.Put(pairKey(sv.MinedIn, target), []byte{1}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace solvers of block %d: %w", target, err)
	}
	return nil
}

// BlockSolvers returns the solver set recorded for a target block.
func (s *Store) BlockSolvers(_ context.Context, target uint64) ([]model.BlockSolver, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("block_solvers", err, start)
	}()

	var solvers []model.BlockSolver
	err = s.db.View(func(tx *bbolt.Tx) error {
		solvers, err = readSolvers(tx, target)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read solvers of block %d: %w", target, err)
	}
	return solvers, nil
}

// BlockSolversByMinedBlock returns solvers whose solution transaction was included in minedIn.
func (s *Store) BlockSolversByMinedBlock(_ context.Context, minedIn uint64) ([]model.BlockSolver, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("block_solvers_by_mined_block", err, start)
	}()

	var out []model.BlockSolver
	prefix := u64Key(minedIn)
	err = s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketSolversByMine).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			target := binary.BigEndian.Uint64(k[8:])
			solvers, err := readSolvers(tx, target)
			if err != nil {
				return err
			}
			for _, sv := range solvers {
				if sv.MinedIn == minedIn {
					out = append(out, sv)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read solvers mined in block %d: %w", minedIn, err)
	}
	return out, nil
}

func readSolvers(tx *bbolt.Tx, target uint64) ([]model.BlockSolver, error) {
	v := tx.Bucket(bucketSolvers).Get(u64Key(target))
	if v == nil {
		return nil, nil
	}
	var recs []solverRecord
	if err := decode(v, &recs); err != nil {
		return nil, err
	}
	return fromSolverRecords(target, recs)
}
