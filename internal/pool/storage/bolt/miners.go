package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.etcd.io/bbolt"
)

// UpsertMiners writes miner rows keyed by their derived id.
func (s *Store) UpsertMiners(_ context.Context, miners []model.Miner) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_miners", err, start)
	}()

	if len(miners) == 0 {
		return nil
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMiners)
		for _, m := range miners {
			data, err := encode(minerRecord{Address: m.Address, LastSeen: toMillis(m.LastSeen)})
			if err != nil {
				return err
			}
			if err := b.Put(u64Key(m.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert miners: %w", err)
	}
	return nil
}

// UpsertWorkers writes worker rows keyed by their derived id.
func (s *Store) UpsertWorkers(_ context.Context, workers []model.Worker) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_workers", err, start)
	}()

	if len(workers) == 0 {
		return nil
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketWorkers)
		for _, w := range workers {
			data, err := encode(workerRecord{
				MinerID:   w.MinerID,
				Name:      w.Name,
				MiningApp: w.MiningApp,
				Hashrate:  w.Hashrate,
				LastSeen:  toMillis(w.LastSeen),
			})
			if err != nil {
				return err
			}
			if err := b.Put(u64Key(w.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("upsert workers: %w", err)
	}
	return nil
}

// GetWorker reads a worker row.
func (s *Store) GetWorker(_ context.Context, id uint64) (model.Worker, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("get_worker", err, start)
	}()

	var rec workerRecord
	err = s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketWorkers).Get(u64Key(id))
		if v == nil {
			return model.ErrNotFound
		}
		return decode(v, &rec)
	})
	if err != nil {
		return model.Worker{}, fmt.Errorf("get worker %d: %w", id, err)
	}
	return model.Worker{
		ID:        id,
		MinerID:   rec.MinerID,
		Name:      rec.Name,
		MiningApp: rec.MiningApp,
		Hashrate:  rec.Hashrate,
		LastSeen:  fromMillis(rec.LastSeen),
	}, nil
}
