package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.etcd.io/bbolt"
)

// GetPoolBlock reads the mining session row of a block.
func (s *Store) GetPoolBlock(_ context.Context, blockNum uint64) (model.PoolBlockRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("get_pool_block", err, start)
	}()

	var rec poolBlockRecord
	err = s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketPoolBlocks).Get(u64Key(blockNum))
		if v == nil {
			return model.ErrNotFound
		}
		return decode(v, &rec)
	})
	if err != nil {
		return model.PoolBlockRecord{}, fmt.Errorf("get pool block %d: %w", blockNum, err)
	}

	out := model.PoolBlockRecord{
		BlockNum:       blockNum,
		MiningStart:    fromMillis(rec.MiningStart),
		Resolution:     model.Resolution(rec.Resolution),
		PoolDifficulty: rec.PoolDifficulty,
	}
	if rec.MiningEnd != 0 {
		end := fromMillis(rec.MiningEnd)
		out.MiningEnd = &end
	}
	return out, nil
}

// UpsertPoolBlock writes the mining session row of a block.
func (s *Store) UpsertPoolBlock(_ context.Context, rec model.PoolBlockRecord) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("upsert_pool_block", err, start)
	}()

	stored := poolBlockRecord{
		MiningStart:    toMillis(rec.MiningStart),
		Resolution:     uint8(rec.Resolution),
		PoolDifficulty: rec.PoolDifficulty,
	}
	if rec.MiningEnd != nil {
		stored.MiningEnd = toMillis(*rec.MiningEnd)
	}
	data, err := encode(stored)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPoolBlocks).Put(u64Key(rec.BlockNum), data)
	})
	if err != nil {
		return fmt.Errorf("put pool block %d: %w", rec.BlockNum, err)
	}
	return nil
}
