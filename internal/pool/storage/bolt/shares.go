package bolt

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.etcd.io/bbolt"
)

// AddShare appends a share and indexes its nonce.
func (s *Store) AddShare(_ context.Context, share model.Share) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("add_share", err, start)
	}()

	data, err := encode(shareRecord{
		MinerID:       share.MinerID,
		WorkerID:      share.WorkerID,
		Timestamp:     toMillis(share.Timestamp),
		BlockNum:      share.BlockNum,
		Difficulty:    share.Difficulty,
		Nonce:         share.Nonce,
		BlockResolved: share.BlockResolved,
		Processed:     share.Processed,
	})
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		nonces := tx.Bucket(bucketShareNonces)
		if nonces.Get([]byte(share.Nonce)) != nil {
			return fmt.Errorf("%w: %s", model.ErrDuplicateNonce, share.Nonce)
		}
		b := tx.Bucket(bucketShares)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := u64Key(seq)
		if err := b.Put(key, data); err != nil {
			return err
		}
		return nonces.Put([]byte(share.Nonce), key)
	})
	if err != nil {
		return fmt.Errorf("add share: %w", err)
	}
	return nil
}

// ShareExists reports whether a nonce was already recorded.
func (s *Store) ShareExists(_ context.Context, nonce string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("share_exists", err, start)
	}()

	var found bool
	err = s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketShareNonces).Get([]byte(nonce)) != nil
		return nil
	})
	return found, err
}

// CleanUpShares deletes processed shares older than the cutoff.
func (s *Store) CleanUpShares(_ context.Context, before time.Time) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("clean_up_shares", err, start)
	}()

	cutoff := toMillis(before)
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketShares)
		nonces := tx.Bucket(bucketShareNonces)

		type stale struct{ key, nonce []byte }
		var victims []stale
		err := b.ForEach(func(k, v []byte) error {
			var rec shareRecord
			if err := decode(v, &rec); err != nil {
				return err
			}
			if rec.Processed && rec.Timestamp < cutoff {
				victims = append(victims, stale{key: bytes.Clone(k), nonce: []byte(rec.Nonce)})
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, v := range victims {
			if err := b.Delete(v.key); err != nil {
				return err
			}
			if err := nonces.Delete(v.nonce); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clean up shares: %w", err)
	}
	return nil
}
