package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.etcd.io/bbolt"
)

// AddPayment records a payout transaction as unverified.
func (s *Store) AddPayment(_ context.Context, p model.Payment) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("add_payment", err, start)
	}()

	data, err := encode(paymentRecord{
		MinerID:   p.MinerID,
		Value:     p.Value.String(),
		Fee:       p.Fee.String(),
		Timestamp: toMillis(p.Timestamp),
		Verified:  p.Verified,
	})
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketPayments).Put([]byte(p.TxID), data)
	})
	if err != nil {
		return fmt.Errorf("add payment %s: %w", p.TxID, err)
	}
	return nil
}

// VerifyPayments marks known unverified payments as confirmed on chain and
// returns how many changed.
func (s *Store) VerifyPayments(_ context.Context, txIDs []string) (int, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("verify_payments", err, start)
	}()

	if len(txIDs) == 0 {
		return 0, nil
	}

	var updated int
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketPayments)
		for _, id := range txIDs {
			v := b.Get([]byte(id))
			if v == nil {
				continue
			}
			var rec paymentRecord
			if err := decode(v, &rec); err != nil {
				return err
			}
			if rec.Verified {
				continue
			}
			rec.Verified = true
			data, err := encode(rec)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(id), data); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("verify payments: %w", err)
	}
	return updated, nil
}
