package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
)

const insertPayment = `
INSERT INTO payments (
	tx_id,
	miner_id,
	value,
	fee,
	timestamp,
	verified,
	updated_at
) VALUES`

// AddPayment records a payout transaction.
func (s *Store) AddPayment(ctx context.Context, p model.Payment) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("add_payment", err, start)
	}()

	err = s.writePayments(ctx, []model.Payment{p})
	return err
}

// VerifyPayments marks known unverified payments as confirmed on chain and
// returns how many changed.
func (s *Store) VerifyPayments(ctx context.Context, txIDs []string) (int, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("verify_payments", err, start)
	}()

	if len(txIDs) == 0 {
		return 0, nil
	}

	pending, err := s.unverifiedPayments(ctx, txIDs)
	if err != nil {
		return 0, fmt.Errorf("verify payments: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}
	for i := range pending {
		pending[i].Verified = true
	}
	if err = s.writePayments(ctx, pending); err != nil {
		return 0, fmt.Errorf("verify payments: %w", err)
	}
	return len(pending), nil
}

func (s *Store) unverifiedPayments(ctx context.Context, txIDs []string) (out []model.Payment, err error) {
	const query = `
SELECT tx_id, miner_id, value, fee, timestamp
FROM payments FINAL
WHERE tx_id IN ? AND NOT verified`

	rows, err := s.conn.Query(ctx, query, txIDs)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var p model.Payment
		if err = rows.Scan(&p.TxID, &p.MinerID, &p.Value, &p.Fee, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return out, nil
}

func (s *Store) writePayments(ctx context.Context, payments []model.Payment) error {
	batch, err := s.conn.PrepareBatch(ctx, insertPayment)
	if err != nil {
		return fmt.Errorf("prepare payment batch: %w", err)
	}
	now := s.now()
	for _, p := range payments {
		if err = batch.Append(p.TxID, p.MinerID, p.Value, p.Fee, p.Timestamp, p.Verified, now); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append payment %s: %w", p.TxID, err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert payments: %w", err)
	}
	return nil
}
