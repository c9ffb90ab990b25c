package syncer

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
	"go.uber.org/zap"
)

// finalize turns a completed request into a repository block and processes
// its transactions. Storage failures are logged and do not stop the pipeline.
func (e *Engine) finalize(ctx context.Context, r *request) {
	started := time.Now()
	var errs []error

	block := model.RepositoryBlock{
		BlockNum:   r.header.BlockNum,
		Version:    r.header.Version,
		Difficulty: r.header.Difficulty,
		Checksum:   r.header.Checksum,
		Timestamp:  time.Unix(r.header.Timestamp, 0).UTC(),
	}
	if e.repo.Add(ctx, block) {
		if err := e.repo.Persist(ctx, block); err != nil {
			errs = append(errs, err)
		}
	}

	var paymentIDs []string
	for _, tx := range r.txs {
		switch tx.Type {
		case protocol.TxPoWSolution:
			if err := e.recordSolution(ctx, r.blockNum, tx); err != nil {
				errs = append(errs, err)
			}
		case protocol.TxNormal:
			paymentIDs = append(paymentIDs, hex.EncodeToString(tx.ID))
		}
	}

	if len(paymentIDs) > 0 && e.payments != nil {
		verified, err := e.payments.VerifyPayments(ctx, paymentIDs)
		if err != nil {
			e.logger.Warn("payment verification failed", zap.Uint64("block", r.blockNum), zap.Error(err))
			errs = append(errs, err)
		} else if verified > 0 {
			e.logger.Info("payments confirmed", zap.Uint64("block", r.blockNum), zap.Int("count", verified))
		}
	}

	e.repo.EvictIfOverCapacity(ctx)
	if horizon := e.horizon(); horizon > 0 {
		if err := e.repo.CleanUpOlderThan(ctx, horizon); err != nil {
			errs = append(errs, err)
		}
		e.solved.Forget(horizon)
	}

	err := errors.Join(errs...)
	e.metrics.ObserveFinalize(err, len(r.txs), started)
	e.metrics.ObserveOutcome(outcomeFinalized)
	e.logger.Debug("block finalized",
		zap.Uint64("block", r.blockNum),
		zap.String("kind", r.kind()),
		zap.Int("transactions", len(r.txs)),
		zap.Error(err),
	)
}

func (e *Engine) recordSolution(ctx context.Context, minedIn uint64, tx protocol.Transaction) error {
	target, err := protocol.DecodePoWSolution(tx.Data)
	if err != nil {
		e.logger.Warn("malformed solution transaction", zap.String("tx", hex.EncodeToString(tx.ID)), zap.Error(err))
		return nil
	}

	solver := model.BlockSolver{
		BlockNum:      target,
		MinedIn:       minedIn,
		SolverAddress: tx.From,
		TxID:          hex.EncodeToString(tx.ID),
	}
	_, recordErr := e.solved.Record(ctx, solver, e.consensus.MiningReward(target))

	resolution := model.SolvedByOther
	if bytes.Equal(tx.From, e.ownAddress) {
		resolution = model.SolvedByPool
	}
	if err := e.listener.NotifyResolution(ctx, target, resolution); err != nil {
		e.logger.Warn("resolution event dropped",
			zap.Uint64("target", target),
			zap.Stringer("resolution", resolution),
			zap.Error(err),
		)
	}
	return recordErr
}
