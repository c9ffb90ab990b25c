package mining

import (
	"context"
	"errors"
	"fmt"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.uber.org/zap"
)

// activity is a last-seen update for a miner and one of its workers.
// Updates from share submissions carry no hashrate.
type activity struct {
	miner       model.Miner
	worker      model.Worker
	hasHashrate bool
}

func activityKey(a activity) uint64 {
	return a.worker.ID
}

func mergeActivity(prev, next activity) activity {
	if !next.hasHashrate && prev.hasHashrate {
		next.worker.Hashrate = prev.worker.Hashrate
		next.worker.MiningApp = prev.worker.MiningApp
		next.hasHashrate = true
	}
	return next
}

func (s *Service) flushActivity(ctx context.Context, items []activity) error {
	miners := make([]model.Miner, 0, len(items))
	minerIdx := make(map[uint64]int, len(items))
	workers := make([]model.Worker, 0, len(items))

	for _, a := range items {
		if idx, ok := minerIdx[a.miner.ID]; ok {
			if a.miner.LastSeen.After(miners[idx].LastSeen) {
				miners[idx] = a.miner
			}
		} else {
			minerIdx[a.miner.ID] = len(miners)
			miners = append(miners, a.miner)
		}

		w := a.worker
		if !a.hasHashrate {
			existing, err := s.shares.GetWorker(ctx, w.ID)
			switch {
			case err == nil:
				w.Hashrate = existing.Hashrate
				w.MiningApp = existing.MiningApp
			case !errors.Is(err, model.ErrNotFound):
				return fmt.Errorf("read worker %d: %w", w.ID, err)
			}
		}
		workers = append(workers, w)
	}

	var errs []error
	if err := s.shares.UpsertMiners(ctx, miners); err != nil {
		errs = append(errs, err)
	}
	if err := s.shares.UpsertWorkers(ctx, workers); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.Debug("miner activity flushed", zap.Int("miners", len(miners)), zap.Int("workers", len(workers)))
	return nil
}
