package blockrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SolvedIndex maps a target block number to the solvers seen on chain for it.
type SolvedIndex struct {
	logger  *zap.Logger
	storage Storage

	// writeMu serializes Record so the reward split and its persisted copy stay in step.
	writeMu sync.Mutex
	mu      sync.RWMutex
	solvers map[uint64][]model.BlockSolver
}

// NewSolvedIndex builds an empty index backed by storage.
func NewSolvedIndex(storage Storage, logger *zap.Logger) (*SolvedIndex, error) {
	if storage == nil {
		return nil, errors.New("solved index storage is required")
	}
	return &SolvedIndex{
		logger:  logger.Named("solvedIndex"),
		storage: storage,
		solvers: make(map[uint64][]model.BlockSolver),
	}, nil
}

// IsSolved reports whether any solver is known for the target.
func (i *SolvedIndex) IsSolved(target uint64) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.solvers[target]) > 0
}

// Solvers returns a copy of the solvers recorded for the target.
func (i *SolvedIndex) Solvers(target uint64) []model.BlockSolver {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return cloneSolvers(i.solvers[target])
}

// Record appends a solver to its target, splits totalReward evenly across all
// solvers of that target and replaces the persisted set.
func (i *SolvedIndex) Record(ctx context.Context, solver model.BlockSolver, totalReward decimal.Decimal) ([]model.BlockSolver, error) {
	i.writeMu.Lock()
	defer i.writeMu.Unlock()

	i.mu.Lock()
	current := i.solvers[solver.BlockNum]
	for _, s := range current {
		if s.TxID == solver.TxID {
			i.mu.Unlock()
			return cloneSolvers(current), nil
		}
	}
	updated := make([]model.BlockSolver, 0, len(current)+1)
	updated = append(updated, current...)
	updated = append(updated, solver.Clone())

	share := totalReward.Div(decimal.NewFromInt(int64(len(updated))))
	for idx := range updated {
		updated[idx].Reward = share
	}
	i.solvers[solver.BlockNum] = updated
	snapshot := cloneSolvers(updated)
	i.mu.Unlock()

	if err := i.storage.ReplaceBlockSolvers(ctx, solver.BlockNum, snapshot); err != nil {
		i.logger.Error("persist block solvers failed", zap.Uint64("target", solver.BlockNum), zap.Error(err))
		return snapshot, fmt.Errorf("replace solvers of block %d: %w", solver.BlockNum, err)
	}
	return snapshot, nil
}

// Restore loads solvers read back from storage without persisting them again.
func (i *SolvedIndex) Restore(solvers []model.BlockSolver) {
	if len(solvers) == 0 {
		return
	}
	i.writeMu.Lock()
	defer i.writeMu.Unlock()
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, s := range solvers {
		known := false
		for _, existing := range i.solvers[s.BlockNum] {
			if existing.TxID == s.TxID {
				known = true
				break
			}
		}
		if !known {
			i.solvers[s.BlockNum] = append(i.solvers[s.BlockNum], s.Clone())
		}
	}
}

// Forget drops targets below the given number.
func (i *SolvedIndex) Forget(below uint64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for target := range i.solvers {
		if target < below {
			delete(i.solvers, target)
		}
	}
}

func cloneSolvers(in []model.BlockSolver) []model.BlockSolver {
	if in == nil {
		return nil
	}
	out := make([]model.BlockSolver, len(in))
	for idx, s := range in {
		out[idx] = s.Clone()
	}
	return out
}
