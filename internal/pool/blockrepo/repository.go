// Package blockrepo keeps the bounded in-memory window of recent blocks and the
// index of solved targets.
package blockrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.uber.org/zap"
)

// Repository is a bounded map of block number to block.
type Repository struct {
	logger   *zap.Logger
	storage  Storage
	capacity int

	mu              sync.RWMutex
	blocks          map[uint64]model.RepositoryBlock
	minKey          uint64
	lastBlockHeight uint64
	listener        EvictionListener
}

// NewRepository builds a Repository holding at most capacity blocks.
func NewRepository(capacity int, storage Storage, logger *zap.Logger) (*Repository, error) {
	if capacity <= 0 {
		return nil, errors.New("repository capacity must be positive")
	}
	if storage == nil {
		return nil, errors.New("repository storage is required")
	}
	return &Repository{
		logger:   logger.Named("blockRepository"),
		storage:  storage,
		capacity: capacity,
		blocks:   make(map[uint64]model.RepositoryBlock, capacity),
	}, nil
}

// SetEvictionListener registers the subscriber told about evicted block numbers.
func (r *Repository) SetEvictionListener(l EvictionListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listener = l
}

// Capacity returns the configured maximum number of blocks.
func (r *Repository) Capacity() int {
	return r.capacity
}

// Get returns a copy of the block.
func (r *Repository) Get(blockNum uint64) (model.RepositoryBlock, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blocks[blockNum]
	if !ok {
		return model.RepositoryBlock{}, false
	}
	return b.Clone(), true
}

// Contains reports whether the block is held in memory.
func (r *Repository) Contains(blockNum uint64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.blocks[blockNum]
	return ok
}

// Add inserts the block unless one with the same number is already held and
// then evicts the lowest blocks while the repository is over capacity, so the
// size never exceeds it once Add returns. The eviction listener is notified
// after the lock is released.
func (r *Repository) Add(ctx context.Context, block model.RepositoryBlock) bool {
	r.mu.Lock()
	added := r.insertLocked(block)
	evicted := r.evictLocked()
	listener := r.listener
	r.mu.Unlock()

	r.notifyEvicted(ctx, listener, evicted)
	return added
}

func (r *Repository) insertLocked(block model.RepositoryBlock) bool {
	if _, ok := r.blocks[block.BlockNum]; ok {
		return false
	}
	if len(r.blocks) == 0 || block.BlockNum < r.minKey {
		r.minKey = block.BlockNum
	}
	if block.BlockNum > r.lastBlockHeight {
		r.lastBlockHeight = block.BlockNum
	}
	r.blocks[block.BlockNum] = block.Clone()
	return true
}

// Len returns the number of blocks held.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blocks)
}

// MinKey returns the lowest held block number.
func (r *Repository) MinKey() (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.blocks) == 0 {
		return 0, false
	}
	return r.minKey, true
}

// LastBlockHeight returns the highest block number ever added.
func (r *Repository) LastBlockHeight() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastBlockHeight
}

// Candidates returns copies of every held block that exclude does not reject.
func (r *Repository) Candidates(exclude func(blockNum uint64) bool) []model.RepositoryBlock {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.RepositoryBlock, 0, len(r.blocks))
	for num, b := range r.blocks {
		if exclude != nil && exclude(num) {
			continue
		}
		out = append(out, b.Clone())
	}
	return out
}

// EvictIfOverCapacity drops the lowest blocks until the size fits and tells the
// listener about every evicted number.
func (r *Repository) EvictIfOverCapacity(ctx context.Context) []uint64 {
	r.mu.Lock()
	evicted := r.evictLocked()
	listener := r.listener
	r.mu.Unlock()

	r.notifyEvicted(ctx, listener, evicted)
	return evicted
}

func (r *Repository) evictLocked() []uint64 {
	var evicted []uint64
	for len(r.blocks) > r.capacity {
		delete(r.blocks, r.minKey)
		evicted = append(evicted, r.minKey)
		r.recomputeMinKeyLocked()
	}
	return evicted
}

func (r *Repository) notifyEvicted(ctx context.Context, listener EvictionListener, evicted []uint64) {
	if len(evicted) == 0 {
		return
	}
	r.logger.Debug("blocks evicted", zap.Uint64s("blocks", evicted))
	if listener == nil {
		return
	}
	for _, num := range evicted {
		if err := listener.NotifyResolution(ctx, num, model.EvictedFromRedactedWindow); err != nil {
			r.logger.Warn("eviction notification dropped", zap.Uint64("block", num), zap.Error(err))
		}
	}
}

func (r *Repository) recomputeMinKeyLocked() {
	first := true
	for num := range r.blocks {
		if first || num < r.minKey {
			r.minKey = num
			first = false
		}
	}
}

// HasBlockInStorage reports whether the persistent store holds the block.
func (r *Repository) HasBlockInStorage(ctx context.Context, blockNum uint64) (bool, error) {
	ok, err := r.storage.HasBlock(ctx, blockNum)
	if err != nil {
		r.logger.Error("storage lookup failed", zap.Uint64("block", blockNum), zap.Error(err))
		return false, fmt.Errorf("check stored block %d: %w", blockNum, err)
	}
	return ok, nil
}

// LoadFromStorage reads a block from the persistent store.
func (r *Repository) LoadFromStorage(ctx context.Context, blockNum uint64) (model.RepositoryBlock, error) {
	b, err := r.storage.GetBlock(ctx, blockNum)
	if err != nil {
		r.logger.Error("storage load failed", zap.Uint64("block", blockNum), zap.Error(err))
		return model.RepositoryBlock{}, fmt.Errorf("load stored block %d: %w", blockNum, err)
	}
	return b, nil
}

// Persist writes a block to the persistent store.
func (r *Repository) Persist(ctx context.Context, block model.RepositoryBlock) error {
	if err := r.storage.AddBlock(ctx, block); err != nil {
		r.logger.Error("storage persist failed", zap.Uint64("block", block.BlockNum), zap.Error(err))
		return fmt.Errorf("persist block %d: %w", block.BlockNum, err)
	}
	return nil
}

// CleanUpOlderThan removes persisted blocks below the given number.
func (r *Repository) CleanUpOlderThan(ctx context.Context, below uint64) error {
	if err := r.storage.CleanUpBlocks(ctx, below); err != nil {
		r.logger.Error("storage cleanup failed", zap.Uint64("below", below), zap.Error(err))
		return fmt.Errorf("clean up blocks below %d: %w", below, err)
	}
	return nil
}
