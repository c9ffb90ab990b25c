package mining

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"go.uber.org/zap"
)

// PoolState is a write-through cache of the pool's key/value settings.
type PoolState struct {
	logger *zap.Logger
	store  StateStore

	mu     sync.RWMutex
	values map[string]string
}

// NewPoolState builds an empty PoolState; call Load before reading.
func NewPoolState(store StateStore, logger *zap.Logger) (*PoolState, error) {
	if store == nil {
		return nil, errors.New("pool state store is required")
	}
	return &PoolState{
		logger: logger.Named("poolState"),
		store:  store,
		values: make(map[string]string),
	}, nil
}

// Load replaces the cache with the persisted values.
func (p *PoolState) Load(ctx context.Context) error {
	values, err := p.store.PoolStates(ctx)
	if err != nil {
		return fmt.Errorf("load pool state: %w", err)
	}
	p.mu.Lock()
	p.values = maps.Clone(values)
	if p.values == nil {
		p.values = make(map[string]string)
	}
	p.mu.Unlock()

	p.logger.Debug("pool state loaded", zap.Int("keys", len(values)))
	return nil
}

// Get returns the cached value of key.
func (p *PoolState) Get(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.values[key]
	return v, ok
}

// Set updates the cache and persists the value. The cached value stays even
// when persisting fails.
func (p *PoolState) Set(ctx context.Context, key, value string) error {
	p.mu.Lock()
	p.values[key] = value
	p.mu.Unlock()

	if err := p.store.SetPoolState(ctx, key, value); err != nil {
		return fmt.Errorf("set pool state %s: %w", key, err)
	}
	return nil
}

// Snapshot returns a copy of every cached value.
func (p *PoolState) Snapshot() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return maps.Clone(p.values)
}
