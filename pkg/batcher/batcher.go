// Package batcher provides a generic coalescing batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items keyed by K and flushes them either by size or interval.
// Items sharing a key within one batch are coalesced with the merge function;
// when merge is nil the latest item wins.
type Batcher[K comparable, T any] struct {
	flushCallback func(context.Context, []T) error
	key           func(T) K
	merge         func(prev, next T) T
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[K comparable, T any](
	logger *zap.Logger,
	flushCallback func(context.Context, []T) error,
	key func(T) K,
	merge func(prev, next T) T,
	flushSize int,
	flushInterval time.Duration,
	rps int,
) *Batcher[K, T] {
	return &Batcher[K, T]{
		logger:        logger,
		flushCallback: flushCallback,
		key:           key,
		merge:         merge,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[K, T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and stops the background loop. Safe to call twice.
func (b *Batcher[K, T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[K, T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[K, T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)
	index := make(map[K]int, b.flushSize)

	push := func(item T) {
		k := b.key(item)
		if i, ok := index[k]; ok {
			if b.merge != nil {
				buf[i] = b.merge(buf[i], item)
			} else {
				buf[i] = item
			}
			return
		}
		index[k] = len(buf)
		buf = append(buf, item)
	}

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		err := b.flushCallback(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(buf)))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = make([]T, 0, b.flushSize)
		clear(index)
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				push(item)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			flush(context.WithoutCancel(ctx))
			return

		case <-b.stop:
			drain()
			flush(context.WithoutCancel(ctx))
			return

		case item := <-b.itemsCh:
			push(item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
