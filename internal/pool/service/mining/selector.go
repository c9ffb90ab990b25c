package mining

import (
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/clock"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"go.uber.org/zap"
)

var errSelectorStopped = errors.New("selector stopped")

// SelectorConfig tunes active block selection.
type SelectorConfig struct {
	// PoolSize is how many of the easiest candidates the random pick draws from.
	PoolSize   int
	Expiration time.Duration
}

type resolutionEvent struct {
	blockNum   uint64
	resolution model.Resolution
}

// poolBlockWrite is one queued change to a pool block row. Merges raise the
// stored resolution and never create rows.
type poolBlockWrite struct {
	rec      model.PoolBlockRecord
	merge    bool
	forceEnd bool
}

// Selector owns the single active pool block.
//
// Row writes are queued under mu and applied in order by Run, so a reset can
// never overtake the insert of the row it updates.
type Selector struct {
	logger     *zap.Logger
	blocks     BlockSource
	solved     SolvedChecker
	store      PoolBlockStore
	metrics    Metrics
	clock      clock.Clock
	intn       func(n int) int
	poolSize   int
	expiration time.Duration
	watchdog   time.Duration

	mu      sync.Mutex
	active  *model.ActivePoolBlock
	history []uint64
	cache   CacheInvalidator

	queueMu sync.Mutex
	queue   []poolBlockWrite
	wake    chan struct{}

	events chan resolutionEvent
	done   chan struct{}
}

// NewSelector builds a Selector. PoolSize is clamped to [1, MaxPoolSize].
func NewSelector(
	blocks BlockSource,
	solved SolvedChecker,
	store PoolBlockStore,
	metrics Metrics,
	cfg SelectorConfig,
	logger *zap.Logger,
) (*Selector, error) {
	switch {
	case blocks == nil:
		return nil, errors.New("selector block source is required")
	case solved == nil:
		return nil, errors.New("selector solved index is required")
	case store == nil:
		return nil, errors.New("selector pool block store is required")
	case metrics == nil:
		return nil, errors.New("selector metrics is required")
	}

	poolSize := cfg.PoolSize
	switch {
	case poolSize == 0:
		poolSize = DefaultPoolSize
	case poolSize < 1:
		poolSize = 1
	case poolSize > MaxPoolSize:
		poolSize = MaxPoolSize
	}
	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = activeBlockExpiration
	}

	return &Selector{
		logger:     logger.Named("selector"),
		blocks:     blocks,
		solved:     solved,
		store:      store,
		metrics:    metrics,
		clock:      clock.System{},
		intn:       rand.IntN,
		poolSize:   poolSize,
		expiration: expiration,
		watchdog:   watchdogInterval,
		wake:       make(chan struct{}, 1),
		events:     make(chan resolutionEvent, resolutionQueueSize),
		done:       make(chan struct{}),
	}, nil
}

// SetCacheInvalidator registers the cache purged whenever the active block is reset.
func (s *Selector) SetCacheInvalidator(c CacheInvalidator) {
	s.mu.Lock()
	s.cache = c
	s.mu.Unlock()
}

// ActiveBlock returns a copy of the active block.
func (s *Selector) ActiveBlock() (model.ActivePoolBlock, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return model.ActivePoolBlock{}, false
	}
	return s.active.Clone(), true
}

// SelectOrReturn returns the active block, choosing a new one when there is none.
// adjustedDifficulty is recorded, capped at the block difficulty, on the new row.
func (s *Selector) SelectOrReturn(adjustedDifficulty uint64) (model.ActivePoolBlock, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return s.active.Clone(), true
	}

	candidates := s.blocks.Candidates(s.solved.IsSolved)
	if len(candidates) == 0 {
		return model.ActivePoolBlock{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Difficulty != candidates[j].Difficulty {
			return candidates[i].Difficulty < candidates[j].Difficulty
		}
		return candidates[i].BlockNum < candidates[j].BlockNum
	})
	if len(candidates) > s.poolSize {
		candidates = candidates[:s.poolSize]
	}
	chosen := candidates[s.intn(len(candidates))]

	now := s.clock.Now()
	active := model.ActivePoolBlock{
		RepositoryBlock: chosen.Clone(),
		MiningStart:     now,
		Resolution:      model.Mining,
	}
	s.active = &active
	s.pushHistoryLocked(chosen.BlockNum)

	poolDifficulty := min(adjustedDifficulty, chosen.Difficulty)
	s.enqueue(poolBlockWrite{rec: model.PoolBlockRecord{
		BlockNum:       chosen.BlockNum,
		MiningStart:    now,
		Resolution:     model.Mining,
		PoolDifficulty: poolDifficulty,
	}})

	s.metrics.SetActiveBlock(chosen.BlockNum)
	s.logger.Info("active block selected",
		zap.Uint64("block", chosen.BlockNum),
		zap.Uint64("difficulty", chosen.Difficulty),
		zap.Uint64("poolDifficulty", poolDifficulty),
		zap.Int("candidates", len(candidates)),
	)
	return active.Clone(), true
}

// ResetActiveBlock records resolution for target and clears the active block
// when it is the target. Safe to call repeatedly and for stale targets.
func (s *Selector) ResetActiveBlock(resolution model.Resolution, target uint64) {
	now := s.clock.Now()

	s.mu.Lock()
	current := s.active != nil && s.active.BlockNum == target
	if current {
		s.active = nil
	}
	cache := s.cache
	s.enqueue(poolBlockWrite{
		rec:      model.PoolBlockRecord{BlockNum: target, MiningEnd: &now, Resolution: resolution},
		merge:    true,
		forceEnd: current,
	})
	s.mu.Unlock()

	if !current {
		return
	}
	if cache != nil {
		cache.Purge()
	}
	s.metrics.SetActiveBlock(0)
	s.metrics.ObserveResolution(resolution.String())
	s.logger.Info("active block reset", zap.Uint64("block", target), zap.Stringer("resolution", resolution))
}

// IsMinedBlock reports whether blockNum was one of the recently active blocks.
func (s *Selector) IsMinedBlock(blockNum uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, num := range s.history {
		if num == blockNum {
			return true
		}
	}
	return false
}

// NotifyResolution hands a resolution to the Run loop.
func (s *Selector) NotifyResolution(ctx context.Context, blockNum uint64, resolution model.Resolution) error {
	select {
	case s.events <- resolutionEvent{blockNum: blockNum, resolution: resolution}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return errSelectorStopped
	}
}

// Run applies resolution events, expires stale blocks and writes pool block
// rows until the context is canceled.
func (s *Selector) Run(ctx context.Context) error {
	defer close(s.done)

	ticker := time.NewTicker(s.watchdog)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.drainEvents()
			s.flush(context.WithoutCancel(ctx))
			return ctx.Err()
		case ev := <-s.events:
			s.ResetActiveBlock(ev.resolution, ev.blockNum)
		case <-s.wake:
			s.flush(ctx)
		case <-ticker.C:
			s.checkExpired()
		}
	}
}

func (s *Selector) drainEvents() {
	for {
		select {
		case ev := <-s.events:
			s.ResetActiveBlock(ev.resolution, ev.blockNum)
		default:
			return
		}
	}
}

func (s *Selector) checkExpired() {
	s.mu.Lock()
	if s.active == nil || s.clock.Now().Sub(s.active.MiningStart) < s.expiration {
		s.mu.Unlock()
		return
	}
	target := s.active.BlockNum
	s.mu.Unlock()

	s.logger.Info("active block expired", zap.Uint64("block", target), zap.Duration("after", s.expiration))
	s.ResetActiveBlock(model.TimedOut, target)
}

func (s *Selector) pushHistoryLocked(blockNum uint64) {
	s.history = append(s.history, blockNum)
	if len(s.history) > minedHistorySize {
		s.history = append([]uint64(nil), s.history[len(s.history)-minedHistorySize:]...)
	}
}

func (s *Selector) enqueue(w poolBlockWrite) {
	s.queueMu.Lock()
	s.queue = append(s.queue, w)
	s.queueMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Selector) flush(ctx context.Context) {
	for {
		s.queueMu.Lock()
		batch := s.queue
		s.queue = nil
		s.queueMu.Unlock()
		if len(batch) == 0 {
			return
		}
		for _, w := range batch {
			s.apply(ctx, w)
		}
	}
}

func (s *Selector) apply(ctx context.Context, w poolBlockWrite) {
	if !w.merge {
		if err := s.store.UpsertPoolBlock(ctx, w.rec); err != nil {
			s.logger.Warn("pool block not recorded", zap.Uint64("block", w.rec.BlockNum), zap.Error(err))
		}
		return
	}

	rec, err := s.store.GetPoolBlock(ctx, w.rec.BlockNum)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("resolution for untracked block ignored", zap.Uint64("block", w.rec.BlockNum))
		return
	}
	if err != nil {
		s.logger.Warn("pool block lookup failed", zap.Uint64("block", w.rec.BlockNum), zap.Error(err))
		return
	}

	resolution := rec.Resolution.Max(w.rec.Resolution)
	stampEnd := rec.MiningEnd == nil || w.forceEnd
	if resolution == rec.Resolution && !stampEnd {
		return
	}
	rec.Resolution = resolution
	if stampEnd {
		end := *w.rec.MiningEnd
		rec.MiningEnd = &end
	}
	if err := s.store.UpsertPoolBlock(ctx, rec); err != nil {
		s.logger.Warn("pool block resolution not recorded", zap.Uint64("block", rec.BlockNum), zap.Error(err))
	}
}
