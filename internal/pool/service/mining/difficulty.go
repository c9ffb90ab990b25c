package mining

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// DifficultyConfig tunes the adaptive pool difficulty.
type DifficultyConfig struct {
	Start                 uint64
	Step                  uint64
	TargetSharesPerSecond float64
}

// DifficultyController adapts the share difficulty to the observed share rate.
type DifficultyController struct {
	logger  *zap.Logger
	state   *PoolState
	active  ActiveBlockReader
	metrics Metrics
	step    uint64
	target  float64

	adjusted  atomic.Uint64
	persistMu sync.Mutex
}

// NewDifficultyController restores the persisted difficulty from state,
// falling back to cfg.Start when it is missing, zero or unreadable.
func NewDifficultyController(
	state *PoolState,
	active ActiveBlockReader,
	metrics Metrics,
	cfg DifficultyConfig,
	logger *zap.Logger,
) (*DifficultyController, error) {
	switch {
	case state == nil:
		return nil, errors.New("difficulty controller pool state is required")
	case active == nil:
		return nil, errors.New("difficulty controller active block reader is required")
	case metrics == nil:
		return nil, errors.New("difficulty controller metrics is required")
	}
	if cfg.Start == 0 {
		cfg.Start = DefaultStartDifficulty
	}
	if cfg.Step == 0 {
		cfg.Step = DefaultDifficultyStep
	}
	if cfg.TargetSharesPerSecond <= 0 {
		cfg.TargetSharesPerSecond = DefaultTargetSharesPerSec
	}

	c := &DifficultyController{
		logger:  logger.Named("difficulty"),
		state:   state,
		active:  active,
		metrics: metrics,
		step:    cfg.Step,
		target:  cfg.TargetSharesPerSecond,
	}

	initial := cfg.Start
	if raw, ok := state.Get(adjustedDifficultyKey); ok {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil && v > 0 {
			initial = v
		} else {
			c.logger.Warn("stored difficulty ignored", zap.String("value", raw))
		}
	}
	c.adjusted.Store(initial)
	metrics.SetPoolDifficulty(initial)
	return c, nil
}

// Adjusted returns the adaptive difficulty without the active block cap.
func (c *DifficultyController) Adjusted() uint64 {
	return c.adjusted.Load()
}

// Difficulty returns the difficulty shares are verified against. It never
// exceeds the active block's network difficulty.
func (c *DifficultyController) Difficulty() uint64 {
	d := c.adjusted.Load()
	if block, ok := c.active.ActiveBlock(); ok && block.Difficulty < d {
		return block.Difficulty
	}
	return d
}

// UpdateSharesPerSecond moves the difficulty one step towards the target rate.
func (c *DifficultyController) UpdateSharesPerSecond(ctx context.Context, rate float64) {
	var cur, next uint64
	for {
		cur = c.adjusted.Load()
		next = cur
		switch {
		case rate < c.target-1:
			if cur > c.step {
				next = max(cur-c.step, c.step)
			}
		case rate > c.target+1:
			if cur > math.MaxUint64-c.step {
				next = math.MaxUint64
			} else {
				next = cur + c.step
			}
		}
		if next == cur {
			return
		}
		if c.adjusted.CompareAndSwap(cur, next) {
			break
		}
	}

	c.metrics.SetPoolDifficulty(next)
	c.logger.Debug("pool difficulty adjusted",
		zap.Float64("sharesPerSecond", rate),
		zap.Uint64("from", cur),
		zap.Uint64("to", next),
	)
	_ = c.persist(ctx)
}

// SetDifficulty overrides the adaptive difficulty.
func (c *DifficultyController) SetDifficulty(ctx context.Context, difficulty uint64) error {
	if difficulty == 0 {
		return fmt.Errorf("%w: difficulty must be positive", ErrInvalidParameter)
	}
	c.adjusted.Store(difficulty)
	c.metrics.SetPoolDifficulty(difficulty)
	c.logger.Info("pool difficulty set", zap.Uint64("difficulty", difficulty))
	return c.persist(ctx)
}

func (c *DifficultyController) persist(ctx context.Context) error {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	value := c.adjusted.Load()
	if err := c.state.Set(ctx, adjustedDifficultyKey, strconv.FormatUint(value, 10)); err != nil {
		c.logger.Warn("pool difficulty not persisted", zap.Uint64("difficulty", value), zap.Error(err))
		return err
	}
	return nil
}
