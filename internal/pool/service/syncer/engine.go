// Package syncer follows the chain through block-relay peers and feeds
// finalized blocks into the block repository.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/clock"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/blockrepo"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
	"go.uber.org/zap"
)

// Dependencies groups the collaborators of the Engine.
type Dependencies struct {
	Network    Network
	Repository *blockrepo.Repository
	Solved     *blockrepo.SolvedIndex
	Solvers    SolverSource
	Consensus  Consensus
	Listener   ResolutionListener
	Payments   PaymentVerifier
	Metrics    Metrics
}

// Engine drives one block fetch at a time and keeps a backlog of block
// numbers still to fetch.
//
// Lock order is reqMu, then backlogMu, then mappingMu. None of them is held
// while talking to the network, the store, or another subsystem.
type Engine struct {
	logger     *zap.Logger
	network    Network
	repo       *blockrepo.Repository
	solved     *blockrepo.SolvedIndex
	solvers    SolverSource
	consensus  Consensus
	listener   ResolutionListener
	payments   PaymentVerifier
	metrics    Metrics
	ownAddress []byte

	clock          clock.Clock
	tick           time.Duration
	fastTick       time.Duration
	requestTimeout time.Duration
	maxRetries     int

	paused        atomic.Bool
	networkHeight atomic.Uint64

	reqMu   sync.Mutex
	current *request

	backlogMu     sync.Mutex
	backlog       *backlog
	backfillFloor uint64

	mappingMu sync.Mutex
	txToBlock map[string]uint64
}

// NewEngine builds an Engine. ownAddress identifies solutions mined by this pool.
func NewEngine(deps Dependencies, ownAddress []byte, logger *zap.Logger) (*Engine, error) {
	switch {
	case deps.Network == nil:
		return nil, errors.New("sync engine network is required")
	case deps.Repository == nil:
		return nil, errors.New("sync engine repository is required")
	case deps.Solved == nil:
		return nil, errors.New("sync engine solved index is required")
	case deps.Solvers == nil:
		return nil, errors.New("sync engine solver source is required")
	case deps.Consensus == nil:
		return nil, errors.New("sync engine consensus is required")
	case deps.Listener == nil:
		return nil, errors.New("sync engine resolution listener is required")
	case deps.Metrics == nil:
		return nil, errors.New("sync engine metrics is required")
	case len(ownAddress) == 0:
		return nil, errors.New("sync engine own address is required")
	}

	return &Engine{
		logger:         logger.Named("syncEngine"),
		network:        deps.Network,
		repo:           deps.Repository,
		solved:         deps.Solved,
		solvers:        deps.Solvers,
		consensus:      deps.Consensus,
		listener:       deps.Listener,
		payments:       deps.Payments,
		metrics:        deps.Metrics,
		ownAddress:     append([]byte(nil), ownAddress...),
		clock:          clock.System{},
		tick:           tickInterval,
		fastTick:       fastTickInterval,
		requestTimeout: blockRequestTimeout,
		maxRetries:     maxRetryCount,
		backlog:        newBacklog(),
		txToBlock:      make(map[string]uint64),
	}, nil
}

// Run ticks the engine until the context is canceled.
func (e *Engine) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		wait := e.tick
		fast, err := e.step(ctx)
		if err != nil {
			e.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", e.tick))
		} else if fast {
			wait = e.fastTick
		}
		if err := e.clock.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Pause turns every tick into a no-op until Resume.
func (e *Engine) Pause() {
	e.paused.Store(true)
	e.logger.Info("sync paused")
}

// Resume re-enables ticking.
func (e *Engine) Resume() {
	e.paused.Store(false)
	e.logger.Info("sync resumed")
}

// Paused reports whether sync is paused.
func (e *Engine) Paused() bool {
	return e.paused.Load()
}

// NetworkHeight returns the highest block height reported by peers.
func (e *Engine) NetworkHeight() uint64 {
	return e.networkHeight.Load()
}

// RequestBlock queues an arbitrary block number for fetching.
func (e *Engine) RequestBlock(blockNum uint64) bool {
	e.reqMu.Lock()
	defer e.reqMu.Unlock()
	if e.current != nil && e.current.blockNum == blockNum {
		return false
	}

	e.backlogMu.Lock()
	defer e.backlogMu.Unlock()
	ok := e.backlog.push(blockNum, "")
	e.metrics.SetBacklog(e.backlog.len())
	return ok
}

// RequestStatus describes the outstanding fetch.
type RequestStatus struct {
	BlockNum uint64
	Stage    string
	Backfill bool
	Retries  int
	Peer     protocol.Endpoint
}

// Status is a point-in-time view of the engine.
type Status struct {
	Paused          bool
	NetworkHeight   uint64
	LastBlockHeight uint64
	Backlog         int
	Current         *RequestStatus
}

// Status returns a snapshot of the engine state.
func (e *Engine) Status() Status {
	st := Status{
		Paused:          e.paused.Load(),
		NetworkHeight:   e.networkHeight.Load(),
		LastBlockHeight: e.repo.LastBlockHeight(),
	}

	e.reqMu.Lock()
	if r := e.current; r != nil {
		st.Current = &RequestStatus{
			BlockNum: r.blockNum,
			Stage:    r.stage.String(),
			Backfill: r.backfill,
			Retries:  r.retries,
			Peer:     r.peer,
		}
	}
	e.backlogMu.Lock()
	st.Backlog = e.backlog.len()
	e.backlogMu.Unlock()
	e.reqMu.Unlock()

	return st
}

// step runs one tick. It reports true when a local backfill succeeded and the
// next tick should come sooner.
func (e *Engine) step(ctx context.Context) (bool, error) {
	if e.paused.Load() {
		return false, nil
	}

	e.reqMu.Lock()
	if e.current != nil {
		d, ok := e.checkTimeoutLocked()
		e.reqMu.Unlock()
		if ok {
			e.send(ctx, d)
		}
		return false, nil
	}

	e.backlogMu.Lock()
	num, hint, ok := e.backlog.pop()
	size := e.backlog.len()
	e.backlogMu.Unlock()
	if ok {
		r := newRequest(num, false, hint, e.clock.Now())
		e.current = r
		d := r.dispatch("", hint)
		e.reqMu.Unlock()

		e.metrics.SetBacklog(size)
		e.send(ctx, d)
		return false, nil
	}
	e.reqMu.Unlock()

	return e.backfill(ctx)
}

// checkTimeoutLocked retries, resets, or abandons the current request once it
// has been silent for longer than the request timeout.
func (e *Engine) checkTimeoutLocked() (dispatch, bool) {
	r := e.current
	now := e.clock.Now()
	if now.Sub(r.lastActivity) < e.requestTimeout {
		return dispatch{}, false
	}
	r.lastActivity = now

	if r.retries < e.maxRetries {
		r.retries++
		e.metrics.ObserveOutcome(outcomeRetry)
		e.logger.Debug("block request timed out, retrying",
			zap.Uint64("block", r.blockNum),
			zap.Stringer("stage", r.stage),
			zap.Int("retry", r.retries),
		)
		return r.dispatch(r.peer, ""), true
	}

	if r.header != nil && !e.olderThanRepository(r) {
		e.forgetMappingLocked(r)
		r.reset(now)
		e.metrics.ObserveOutcome(outcomeReset)
		e.logger.Info("block request exhausted retries, starting over", zap.Uint64("block", r.blockNum))
		return r.dispatch(r.peer, ""), true
	}

	e.abandonLocked(r)
	return dispatch{}, false
}

// olderThanRepository reports whether r targets a block below the lowest held
// one. Such requests are abandoned instead of reset once retries run out.
func (e *Engine) olderThanRepository(r *request) bool {
	if r.backfill {
		return true
	}
	minKey, ok := e.repo.MinKey()
	return ok && r.blockNum < minKey
}

func (e *Engine) abandonLocked(r *request) {
	e.current = nil
	e.forgetMappingLocked(r)
	if r.backfill {
		e.backlogMu.Lock()
		if r.blockNum > e.backfillFloor {
			e.backfillFloor = r.blockNum
		}
		e.backlogMu.Unlock()
	}
	e.metrics.ObserveOutcome(outcomeAbandoned)
	e.logger.Warn("block request abandoned",
		zap.Uint64("block", r.blockNum),
		zap.String("kind", r.kind()),
		zap.Bool("header", r.header != nil),
	)
}

func (e *Engine) forgetMappingLocked(r *request) {
	e.mappingMu.Lock()
	for id, num := range e.txToBlock {
		if num == r.blockNum {
			delete(e.txToBlock, id)
		}
	}
	e.mappingMu.Unlock()
}

func (e *Engine) send(ctx context.Context, d dispatch) {
	peer, err := e.network.BroadcastGetBlock(ctx, d.msg, d.skip, d.preferred)
	e.metrics.ObserveRequest(d.stage.String(), d.kind, err)
	if err != nil {
		e.logger.Warn("block request not sent",
			zap.Uint64("block", d.msg.BlockNum),
			zap.Stringer("stage", d.stage),
			zap.Error(err),
		)
		return
	}

	e.reqMu.Lock()
	if e.current == d.target {
		d.target.peer = peer
	}
	e.reqMu.Unlock()
}

// horizon is the lowest block number still inside the redaction window.
func (e *Engine) horizon() uint64 {
	height := e.networkHeight.Load()
	window := e.consensus.RedactedWindowSize()
	if height <= window {
		return 0
	}
	return height - window
}

// backfill extends the repository one block below its lowest key, from the
// store when possible and from the network otherwise.
func (e *Engine) backfill(ctx context.Context) (bool, error) {
	minKey, ok := e.repo.MinKey()
	if !ok || minKey == 0 || e.repo.Len() >= e.repo.Capacity() {
		return false, nil
	}
	target := minKey - 1
	if target < e.horizon() {
		return false, nil
	}
	e.backlogMu.Lock()
	floor := e.backfillFloor
	e.backlogMu.Unlock()
	if target <= floor {
		return false, nil
	}

	stored, err := e.repo.HasBlockInStorage(ctx, target)
	if err != nil {
		return false, fmt.Errorf("backfill block %d: %w", target, err)
	}
	if stored {
		if err := e.loadStored(ctx, target); err != nil {
			return false, fmt.Errorf("backfill block %d: %w", target, err)
		}
		e.metrics.ObserveOutcome(outcomeFastPath)
		return true, nil
	}

	e.reqMu.Lock()
	if e.current != nil {
		e.reqMu.Unlock()
		return false, nil
	}
	e.backlogMu.Lock()
	pending := e.backlog.len()
	e.backlogMu.Unlock()
	if pending > 0 {
		e.reqMu.Unlock()
		return false, nil
	}
	r := newRequest(target, true, "", e.clock.Now())
	e.current = r
	d := r.dispatch("", "")
	e.reqMu.Unlock()

	e.send(ctx, d)
	return false, nil
}

func (e *Engine) loadStored(ctx context.Context, blockNum uint64) error {
	block, err := e.repo.LoadFromStorage(ctx, blockNum)
	if err != nil {
		return err
	}
	solvers, err := e.solvers.BlockSolversByMinedBlock(ctx, blockNum)
	if err != nil {
		return fmt.Errorf("load solvers mined in %d: %w", blockNum, err)
	}
	e.repo.Add(ctx, block)
	e.solved.Restore(solvers)
	e.logger.Debug("block restored from storage", zap.Uint64("block", blockNum), zap.Int("solvers", len(solvers)))
	return nil
}
