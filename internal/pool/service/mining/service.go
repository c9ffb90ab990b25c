package mining

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/clock"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/model"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/pow"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/wallet"
	"github.com/bogdanadnan/Ixian-LitePool/pkg/batcher"
	"go.uber.org/zap"
)

// Dependencies groups the collaborators of the Service.
type Dependencies struct {
	Blocks     BlockSource
	Selector   *Selector
	Difficulty *DifficultyController
	Shares     ShareStore
	Wallet     Wallet
	Metrics    Metrics
}

// Config tunes request validation.
type Config struct {
	// FailureCeiling is how many failed requests a wallet may make per minute.
	FailureCeiling int
}

// MiningBlockRequest is a miner asking for work.
type MiningBlockRequest struct {
	MinerID    string
	Worker     string
	Wallet     string
	Hashrate   float64
	AppVersion string
}

// MiningBlock is the work handed to miners.
type MiningBlock struct {
	BlockNum      uint64
	Version       uint32
	Difficulty    uint64
	Checksum      []byte
	SolverAddress []byte
}

// ShareRequest is a miner submitting a nonce.
type ShareRequest struct {
	MinerID  string
	Worker   string
	Wallet   string
	Nonce    string
	BlockNum uint64
}

// Service serves miners: it hands out the active block and verifies shares.
type Service struct {
	logger     *zap.Logger
	blocks     BlockSource
	selector   *Selector
	difficulty *DifficultyController
	shares     ShareStore
	gateway    Wallet
	metrics    Metrics
	clock      clock.Clock
	hash       func(nonce string, checksum, solverAddress []byte) ([]byte, error)
	limiter    *failureLimiter
	nonces     *nonceClaims
	rate       *shareRate
	activity   *batcher.Batcher[uint64, activity]
}

// NewService builds a Service.
func NewService(deps Dependencies, cfg Config, logger *zap.Logger) (*Service, error) {
	switch {
	case deps.Blocks == nil:
		return nil, errors.New("mining service block source is required")
	case deps.Selector == nil:
		return nil, errors.New("mining service selector is required")
	case deps.Difficulty == nil:
		return nil, errors.New("mining service difficulty controller is required")
	case deps.Shares == nil:
		return nil, errors.New("mining service share store is required")
	case deps.Wallet == nil:
		return nil, errors.New("mining service wallet is required")
	case deps.Metrics == nil:
		return nil, errors.New("mining service metrics is required")
	}
	ceiling := cfg.FailureCeiling
	if ceiling <= 0 {
		ceiling = DefaultFailureCeiling
	}

	logger = logger.Named("mining")
	s := &Service{
		logger:     logger,
		blocks:     deps.Blocks,
		selector:   deps.Selector,
		difficulty: deps.Difficulty,
		shares:     deps.Shares,
		gateway:    deps.Wallet,
		metrics:    deps.Metrics,
		clock:      clock.System{},
		hash:       pow.Hash,
		limiter:    newFailureLimiter(clock.System{}, failureWindow, ceiling),
		nonces:     newNonceClaims(),
		rate:       newShareRate(clock.System{}, shareRateWindow),
	}
	s.activity = batcher.New[uint64, activity](
		logger.Named("activity"),
		s.flushActivity,
		activityKey,
		mergeActivity,
		activityFlushSize,
		activityFlushInterval,
		activityFlushRPS,
	)
	return s, nil
}

// Run flushes miner activity in the background until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	s.activity.Start(ctx)
	<-ctx.Done()
	s.activity.Stop()
	return ctx.Err()
}

// GetMiningBlock returns the active block, selecting one when needed.
func (s *Service) GetMiningBlock(ctx context.Context, req MiningBlockRequest) (MiningBlock, error) {
	if req.Wallet == "" {
		return MiningBlock{}, fmt.Errorf("%w: wallet is missing", ErrInvalidParameter)
	}
	if !s.limiter.Allow(req.Wallet) {
		return MiningBlock{}, ErrRateLimited
	}
	if _, err := wallet.DecodeAddress(req.Wallet); err != nil {
		s.limiter.Fail(req.Wallet)
		return MiningBlock{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	block, ok := s.selector.SelectOrReturn(s.difficulty.Adjusted())
	if !ok {
		return MiningBlock{}, ErrNoCandidate
	}
	s.RecordActivity(ctx, req)

	return MiningBlock{
		BlockNum:      block.BlockNum,
		Version:       block.Version,
		Difficulty:    min(s.difficulty.Adjusted(), block.Difficulty),
		Checksum:      block.Checksum,
		SolverAddress: s.gateway.PrimaryAddress(),
	}, nil
}

// RecordActivity queues the miner and worker last-seen and hashrate update for
// a work request answered from a cache.
func (s *Service) RecordActivity(ctx context.Context, req MiningBlockRequest) {
	s.touch(ctx, req.Wallet, req.Worker, req.AppVersion, req.Hashrate, true)
}

// SubmitShare verifies a nonce and records it as a share. It returns true when
// the share is accepted.
func (s *Service) SubmitShare(ctx context.Context, req ShareRequest) (bool, error) {
	started := time.Now()
	status := statusAccepted
	defer func() {
		s.metrics.ObserveShare(status, started)
	}()

	if req.Wallet == "" || req.BlockNum == 0 {
		status = statusInvalid
		return false, fmt.Errorf("%w: wallet and block number are required", ErrInvalidParameter)
	}
	if !s.limiter.Allow(req.Wallet) {
		status = statusLimited
		return false, ErrRateLimited
	}

	reject := func(err error) (bool, error) {
		status = statusFailed
		if countsAsFailure(err) {
			status = statusRejected
			s.limiter.Fail(req.Wallet)
		}
		return false, err
	}

	if err := checkRequest(req); err != nil {
		return reject(err)
	}
	// the claim is held until the share row is written
	if !s.nonces.claim(req.Nonce) {
		return reject(fmt.Errorf("%w: nonce %s is being verified", ErrDuplicateShare, req.Nonce))
	}
	defer s.nonces.release(req.Nonce)

	block, poolDifficulty, hash, err := s.checkShare(ctx, req)
	if err != nil {
		return reject(err)
	}

	if rate, rolled := s.rate.add(); rolled {
		s.metrics.SetSharesPerSecond(rate)
		s.difficulty.UpdateSharesPerSecond(ctx, rate)
	}

	solved := pow.HashPasses(hash, pow.HashCeilingFromDifficulty(block.Difficulty))
	if solved {
		if sendErr := s.gateway.SendSolution(ctx, block.BlockNum, req.Nonce); sendErr != nil {
			s.logger.Error("solution not broadcast", zap.Uint64("block", block.BlockNum), zap.Error(sendErr))
			solved = false
		} else {
			status = statusSolved
			s.logger.Info("block solved by pool", zap.Uint64("block", block.BlockNum), zap.String("wallet", req.Wallet))
			s.selector.ResetActiveBlock(model.SolvedByPool, block.BlockNum)
		}
	}

	s.touch(ctx, req.Wallet, req.Worker, "", 0, false)

	minerID := model.MinerID(req.Wallet)
	share := model.Share{
		MinerID:       minerID,
		WorkerID:      model.WorkerID(minerID, req.Worker),
		Timestamp:     s.clock.Now(),
		BlockNum:      block.BlockNum,
		Difficulty:    poolDifficulty,
		Nonce:         req.Nonce,
		BlockResolved: solved,
	}
	if err := s.shares.AddShare(ctx, share); err != nil {
		if errors.Is(err, model.ErrDuplicateNonce) {
			return reject(fmt.Errorf("%w: %v", ErrDuplicateShare, err))
		}
		status = statusFailed
		return false, fmt.Errorf("record share: %w", err)
	}
	return true, nil
}

func checkRequest(req ShareRequest) error {
	if _, err := wallet.DecodeAddress(req.Wallet); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return checkNonce(req.Nonce)
}

func (s *Service) checkShare(ctx context.Context, req ShareRequest) (model.RepositoryBlock, uint64, []byte, error) {
	exists, err := s.shares.ShareExists(ctx, req.Nonce)
	if err != nil {
		return model.RepositoryBlock{}, 0, nil, fmt.Errorf("check share nonce: %w", err)
	}
	if exists {
		return model.RepositoryBlock{}, 0, nil, ErrDuplicateShare
	}

	if !s.selector.IsMinedBlock(req.BlockNum) {
		return model.RepositoryBlock{}, 0, nil, fmt.Errorf("%w: %d is not a pool block", ErrInvalidBlock, req.BlockNum)
	}
	block, ok := s.blocks.Get(req.BlockNum)
	if !ok {
		return model.RepositoryBlock{}, 0, nil, fmt.Errorf("%w: %d is not held", ErrInvalidBlock, req.BlockNum)
	}

	poolDifficulty := s.difficulty.Difficulty()
	hash, err := s.hash(req.Nonce, block.Checksum, s.gateway.PrimaryAddress())
	if err != nil {
		return model.RepositoryBlock{}, 0, nil, fmt.Errorf("%w: %v", ErrShareRejected, err)
	}
	if !pow.HashPasses(hash, pow.HashCeilingFromDifficulty(poolDifficulty)) {
		return model.RepositoryBlock{}, 0, nil, ErrShareRejected
	}
	return block, poolDifficulty, hash, nil
}

// VerifySolution checks a nonce against an explicit difficulty without
// recording or broadcasting anything.
func (s *Service) VerifySolution(_ context.Context, nonce string, blockNum, difficulty uint64) (bool, error) {
	if err := checkNonce(nonce); err != nil {
		return false, err
	}
	if difficulty == 0 {
		return false, fmt.Errorf("%w: difficulty must be positive", ErrInvalidParameter)
	}
	block, ok := s.blocks.Get(blockNum)
	if !ok {
		return false, fmt.Errorf("%w: %d is not held", ErrInvalidBlock, blockNum)
	}
	hash, err := s.hash(nonce, block.Checksum, s.gateway.PrimaryAddress())
	if err != nil {
		return false, nil
	}
	return pow.HashPasses(hash, pow.HashCeilingFromDifficulty(difficulty)), nil
}

func (s *Service) touch(ctx context.Context, address, workerName, app string, hashrate float64, hasHashrate bool) {
	now := s.clock.Now()
	minerID := model.MinerID(address)
	a := activity{
		miner: model.Miner{ID: minerID, Address: address, LastSeen: now},
		worker: model.Worker{
			ID:        model.WorkerID(minerID, workerName),
			MinerID:   minerID,
			Name:      workerName,
			MiningApp: app,
			Hashrate:  hashrate,
			LastSeen:  now,
		},
		hasHashrate: hasHashrate,
	}
	if err := s.activity.Add(ctx, a); err != nil {
		s.logger.Debug("miner activity dropped", zap.String("wallet", address), zap.Error(err))
	}
}

func checkNonce(nonce string) error {
	if len(nonce) == 0 || len(nonce) > pow.MaxNonceLength {
		return fmt.Errorf("%w: length %d", ErrInvalidNonce, len(nonce))
	}
	return nil
}

func countsAsFailure(err error) bool {
	for _, target := range []error{ErrInvalidAddress, ErrInvalidNonce, ErrDuplicateShare, ErrInvalidBlock, ErrShareRejected} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
