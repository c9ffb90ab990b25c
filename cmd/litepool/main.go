package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/metrics"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/blockrepo"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/console"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/consensus"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/peer"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/mining"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/status"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/syncer"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/transport"
	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/wallet"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	if err := loadConfig(); err != nil {
		exitOnConfigError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := newLogger(config.LogLevel)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	store, err := openStore(ctx, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.String("backend", config.Storage.Backend), zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", zap.Error(err))
		}
	}()

	fee, err := decimal.NewFromString(config.Pool.TransactionFee)
	if err != nil {
		logger.Fatal("Invalid transaction fee", zap.Error(err))
	}
	params, err := consensus.NewParams(config.Pool.RedactedWindow, fee, nil)
	if err != nil {
		logger.Fatal("Invalid consensus parameters", zap.Error(err))
	}

	gateway, err := wallet.NewGateway(wallet.Config{
		NodeURL:   config.Wallet.NodeURL,
		Address:   config.Wallet.Address,
		PublicKey: config.Wallet.PublicKey,
		Timeout:   config.Wallet.Timeout,
	}, metrics.NewWalletGateway(), logger)
	if err != nil {
		logger.Fatal("Failed to create wallet gateway", zap.Error(err))
	}

	repo, err := blockrepo.NewRepository(config.Pool.RepositoryCapacity, store, logger)
	if err != nil {
		logger.Fatal("Failed to create block repository", zap.Error(err))
	}
	solved, err := blockrepo.NewSolvedIndex(store, logger)
	if err != nil {
		logger.Fatal("Failed to create solved block index", zap.Error(err))
	}

	miningMetrics := metrics.NewMining()
	selector, err := mining.NewSelector(repo, solved, store, miningMetrics, mining.SelectorConfig{
		PoolSize:   config.Pool.PoolSize,
		Expiration: config.Pool.BlockExpiration,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create block selector", zap.Error(err))
	}
	repo.SetEvictionListener(selector)

	state, err := mining.NewPoolState(store, logger)
	if err != nil {
		logger.Fatal("Failed to create pool state", zap.Error(err))
	}
	if err := state.Load(ctx); err != nil {
		logger.Warn("Pool state not loaded, using defaults", zap.Error(err))
	}
	difficulty, err := mining.NewDifficultyController(state, selector, miningMetrics, mining.DifficultyConfig{
		Start:                 config.Pool.Difficulty,
		Step:                  config.Pool.DifficultyStep,
		TargetSharesPerSecond: config.Pool.SharesPerSecond,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create difficulty controller", zap.Error(err))
	}
	miningService, err := mining.NewService(mining.Dependencies{
		Blocks:     repo,
		Selector:   selector,
		Difficulty: difficulty,
		Shares:     store,
		Wallet:     gateway,
		Metrics:    miningMetrics,
	}, mining.Config{FailureCeiling: config.Pool.FailureCeiling}, logger)
	if err != nil {
		logger.Fatal("Failed to create mining service", zap.Error(err))
	}

	handler := &engineHandler{}
	node, err := peer.NewNode(ctx, peer.Config{
		ListenAddrs:  config.Peer.Listen,
		Bootstrap:    config.Peer.Bootstrap,
		MaxPeers:     config.Peer.MaxPeers,
		InboundRate:  config.Peer.InboundRate,
		InboundBurst: config.Peer.InboundBurst,
	}, handler, metrics.NewPeer(), logger)
	if err != nil {
		logger.Fatal("Failed to start peer node", zap.Error(err))
	}
	defer func() {
		if err := node.Close(); err != nil {
			logger.Error("Failed to close peer node", zap.Error(err))
		}
	}()

	engine, err := syncer.NewEngine(syncer.Dependencies{
		Network:    node,
		Repository: repo,
		Solved:     solved,
		Solvers:    store,
		Consensus:  params,
		Listener:   selector,
		Payments:   store,
		Metrics:    metrics.NewSyncEngine(),
	}, gateway.PrimaryAddress(), logger)
	if err != nil {
		logger.Fatal("Failed to create sync engine", zap.Error(err))
	}
	handler.engine.Store(engine)

	reporter, err := status.NewReporter(engine, selector, difficulty, node, store, logger)
	if err != nil {
		logger.Fatal("Failed to create status reporter", zap.Error(err))
	}
	api, err := transport.NewServer(transport.Config{
		Addr:         config.API.Addr,
		CacheTTL:     config.API.CacheTTL,
		KnownClients: config.API.KnownClients,
	}, transport.Dependencies{
		Mining:  miningService,
		Wallet:  gateway,
		Status:  reporter,
		Metrics: metrics.NewAPI(),
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create api server", zap.Error(err))
	}
	selector.SetCacheInvalidator(api)

	if err := node.Connect(ctx); err != nil {
		logger.Warn("No relay peer reachable yet", zap.Error(err))
	}

	// workers outlive ctx so the API stops taking shares before they do
	workCtx, cancelWork := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelWork()
	var wg sync.WaitGroup
	runWorker(workCtx, &wg, logger, "sync engine", engine.Run)
	runWorker(workCtx, &wg, logger, "block selector", selector.Run)
	runWorker(workCtx, &wg, logger, "mining service", miningService.Run)

	if !config.NoConsole {
		c, err := console.NewConsole(console.Config{ShareRetention: config.Pool.ShareRetention}, console.Dependencies{
			Sync:          engine,
			Blocks:        repo,
			Solvers:       solved,
			Shares:        store,
			Notifications: store,
			API:           api,
			Difficulty:    difficulty,
			Wallet:        gateway,
			Status:        reporter,
			Consensus:     params,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to create console", zap.Error(err))
		}
		go func() {
			if err := c.Run(ctx, os.Stdin, os.Stdout); err == nil {
				logger.Info("Exit requested from console")
				stop()
			}
		}()
	}

	if config.MetricsAddr != "" {
		serveMetrics(ctx, logger)
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := api.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	if err := api.ListenAndServe(); err != nil {
		logger.Error("Failed to listen and serve", zap.Error(err))
		stop()
	}
	<-shutdownDone

	cancelWork()
	wg.Wait()
	logger.Info("Pool stopped")
}

func runWorker(ctx context.Context, wg *sync.WaitGroup, logger *zap.Logger, name string, run func(context.Context) error) {
	wg.Go(func() {
		if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Worker stopped", zap.String("worker", name), zap.Error(err))
		}
	})
}

func serveMetrics(ctx context.Context, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &http.Server{
		Addr:              config.MetricsAddr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", config.MetricsAddr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve metrics", zap.Error(err))
		}
	}()
}
