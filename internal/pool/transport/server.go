package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/service/mining"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	defaultCacheTTL   = 10 * time.Second
	defaultCacheSize  = 10_000
	defaultKnownSize  = 100_000
	maxRequestBody    = 64 * 1024
	requestIDHeader   = "X-Request-ID"
	requestIDKey      = "request_id"
	jsonRPCVersion    = "2.0"
	readTimeout       = 15 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

// Config configures the API server.
type Config struct {
	Addr      string
	CacheTTL  time.Duration
	CacheSize int
	// KnownClients bounds how many wallets are remembered for the API lock.
	KnownClients int
}

// Dependencies groups the collaborators of the Server.
type Dependencies struct {
	Mining  Mining
	Wallet  Wallet
	Status  StatusReporter
	Metrics Metrics
}

// Server is the miner-facing HTTP API.
type Server struct {
	logger  *zap.Logger
	mining  Mining
	wallet  Wallet
	status  StatusReporter
	metrics Metrics

	cache  *expirable.LRU[string, mining.MiningBlock]
	known  *lru.Cache[string, struct{}]
	locked atomic.Bool

	handler http.Handler
	srv     *http.Server
}

// NewServer builds the API server; call ListenAndServe to start it.
func NewServer(cfg Config, deps Dependencies, logger *zap.Logger) (*Server, error) {
	switch {
	case deps.Mining == nil:
		return nil, errors.New("api mining service is required")
	case deps.Wallet == nil:
		return nil, errors.New("api wallet is required")
	case deps.Status == nil:
		return nil, errors.New("api status reporter is required")
	case deps.Metrics == nil:
		return nil, errors.New("api metrics is required")
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.KnownClients <= 0 {
		cfg.KnownClients = defaultKnownSize
	}
	known, err := lru.New[string, struct{}](cfg.KnownClients)
	if err != nil {
		return nil, fmt.Errorf("create known client cache: %w", err)
	}

	s := &Server{
		logger:  logger.Named("api"),
		mining:  deps.Mining,
		wallet:  deps.Wallet,
		status:  deps.Status,
		metrics: deps.Metrics,
		cache:   expirable.NewLRU[string, mining.MiningBlock](cfg.CacheSize, nil, cfg.CacheTTL),
		known:   known,
	}
	s.handler = cors.Default().Handler(s.routes())
	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.accessLog())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/", s.handlePost)
	r.POST("/:method", s.handlePost)
	r.GET("/", s.handleGet)
	r.GET("/:method", s.handleGet)
	return r
}

// Handler returns the HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting http server", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.srv.Shutdown(ctx)
}

// Purge drops every cached mining block answer.
func (s *Server) Purge() {
	s.cache.Purge()
}

// Lock rejects wallets that have not used the API before.
func (s *Server) Lock() {
	s.locked.Store(true)
	s.logger.Info("api locked", zap.Int("knownClients", s.known.Len()))
}

// Unlock accepts every wallet again.
func (s *Server) Unlock() {
	s.locked.Store(false)
	s.logger.Info("api unlocked")
}

// Locked reports whether the API is locked.
func (s *Server) Locked() bool {
	return s.locked.Load()
}

// admit records the wallet as known while unlocked and rejects unknown
// wallets while locked.
func (s *Server) admit(wallet string) bool {
	if wallet == "" {
		return true
	}
	if !s.locked.Load() {
		s.known.Add(wallet, struct{}{})
		return true
	}
	return s.known.Contains(wallet)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		s.logger.Debug("http request",
			zap.String("requestID", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
			zap.String("clientIP", c.ClientIP()),
		)
	}
}
