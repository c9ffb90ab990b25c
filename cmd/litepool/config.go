package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

const (
	backendBolt       = "bolt"
	backendClickhouse = "clickhouse"
)

var config struct {
	ConfigFile  string `long:"config" env:"LITEPOOL_CONFIG" description:"path to an ini config file"`
	LogLevel    string `long:"log-level" env:"LITEPOOL_LOG_LEVEL" default:"info" description:"debug, info, warn or error"`
	MetricsAddr string `long:"metrics-addr" env:"LITEPOOL_METRICS_ADDR" description:"separate listen address for /metrics, served on the api address when empty"`
	NoConsole   bool   `long:"no-console" env:"LITEPOOL_NO_CONSOLE" description:"do not read operator commands from stdin"`

	API struct {
		Addr         string        `long:"addr" env:"ADDR" default:":8081" description:"miner API listen address"`
		CacheTTL     time.Duration `long:"cache-ttl" env:"CACHE_TTL" default:"10s" description:"how long getminingblock answers are cached"`
		KnownClients int           `long:"known-clients" env:"KNOWN_CLIENTS" default:"100000" description:"wallets remembered for lockapi"`
	} `group:"api" namespace:"api" env-namespace:"LITEPOOL_API"`

	Storage struct {
		Backend       string `long:"backend" env:"BACKEND" default:"bolt" choice:"bolt" choice:"clickhouse" description:"persistent store"`
		BoltPath      string `long:"bolt-path" env:"BOLT_PATH" default:"litepool.db" description:"bbolt database file"`
		ClickhouseDSN string `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/default" description:"ClickHouse DSN"`
		Migrate       bool   `long:"migrate" env:"MIGRATE" description:"apply ClickHouse migrations on start"`
		MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" default:"migrations/clickhouse" description:"path to ClickHouse migration files"`
	} `group:"storage" namespace:"storage" env-namespace:"LITEPOOL_STORAGE"`

	Wallet struct {
		NodeURL   string        `long:"node-url" env:"NODE_URL" default:"http://localhost:8001" description:"DLT node API holding the pool wallet"`
		Address   string        `long:"address" env:"ADDRESS" description:"pool wallet address"`
		PublicKey string        `long:"public-key" env:"PUBLIC_KEY" description:"pool wallet public key, hex"`
		Timeout   time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"node request timeout"`
	} `group:"wallet" namespace:"wallet" env-namespace:"LITEPOOL_WALLET"`

	Peer struct {
		Listen       []string `long:"listen" env:"LISTEN" env-delim:"," default:"/ip4/0.0.0.0/tcp/10234" description:"libp2p listen multiaddrs"`
		Bootstrap    []string `long:"bootstrap" env:"BOOTSTRAP" env-delim:"," description:"relay peers as /ip4/.../tcp/.../p2p/<id>"`
		MaxPeers     int      `long:"max-peers" env:"MAX_PEERS" default:"64" description:"connection manager high water mark"`
		InboundRate  float64  `long:"inbound-rate" env:"INBOUND_RATE" default:"50" description:"messages per second accepted from one peer"`
		InboundBurst int      `long:"inbound-burst" env:"INBOUND_BURST" default:"100" description:"burst accepted from one peer"`
	} `group:"peer" namespace:"peer" env-namespace:"LITEPOOL_PEER"`

	Pool struct {
		RepositoryCapacity int           `long:"repository-capacity" env:"REPOSITORY_CAPACITY" default:"43200" description:"blocks kept in memory"`
		RedactedWindow     uint64        `long:"redacted-window" env:"REDACTED_WINDOW" default:"43200" description:"blocks a node keeps before redaction"`
		TransactionFee     string        `long:"transaction-fee" env:"TRANSACTION_FEE" default:"0.00005" description:"fee per transaction, in IXI"`
		Difficulty         uint64        `long:"difficulty" env:"DIFFICULTY" default:"10000" description:"starting pool difficulty"`
		DifficultyStep     uint64        `long:"difficulty-step" env:"DIFFICULTY_STEP" default:"1000" description:"difficulty change per adjustment"`
		SharesPerSecond    float64       `long:"shares-per-sec" env:"SHARES_PER_SEC" default:"10" description:"target accepted shares per second"`
		PoolSize           int           `long:"pool-size" env:"POOL_SIZE" default:"100" description:"easiest candidate blocks the active block is drawn from"`
		BlockExpiration    time.Duration `long:"block-expiration" env:"BLOCK_EXPIRATION" default:"10m" description:"how long a block is mined before it times out"`
		FailureCeiling     int           `long:"failure-ceiling" env:"FAILURE_CEILING" default:"60" description:"failed requests per wallet per minute"`
		ShareRetention     time.Duration `long:"share-retention" env:"SHARE_RETENTION" default:"24h" description:"age of processed shares removed by cleanupdb"`
	} `group:"pool" namespace:"pool" env-namespace:"LITEPOOL_POOL"`
}

// loadConfig parses the command line, then the optional ini file, then the
// command line again so flags override the file.
func loadConfig() error {
	parser := flags.NewParser(&config, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return err
	}
	if config.ConfigFile == "" {
		return nil
	}
	if err := flags.NewIniParser(parser).ParseFile(config.ConfigFile); err != nil {
		return fmt.Errorf("parse config file %s: %w", config.ConfigFile, err)
	}
	if _, err := parser.Parse(); err != nil {
		return err
	}
	return nil
}

func exitOnConfigError(err error) {
	var ferr *flags.Error
	if errors.As(err, &ferr) {
		if ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		// already printed by the parser
		os.Exit(2)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	return cfg.Build()
}
