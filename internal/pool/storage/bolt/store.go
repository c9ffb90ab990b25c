// Package bolt is the file-based single-writer persistent store.
package bolt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

var (
	bucketBlocks        = []byte("blocks")
	bucketSolvers       = []byte("block_solvers")
	bucketSolversByMine = []byte("block_solvers_by_mined")
	bucketPoolBlocks    = []byte("pool_blocks")
	bucketMiners        = []byte("miners")
	bucketWorkers       = []byte("workers")
	bucketShares        = []byte("shares")
	bucketShareNonces   = []byte("share_nonces")
	bucketState         = []byte("pool_state")
	bucketNotifications = []byte("notifications")
	bucketPayments      = []byte("payments")

	allBuckets = [][]byte{
		bucketBlocks, bucketSolvers, bucketSolversByMine, bucketPoolBlocks, bucketMiners,
		bucketWorkers, bucketShares, bucketShareNonces, bucketState, bucketNotifications, bucketPayments,
	}
)

// Store persists pool data in a single bbolt file.
type Store struct {
	db      *bbolt.DB
	metrics Metrics
	logger  *zap.Logger
}

// NewStore opens (or creates) the database at path and ensures every bucket exists.
func NewStore(path string, metrics Metrics, logger *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("bolt database path is required")
	}
	if metrics == nil {
		return nil, errors.New("bolt store metrics is required")
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("bolt store opened", zap.String("path", path))
	return &Store{db: db, metrics: metrics, logger: logger}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

func u64Key(v uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, v)
	return k
}

func pairKey(a, b uint64) []byte {
	k := make([]byte, 16)
	binary.BigEndian.PutUint64(k, a)
	binary.BigEndian.PutUint64(k[8:], b)
	return k
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(v int64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	return time.UnixMilli(v).UTC()
}
