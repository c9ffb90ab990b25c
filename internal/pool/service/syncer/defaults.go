package syncer

import "time"

const (
	tickInterval        = 500 * time.Millisecond
	fastTickInterval    = 10 * time.Millisecond
	blockRequestTimeout = 30 * time.Second
	maxRetryCount       = 10
)

const (
	kindForward  = "forward"
	kindBackfill = "backfill"

	outcomeFinalized = "finalized"
	outcomeAbandoned = "abandoned"
	outcomeReset     = "reset"
	outcomeRetry     = "retry"
	outcomeFastPath  = "fast_path"
)
