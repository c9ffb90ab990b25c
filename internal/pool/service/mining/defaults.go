package mining

import "time"

const (
	DefaultPoolSize           = 100
	MaxPoolSize               = 200
	DefaultStartDifficulty    = 10_000
	DefaultDifficultyStep     = 1000
	DefaultTargetSharesPerSec = 10.0
	DefaultFailureCeiling     = 60

	activeBlockExpiration = 10 * time.Minute
	watchdogInterval      = 5 * time.Second
	minedHistorySize      = 5
	resolutionQueueSize   = 64

	failureWindow    = time.Minute
	shareRateWindow  = 10 * time.Second
	limiterSweepSize = 10_000

	activityFlushSize     = 500
	activityFlushInterval = 5 * time.Second
	activityFlushRPS      = 10

	adjustedDifficultyKey = "adjusted_difficulty"
)

const (
	statusAccepted = "accepted"
	statusSolved   = "solved"
	statusRejected = "rejected"
	statusInvalid  = "invalid"
	statusLimited  = "rate_limited"
	statusFailed   = "failed"
)
