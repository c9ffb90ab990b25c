package model

import "time"

// Resolution describes how a mining session for a block ended.
type Resolution uint8

const (
	Mining Resolution = iota
	TimedOut
	SolvedByPool
	SolvedByOther
	EvictedFromRedactedWindow
)

var resolutionPriority = map[Resolution]int{
	Mining:                    0,
	TimedOut:                  1,
	SolvedByPool:              2,
	SolvedByOther:             2,
	EvictedFromRedactedWindow: 3,
}

var resolutionNames = map[Resolution]string{
	Mining:                    "mining",
	TimedOut:                  "timed_out",
	SolvedByPool:              "solved_by_pool",
	SolvedByOther:             "solved_by_other",
	EvictedFromRedactedWindow: "evicted_from_redacted_window",
}

// Priority returns the ordering weight used when merging resolutions.
func (r Resolution) Priority() int {
	return resolutionPriority[r]
}

// Max returns the higher priority resolution; on ties the receiver wins.
func (r Resolution) Max(other Resolution) Resolution {
	if other.Priority() > r.Priority() {
		return other
	}
	return r
}

func (r Resolution) String() string {
	if name, ok := resolutionNames[r]; ok {
		return name
	}
	return "unknown"
}

// ActivePoolBlock is the block currently presented to miners.
type ActivePoolBlock struct {
	RepositoryBlock
	MiningStart time.Time
	MiningEnd   *time.Time
	Resolution  Resolution
}

// Clone returns a deep copy safe to hand out of the selector.
func (b ActivePoolBlock) Clone() ActivePoolBlock {
	b.RepositoryBlock = b.RepositoryBlock.Clone()
	if b.MiningEnd != nil {
		end := *b.MiningEnd
		b.MiningEnd = &end
	}
	return b
}

// PoolBlockRecord is the persisted tracking row of a mining session.
type PoolBlockRecord struct {
	BlockNum       uint64
	MiningStart    time.Time
	MiningEnd      *time.Time
	Resolution     Resolution
	PoolDifficulty uint64
}
