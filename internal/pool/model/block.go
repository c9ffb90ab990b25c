// Package model holds the domain types shared by the pool subsystems.
package model

import (
	"bytes"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned by stores when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateNonce is returned by stores when a share nonce was already recorded.
	ErrDuplicateNonce = errors.New("nonce already recorded")
)

// RepositoryBlock is the pool's view of a chain block.
type RepositoryBlock struct {
	BlockNum   uint64
	Version    uint32
	Difficulty uint64
	Checksum   []byte
	Timestamp  time.Time
}

// Clone returns a deep copy of the block.
func (b RepositoryBlock) Clone() RepositoryBlock {
	b.Checksum = bytes.Clone(b.Checksum)
	return b
}

// BlockSolver is a proof-of-work solution observed on chain for a target block.
type BlockSolver struct {
	BlockNum      uint64
	MinedIn       uint64
	SolverAddress []byte
	TxID          string
	Reward        decimal.Decimal
}

// Clone returns a deep copy of the solver.
func (s BlockSolver) Clone() BlockSolver {
	s.SolverAddress = bytes.Clone(s.SolverAddress)
	return s
}
