// Package consensus exposes the static network parameters the pool depends on.
package consensus

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

const (
	// DefaultRedactedWindowSize is the number of blocks a node keeps before redaction.
	DefaultRedactedWindowSize uint64 = 43200
)

var (
	// DefaultTransactionFee is the flat fee attached to pool transactions, in IXI.
	DefaultTransactionFee = decimal.RequireFromString("0.00005")
	// DefaultMiningReward is the proof-of-work reward split among a block's solvers, in IXI.
	DefaultMiningReward = decimal.NewFromInt(1000)
)

// RewardStep sets the reward for every block from FromBlock up to the next step.
type RewardStep struct {
	FromBlock uint64
	Reward    decimal.Decimal
}

// Params is a fixed set of consensus values.
type Params struct {
	redactedWindow uint64
	fee            decimal.Decimal
	schedule       []RewardStep
}

// NewParams builds Params; an empty schedule falls back to DefaultMiningReward.
func NewParams(redactedWindow uint64, fee decimal.Decimal, schedule []RewardStep) (*Params, error) {
	if redactedWindow == 0 {
		return nil, errors.New("redacted window size must be positive")
	}
	if fee.IsNegative() {
		return nil, errors.New("transaction fee must not be negative")
	}
	if len(schedule) == 0 {
		schedule = []RewardStep{{FromBlock: 0, Reward: DefaultMiningReward}}
	}
	sorted := append([]RewardStep(nil), schedule...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FromBlock < sorted[j].FromBlock })

	return &Params{redactedWindow: redactedWindow, fee: fee, schedule: sorted}, nil
}

// RedactedWindowSize returns the redaction horizon length in blocks.
func (p *Params) RedactedWindowSize() uint64 {
	return p.redactedWindow
}

// TransactionFee returns the fee charged per transaction.
func (p *Params) TransactionFee() decimal.Decimal {
	return p.fee
}

// MiningReward returns the total proof-of-work reward for the target block.
func (p *Params) MiningReward(blockNum uint64) decimal.Decimal {
	reward := decimal.Zero
	for _, step := range p.schedule {
		if step.FromBlock > blockNum {
			break
		}
		reward = step.Reward
	}
	return reward
}
