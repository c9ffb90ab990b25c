package syncer

import (
	"encoding/hex"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
)

type stage uint8

const (
	stageAwaitingHeader stage = iota
	stageAwaitingTransactions
)

func (s stage) String() string {
	if s == stageAwaitingTransactions {
		return "transactions"
	}
	return "header"
}

// request is the single outstanding block fetch.
type request struct {
	blockNum     uint64
	backfill     bool
	stage        stage
	lastActivity time.Time
	retries      int
	peer         protocol.Endpoint
	header       *protocol.Block
	expected     map[string]struct{}
	txs          []protocol.Transaction
	txsRequested bool
}

func newRequest(blockNum uint64, backfill bool, hint protocol.Endpoint, now time.Time) *request {
	return &request{
		blockNum:     blockNum,
		backfill:     backfill,
		stage:        stageAwaitingHeader,
		lastActivity: now,
		peer:         hint,
		txsRequested: backfill,
	}
}

func (r *request) kind() string {
	if r.backfill {
		return kindBackfill
	}
	return kindForward
}

// reset drops everything learned about the block and starts over from the header.
func (r *request) reset(now time.Time) {
	r.stage = stageAwaitingHeader
	r.header = nil
	r.expected = nil
	r.txs = nil
	r.retries = 0
	r.txsRequested = r.backfill
	r.lastActivity = now
}

func (r *request) complete() bool {
	return r.header != nil && len(r.txs) == len(r.expected)
}

func (r *request) collect(tx protocol.Transaction) bool {
	id := hex.EncodeToString(tx.ID)
	if _, ok := r.expected[id]; !ok {
		return false
	}
	for _, have := range r.txs {
		if hex.EncodeToString(have.ID) == id {
			return false
		}
	}
	r.txs = append(r.txs, tx)
	return true
}

// dispatch is a GetBlock send prepared under the request lock and performed
// after it is released.
type dispatch struct {
	target    *request
	msg       protocol.GetBlock
	skip      protocol.Endpoint
	preferred protocol.Endpoint
	stage     stage
	kind      string
}

func (r *request) dispatch(skip, preferred protocol.Endpoint) dispatch {
	msg := protocol.GetBlock{BlockNum: r.blockNum, FullHeader: true}
	switch {
	case r.stage == stageAwaitingTransactions:
		msg.IncludeTransactions = 1
		msg.FullHeader = false
	case r.backfill:
		msg.IncludeTransactions = 1
	}
	return dispatch{
		target:    r,
		msg:       msg,
		skip:      skip,
		preferred: preferred,
		stage:     r.stage,
		kind:      r.kind(),
	}
}

func expectedTxIDs(b *protocol.Block) []string {
	ids := make([]string, 0, len(b.TxIDs))
	seen := make(map[string]struct{}, len(b.TxIDs))
	for _, id := range b.TxIDs {
		if protocol.IsRewardMarker(id) {
			continue
		}
		key := hex.EncodeToString(id)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ids = append(ids, key)
	}
	return ids
}
