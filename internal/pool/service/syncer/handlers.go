package syncer

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
	"go.uber.org/zap"
)

// OnBlockHeader handles a block header sent by a peer.
func (e *Engine) OnBlockHeader(ctx context.Context, payload []byte, from protocol.Endpoint) error {
	block, err := protocol.DecodeBlock(payload)
	if err != nil {
		return fmt.Errorf("decode block header: %w", err)
	}

	e.reqMu.Lock()
	r := e.current
	if r == nil || r.blockNum != block.BlockNum || r.header != nil {
		e.reqMu.Unlock()
		if block.BlockNum > e.networkHeight.Load() {
			e.onNewHeight(block.BlockNum, from)
		}
		return nil
	}

	r.header = block
	r.lastActivity = e.clock.Now()
	r.peer = from

	ids := expectedTxIDs(block)
	if len(ids) == 0 {
		e.current = nil
		e.reqMu.Unlock()
		e.finalize(ctx, r)
		return nil
	}

	r.expected = make(map[string]struct{}, len(ids))
	e.mappingMu.Lock()
	for _, id := range ids {
		r.expected[id] = struct{}{}
		e.txToBlock[id] = r.blockNum
	}
	e.mappingMu.Unlock()
	r.stage = stageAwaitingTransactions

	if r.txsRequested {
		e.reqMu.Unlock()
		return nil
	}
	r.txsRequested = true
	d := r.dispatch("", from)
	e.reqMu.Unlock()

	e.send(ctx, d)
	return nil
}

// OnTransactionChunk collects the transactions of the outstanding request.
func (e *Engine) OnTransactionChunk(ctx context.Context, payload []byte, _ protocol.Endpoint) error {
	chunk, err := protocol.DecodeTransactionChunk(payload)
	if err != nil {
		return fmt.Errorf("decode transaction chunk: %w", err)
	}

	e.reqMu.Lock()
	r := e.current
	if r == nil || r.stage != stageAwaitingTransactions {
		e.reqMu.Unlock()
		return nil
	}
	if chunk.BlockNum != 0 && chunk.BlockNum != r.blockNum {
		e.reqMu.Unlock()
		return nil
	}

	progressed := false
	for _, tx := range chunk.Transactions {
		if chunk.BlockNum == 0 && !e.mappedTo(tx.ID, r.blockNum) {
			continue
		}
		if r.collect(tx) {
			progressed = true
		}
	}
	if progressed {
		r.lastActivity = e.clock.Now()
	}
	if !r.complete() {
		e.reqMu.Unlock()
		return nil
	}

	e.current = nil
	e.forgetMappingLocked(r)
	e.reqMu.Unlock()

	e.finalize(ctx, r)
	return nil
}

func (e *Engine) mappedTo(txID []byte, blockNum uint64) bool {
	e.mappingMu.Lock()
	defer e.mappingMu.Unlock()
	num, ok := e.txToBlock[hex.EncodeToString(txID)]
	return ok && num == blockNum
}

// OnInventory reacts to block announcements above the known height.
func (e *Engine) OnInventory(_ context.Context, payload []byte, from protocol.Endpoint) error {
	inv, err := protocol.DecodeInventory(payload)
	if err != nil {
		return fmt.Errorf("decode inventory: %w", err)
	}

	var highest uint64
	for _, item := range inv.Items {
		if item.Type == protocol.InvBlock && item.BlockNum > highest {
			highest = item.BlockNum
		}
	}
	if highest > e.networkHeight.Load() {
		e.onNewHeight(highest, from)
	}
	return nil
}

// OnBlockHeightAnnouncement records a new chain tip reported by a peer.
func (e *Engine) OnBlockHeightAnnouncement(_ context.Context, payload []byte, from protocol.Endpoint) error {
	msg, err := protocol.DecodeHeightAnnouncement(payload)
	if err != nil {
		return fmt.Errorf("decode height announcement: %w", err)
	}
	e.onNewHeight(msg.BlockNum, from)
	return nil
}

// onNewHeight raises the known network height and queues the gap. The very
// first height only queues the block right below it.
func (e *Engine) onNewHeight(height uint64, from protocol.Endpoint) {
	var known uint64
	for {
		known = e.networkHeight.Load()
		if height <= known {
			return
		}
		if e.networkHeight.CompareAndSwap(known, height) {
			break
		}
	}
	e.metrics.SetNetworkHeight(height)

	first := known
	if known == 0 {
		if height == 0 {
			return
		}
		first = height - 1
	}
	if window := e.consensus.RedactedWindowSize(); height > window && first < height-window {
		first = height - window
	}

	e.reqMu.Lock()
	var currentNum uint64
	hasCurrent := e.current != nil
	if hasCurrent {
		currentNum = e.current.blockNum
	}

	e.backlogMu.Lock()
	queued := 0
	for num := first; num < height; num++ {
		if hasCurrent && num == currentNum {
			continue
		}
		if e.backlog.contains(num) || e.repo.Contains(num) {
			continue
		}
		e.backlog.push(num, from)
		queued++
	}
	size := e.backlog.len()
	e.backlogMu.Unlock()
	e.reqMu.Unlock()

	e.metrics.SetBacklog(size)
	e.logger.Debug("network height advanced",
		zap.Uint64("height", height),
		zap.Uint64("previous", known),
		zap.Int("queued", queued),
		zap.String("peer", string(from)),
	)
}
