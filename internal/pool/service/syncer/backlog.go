package syncer

import (
	"container/heap"

	"github.com/bogdanadnan/Ixian-LitePool/internal/pool/protocol"
)

type blockHeap []uint64

func (h blockHeap) Len() int           { return len(h) }
func (h blockHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h blockHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *blockHeap) Push(x any) {
	*h = append(*h, x.(uint64))
}

func (h *blockHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// backlog is a set of block numbers waiting to be fetched, popped lowest first.
// Each entry remembers the peer that told us about it.
type backlog struct {
	items blockHeap
	hints map[uint64]protocol.Endpoint
}

func newBacklog() *backlog {
	return &backlog{hints: make(map[uint64]protocol.Endpoint)}
}

func (b *backlog) push(num uint64, hint protocol.Endpoint) bool {
	if _, ok := b.hints[num]; ok {
		return false
	}
	b.hints[num] = hint
	heap.Push(&b.items, num)
	return true
}

func (b *backlog) pop() (uint64, protocol.Endpoint, bool) {
	if len(b.items) == 0 {
		return 0, "", false
	}
	num := heap.Pop(&b.items).(uint64)
	hint := b.hints[num]
	delete(b.hints, num)
	return num, hint, true
}

func (b *backlog) contains(num uint64) bool {
	_, ok := b.hints[num]
	return ok
}

func (b *backlog) len() int {
	return len(b.items)
}
