package mining

import (
	"sync"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/clock"
)

// shareRate measures accepted shares per second over fixed windows.
type shareRate struct {
	clock  clock.Clock
	window time.Duration

	mu      sync.Mutex
	started time.Time
	count   int
}

func newShareRate(clk clock.Clock, window time.Duration) *shareRate {
	return &shareRate{clock: clk, window: window}
}

// add counts one share. When the window has elapsed it returns the rate of
// the closed window and starts a new one.
func (r *shareRate) add() (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if r.started.IsZero() {
		r.started = now
	}
	r.count++

	elapsed := now.Sub(r.started)
	if elapsed < r.window {
		return 0, false
	}
	rate := float64(r.count) / elapsed.Seconds()
	r.started = now
	r.count = 0
	return rate, true
}
