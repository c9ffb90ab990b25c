package mining

import (
	"sync"
	"time"

	"github.com/bogdanadnan/Ixian-LitePool/internal/clock"
)

// failureLimiter counts failed requests per wallet over a rolling window.
type failureLimiter struct {
	clock   clock.Clock
	window  time.Duration
	ceiling int

	mu       sync.Mutex
	failures map[string][]time.Time
}

func newFailureLimiter(clk clock.Clock, window time.Duration, ceiling int) *failureLimiter {
	return &failureLimiter{
		clock:    clk,
		window:   window,
		ceiling:  ceiling,
		failures: make(map[string][]time.Time),
	}
}

// Allow reports whether key is still below the failure ceiling.
func (l *failureLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pruneLocked(key, l.clock.Now())) < l.ceiling
}

// Fail records a failure for key.
func (l *failureLimiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.failures[key] = append(l.pruneLocked(key, now), now)
	if len(l.failures) > limiterSweepSize {
		for k := range l.failures {
			l.pruneLocked(k, now)
		}
	}
}

func (l *failureLimiter) pruneLocked(key string, now time.Time) []time.Time {
	times, ok := l.failures[key]
	if !ok {
		return nil
	}
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	times = times[i:]
	if len(times) == 0 {
		delete(l.failures, key)
		return nil
	}
	l.failures[key] = times
	return times
}
