package ratelimit

import (
	"context"
	"sync"
	"time"
)

// SlidingWindowLimiter is an in-process limiter allowing at most limit
// requests per key within any trailing window.
type SlidingWindowLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string][]time.Time
}

// NewSlidingWindowLimiter creates a limiter and starts a goroutine that
// drops idle keys until ctx is cancelled.
func NewSlidingWindowLimiter(ctx context.Context, limit int, window time.Duration) *SlidingWindowLimiter {
	return newSlidingWindowLimiter(ctx, limit, window, time.Now)
}

// newSlidingWindowLimiter fixes the clock before cleanupLoop starts reading it.
func newSlidingWindowLimiter(ctx context.Context, limit int, window time.Duration, now func() time.Time) *SlidingWindowLimiter {
	l := &SlidingWindowLimiter{
		limit:   limit,
		window:  window,
		now:     now,
		clients: make(map[string][]time.Time),
	}
	go l.cleanupLoop(ctx)
	return l
}

var _ Limiter = (*SlidingWindowLimiter)(nil)

func (l *SlidingWindowLimiter) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(5 * l.window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *SlidingWindowLimiter) cleanup() {
	windowStart := l.now().Add(-l.window)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, ts := range l.clients {
		ts = prune(ts, windowStart)
		if len(ts) == 0 {
			delete(l.clients, key)
			continue
		}
		l.clients[key] = ts
	}
}

func (l *SlidingWindowLimiter) Allow(key string) (bool, time.Duration) {
	now := l.now()
	windowStart := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := prune(l.clients[key], windowStart)
	if len(ts) >= l.limit {
		l.clients[key] = ts
		return false, ts[0].Add(l.window).Sub(now)
	}
	l.clients[key] = append(ts, now)
	return true, 0
}

// prune filters timestamps outside the window in place.
func prune(ts []time.Time, windowStart time.Time) []time.Time {
	valid := ts[:0]
	for _, t := range ts {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}
	return valid
}
