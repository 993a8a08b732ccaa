// Package ratelimit provides a minimum-spacing limiter for polite clients
// of external services such as the Nominatim geocoder, which requires at
// least one second between requests.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a minimum interval between successive calls to Wait.
// Safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// New creates a Limiter with the given minimum spacing between calls.
func New(interval time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Wait blocks until the minimum interval since the previous call has
// elapsed, or until the context is canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	now := l.now()
	var wait time.Duration
	if !l.last.IsZero() {
		if elapsed := now.Sub(l.last); elapsed < l.interval {
			wait = l.interval - elapsed
		}
	}
	l.last = now.Add(wait)
	l.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	return l.sleep(ctx, wait)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
