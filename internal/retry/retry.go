// Package retry wraps fallible operations with exponential backoff and
// jitter. It is a thin layer over cenkalti/backoff, kept separate from any
// specific I/O call so it can be exercised with a fake timer in tests.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Config parameterizes the retry combinator.
type Config struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps the exponential growth.
	MaxDelay time.Duration
	// Jitter randomizes each delay to avoid synchronized retries.
	Jitter bool
}

// DefaultConfig matches the behavior expected of external fetch and
// geocode calls: three attempts, exponential backoff from one second.
var DefaultConfig = Config{
	MaxAttempts: 3,
	BaseDelay:   time.Second,
	MaxDelay:    10 * time.Second,
	Jitter:      true,
}

// Do runs op, retrying on error with exponential backoff until the attempt
// budget or the context is exhausted. The last error is returned when all
// attempts fail; it is never swallowed.
func Do(ctx context.Context, cfg Config, op func() error) error {
	return backoff.Retry(op, newBackOff(ctx, cfg))
}

// DoWithTimer is Do with an injectable timer, for tests that must not
// sleep for real.
func DoWithTimer(ctx context.Context, cfg Config, op func() error, timer backoff.Timer) error {
	return backoff.RetryNotifyWithTimer(op, newBackOff(ctx, cfg), nil, timer)
}

func newBackOff(ctx context.Context, cfg Config) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.BaseDelay
	b.MaxInterval = cfg.MaxDelay
	b.MaxElapsedTime = 0
	if !cfg.Jitter {
		b.RandomizationFactor = 0
	}
	b.Reset()

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(attempts-1)), ctx)
}

// Permanent marks an error as non-retryable; Do returns it immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
