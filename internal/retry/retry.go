package retry

import (
	"context"
	"fmt"
	"time"
)

// Config controls how WithRetry re-runs a failing operation.
type Config struct {
	Attempts int
	Delay    time.Duration
	Backoff  bool // scale the delay with the attempt number
}

// WithRetry runs fn until it succeeds, the attempts are exhausted, or the
// context is cancelled while waiting between attempts.
func WithRetry(ctx context.Context, cfg Config, fn func() error) error {
	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := fn(); err != nil {
			lastErr = err

			if attempt == attempts {
				return fmt.Errorf("failed after %d attempts: %w", attempts, err)
			}

			delay := cfg.Delay
			if cfg.Backoff {
				delay = time.Duration(attempt) * cfg.Delay
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				continue
			}
		}
		return nil
	}

	return lastErr
}
