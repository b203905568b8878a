package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.trai.ch/depcache/internal/core/domain"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 200 * time.Millisecond
	maxRetryDelay        = 2 * time.Second
)

// WithRetry configures how often a failing store operation is attempted.
func (a *App) WithRetry(attempts uint, delay time.Duration) *App {
	a.retryAttempts = max(attempts, 1)
	a.retryDelay = delay
	return a
}

// withRetry runs fn with exponential backoff. Existing entries, unsafe archives
// and canceled contexts are not retried.
func (a *App) withRetry(ctx context.Context, operation string, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(a.retryAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(a.retryDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.RetryIf(retryable),
		retry.OnRetry(func(n uint, err error) {
			a.logger.Warn(fmt.Sprintf("%s: attempt %d/%d failed: %v", operation, n+1, a.retryAttempts, err))
		}),
		retry.LastErrorOnly(true),
	)
}

func retryable(err error) bool {
	return !errors.Is(err, domain.ErrEntryExists) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}
