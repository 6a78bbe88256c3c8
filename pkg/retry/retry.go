// Package retry re-runs operations that failed with transient lock contention.
package retry

import (
	"context"
	"time"

	goretry "github.com/sethvargo/go-retry"

	"github.com/heartmarshall/campus-lending/internal/domain"
)

const (
	defaultBaseDelay = 10 * time.Millisecond
	jitterPercent    = 30
)

// OnBusy runs fn up to attempts times with exponential backoff starting at
// baseDelay. Only errors wrapping domain.ErrBusy are retried; every other
// error, including validation and storage failures, is returned at once.
// The last error is returned unchanged when attempts are exhausted.
func OnBusy(ctx context.Context, attempts int, baseDelay time.Duration, fn func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}

	b := goretry.NewExponential(baseDelay)
	b = goretry.WithJitterPercent(jitterPercent, b)
	b = goretry.WithMaxRetries(uint64(attempts-1), b)

	return goretry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if domain.IsRetryable(err) {
			return goretry.RetryableError(err)
		}
		return err
	})
}
