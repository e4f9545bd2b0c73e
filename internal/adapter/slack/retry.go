package slack

import (
	"context"
	"fmt"
	"time"

	"alarm-notifier/internal/domain/model"
)

const (
	// MaxAttempts is the total number of delivery attempts per notification.
	MaxAttempts = 5
	maxBackoff  = 60 * time.Second
)

// Outcome classifies a single delivery attempt.
type Outcome int

const (
	// OutcomeOK means the webhook accepted the message.
	OutcomeOK Outcome = iota
	// OutcomeRetryable means the attempt failed but another may succeed.
	OutcomeRetryable
	// OutcomeFatal means no further attempt can succeed.
	OutcomeFatal
)

// AttemptResult is the result of one delivery attempt. Backoff is only
// meaningful for retryable outcomes and asks the driver to wait before the
// next attempt.
type AttemptResult struct {
	Outcome Outcome
	Backoff bool
	Err     error
}

func delivered() AttemptResult { return AttemptResult{Outcome: OutcomeOK} }

func fatal(err error) AttemptResult { return AttemptResult{Outcome: OutcomeFatal, Err: err} }

func retryNow(err error) AttemptResult { return AttemptResult{Outcome: OutcomeRetryable, Err: err} }

func retryAfterBackoff(err error) AttemptResult {
	return AttemptResult{Outcome: OutcomeRetryable, Backoff: true, Err: err}
}

// Backoff returns the delay after the given zero-based attempt: 2^attempt
// seconds, capped at 60 seconds.
func Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= 6 {
		return maxBackoff
	}
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

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

// retry calls attempt until it succeeds, fails fatally or maxAttempts is
// reached. It returns the number of attempts made. No wait follows the final
// attempt.
func retry(ctx context.Context, maxAttempts int, sleep Sleeper, attempt func(ctx context.Context, n int) AttemptResult) (int, error) {
	var lastErr error
	for n := 0; n < maxAttempts; n++ {
		res := attempt(ctx, n)
		switch res.Outcome {
		case OutcomeOK:
			return n + 1, nil
		case OutcomeFatal:
			return n + 1, res.Err
		}

		lastErr = res.Err
		if !res.Backoff || n == maxAttempts-1 {
			continue
		}
		if err := sleep(ctx, Backoff(n)); err != nil {
			return n + 1, fmt.Errorf("%w after %d attempts: %w", model.ErrDeliveryExhausted, n+1, err)
		}
	}
	return maxAttempts, fmt.Errorf("%w after %d attempts: %w", model.ErrDeliveryExhausted, maxAttempts, lastErr)
}
