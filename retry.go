package client

import (
	"context"
	"math"
	"time"
)

// maxBackoffDelay is where the doubling stops: past this point another
// doubling would overflow time.Duration and wrap negative.
const maxBackoffDelay = time.Duration(math.MaxInt64)

// RetryOption configures a [Retry] call.
type RetryOption func(*retryOptions)

type retryOptions struct {
	attempts  int
	baseDelay time.Duration
}

func defaultRetryOptions() retryOptions {
	return retryOptions{
		attempts:  3,
		baseDelay: 500 * time.Millisecond,
	}
}

// WithAttempts sets the total attempt ceiling, including the first
// attempt. Values below one are treated as one: the operation always
// runs at least once.
func WithAttempts(n int) RetryOption {
	return func(o *retryOptions) {
		o.attempts = n
	}
}

// WithBaseDelay sets the delay before the first re-attempt. Each
// subsequent delay doubles.
func WithBaseDelay(d time.Duration) RetryOption {
	return func(o *retryOptions) {
		if d > 0 {
			o.baseDelay = d
		}
	}
}

// Retry runs op until it succeeds or the attempt ceiling is reached,
// sleeping base*2^n between attempts (500ms, 1s, 2s, ... by default).
// The delay is deterministic: no jitter is applied and total elapsed
// time is not capped, so many callers failing in lockstep will also
// retry in lockstep.
//
// A successful attempt returns immediately; the first attempt is never
// delayed. When every attempt fails, the error from the final attempt
// is returned unchanged, not an aggregate. The backoff wait honours ctx:
// a cancelled context aborts the loop and returns ctx.Err().
func Retry[T any](ctx context.Context, op func(context.Context) (T, error), opts ...RetryOption) (T, error) {
	o := defaultRetryOptions()
	for _, opt := range opts {
		opt(&o)
	}

	attempts := o.attempts
	if attempts < 1 {
		attempts = 1
	}

	var zero T
	var lastErr error

	delay := o.baseDelay

	for i := 0; i < attempts; i++ {
		if i > 0 {
			if err := wait(ctx, delay); err != nil {
				return zero, err
			}
			delay = nextDelay(delay)
		}

		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}

	return zero, lastErr
}

// nextDelay doubles d, saturating at maxBackoffDelay so pathological
// attempt counts degrade to a constant delay rather than a wrapped
// negative one.
func nextDelay(d time.Duration) time.Duration {
	if d > maxBackoffDelay/2 {
		return maxBackoffDelay
	}
	return d << 1
}

// wait blocks for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
