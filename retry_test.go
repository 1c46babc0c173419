package client

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRetry_FirstAttemptSuccess(t *testing.T) {
	t.Parallel()

	calls := 0
	start := time.Now()

	v, err := Retry(context.Background(), func(_ context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != "ok" {
		t.Errorf("expected value 'ok', got %q", v)
	}

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}

	// A successful first attempt must not incur any backoff delay
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("expected no delay, took %v", elapsed)
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	const base = 10 * time.Millisecond

	calls := 0
	start := time.Now()

	v, err := Retry(context.Background(), func(_ context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	}, WithAttempts(5), WithBaseDelay(base))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != 42 {
		t.Errorf("expected value 42, got %d", v)
	}

	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}

	// Two failures: delays of base*2^0 and base*2^1 must have elapsed
	if elapsed := time.Since(start); elapsed < 3*base {
		t.Errorf("expected at least %v of backoff, took %v", 3*base, elapsed)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0

	_, err := Retry(context.Background(), func(_ context.Context) (int, error) {
		calls++
		return 0, fmt.Errorf("attempt %d failed", calls)
	}, WithAttempts(3), WithBaseDelay(time.Millisecond))

	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}

	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}

	// The final attempt's error is propagated unchanged, not an aggregate
	if err.Error() != "attempt 3 failed" {
		t.Errorf("expected last attempt's error, got: %v", err)
	}
}

func TestRetry_AtLeastOneAttempt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attempts int
	}{
		{"zero attempts", 0},
		{"negative attempts", -1},
		{"one attempt", 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			sentinel := errors.New("boom")

			_, err := Retry(context.Background(), func(_ context.Context) (int, error) {
				calls++
				return 0, sentinel
			}, WithAttempts(tt.attempts), WithBaseDelay(time.Millisecond))

			if calls != 1 {
				t.Errorf("expected exactly 1 call, got %d", calls)
			}

			if !errors.Is(err, sentinel) {
				t.Errorf("expected sentinel error, got: %v", err)
			}
		})
	}
}

func TestRetry_NoRetryOnSuccess(t *testing.T) {
	t.Parallel()

	calls := 0

	_, err := Retry(context.Background(), func(_ context.Context) (int, error) {
		calls++
		return calls, nil
	}, WithAttempts(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetry_CancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0

	_, err := Retry(ctx, func(_ context.Context) (int, error) {
		calls++
		// Cancel while the retry loop is waiting out the backoff
		cancel()
		return 0, errors.New("transient")
	}, WithAttempts(3), WithBaseDelay(10*time.Second))

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", calls)
	}
}

func TestNextDelay_Saturates(t *testing.T) {
	t.Parallel()

	d := 500 * time.Millisecond
	prev := d

	for i := 0; i < 100; i++ {
		d = nextDelay(d)

		if d <= 0 {
			t.Fatalf("delay wrapped negative after %d doublings: %v", i+1, d)
		}

		if d < prev {
			t.Fatalf("delay decreased after %d doublings: %v -> %v", i+1, prev, d)
		}

		prev = d
	}

	if d != maxBackoffDelay {
		t.Errorf("expected delay to saturate at maxBackoffDelay, got %v", d)
	}

	if nextDelay(maxBackoffDelay) != maxBackoffDelay {
		t.Error("expected saturated delay to stay saturated")
	}
}

func TestWait(t *testing.T) {
	t.Parallel()

	t.Run("zero duration returns immediately", func(t *testing.T) {
		t.Parallel()

		if err := wait(context.Background(), 0); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("elapses", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		if err := wait(context.Background(), 20*time.Millisecond); err != nil {
			t.Errorf("unexpected error: %v", err)
		}

		if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
			t.Errorf("expected at least 20ms, took %v", elapsed)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := wait(ctx, 10*time.Second); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
	})
}
