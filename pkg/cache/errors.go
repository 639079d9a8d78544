package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks backend connection failures: timeouts and refused or
// reset connections.
var ErrNetwork = errors.New("network error")

// retryable marks an error worth another attempt. It is transparent to
// errors.Is and to Error().
type retryable struct{ error }

func (r retryable) Unwrap() error { return r.error }

// Retryable marks err as transient so [RetryWithBackoff] tries again. A nil
// err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return retryable{err}
}

// IsRetryable reports whether err was marked with [Retryable].
func IsRetryable(err error) bool {
	var r retryable
	return errors.As(err, &r)
}

const maxAttempts = 3

// retryDelay is the wait after the first failed attempt; it doubles after
// each further one.
var retryDelay = 100 * time.Millisecond

// RetryWithBackoff calls fn until it succeeds, returns an error not marked
// [Retryable], or has failed maxAttempts times. Cancelling ctx aborts the
// wait between attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	wait := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == maxAttempts {
			return err
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		wait *= 2
	}
}
