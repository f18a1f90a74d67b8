package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable is returned when a remote backend cannot be reached.
var ErrUnavailable = errors.New("cache backend unavailable")

// transient marks an error that may clear up on its own.
type transient struct{ err error }

func (e transient) Error() string { return e.err.Error() }
func (e transient) Unwrap() error { return e.err }

// Transient reports whether err is worth retrying.
func Transient(err error) bool {
	var t transient
	return errors.As(err, &t)
}

// unavailable wraps a connection failure as a transient ErrUnavailable.
func unavailable(err error) error {
	return transient{fmt.Errorf("%w: %v", ErrUnavailable, err)}
}

// RetryPolicy bounds how often a remote backend is tried before giving up.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration // first wait, doubled after each failure
}

// DefaultRetry is used when RedisConfig.Retry is zero.
var DefaultRetry = RetryPolicy{Attempts: 3, Delay: 200 * time.Millisecond}

// Do calls fn until it succeeds or returns a non-transient error, the
// attempts run out, or ctx ends.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay

	var err error
	for i := range attempts {
		if err = fn(); err == nil || !Transient(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}
