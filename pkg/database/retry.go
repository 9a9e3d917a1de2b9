package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUnavailable marks the store as unreachable. Services surface it to
// adapters unchanged so they can answer 503 / exit code 2.
var ErrUnavailable = errors.New("graph store unavailable")

// retryBackoff holds the delays between write attempts.
var retryBackoff = []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}

// WithRetry runs fn, retrying transient store conflicts with exponential
// backoff (100, 200, 400 ms; max 3 retries). Non-transient errors and
// context cancellation return immediately.
func WithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt <= len(retryBackoff); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff[attempt-1]):
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !IsTransient(lastErr) {
			return lastErr
		}
	}
	return fmt.Errorf("store write failed after %d attempts: %w", len(retryBackoff)+1, lastErr)
}

// IsTransient reports whether err is a retriable store conflict:
// serialization failures, deadlocks, or transient connection drops.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", // serialization_failure
			"40P01", // deadlock_detected
			"55P03", // lock_not_available
			"57P03": // cannot_connect_now
			return true
		}
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

// IsUnavailable reports whether err means the store cannot be reached at
// all, as opposed to rejecting a particular statement.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}
