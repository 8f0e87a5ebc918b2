package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a test context when the caller passes no timeout.
const DefaultTimeout = 5 * time.Second

// Context returns a context that expires after timeout, or just before the
// test binary's own deadline if that comes first. It is cancelled when the
// test finishes.
func Context(t testing.TB, timeout time.Duration) context.Context {
	ctx, _ := WithCancel(t, timeout)
	return ctx
}

// WithCancel is Context with the cancel func exposed, for tests that
// interrupt a blocked prompt or countdown themselves.
func WithCancel(t testing.TB, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), boundedTimeout(t, timeout))
	t.Cleanup(cancel)
	return ctx, cancel
}

func boundedTimeout(t testing.TB, timeout time.Duration) time.Duration {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	d, ok := t.(interface{ Deadline() (time.Time, bool) })
	if !ok {
		return timeout
	}
	deadline, ok := d.Deadline()
	if !ok {
		return timeout
	}
	if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
		return remaining
	}
	return timeout
}
