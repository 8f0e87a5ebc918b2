package runner

import (
	"context"
	"fmt"
	"time"
)

// Sleeper blocks for a duration or until ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type timerSleeper struct{}

// Sleep waits on a timer so cancellation interrupts the countdown.
func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// countdown prints one tick per second from the configured value down to 1,
// then "Go!". Zero or negative values skip it entirely.
func (r *Runner) countdown(ctx context.Context) error {
	seconds := r.cfg.CountdownSeconds
	if seconds <= 0 {
		return nil
	}
	fmt.Fprintf(r.out, "\nStarting in %d seconds...\n\n", seconds)
	for remaining := seconds; remaining > 0; remaining-- {
		r.observer.OnCountdown(remaining)
		fmt.Fprintf(r.out, "%d... ", remaining)
		if err := r.sleeper.Sleep(ctx, time.Second); err != nil {
			fmt.Fprintln(r.out)
			return fmt.Errorf("countdown: %w", err)
		}
	}
	r.observer.OnCountdown(0)
	fmt.Fprint(r.out, "Go!\n\n")
	return nil
}
