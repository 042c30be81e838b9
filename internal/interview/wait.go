package interview

import (
	"context"
	"time"

	"github.com/spigell/interview-coach/internal/randutil"
)

const (
	minThinkingDelay = 1500 * time.Millisecond
	maxThinkingDelay = 3000 * time.Millisecond
)

var sleep = time.Sleep

// WaitFunc blocks for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

// WaitFor sleeps for d and returns early with the context error on cancellation.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	pause := sleep
	done := make(chan struct{})
	go func() {
		defer close(done)
		pause(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// thinkingDelay samples the pause taken before the interviewer responds.
func thinkingDelay(src randutil.Source) time.Duration {
	seconds := randutil.Between(src, minThinkingDelay.Seconds(), maxThinkingDelay.Seconds())
	return time.Duration(seconds * float64(time.Second))
}
