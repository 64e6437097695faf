package harvester

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultItemDelay is the pause after every dependent module-item fetch.
const DefaultItemDelay = 500 * time.Millisecond

// Pacer throttles dependent fetches. Pause is called once after each
// dependent fetch and blocks until the next one may start.
type Pacer interface {
	Pause(ctx context.Context) error
}

// FixedDelay sleeps for the same duration after every fetch.
type FixedDelay time.Duration

// Pause implements Pacer.
func (d FixedDelay) Pause(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(time.Duration(d))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Limiter paces fetches with a token bucket refilled once per interval. A
// burst above one lets short runs of dependent fetches proceed back to back.
type Limiter struct {
	limiter *rate.Limiter
}

func NewLimiter(interval time.Duration, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}

	return &Limiter{limiter: rate.NewLimiter(rate.Every(interval), burst)}
}

// Pause implements Pacer.
func (l *Limiter) Pause(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// NewPacer returns a FixedDelay for burst values up to one and a Limiter otherwise.
func NewPacer(interval time.Duration, burst int) Pacer {
	if burst <= 1 {
		return FixedDelay(interval)
	}

	return NewLimiter(interval, burst)
}
