// Package ratelimit throttles outbound catalog calls.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/lepinkainen/marquee/internal/metrics"
	"golang.org/x/time/rate"
)

// Limiter is a named token bucket. A nil *Limiter never blocks, so callers
// can disable throttling by passing nil.
type Limiter struct {
	limiter *rate.Limiter
	name    string
}

// New creates a limiter allowing requestsPerSecond with an equal burst.
// A non-positive rate yields nil (unlimited).
func New(name string, requestsPerSecond int) *Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		name:    name,
	}
}

// Wait blocks until a request may proceed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	start := time.Now()
	err := l.limiter.Wait(ctx)
	metrics.RateLimitWait.WithLabelValues(l.name).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", l.name, err)
	}
	return nil
}

// Name returns the limiter's name, or "unlimited" for a nil limiter.
func (l *Limiter) Name() string {
	if l == nil {
		return "unlimited"
	}
	return l.name
}
