// Package ratelimit throttles the public booking endpoints per client key.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Rule: Requests tokens refilled evenly over Window.
type Rule struct {
	Requests int
	Window   time.Duration
}

func (r Rule) refillInterval() time.Duration {
	if r.Requests <= 0 {
		return r.Window
	}
	return r.Window / time.Duration(r.Requests)
}
