package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleEviction = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter is the single-instance fallback used when Redis is not configured.
type LocalLimiter struct {
	mu       sync.Mutex
	rule     Rule
	visitors map[string]*visitor
	now      func() time.Time
}

func NewLocalLimiter(rule Rule) *LocalLimiter {
	return &LocalLimiter{
		rule:     rule,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evictIdle(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(l.rule.refillInterval()), l.rule.Requests)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	decision := Decision{Limit: l.rule.Requests}
	if v.limiter.AllowN(now, 1) {
		decision.Allowed = true
		decision.Remaining = int(math.Floor(v.limiter.TokensAt(now)))
		return decision, nil
	}

	reservation := v.limiter.ReserveN(now, 1)
	decision.RetryAfter = reservation.DelayFrom(now)
	reservation.CancelAt(now)
	return decision, nil
}

func (l *LocalLimiter) evictIdle(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleEviction {
			delete(l.visitors, key)
		}
	}
}
