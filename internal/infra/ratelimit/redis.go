package ratelimit

import (
	"context"
	"strconv"
	"time"

	"lane-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// tokenBucket keeps tokens and last refill per key in one hash so every API instance shares the bucket.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
  tokens = capacity
  last_refill = now_ms
end

if interval_ms > 0 then
  local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
  if intervals > 0 then
    tokens = math.min(capacity, tokens + intervals)
    last_refill = last_refill + (intervals * interval_ms)
  end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
  allowed = 1
  tokens = tokens - 1
else
  retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type RedisLimiter struct {
	client redis.Scripter
	rule   Rule
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(client redis.Scripter, rule Rule) *RedisLimiter {
	return &RedisLimiter{client: client, rule: rule, prefix: "ratelimit", now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	ttl := int64(l.rule.Window/time.Second) + 1
	vals, err := tokenBucket.Run(ctx, l.client, []string{l.prefix + ":" + key},
		l.now().UnixMilli(),
		l.rule.Requests,
		l.rule.refillInterval().Milliseconds(),
		ttl,
	).Slice()
	if err != nil {
		return Decision{}, errs.Wrap(err, "run token bucket script")
	}
	if len(vals) != 3 {
		return Decision{}, errs.Newf("unexpected token bucket result: %v", vals)
	}

	return Decision{
		Allowed:    asInt64(vals[0]) == 1,
		Limit:      l.rule.Requests,
		Remaining:  int(asInt64(vals[1])),
		RetryAfter: time.Duration(asInt64(vals[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)
		return n
	}
	return 0
}
