package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces rate limit state in the shared Redis instance.
const redisKeyPrefix = "validkit:ratelimit:"

// consumeScript implements the token bucket refill-and-consume step atomically.
// State is kept in a hash {tokens, last_refill} keyed per client. Returns the
// remaining token count and the next refill time in Unix milliseconds.
var consumeScript = redis.NewScript(`
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local refill_rate = tonumber(ARGV[2])
local refill_interval = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])
local now = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])
if tokens == nil then
	tokens = capacity
	last_refill = now
end

local intervals = math.floor((now - last_refill) / refill_interval)
local max_intervals = math.floor(capacity / refill_rate) + 1
if intervals > max_intervals then
	intervals = max_intervals
end
if intervals > 0 then
	tokens = math.min(tokens + intervals * refill_rate, capacity)
	last_refill = now
end

tokens = tokens - requested

redis.call('HSET', key, 'tokens', tokens, 'last_refill', last_refill)
redis.call('PEXPIRE', key, (max_intervals + 1) * refill_interval)

return {tokens, last_refill + refill_interval}
`)

// RedisStore implements Store on top of Redis so that rate limits are shared
// across service instances. Bucket state updates run in a Lua script to keep
// the refill-and-consume step atomic under concurrent requests.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed store using the provided client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (rs *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	now := time.Now()
	res, err := consumeScript.Run(ctx, rs.client, []string{redisKeyPrefix + key},
		config.Capacity,
		config.RefillRate,
		config.RefillInterval.Milliseconds(),
		tokens,
		now.UnixMilli(),
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, ErrStoreUnavailable
	}

	return int(res[0]), time.UnixMilli(res[1]), nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
