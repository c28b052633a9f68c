package validation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a shared Redis instance, giving multiple
// processes one cache and one loop-guard namespace. INCR provides the
// atomic increment-and-fetch the contract requires.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore wraps an already-connected Redis client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (rs *RedisStore) GetResult(ctx context.Context, key string) (Result, bool, error) {
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Result{}, false, nil
		}
		return Result{}, false, errors.Join(ErrStoreUnavailable, err)
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		// A corrupt entry is as good as a miss; the caller will recompute
		// and overwrite it.
		return Result{}, false, nil
	}
	return res, true, nil
}

func (rs *RedisStore) SetResult(ctx context.Context, key string, res Result, ttl time.Duration) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	if err := rs.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (rs *RedisStore) DeleteResult(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (rs *RedisStore) IncrAttempts(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := rs.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// NX so the window is anchored at the first increment, not refreshed by
	// later ones.
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return incr.Val(), nil
}

// decrScript decrements and deletes the key in one round trip so a
// concurrent INCR cannot land between the two and lose its count.
var decrScript = redis.NewScript(`
local n = redis.call("DECR", KEYS[1])
if n <= 0 then
	redis.call("DEL", KEYS[1])
end
return n
`)

func (rs *RedisStore) DecrAttempts(ctx context.Context, key string) error {
	if err := decrScript.Run(ctx, rs.client, []string{key}).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
