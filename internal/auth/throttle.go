package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Throttle counts failed logins per key inside a fixed window.
type Throttle interface {
	Allowed(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// redisCounter is the subset of *redis.Client the throttle needs.
type redisCounter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type RedisThrottle struct {
	rdb         redisCounter
	maxAttempts int
	window      time.Duration
}

func NewRedisThrottle(rdb redisCounter, maxAttempts int, window time.Duration) *RedisThrottle {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisThrottle{rdb: rdb, maxAttempts: maxAttempts, window: window}
}

func throttleKey(key string) string {
	return "login:fail:" + key
}

func (t *RedisThrottle) Allowed(ctx context.Context, key string) (bool, error) {
	n, err := t.rdb.Get(ctx, throttleKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle get: %w", err)
	}
	return n < t.maxAttempts, nil
}

// Fail starts the window on the first failure; later failures do not extend it.
func (t *RedisThrottle) Fail(ctx context.Context, key string) error {
	k := throttleKey(key)
	n, err := t.rdb.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.rdb.Expire(ctx, k, t.window).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

func (t *RedisThrottle) Reset(ctx context.Context, key string) error {
	if err := t.rdb.Del(ctx, throttleKey(key)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

// NoopThrottle never blocks. It is used when no redis address is configured.
type NoopThrottle struct{}

func (NoopThrottle) Allowed(context.Context, string) (bool, error) { return true, nil }
func (NoopThrottle) Fail(context.Context, string) error            { return nil }
func (NoopThrottle) Reset(context.Context, string) error           { return nil }

// ConnectRedis opens a client and pings it once.
func ConnectRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

var (
	_ Throttle     = (*RedisThrottle)(nil)
	_ Throttle     = NoopThrottle{}
	_ redisCounter = (*redis.Client)(nil)
)
