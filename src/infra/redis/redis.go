package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client            *redis.Client
	prefix            string
	defaultTTLSeconds time.Duration
}

func NewRedisClient(addr string, poolSize int, defaultTTLSeconds time.Duration) *RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr: addr,

		PoolSize:     poolSize,
		MinIdleConns: 5,

		// Timeouts tuned for cache access, not durable storage
		DialTimeout:  5 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,

		MaxRetries:      3,
		MinRetryBackoff: 50 * time.Millisecond,
		MaxRetryBackoff: 500 * time.Millisecond,
	})

	return &RedisClient{
		client:            client,
		defaultTTLSeconds: defaultTTLSeconds,
	}
}

// WithPrefix returns a client that namespaces every key. Used by the
// test suites to keep their keys apart from live data.
func (rc *RedisClient) WithPrefix(prefix string) *RedisClient {
	clone := *rc
	clone.prefix = prefix
	return &clone
}

func (rc *RedisClient) key(key string) string {
	return rc.prefix + key
}

func (rc *RedisClient) SetKey(ctx context.Context, key string, value string) error {
	fields := map[string]interface{}{
		"data":      value,
		"cached_at": time.Now().Unix(),
	}

	err := rc.client.HSet(ctx, rc.key(key), fields).Err()
	if err != nil {
		return err
	}

	return rc.client.Expire(ctx, rc.key(key), rc.defaultTTLSeconds).Err()
}

func (rc *RedisClient) GetKey(ctx context.Context, key string) (string, bool, error) {
	result := rc.client.HGet(ctx, rc.key(key), "data")

	// Cache miss
	if result.Err() == redis.Nil {
		return "", false, nil
	}
	if result.Err() != nil {
		return "", false, result.Err()
	}

	return result.Val(), true, nil
}

func (rc *RedisClient) Invalidate(ctx context.Context, keys ...string) error {
	var errs []string

	for _, key := range keys {
		if err := rc.client.Del(ctx, rc.key(key)).Err(); err != nil {
			errs = append(errs, fmt.Sprintf("key %s: %v", key, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalidation errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// FlushByPrefix removes every key under the client's prefix.
func (rc *RedisClient) FlushByPrefix(ctx context.Context) error {
	if rc.prefix == "" {
		return fmt.Errorf("refusing to flush without a prefix")
	}

	iter := rc.client.Scan(ctx, 0, rc.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := rc.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}

	return iter.Err()
}

func (rc *RedisClient) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}
