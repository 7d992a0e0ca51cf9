package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

// Redis stores responses as plain keys with a native TTL.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps a connected client. prefix namespaces every key.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) fullKey(key string) string {
	if r.prefix != "" {
		return r.prefix + ":" + key
	}
	return key
}

// Get returns the cached value. Misses and errors both report false.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.WithContext(ctx).Get(r.fullKey(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores value with a native expiry.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.WithContext(ctx).Set(r.fullKey(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.WithContext(ctx).Del(r.fullKey(key)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Prune is a no-op: Redis expires keys itself.
func (r *Redis) Prune(context.Context) (int64, error) { return 0, nil }

func (r *Redis) Name() string { return DriverRedis }

func (r *Redis) Close() error { return r.client.Close() }
