package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis provides a Redis-backed TTL cache so correlation state survives
// process restarts and is shared across replicas.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis cache. The prefix namespaces keys so multiple
// caches can share one logical database.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (c *Redis) key(key string) string {
	return c.prefix + ":" + key
}

// Get retrieves a value. Absent or expired keys return ErrNotFound.
func (c *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("cache get: %w", err)
	}
	return value, nil
}

// Put stores a value with the configured TTL.
func (c *Redis) Put(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, c.key(key), value, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}
