package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var errNoClient = errors.New("Redis client is not initialized")

type Cache struct {
	client *redis.Client
}

// NewCache creates a new Cache instance, ensuring that the client is not nil.
func NewCache(client *redis.Client) (*Cache, error) {
	if client == nil {
		return nil, errNoClient
	}
	return &Cache{client: client}, nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c.client == nil {
		return errNoClient
	}
	return c.client.Del(ctx, key).Err()
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if c.client == nil {
		return errNoClient
	}
	return c.client.Set(ctx, key, value, expiration).Err()
}

// Get returns an empty string and no error when the key does not exist.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if c.client == nil {
		return "", errNoClient
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Touch pushes the expiry of key forward. It reports false when the key is gone.
func (c *Cache) Touch(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	if c.client == nil {
		return false, errNoClient
	}
	return c.client.Expire(ctx, key, expiration).Result()
}

// Ping checks that the server answers.
func (c *Cache) Ping(ctx context.Context) error {
	if c.client == nil {
		return errNoClient
	}
	return c.client.Ping(ctx).Err()
}
