// Package sessions keeps login sessions on the server. The browser only holds
// an opaque session id; claims live in Redis with a sliding idle timeout.
package sessions

import (
	"CarePortal/cache"
	"CarePortal/models"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const keyPrefix = "session:"

// Claims is what a session knows about its user.
type Claims struct {
	UserID      string      `json:"user_id"`
	Role        models.Role `json:"role"`
	Email       string      `json:"email"`
	ValidatedAt time.Time   `json:"validated_at"`
}

// Store persists session claims by session id.
type Store interface {
	Create(ctx context.Context, claims Claims) (string, error)
	// Get returns nil, nil when the session does not exist or has expired.
	Get(ctx context.Context, id string) (*Claims, error)
	Update(ctx context.Context, id string, claims Claims) error
	Destroy(ctx context.Context, id string) error
}

type RedisStore struct {
	cache       *cache.Cache
	idleTimeout time.Duration
}

func NewRedisStore(c *cache.Cache, idleTimeout time.Duration) *RedisStore {
	return &RedisStore{cache: c, idleTimeout: idleTimeout}
}

func (s *RedisStore) Create(ctx context.Context, claims Claims) (string, error) {
	id := models.NewID()
	if err := s.write(ctx, id, claims); err != nil {
		return "", err
	}
	return id, nil
}

// Get loads the claims and restarts the idle timer.
func (s *RedisStore) Get(ctx context.Context, id string) (*Claims, error) {
	if id == "" {
		return nil, nil
	}
	raw, err := s.cache.Get(ctx, keyPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == "" {
		return nil, nil
	}

	var claims Claims
	if err := json.Unmarshal([]byte(raw), &claims); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	if _, err := s.cache.Touch(ctx, keyPrefix+id, s.idleTimeout); err != nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}
	return &claims, nil
}

func (s *RedisStore) Update(ctx context.Context, id string, claims Claims) error {
	return s.write(ctx, id, claims)
}

// Destroy is a no-op for unknown ids.
func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.cache.Delete(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *RedisStore) write(ctx context.Context, id string, claims Claims) error {
	data, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.cache.Set(ctx, keyPrefix+id, data, s.idleTimeout); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}
