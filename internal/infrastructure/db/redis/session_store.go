package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

const (
	sessionTokenKey = "token"
	sessionUserKey  = "user"
)

// SessionStore persists the active session's token and user under the
// "token" and "user" keys, expiring both after the configured TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps the given Redis client. A zero ttl means the session
// keys never expire.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Save(ctx context.Context, token string, user *domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionTokenKey, token, s.ttl)
	pipe.Set(ctx, sessionUserKey, payload, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Current(ctx context.Context) (*domain.AuthUser, error) {
	token, err := s.client.Get(ctx, sessionTokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}

	payload, err := s.client.Get(ctx, sessionUserKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	return &domain.AuthUser{User: user, Token: token}, nil
}

func (s *SessionStore) HasSession(ctx context.Context) bool {
	n, err := s.client.Exists(ctx, sessionTokenKey).Result()
	return err == nil && n > 0
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionTokenKey, sessionUserKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
