package memory

import (
	"context"
	"sync"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

// SessionStore keeps the token/user pair in process memory. It backs memory
// mode, where a Redis session store is not available.
type SessionStore struct {
	mu      sync.RWMutex
	session *domain.AuthUser
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Save(ctx context.Context, token string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &domain.AuthUser{User: *user, Token: token}
	return nil
}

func (s *SessionStore) Current(ctx context.Context) (*domain.AuthUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	clone := *s.session
	return &clone, nil
}

func (s *SessionStore) HasSession(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
