package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

type AuthRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
}

func NewAuthRepository() *AuthRepository {
	return &AuthRepository{byEmail: make(map[string]*domain.User)}
}

// NewSeededAuthRepository returns a repository pre-loaded with the demo
// account, hashing DemoPassword on the way in.
func NewSeededAuthRepository() (*AuthRepository, error) {
	r := NewAuthRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := DemoUser()
	user.PasswordHash = string(hash)
	r.byEmail[user.Email] = user
	return r, nil
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	now := nowUTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.byEmail[stored.Email] = &stored

	clone := stored
	return &clone, nil
}
