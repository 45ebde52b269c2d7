package ports

import (
	"context"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

// RegisterInput is the registration payload. ConfirmPassword must match
// Password; the service rejects the pair otherwise.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// AuthService implements account registration and email/password login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
