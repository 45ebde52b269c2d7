package ports

import (
	"context"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the sign-up payload consumed by the identity collaborator.
type Registration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// IdentityProvider is the identity collaborator consumed by the session
// state container. Login and Register persist the session on success;
// Logout clears it. CurrentSession and HasActiveSession read whatever the
// session store currently holds without any network interaction.
type IdentityProvider interface {
	Login(ctx context.Context, creds Credentials) (*domain.AuthUser, error)
	Register(ctx context.Context, reg Registration) (*domain.AuthUser, error)
	Logout(ctx context.Context) error
	// CurrentSession returns the persisted session, or (nil, nil) when absent.
	CurrentSession(ctx context.Context) (*domain.AuthUser, error)
	HasActiveSession(ctx context.Context) bool
}

// SessionStore mirrors the authenticated identity and its token to durable
// local state under the "token" and "user" keys, read back on session checks
// and cleared on logout.
type SessionStore interface {
	Save(ctx context.Context, token string, user *domain.User) error
	// Current returns the stored session, or (nil, nil) when absent.
	Current(ctx context.Context) (*domain.AuthUser, error)
	HasSession(ctx context.Context) bool
	Clear(ctx context.Context) error
}
