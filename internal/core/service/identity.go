package service

import (
	"context"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// Identity is the identity collaborator handed to the session state: an
// AuthService for credential exchange plus a SessionStore mirroring the
// token/user pair to durable local state.
type Identity struct {
	auth     ports.AuthService
	sessions ports.SessionStore
}

func NewIdentity(auth ports.AuthService, sessions ports.SessionStore) *Identity {
	return &Identity{auth: auth, sessions: sessions}
}

func (i *Identity) Login(ctx context.Context, creds ports.Credentials) (*domain.AuthUser, error) {
	token, user, err := i.auth.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}
	if err := i.sessions.Save(ctx, token, user); err != nil {
		return nil, err
	}
	return &domain.AuthUser{User: *user, Token: token}, nil
}

func (i *Identity) Register(ctx context.Context, reg ports.Registration) (*domain.AuthUser, error) {
	token, user, err := i.auth.Register(ctx, ports.RegisterInput{
		Username:        reg.Username,
		Email:           reg.Email,
		Password:        reg.Password,
		ConfirmPassword: reg.ConfirmPassword,
	})
	if err != nil {
		return nil, err
	}
	if err := i.sessions.Save(ctx, token, user); err != nil {
		return nil, err
	}
	return &domain.AuthUser{User: *user, Token: token}, nil
}

func (i *Identity) Logout(ctx context.Context) error {
	return i.sessions.Clear(ctx)
}

func (i *Identity) CurrentSession(ctx context.Context) (*domain.AuthUser, error) {
	return i.sessions.Current(ctx)
}

func (i *Identity) HasActiveSession(ctx context.Context) bool {
	return i.sessions.HasSession(ctx)
}
