// Package state holds the client-side state containers: the single source of
// truth for "who is logged in" and for the portfolio currently open for
// editing. A view layer invokes the operations and re-renders from Snapshot
// after each one; collaborator failures never propagate out as errors (with
// the single documented exception of PortfolioState.CreatePortfolio).
package state

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// SessionSnapshot is the observable value of a SessionState.
type SessionSnapshot struct {
	User            *domain.AuthUser
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// SessionState mirrors the authenticated identity held by the identity
// collaborator into local state.
//
// Asynchronous operations carry a generation number; a completion whose
// generation is no longer current is discarded, so an overlapping newer call
// cannot be clobbered by a slower older one.
type SessionState struct {
	mu       sync.Mutex
	identity ports.IdentityProvider
	log      zerolog.Logger
	gen      uint64

	user            *domain.AuthUser
	isAuthenticated bool
	isLoading       bool
	err             string
}

func NewSessionState(identity ports.IdentityProvider, log zerolog.Logger) *SessionState {
	return &SessionState{identity: identity, log: log}
}

// Snapshot returns a copy of the current session state.
func (s *SessionState) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{
		IsAuthenticated: s.isAuthenticated,
		IsLoading:       s.isLoading,
		Err:             s.err,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Login delegates to the identity collaborator. On success the returned
// identity becomes the active session; on failure the error message is
// captured and the authentication state is left false.
func (s *SessionState) Login(ctx context.Context, creds ports.Credentials) {
	gen := s.begin()

	user, err := s.identity.Login(ctx, creds)

	s.finish(gen, func() {
		if err != nil {
			s.err = err.Error()
			return
		}
		s.user = user
		s.isAuthenticated = true
	})
}

// Register has the same contract as Login: the newly registered identity
// becomes the active session.
func (s *SessionState) Register(ctx context.Context, reg ports.Registration) {
	gen := s.begin()

	user, err := s.identity.Register(ctx, reg)

	s.finish(gen, func() {
		if err != nil {
			s.err = err.Error()
			return
		}
		s.user = user
		s.isAuthenticated = true
	})
}

// Logout clears the persisted session and the local authenticated state.
// Local state is cleared even when the collaborator fails; a stale identity
// must not survive a logout.
func (s *SessionState) Logout(ctx context.Context) {
	if err := s.identity.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("logout: clearing persisted session failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++ // supersede any in-flight login/register
	s.user = nil
	s.isAuthenticated = false
	s.err = ""
	s.isLoading = false
}

// CheckAuth resynchronizes local state from whatever session data the
// identity collaborator currently holds. Idempotent; safe on every app mount.
func (s *SessionState) CheckAuth(ctx context.Context) {
	user, err := s.identity.CurrentSession(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("check auth: reading persisted session failed")
		user = nil
	}
	active := s.identity.HasActiveSession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.isAuthenticated = active
}

func (s *SessionState) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.isLoading = true
	s.err = ""
	return s.gen
}

// finish applies the completion branch unless a newer operation has begun in
// the meantime, in which case the stale result is dropped.
func (s *SessionState) finish(gen uint64, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.isLoading = false
	apply()
}
