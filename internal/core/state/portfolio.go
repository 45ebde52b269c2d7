package state

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// PortfolioSnapshot is the observable value of a PortfolioState.
type PortfolioSnapshot struct {
	Portfolios []*domain.Portfolio
	Current    *domain.Portfolio
	IsLoading  bool
	Err        string
}

// PortfolioState owns the list of the user's portfolios and the single
// portfolio currently open for editing or viewing. It is the only component
// that enforces the section-ordering invariants.
//
// Fetch and persist operations delegate to the persistence collaborator and
// record either the result or an error string. The section-editing operations
// are pure in-memory structural edits over the currently open portfolio:
// synchronous, total, and silent no-ops when no portfolio is open. Every
// mutation builds a complete replacement value and installs it in one
// assignment, so a snapshot never observes a partial edit.
type PortfolioState struct {
	mu   sync.Mutex
	repo ports.PortfolioRepository
	log  zerolog.Logger
	gen  uint64

	portfolios []*domain.Portfolio
	current    *domain.Portfolio
	isLoading  bool
	err        string
}

func NewPortfolioState(repo ports.PortfolioRepository, log zerolog.Logger) *PortfolioState {
	return &PortfolioState{repo: repo, log: log}
}

// Snapshot returns a deep copy of the current state.
func (s *PortfolioState) Snapshot() PortfolioSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := PortfolioSnapshot{
		IsLoading: s.isLoading,
		Err:       s.err,
		Current:   s.current.Clone(),
	}
	snap.Portfolios = make([]*domain.Portfolio, len(s.portfolios))
	for i, p := range s.portfolios {
		snap.Portfolios[i] = p.Clone()
	}
	return snap
}

// Current returns a copy of the currently open portfolio, or nil.
func (s *PortfolioState) Current() *domain.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// FetchUserPortfolios loads the list of portfolios owned by userID.
func (s *PortfolioState) FetchUserPortfolios(ctx context.Context, userID string) {
	gen := s.begin()

	list, err := s.repo.List(ctx, userID)

	s.finish(gen, func() {
		if err != nil {
			s.err = err.Error()
			return
		}
		s.portfolios = list
	})
}

// FetchPortfolioByID opens the portfolio with the given id for editing,
// unconditionally discarding whatever was open before.
func (s *PortfolioState) FetchPortfolioByID(ctx context.Context, id string) {
	gen := s.begin()

	p, err := s.repo.FindByID(ctx, id)

	s.finish(gen, func() {
		if err != nil {
			s.err = err.Error()
			return
		}
		s.current = p
	})
}

// FetchPortfolioBySlug opens the portfolio published under slug.
func (s *PortfolioState) FetchPortfolioBySlug(ctx context.Context, slug string) {
	gen := s.begin()

	p, err := s.repo.FindBySlug(ctx, slug)

	s.finish(gen, func() {
		if err != nil {
			s.err = err.Error()
			return
		}
		s.current = p
	})
}

// CreatePortfolio creates a new portfolio, appends it to the list, and adopts
// it as the currently open one. Unlike every other operation it also returns
// its result: the caller needs the created portfolio for navigation, and
// needs the error to avoid navigating to a detail page that does not exist.
func (s *PortfolioState) CreatePortfolio(ctx context.Context, draft ports.PortfolioDraft) (*domain.Portfolio, error) {
	gen := s.begin()

	p, err := s.repo.Create(ctx, draft)

	s.finish(gen, func() {
		if err != nil {
			s.err = err.Error()
			return
		}
		s.portfolios = append(s.portfolios, p)
		s.current = p
	})
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// UpdatePortfolio persists upd and installs the merged result into the list
// and, when it is the open portfolio, into the current slot.
func (s *PortfolioState) UpdatePortfolio(ctx context.Context, id string, upd domain.PortfolioUpdate) {
	gen := s.begin()

	updated, err := s.repo.Update(ctx, id, upd)

	s.finish(gen, func() {
		if err != nil {
			s.err = err.Error()
			return
		}
		for i, p := range s.portfolios {
			if p.ID == id {
				s.portfolios[i] = updated
			}
		}
		if s.current != nil && s.current.ID == id {
			s.current = updated
		}
	})
}

// DeletePortfolio removes the portfolio remotely and from local state. The
// current slot is cleared when it held the deleted portfolio.
func (s *PortfolioState) DeletePortfolio(ctx context.Context, id string) {
	gen := s.begin()

	err := s.repo.Delete(ctx, id)

	s.finish(gen, func() {
		if err != nil {
			s.err = err.Error()
			return
		}
		kept := s.portfolios[:0]
		for _, p := range s.portfolios {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		s.portfolios = kept
		if s.current != nil && s.current.ID == id {
			s.current = nil
		}
	})
}

// AddSection appends a new section to the open portfolio. No-op when no
// portfolio is open; the editing screens are unreachable without one.
func (s *PortfolioState) AddSection(in domain.SectionInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	p := s.current.Clone()
	p.AddSection(in)
	s.current = p
}

// UpdateSection shallow-merges upd into the section with the given id.
func (s *PortfolioState) UpdateSection(sectionID string, upd domain.SectionUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	p := s.current.Clone()
	p.UpdateSection(sectionID, upd)
	s.current = p
}

// RemoveSection deletes the section and renumbers the remainder densely.
func (s *PortfolioState) RemoveSection(sectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	p := s.current.Clone()
	p.RemoveSection(sectionID)
	s.current = p
}

// ReorderSections rewrites the section collection to match orderedIDs.
func (s *PortfolioState) ReorderSections(orderedIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	p := s.current.Clone()
	p.ReorderSections(orderedIDs)
	s.current = p
}

func (s *PortfolioState) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.isLoading = true
	s.err = ""
	return s.gen
}

// finish applies the completion branch unless a newer asynchronous operation
// has begun since gen was issued; stale completions are dropped rather than
// trusted to lose a last-writer-wins race.
func (s *PortfolioState) finish(gen uint64, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.isLoading = false
	apply()
}
