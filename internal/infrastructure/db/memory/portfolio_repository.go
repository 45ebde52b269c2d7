// Package memory provides in-process implementations of the persistence
// ports, seeded with demo fixtures. Selected with STORE_MODE=memory, it lets
// the service run without Mongo or Redis.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

type PortfolioRepository struct {
	mu         sync.RWMutex
	portfolios map[string]*domain.Portfolio
}

func NewPortfolioRepository() *PortfolioRepository {
	return &PortfolioRepository{portfolios: make(map[string]*domain.Portfolio)}
}

// NewSeededPortfolioRepository returns a repository pre-loaded with the demo
// portfolio owned by userID.
func NewSeededPortfolioRepository(userID string) *PortfolioRepository {
	r := NewPortfolioRepository()
	demo := DemoPortfolio(userID)
	r.portfolios[demo.ID] = demo
	return r
}

func (r *PortfolioRepository) List(ctx context.Context, userID string) ([]*domain.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Portfolio, 0)
	for _, p := range r.portfolios {
		if p.UserID == userID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (r *PortfolioRepository) FindByID(ctx context.Context, id string) (*domain.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.portfolios[id]
	if !ok {
		return nil, domain.ErrPortfolioNotFound
	}
	return p.Clone(), nil
}

func (r *PortfolioRepository) FindBySlug(ctx context.Context, slug string) (*domain.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.portfolios {
		if p.Slug == slug {
			return p.Clone(), nil
		}
	}
	return nil, domain.ErrPortfolioNotFound
}

func (r *PortfolioRepository) Create(ctx context.Context, draft ports.PortfolioDraft) (*domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := nowUTC()
	p := &domain.Portfolio{
		ID:        uuid.NewString(),
		UserID:    draft.UserID,
		Title:     draft.Title,
		Summary:   draft.Summary,
		Slug:      draft.Slug,
		IsPublic:  draft.IsPublic,
		Theme:     draft.Theme,
		Sections:  append([]domain.PortfolioSection(nil), draft.Sections...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := range p.Sections {
		p.Sections[i].PortfolioID = p.ID
	}
	r.portfolios[p.ID] = p
	return p.Clone(), nil
}

func (r *PortfolioRepository) Update(ctx context.Context, id string, upd domain.PortfolioUpdate) (*domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.portfolios[id]
	if !ok {
		return nil, domain.ErrPortfolioNotFound
	}
	p.Apply(upd)
	p.UpdatedAt = nowUTC()
	return p.Clone(), nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.portfolios[id]; !ok {
		return domain.ErrPortfolioNotFound
	}
	delete(r.portfolios, id)
	return nil
}
