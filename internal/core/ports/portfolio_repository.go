package ports

import (
	"context"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

// PortfolioDraft carries the caller-supplied parts of a new portfolio. The
// repository assigns the id and timestamps, and defaults title, slug, and
// theme when absent.
type PortfolioDraft struct {
	UserID   string
	Title    string
	Summary  string
	Slug     string
	IsPublic bool
	Theme    string
	Sections []domain.PortfolioSection
}

// PortfolioRepository is the persistence collaborator for portfolios. The
// implementation is chosen at construction time: the in-memory fixture store
// or the MongoDB-backed one.
type PortfolioRepository interface {
	// List returns all portfolios owned by userID.
	List(ctx context.Context, userID string) ([]*domain.Portfolio, error)
	FindByID(ctx context.Context, id string) (*domain.Portfolio, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Portfolio, error)
	// Create stores a new portfolio built from draft and returns it with
	// id and timestamps assigned.
	Create(ctx context.Context, draft PortfolioDraft) (*domain.Portfolio, error)
	// Update merges upd into the stored portfolio and restamps UpdatedAt.
	Update(ctx context.Context, id string, upd domain.PortfolioUpdate) (*domain.Portfolio, error)
	Delete(ctx context.Context, id string) error
}
