package ports

import (
	"context"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

// CreatePortfolioInput carries all data needed to create a portfolio through
// the service layer. TemplateID optionally names a built-in layout whose
// sections seed the new portfolio.
type CreatePortfolioInput struct {
	UserID     string
	Title      string
	Summary    string
	Slug       string
	IsPublic   bool
	Theme      string
	TemplateID string
}

// PortfolioService defines the use-case operations behind the HTTP API.
// ViewerID identifies the authenticated caller; ownership is enforced on
// every mutating operation and on reads of private portfolios.
type PortfolioService interface {
	List(ctx context.Context, userID string) ([]*domain.Portfolio, error)
	Get(ctx context.Context, id, viewerID string) (*domain.Portfolio, error)
	// GetBySlug returns a public portfolio, or a private one when the viewer
	// owns it. Private portfolios are reported as not found to other viewers.
	GetBySlug(ctx context.Context, slug, viewerID string) (*domain.Portfolio, error)
	Create(ctx context.Context, input CreatePortfolioInput) (*domain.Portfolio, error)
	Update(ctx context.Context, id, viewerID string, upd domain.PortfolioUpdate) (*domain.Portfolio, error)
	Delete(ctx context.Context, id, viewerID string) error

	AddSection(ctx context.Context, portfolioID, viewerID string, in domain.SectionInput) (*domain.Portfolio, error)
	UpdateSection(ctx context.Context, portfolioID, viewerID, sectionID string, upd domain.SectionUpdate) (*domain.Portfolio, error)
	RemoveSection(ctx context.Context, portfolioID, viewerID, sectionID string) (*domain.Portfolio, error)
	ReorderSections(ctx context.Context, portfolioID, viewerID string, orderedIDs []string) (*domain.Portfolio, error)
}
