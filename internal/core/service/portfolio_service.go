package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// PortfolioService implements the portfolio use cases behind the HTTP API:
// CRUD with ownership enforcement, slug derivation and uniqueness, template
// seeding, and the section editing operations.
type PortfolioService struct {
	repo   ports.PortfolioRepository
	logger zerolog.Logger
}

func NewPortfolioService(repo ports.PortfolioRepository, logger zerolog.Logger) *PortfolioService {
	return &PortfolioService{repo: repo, logger: logger}
}

func (s *PortfolioService) List(ctx context.Context, userID string) ([]*domain.Portfolio, error) {
	return s.repo.List(ctx, userID)
}

// Get returns the portfolio when the viewer owns it or it is public.
func (s *PortfolioService) Get(ctx context.Context, id, viewerID string) (*domain.Portfolio, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != viewerID && !p.IsPublic {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// GetBySlug serves the public portfolio view. Private portfolios are only
// visible to their owner and reported as not found to everyone else, so the
// slug namespace does not leak unpublished work.
func (s *PortfolioService) GetBySlug(ctx context.Context, slug, viewerID string) (*domain.Portfolio, error) {
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.IsPublic && p.UserID != viewerID {
		return nil, domain.ErrPortfolioNotFound
	}
	return p, nil
}

// Create builds a portfolio from input. The slug defaults to a derivation of
// the title; a named template seeds the initial section layout.
func (s *PortfolioService) Create(ctx context.Context, input ports.CreatePortfolioInput) (*domain.Portfolio, error) {
	draft := ports.PortfolioDraft{
		UserID:   input.UserID,
		Title:    input.Title,
		Summary:  input.Summary,
		Slug:     input.Slug,
		IsPublic: input.IsPublic,
		Theme:    input.Theme,
	}
	if draft.Title == "" {
		draft.Title = "Untitled Portfolio"
	}
	if draft.Theme == "" {
		draft.Theme = domain.DefaultTheme
	}
	if draft.Slug == "" {
		draft.Slug = domain.Slugify(draft.Title)
	}
	if draft.Slug == "" {
		draft.Slug = fmt.Sprintf("untitled-%d", time.Now().UnixMilli())
	}
	if err := domain.ValidateSlug(draft.Slug); err != nil {
		return nil, err
	}
	if err := s.ensureSlugFree(ctx, draft.Slug, ""); err != nil {
		return nil, err
	}

	if input.TemplateID != "" {
		tpl, ok := domain.TemplateByID(input.TemplateID)
		if !ok {
			return nil, fmt.Errorf("unknown template %q", input.TemplateID)
		}
		for _, ts := range tpl.Sections {
			draft.Sections = append(draft.Sections, domain.PortfolioSection{
				ID:      uuid.NewString(),
				Type:    ts.Type,
				Title:   ts.Title,
				Order:   ts.Order,
				Content: domain.DefaultContent(ts.Type),
			})
		}
	}

	p, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create portfolio")
		return nil, err
	}

	s.logger.Info().Str("portfolio_id", p.ID).Str("slug", p.Slug).Str("user_id", p.UserID).Msg("portfolio created")
	return p, nil
}

// Update merges upd into the viewer's portfolio. A changed slug is validated
// and checked for uniqueness before anything is persisted.
func (s *PortfolioService) Update(ctx context.Context, id, viewerID string, upd domain.PortfolioUpdate) (*domain.Portfolio, error) {
	if _, err := s.owned(ctx, id, viewerID); err != nil {
		return nil, err
	}

	if upd.Slug != nil {
		if err := domain.ValidateSlug(*upd.Slug); err != nil {
			return nil, err
		}
		if err := s.ensureSlugFree(ctx, *upd.Slug, id); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *PortfolioService) Delete(ctx context.Context, id, viewerID string) error {
	if _, err := s.owned(ctx, id, viewerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("portfolio_id", id).Msg("portfolio deleted")
	return nil
}

// AddSection appends a section to the viewer's portfolio and persists the
// resulting section collection.
func (s *PortfolioService) AddSection(ctx context.Context, portfolioID, viewerID string, in domain.SectionInput) (*domain.Portfolio, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("unknown section type %q", in.Type)
	}
	p, err := s.owned(ctx, portfolioID, viewerID)
	if err != nil {
		return nil, err
	}
	p.AddSection(in)
	return s.saveSections(ctx, p)
}

// UpdateSection shallow-merges upd into the matching section. Unlike the
// client-side editor this surface is strict: an unknown section id is an
// error, not a silent no-op.
func (s *PortfolioService) UpdateSection(ctx context.Context, portfolioID, viewerID, sectionID string, upd domain.SectionUpdate) (*domain.Portfolio, error) {
	p, err := s.owned(ctx, portfolioID, viewerID)
	if err != nil {
		return nil, err
	}
	if !p.UpdateSection(sectionID, upd) {
		return nil, domain.ErrSectionNotFound
	}
	return s.saveSections(ctx, p)
}

func (s *PortfolioService) RemoveSection(ctx context.Context, portfolioID, viewerID, sectionID string) (*domain.Portfolio, error) {
	p, err := s.owned(ctx, portfolioID, viewerID)
	if err != nil {
		return nil, err
	}
	if !p.RemoveSection(sectionID) {
		return nil, domain.ErrSectionNotFound
	}
	return s.saveSections(ctx, p)
}

func (s *PortfolioService) ReorderSections(ctx context.Context, portfolioID, viewerID string, orderedIDs []string) (*domain.Portfolio, error) {
	p, err := s.owned(ctx, portfolioID, viewerID)
	if err != nil {
		return nil, err
	}
	p.ReorderSections(orderedIDs)
	return s.saveSections(ctx, p)
}

// owned loads the portfolio and verifies the viewer owns it.
func (s *PortfolioService) owned(ctx context.Context, id, viewerID string) (*domain.Portfolio, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != viewerID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func (s *PortfolioService) saveSections(ctx context.Context, p *domain.Portfolio) (*domain.Portfolio, error) {
	return s.repo.Update(ctx, p.ID, domain.PortfolioUpdate{Sections: &p.Sections})
}

// ensureSlugFree fails with ErrSlugTaken when slug belongs to a portfolio
// other than excludeID.
func (s *PortfolioService) ensureSlugFree(ctx context.Context, slug, excludeID string) error {
	existing, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrPortfolioNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return domain.ErrSlugTaken
	}
	return nil
}
