package handler

import "github.com/craftfolio/portfolio-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---
// Response bodies use the domain types directly; their JSON tags define the
// public contract. Requests get transport types so validation rules stay at
// the edge.

type createPortfolioRequest struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Slug       string `json:"slug"       validate:"omitempty,min=3,max=50"`
	IsPublic   bool   `json:"is_public"`
	Theme      string `json:"theme"`
	TemplateID string `json:"template_id"`
}

type updatePortfolioRequest struct {
	Title    *string `json:"title"`
	Summary  *string `json:"summary"`
	Slug     *string `json:"slug"     validate:"omitempty,min=3,max=50"`
	IsPublic *bool   `json:"is_public"`
	Theme    *string `json:"theme"`
}

type addSectionRequest struct {
	Type    string                 `json:"type"  validate:"required,oneof=about experience education skills projects contact"`
	Title   string                 `json:"title"`
	Order   int                    `json:"order" validate:"omitempty,gt=0"`
	Content *domain.SectionContent `json:"content"`
}

type updateSectionRequest struct {
	Title   *string                `json:"title"`
	Order   *int                   `json:"order" validate:"omitempty,gt=0"`
	Content *domain.SectionContent `json:"content"`
}

type reorderSectionsRequest struct {
	SectionIDs []string `json:"section_ids" validate:"required,min=1"`
}

type exportAcceptedResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}
