package domain

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPortfolioNotFound  = errors.New("portfolio not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrInvalidSlug        = errors.New("invalid slug")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// DefaultTheme is applied when a portfolio is created without an explicit theme.
const DefaultTheme = "default"

// Portfolio is the core aggregate: a user-owned, optionally public collection
// of ordered sections.
type Portfolio struct {
	ID        string             `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Title     string             `json:"title" bson:"title"`
	Summary   string             `json:"summary" bson:"summary"`
	Slug      string             `json:"slug" bson:"slug"`
	IsPublic  bool               `json:"is_public" bson:"is_public"`
	Theme     string             `json:"theme" bson:"theme"`
	Sections  []PortfolioSection `json:"sections" bson:"sections"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// Clone returns a deep copy, so callers can hand out snapshots without
// exposing the live sections or their content.
func (p *Portfolio) Clone() *Portfolio {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Sections = append([]PortfolioSection(nil), p.Sections...)
	for i := range clone.Sections {
		clone.Sections[i].Content = clone.Sections[i].Content.Clone()
	}
	return &clone
}

// SortSections orders the section slice by rank. The sort is stable so
// externally produced data with tied ranks keeps its relative order.
func (p *Portfolio) SortSections() {
	sort.SliceStable(p.Sections, func(i, j int) bool {
		return p.Sections[i].Order < p.Sections[j].Order
	})
}

// SectionInput carries the caller-supplied parts of a new section. Title
// defaults to "New Section" and Order to len(sections)+1 when absent.
type SectionInput struct {
	Type    SectionType
	Title   string
	Order   int
	Content *SectionContent
}

// AddSection appends a new section built from in, assigning a fresh id and
// defaulting title, rank, and content. The portfolio's UpdatedAt is stamped.
func (p *Portfolio) AddSection(in SectionInput) PortfolioSection {
	section := PortfolioSection{
		ID:          uuid.NewString(),
		PortfolioID: p.ID,
		Type:        in.Type,
		Title:       in.Title,
		Order:       in.Order,
	}
	if section.Title == "" {
		section.Title = "New Section"
	}
	if section.Order == 0 {
		section.Order = len(p.Sections) + 1
	}
	if in.Content != nil {
		section.Content = *in.Content
	} else {
		section.Content = DefaultContent(in.Type)
	}

	p.Sections = append(append([]PortfolioSection(nil), p.Sections...), section)
	p.UpdatedAt = time.Now().UTC()
	return section
}

// UpdateSection shallow-merges upd into the section with the given id and
// reports whether a section matched. Non-matching sections are untouched.
func (p *Portfolio) UpdateSection(sectionID string, upd SectionUpdate) bool {
	sections := append([]PortfolioSection(nil), p.Sections...)
	found := false
	for i := range sections {
		if sections[i].ID != sectionID {
			continue
		}
		if upd.Title != nil {
			sections[i].Title = *upd.Title
		}
		if upd.Order != nil {
			sections[i].Order = *upd.Order
		}
		if upd.Content != nil {
			sections[i].Content = *upd.Content
		}
		found = true
	}
	p.Sections = sections
	p.UpdatedAt = time.Now().UTC()
	return found
}

// RemoveSection deletes the section with the given id and renumbers the
// remaining sections to a dense 1..N rank in their current relative sequence.
func (p *Portfolio) RemoveSection(sectionID string) bool {
	kept := make([]PortfolioSection, 0, len(p.Sections))
	found := false
	for _, s := range p.Sections {
		if s.ID == sectionID {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	for i := range kept {
		kept[i].Order = i + 1
	}
	p.Sections = kept
	p.UpdatedAt = time.Now().UTC()
	return found
}

// ReorderSections rewrites the section collection to match orderedIDs exactly,
// assigning rank = position + 1. Identifiers that match no existing section are
// dropped from the result; existing sections missing from orderedIDs are
// dropped too (the caller is expected to pass a full permutation).
func (p *Portfolio) ReorderSections(orderedIDs []string) {
	byID := make(map[string]PortfolioSection, len(p.Sections))
	for _, s := range p.Sections {
		byID[s.ID] = s
	}

	reordered := make([]PortfolioSection, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		s, ok := byID[id]
		if !ok {
			continue
		}
		s.Order = len(reordered) + 1
		reordered = append(reordered, s)
	}
	p.Sections = reordered
	p.UpdatedAt = time.Now().UTC()
}

// PortfolioUpdate is a partial update merged into a portfolio. Nil fields are
// left untouched.
type PortfolioUpdate struct {
	Title    *string
	Summary  *string
	Slug     *string
	IsPublic *bool
	Theme    *string
	Sections *[]PortfolioSection
}

// Apply merges upd into p and restamps UpdatedAt.
func (p *Portfolio) Apply(upd PortfolioUpdate) {
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Summary != nil {
		p.Summary = *upd.Summary
	}
	if upd.Slug != nil {
		p.Slug = *upd.Slug
	}
	if upd.IsPublic != nil {
		p.IsPublic = *upd.IsPublic
	}
	if upd.Theme != nil {
		p.Theme = *upd.Theme
	}
	if upd.Sections != nil {
		p.Sections = append([]PortfolioSection(nil), (*upd.Sections)...)
	}
	p.UpdatedAt = time.Now().UTC()
}
