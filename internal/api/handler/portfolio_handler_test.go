package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

type stubPortfolioService struct {
	listFn    func(ctx context.Context, userID string) ([]*domain.Portfolio, error)
	getFn     func(ctx context.Context, id, viewerID string) (*domain.Portfolio, error)
	bySlugFn  func(ctx context.Context, slug, viewerID string) (*domain.Portfolio, error)
	createFn  func(ctx context.Context, input ports.CreatePortfolioInput) (*domain.Portfolio, error)
	updateFn  func(ctx context.Context, id, viewerID string, upd domain.PortfolioUpdate) (*domain.Portfolio, error)
	deleteFn  func(ctx context.Context, id, viewerID string) error
	addFn     func(ctx context.Context, portfolioID, viewerID string, in domain.SectionInput) (*domain.Portfolio, error)
	updSecFn  func(ctx context.Context, portfolioID, viewerID, sectionID string, upd domain.SectionUpdate) (*domain.Portfolio, error)
	rmSecFn   func(ctx context.Context, portfolioID, viewerID, sectionID string) (*domain.Portfolio, error)
	reorderFn func(ctx context.Context, portfolioID, viewerID string, orderedIDs []string) (*domain.Portfolio, error)
}

func (s *stubPortfolioService) List(ctx context.Context, userID string) ([]*domain.Portfolio, error) {
	return s.listFn(ctx, userID)
}

func (s *stubPortfolioService) Get(ctx context.Context, id, viewerID string) (*domain.Portfolio, error) {
	return s.getFn(ctx, id, viewerID)
}

func (s *stubPortfolioService) GetBySlug(ctx context.Context, slug, viewerID string) (*domain.Portfolio, error) {
	return s.bySlugFn(ctx, slug, viewerID)
}

func (s *stubPortfolioService) Create(ctx context.Context, input ports.CreatePortfolioInput) (*domain.Portfolio, error) {
	return s.createFn(ctx, input)
}

func (s *stubPortfolioService) Update(ctx context.Context, id, viewerID string, upd domain.PortfolioUpdate) (*domain.Portfolio, error) {
	return s.updateFn(ctx, id, viewerID, upd)
}

func (s *stubPortfolioService) Delete(ctx context.Context, id, viewerID string) error {
	return s.deleteFn(ctx, id, viewerID)
}

func (s *stubPortfolioService) AddSection(ctx context.Context, portfolioID, viewerID string, in domain.SectionInput) (*domain.Portfolio, error) {
	return s.addFn(ctx, portfolioID, viewerID, in)
}

func (s *stubPortfolioService) UpdateSection(ctx context.Context, portfolioID, viewerID, sectionID string, upd domain.SectionUpdate) (*domain.Portfolio, error) {
	return s.updSecFn(ctx, portfolioID, viewerID, sectionID, upd)
}

func (s *stubPortfolioService) RemoveSection(ctx context.Context, portfolioID, viewerID, sectionID string) (*domain.Portfolio, error) {
	return s.rmSecFn(ctx, portfolioID, viewerID, sectionID)
}

func (s *stubPortfolioService) ReorderSections(ctx context.Context, portfolioID, viewerID string, orderedIDs []string) (*domain.Portfolio, error) {
	return s.reorderFn(ctx, portfolioID, viewerID, orderedIDs)
}

// newAuthedContext builds an echo context with the auth middleware's claims
// already injected, the way protected handlers see requests.
func newAuthedContext(e *echo.Echo, method, target string, body string, userID string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestPortfolioHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortfolioService{
		listFn: func(ctx context.Context, userID string) ([]*domain.Portfolio, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id %q", userID)
			}
			return []*domain.Portfolio{{ID: "p1", UserID: userID, Title: "One"}}, nil
		},
	}
	handler := NewPortfolioHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/v1/portfolios", "", "user-1")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "p1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPortfolioHandler_List_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	handler := NewPortfolioHandler(&stubPortfolioService{})

	c, rec := newAuthedContext(e, http.MethodGet, "/v1/portfolios", "", "")
	if err := handler.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestPortfolioHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortfolioService{
		createFn: func(ctx context.Context, input ports.CreatePortfolioInput) (*domain.Portfolio, error) {
			if input.UserID != "user-1" || input.Title != "My Portfolio" || input.TemplateID != "minimal" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Portfolio{ID: "p1", UserID: input.UserID, Title: input.Title, Slug: "my-portfolio", Theme: domain.DefaultTheme}, nil
		},
	}
	handler := NewPortfolioHandler(stub)

	body := `{"title":"My Portfolio","template_id":"minimal"}`
	c, rec := newAuthedContext(e, http.MethodPost, "/v1/portfolios", body, "user-1")
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPortfolioHandler_Create_SlugTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortfolioService{
		createFn: func(ctx context.Context, input ports.CreatePortfolioInput) (*domain.Portfolio, error) {
			return nil, domain.ErrSlugTaken
		},
	}
	handler := NewPortfolioHandler(stub)

	c, rec := newAuthedContext(e, http.MethodPost, "/v1/portfolios", `{"title":"Dup","slug":"taken-slug"}`, "user-1")
	_ = handler.Create(c)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestPortfolioHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortfolioService{
		getFn: func(ctx context.Context, id, viewerID string) (*domain.Portfolio, error) {
			return nil, domain.ErrPortfolioNotFound
		},
	}
	handler := NewPortfolioHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/v1/portfolios/missing", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	_ = handler.Get(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPortfolioHandler_Get_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortfolioService{
		getFn: func(ctx context.Context, id, viewerID string) (*domain.Portfolio, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewPortfolioHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/v1/portfolios/p1", "", "user-2")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	_ = handler.Get(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestPortfolioHandler_GetBySlug_Anonymous(t *testing.T) {
	e := newTestEcho()
	stub := &stubPortfolioService{
		bySlugFn: func(ctx context.Context, slug, viewerID string) (*domain.Portfolio, error) {
			if viewerID != "" {
				t.Fatalf("expected empty viewer id, got %q", viewerID)
			}
			if slug != "john-doe" {
				t.Fatalf("unexpected slug %q", slug)
			}
			return &domain.Portfolio{ID: "p1", Slug: slug, IsPublic: true}, nil
		},
	}
	handler := NewPortfolioHandler(stub)

	c, rec := newAuthedContext(e, http.MethodGet, "/v1/p/john-doe", "", "")
	c.SetParamNames("slug")
	c.SetParamValues("john-doe")
	if err := handler.GetBySlug(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPortfolioHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := ""
	stub := &stubPortfolioService{
		deleteFn: func(ctx context.Context, id, viewerID string) error {
			deleted = id
			return nil
		},
	}
	handler := NewPortfolioHandler(stub)

	c, rec := newAuthedContext(e, http.MethodDelete, "/v1/portfolios/p1", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "p1" {
		t.Fatalf("expected delete of p1, got %q", deleted)
	}
}
