package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftfolio/portfolio-system/internal/api/metrics"
	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// PortfolioHandler handles HTTP requests for portfolio CRUD operations.
type PortfolioHandler struct {
	service ports.PortfolioService
}

func NewPortfolioHandler(service ports.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// portfolioError maps the domain errors a portfolio operation can surface to
// their HTTP responses. Unknown errors bubble to the central error handler.
func portfolioError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrPortfolioNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "portfolio not found"})
	case errors.Is(err, domain.ErrSectionNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "section not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
	case errors.Is(err, domain.ErrSlugTaken):
		return c.JSON(http.StatusConflict, errorResponse{Error: "slug already in use"})
	case errors.Is(err, domain.ErrInvalidSlug):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}
	return err
}

// List handles GET /v1/portfolios.
//
// @Summary      List the caller's portfolios
// @Tags         portfolios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Portfolio
// @Failure      401  {object}  errorResponse
// @Router       /v1/portfolios [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	portfolios, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return portfolioError(c, err)
	}
	return c.JSON(http.StatusOK, portfolios)
}

// Get handles GET /v1/portfolios/:id.
//
// @Summary      Get a portfolio by id
// @Tags         portfolios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Portfolio id"
// @Success      200  {object}  domain.Portfolio
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/portfolios/{id} [get]
func (h *PortfolioHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	p, err := h.service.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return portfolioError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// GetBySlug handles GET /v1/p/:slug, the public portfolio view. No auth is
// required; private portfolios read as not found unless the viewer owns them.
//
// @Summary      Get a public portfolio by slug
// @Tags         portfolios
// @Produce      json
// @Param        slug  path      string  true  "Portfolio slug"
// @Success      200   {object}  domain.Portfolio
// @Failure      404   {object}  errorResponse
// @Router       /v1/p/{slug} [get]
func (h *PortfolioHandler) GetBySlug(c echo.Context) error {
	p, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"), ctxViewerID(c))
	if err != nil {
		return portfolioError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /v1/portfolios.
//
// @Summary      Create a portfolio
// @Tags         portfolios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPortfolioRequest  true  "Portfolio details"
// @Success      201   {object}  domain.Portfolio
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/portfolios [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPortfolioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	p, err := h.service.Create(c.Request().Context(), ports.CreatePortfolioInput{
		UserID:     userID,
		Title:      req.Title,
		Summary:    req.Summary,
		Slug:       req.Slug,
		IsPublic:   req.IsPublic,
		Theme:      req.Theme,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		return portfolioError(c, err)
	}

	metrics.PortfoliosCreatedTotal.WithLabelValues(p.Theme).Inc()
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /v1/portfolios/:id.
//
// @Summary      Update a portfolio
// @Tags         portfolios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Portfolio id"
// @Param        body  body      updatePortfolioRequest  true  "Fields to update"
// @Success      200   {object}  domain.Portfolio
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/portfolios/{id} [put]
func (h *PortfolioHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updatePortfolioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	p, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, domain.PortfolioUpdate{
		Title:    req.Title,
		Summary:  req.Summary,
		Slug:     req.Slug,
		IsPublic: req.IsPublic,
		Theme:    req.Theme,
	})
	if err != nil {
		return portfolioError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /v1/portfolios/:id.
//
// @Summary      Delete a portfolio
// @Tags         portfolios
// @Security     BearerAuth
// @Param        id  path  string  true  "Portfolio id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/portfolios/{id} [delete]
func (h *PortfolioHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return portfolioError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
