package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftfolio/portfolio-system/internal/api/metrics"
	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// SectionHandler handles HTTP requests for section mutations within a
// portfolio.
type SectionHandler struct {
	service ports.PortfolioService
}

func NewSectionHandler(service ports.PortfolioService) *SectionHandler {
	return &SectionHandler{service: service}
}

// Add handles POST /v1/portfolios/:id/sections.
//
// @Summary      Add a section to a portfolio
// @Tags         sections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Portfolio id"
// @Param        body  body      addSectionRequest  true  "Section details"
// @Success      201   {object}  domain.Portfolio
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/portfolios/{id}/sections [post]
func (h *SectionHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	p, err := h.service.AddSection(c.Request().Context(), c.Param("id"), userID, domain.SectionInput{
		Type:    domain.SectionType(req.Type),
		Title:   req.Title,
		Order:   req.Order,
		Content: req.Content,
	})
	if err != nil {
		return portfolioError(c, err)
	}

	metrics.SectionEditsTotal.WithLabelValues("add", req.Type).Inc()
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /v1/portfolios/:id/sections/:section_id.
//
// @Summary      Update a section
// @Tags         sections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string                true  "Portfolio id"
// @Param        section_id  path      string                true  "Section id"
// @Param        body        body      updateSectionRequest  true  "Fields to update"
// @Success      200         {object}  domain.Portfolio
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/portfolios/{id}/sections/{section_id} [put]
func (h *SectionHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	p, err := h.service.UpdateSection(c.Request().Context(), c.Param("id"), userID, c.Param("section_id"), domain.SectionUpdate{
		Title:   req.Title,
		Order:   req.Order,
		Content: req.Content,
	})
	if err != nil {
		return portfolioError(c, err)
	}

	metrics.SectionEditsTotal.WithLabelValues("update", sectionTypeOf(p, c.Param("section_id"))).Inc()
	return c.JSON(http.StatusOK, p)
}

// Remove handles DELETE /v1/portfolios/:id/sections/:section_id.
//
// @Summary      Remove a section
// @Tags         sections
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string  true  "Portfolio id"
// @Param        section_id  path      string  true  "Section id"
// @Success      200         {object}  domain.Portfolio
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/portfolios/{id}/sections/{section_id} [delete]
func (h *SectionHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	p, err := h.service.RemoveSection(c.Request().Context(), c.Param("id"), userID, c.Param("section_id"))
	if err != nil {
		return portfolioError(c, err)
	}

	metrics.SectionEditsTotal.WithLabelValues("remove", "all").Inc()
	return c.JSON(http.StatusOK, p)
}

// Reorder handles PUT /v1/portfolios/:id/sections/order.
//
// @Summary      Reorder a portfolio's sections
// @Tags         sections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Portfolio id"
// @Param        body  body      reorderSectionsRequest  true  "Section ids in the desired order"
// @Success      200   {object}  domain.Portfolio
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/portfolios/{id}/sections/order [put]
func (h *SectionHandler) Reorder(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req reorderSectionsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	p, err := h.service.ReorderSections(c.Request().Context(), c.Param("id"), userID, req.SectionIDs)
	if err != nil {
		return portfolioError(c, err)
	}

	metrics.SectionEditsTotal.WithLabelValues("reorder", "all").Inc()
	return c.JSON(http.StatusOK, p)
}

func sectionTypeOf(p *domain.Portfolio, sectionID string) string {
	for _, s := range p.Sections {
		if s.ID == sectionID {
			return string(s.Type)
		}
	}
	return "unknown"
}
