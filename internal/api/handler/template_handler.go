package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

// TemplateHandler serves the built-in portfolio templates.
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// List handles GET /v1/templates.
//
// @Summary      List available portfolio templates
// @Tags         templates
// @Produce      json
// @Success      200  {array}  domain.Template
// @Router       /v1/templates [get]
func (h *TemplateHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Templates)
}
