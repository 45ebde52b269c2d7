package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// ExportQueue is the slice of the dispatcher the handler needs: fire and
// forget enqueueing of export jobs.
type ExportQueue interface {
	Enqueue(job ports.ExportJob)
}

// ExportHandler accepts export requests and hands them to the dispatcher.
// Ownership is re-checked by the exporter when the job is processed.
type ExportHandler struct {
	service ports.PortfolioService
	queue   ExportQueue
}

func NewExportHandler(service ports.PortfolioService, queue ExportQueue) *ExportHandler {
	return &ExportHandler{service: service, queue: queue}
}

// Export handles POST /v1/portfolios/:id/export.
//
// @Summary      Queue a portfolio export
// @Tags         export
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Portfolio id"
// @Success      202  {object}  exportAcceptedResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/portfolios/{id}/export [post]
func (h *ExportHandler) Export(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	// Resolve first so missing or foreign portfolios fail synchronously.
	p, err := h.service.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return portfolioError(c, err)
	}
	if p.UserID != userID {
		return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
	}

	h.queue.Enqueue(ports.ExportJob{PortfolioID: p.ID, RequestedBy: userID})

	return c.JSON(http.StatusAccepted, exportAcceptedResponse{
		Status: "queued",
		Path:   p.Slug + ".html",
	})
}
