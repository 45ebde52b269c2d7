package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/craftfolio/portfolio-system/internal/api/metrics"
	"github.com/craftfolio/portfolio-system/internal/core/domain"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// Exporter implements ports.ExportService: it loads the portfolio, renders it,
// and writes <dir>/<slug>.html.
type Exporter struct {
	repo     ports.PortfolioRepository
	renderer *Renderer
	dir      string
	log      zerolog.Logger
}

func NewExporter(repo ports.PortfolioRepository, renderer *Renderer, dir string, log zerolog.Logger) *Exporter {
	return &Exporter{repo: repo, renderer: renderer, dir: dir, log: log}
}

// OutputPath returns where the export for the given slug lands.
func (e *Exporter) OutputPath(slug string) string {
	return filepath.Join(e.dir, slug+".html")
}

func (e *Exporter) Process(ctx context.Context, job ports.ExportJob) error {
	start := time.Now()

	err := e.process(ctx, job)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("error").Inc()
		e.log.Error().Err(err).
			Str("portfolio_id", job.PortfolioID).
			Msg("export failed")
		return err
	}

	metrics.ExportsTotal.WithLabelValues("success").Inc()
	metrics.ExportDuration.Observe(time.Since(start).Seconds())
	return nil
}

func (e *Exporter) process(ctx context.Context, job ports.ExportJob) error {
	p, err := e.repo.FindByID(ctx, job.PortfolioID)
	if err != nil {
		return err
	}
	if job.RequestedBy != "" && p.UserID != job.RequestedBy {
		return domain.ErrForbidden
	}

	html, err := e.renderer.Render(p)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	out := e.OutputPath(p.Slug)
	if err := os.WriteFile(out, html, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	e.log.Info().
		Str("portfolio_id", p.ID).
		Str("path", out).
		Msg("portfolio exported")
	return nil
}
