// Package export renders portfolios to standalone HTML documents. Rendering
// is driven by an embedded template; the Exporter pairs the renderer with the
// portfolio repository and writes the result to the export directory.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/craftfolio/portfolio-system/internal/core/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer turns a portfolio into a self-contained HTML page. Sections are
// rendered in rank order with a body per section type.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("portfolio.html.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse export template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type page struct {
	Title    string
	Summary  string
	Theme    string
	Keywords []string
	Sections []domain.PortfolioSection
}

// Render produces the HTML document for p. The input is not mutated.
func (r *Renderer) Render(p *domain.Portfolio) ([]byte, error) {
	sorted := p.Clone()
	sorted.SortSections()

	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, page{
		Title:    sorted.Title,
		Summary:  sorted.Summary,
		Theme:    sorted.Theme,
		Keywords: domain.ExtractKeywords(sorted.Summary),
		Sections: sorted.Sections,
	})
	if err != nil {
		return nil, fmt.Errorf("render portfolio %s: %w", p.ID, err)
	}
	return buf.Bytes(), nil
}
