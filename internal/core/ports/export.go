package ports

import "context"

// ExportJob asks for a portfolio to be rendered to a static HTML document.
type ExportJob struct {
	PortfolioID string
	RequestedBy string
}

// ExportService processes export jobs. Jobs for the same portfolio are
// processed in order by the dispatcher.
type ExportService interface {
	Process(ctx context.Context, job ExportJob) error
}
