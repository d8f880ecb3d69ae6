package report

import "context"

// ReportService orchestrates snapshot fetching, metric aggregation and
// export rendering.
type ReportService interface {
	// Generate fetches a snapshot of punches and employees for the
	// request's client and assembles the report document. Re-invoking
	// with the same filter over the same snapshot reproduces an
	// identical document.
	Generate(ctx context.Context, req GenerateReportRequest) (Document, error)

	// Export renders a generated document in the given format
	// ("pdf", "xlsx" or "csv") and returns the file bytes together
	// with its content type and a suggested filename.
	Export(ctx context.Context, req GenerateReportRequest, format string) (ExportFile, error)
}

// ExportFile is a rendered report ready to be served for download.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}
