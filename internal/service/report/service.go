package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
)

// Renderer turns an assembled report document into file bytes.
type Renderer interface {
	Generate(doc report.Document) ([]byte, error)
}

type formatSpec struct {
	contentType string
	extension   string
}

var formats = map[string]formatSpec{
	"pdf":  {contentType: "application/pdf", extension: "pdf"},
	"xlsx": {contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", extension: "xlsx"},
	"csv":  {contentType: "text/csv; charset=utf-8", extension: "csv"},
}

type ReportServiceImpl struct {
	timerecord.PunchRepository
	employee.EmployeeRepository

	standardDailyHours float64
	defaultWorkdays    []time.Weekday
	renderers          map[string]Renderer
}

func NewReportService(
	punchRepo timerecord.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	standardDailyHours float64,
	defaultWorkdays []time.Weekday,
	renderers map[string]Renderer,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		standardDailyHours: standardDailyHours,
		defaultWorkdays:    defaultWorkdays,
		renderers:          renderers,
	}
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, req report.GenerateReportRequest) (report.Document, error) {
	if err := req.Validate(); err != nil {
		return report.Document{}, err
	}

	filter := req.Filter()
	start := truncateToDay(filter.Start)
	end := truncateToDay(filter.End)
	if end.Before(start) {
		// Fail before touching the store: an inverted range never
		// produces a partial report.
		return report.Document{}, report.ErrInvalidRange
	}

	records, err := s.PunchRepository.ListByPeriod(ctx, req.ClientID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return report.Document{}, errors.Join(timerecord.ErrStoreUnavailable, err)
	}

	employees, err := s.EmployeeRepository.ListByClient(ctx, req.ClientID)
	if err != nil {
		return report.Document{}, errors.Join(timerecord.ErrStoreUnavailable, err)
	}

	return Assemble(filter, records, employees, s.standardDailyHours, s.defaultWorkdays)
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.GenerateReportRequest, format string) (report.ExportFile, error) {
	spec, ok := formats[format]
	if !ok {
		return report.ExportFile{}, report.ErrUnknownFormat
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return report.ExportFile{}, report.ErrUnknownFormat
	}

	doc, err := s.Generate(ctx, req)
	if err != nil {
		return report.ExportFile{}, err
	}

	content, err := renderer.Generate(doc)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	return report.ExportFile{
		Content:     content,
		ContentType: spec.contentType,
		Filename:    fmt.Sprintf("relatorio-ponto-%s-a-%s.%s", doc.PeriodStart, doc.PeriodEnd, spec.extension),
	}, nil
}
