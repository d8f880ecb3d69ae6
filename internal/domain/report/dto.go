package report

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// Metric identifiers selectable in a report filter.
const (
	MetricWorkedHours = "workedHours"
	MetricOvertime    = "overtime"
	MetricAbsences    = "absences"
	MetricTimeBank    = "timeBank"
)

// AllMetrics is the default metric set when a filter names none.
var AllMetrics = []string{MetricWorkedHours, MetricOvertime, MetricAbsences, MetricTimeBank}

// Filter is a caller-owned report selection. Start and End are
// inclusive day bounds; empty ID sets mean "all".
type Filter struct {
	Start         time.Time
	End           time.Time
	EmployeeIDs   []string
	DepartmentIDs []string
	Metrics       []string
}

// GenerateReportRequest is the wire shape of a report request.
type GenerateReportRequest struct {
	ClientID      string   `json:"-"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	EmployeeIDs   []string `json:"employee_ids,omitempty"`
	DepartmentIDs []string `json:"department_ids,omitempty"`
	Metrics       []string `json:"metrics,omitempty"`
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	for _, metric := range r.Metrics {
		if !validator.IsInSlice(metric, AllMetrics) {
			errs = append(errs, validator.ValidationError{
				Field:   "metrics",
				Message: "unknown metric: " + metric,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter converts the request to its domain value. Call after Validate.
func (r *GenerateReportRequest) Filter() Filter {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	metrics := r.Metrics
	if len(metrics) == 0 {
		metrics = AllMetrics
	}
	return Filter{
		Start:         start,
		End:           end,
		EmployeeIDs:   r.EmployeeIDs,
		DepartmentIDs: r.DepartmentIDs,
		Metrics:       metrics,
	}
}

// DailyMetrics is one report row: the selected population's aggregate
// for a single calendar day. Derived on demand, never persisted;
// recomputing over the same record snapshot yields the same values.
type DailyMetrics struct {
	Date          string  `json:"date"`
	WorkedHours   float64 `json:"worked_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	AbsenceCount  int     `json:"absence_count"`
	TimeBankDelta float64 `json:"time_bank_delta"`
}

type Summary struct {
	TotalEmployees   int     `json:"total_employees"`
	TotalWorkDays    int     `json:"total_work_days"`
	AverageWorkHours float64 `json:"average_work_hours"`
	TotalOvertime    float64 `json:"total_overtime"`
}

// Document is the report hand-off artifact consumed by the export
// renderers. Details are ordered ascending by date with no gaps.
// Assembling the same filter over the same record snapshot reproduces
// a structurally identical document, so documents carry no generation
// timestamp.
type Document struct {
	PeriodStart string         `json:"period_start"`
	PeriodEnd   string         `json:"period_end"`
	Metrics     []string       `json:"metrics"`
	Summary     Summary        `json:"summary"`
	Details     []DailyMetrics `json:"details"`
}
