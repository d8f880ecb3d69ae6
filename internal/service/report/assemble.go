package report

import (
	"sort"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
)

// Assemble builds a report document from an already-fetched snapshot.
// Pure composition with no I/O and no clock reads, so re-invoking it
// over the same snapshot yields an identical document.
//
// The output has exactly one row per calendar day in the inclusive
// [filter.Start, filter.End] range, ascending, including days with no
// matching records. Fails with report.ErrInvalidRange when the end
// date precedes the start date.
//
// Employees without a configured workday calendar fall back to
// defaultWorkdays for absence counting, the same rule the nightly
// absence job applies.
func Assemble(filter report.Filter, records []timerecord.PunchEvent, employees []employee.Employee, standardHours float64, defaultWorkdays []time.Weekday) (report.Document, error) {
	start := truncateToDay(filter.Start)
	end := truncateToDay(filter.End)
	if end.Before(start) {
		return report.Document{}, report.ErrInvalidRange
	}

	selected := selectEmployees(filter, employees)

	rangeEnd := end.AddDate(0, 0, 1) // exclusive upper bound
	filtered := make([]timerecord.PunchEvent, 0, len(records))
	present := make(map[string]struct{})
	selectedIDs := make(map[string]struct{}, len(selected))
	for _, emp := range selected {
		selectedIDs[emp.ID] = struct{}{}
	}
	for _, rec := range records {
		if _, ok := selectedIDs[rec.EmployeeID]; !ok {
			continue
		}
		ts := rec.Timestamp.UTC()
		if ts.Before(start) || !ts.Before(rangeEnd) {
			continue
		}
		filtered = append(filtered, rec)
		if rec.Status == timerecord.StatusValid {
			present[rec.EmployeeID] = struct{}{}
		}
	}

	days := int(rangeEnd.Sub(start).Hours()/24 + 0.5)
	details := make([]report.DailyMetrics, 0, days)
	for day := start; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		row := report.DailyMetrics{Date: day.Format(dateLayout)}
		for _, emp := range selected {
			daily := ComputeDaily(filtered, day, emp.ID, standardHours, isWorkdayFor(emp, day, defaultWorkdays))
			row.WorkedHours += daily.WorkedHours
			row.OvertimeHours += daily.OvertimeHours
			row.AbsenceCount += daily.AbsenceCount
			row.TimeBankDelta += daily.TimeBankDelta
		}
		details = append(details, row)
	}

	metrics := filter.Metrics
	if len(metrics) == 0 {
		metrics = report.AllMetrics
	}

	return report.Document{
		PeriodStart: start.Format(dateLayout),
		PeriodEnd:   end.Format(dateLayout),
		Metrics:     metrics,
		Summary:     Summarize(details, len(present)),
		Details:     details,
	}, nil
}

// selectEmployees applies the filter's employee and department sets
// (empty set means "all") and returns the selected population ordered
// by id, so per-day accumulation is reproducible.
func selectEmployees(filter report.Filter, employees []employee.Employee) []employee.Employee {
	wantEmployee := toSet(filter.EmployeeIDs)
	wantDepartment := toSet(filter.DepartmentIDs)

	selected := make([]employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if len(wantEmployee) > 0 {
			if _, ok := wantEmployee[emp.ID]; !ok {
				continue
			}
		}
		if len(wantDepartment) > 0 {
			if emp.DepartmentID == nil {
				continue
			}
			if _, ok := wantDepartment[*emp.DepartmentID]; !ok {
				continue
			}
		}
		selected = append(selected, emp)
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].ID < selected[j].ID })
	return selected
}

// isWorkdayFor consults the employee's own calendar when present and
// the deployment default otherwise.
func isWorkdayFor(emp employee.Employee, day time.Time, defaultWorkdays []time.Weekday) bool {
	if len(emp.Workdays) > 0 {
		return emp.IsWorkday(day)
	}
	for _, wd := range defaultWorkdays {
		if day.Weekday() == wd {
			return true
		}
	}
	return false
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
