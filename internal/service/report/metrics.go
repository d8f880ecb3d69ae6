package report

import (
	"sort"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
)

const dateLayout = "2006-01-02"

// ComputeDaily computes one employee's metrics for a single calendar
// day (UTC). Valid punches on the day are sorted chronologically and
// paired in order (1st with 2nd, 3rd with 4th, ...); a trailing
// unpaired punch contributes no worked time. Days without punches are
// a degenerate case, never an error: zeroed metrics, plus one absence
// when the day is a designated workday for the employee.
//
// Deterministic: same records, same day, same output.
func ComputeDaily(records []timerecord.PunchEvent, day time.Time, employeeID string, standardHours float64, isWorkday bool) report.DailyMetrics {
	var punches []time.Time
	for _, rec := range records {
		if rec.EmployeeID != employeeID || rec.Status != timerecord.StatusValid {
			continue
		}
		ts := rec.Timestamp.UTC()
		if sameDay(ts, day) {
			punches = append(punches, ts)
		}
	}

	metrics := report.DailyMetrics{Date: day.Format(dateLayout)}

	if len(punches) == 0 {
		if isWorkday {
			metrics.AbsenceCount = 1
		}
		return metrics
	}

	sort.Slice(punches, func(i, j int) bool { return punches[i].Before(punches[j]) })

	var worked float64
	for i := 0; i+1 < len(punches); i += 2 {
		worked += punches[i+1].Sub(punches[i]).Hours()
	}

	metrics.WorkedHours = worked
	if worked > standardHours {
		metrics.OvertimeHours = worked - standardHours
	}
	metrics.TimeBankDelta = worked - standardHours
	return metrics
}

// Summarize aggregates report rows into the document summary block.
// TotalWorkDays is the number of days in the requested range, not the
// number of days actually worked. AverageWorkHours over an empty row
// set is 0 rather than a division failure.
func Summarize(details []report.DailyMetrics, distinctEmployees int) report.Summary {
	summary := report.Summary{
		TotalEmployees: distinctEmployees,
		TotalWorkDays:  len(details),
	}

	if len(details) == 0 {
		return summary
	}

	var totalWorked float64
	for _, day := range details {
		totalWorked += day.WorkedHours
		summary.TotalOvertime += day.OvertimeHours
	}
	summary.AverageWorkHours = totalWorked / float64(len(details))
	return summary
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
