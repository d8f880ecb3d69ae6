package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
)

func punch(employeeID string, ts time.Time) timerecord.PunchEvent {
	return timerecord.PunchEvent{
		EmployeeID: employeeID,
		ClientID:   "client-1",
		Timestamp:  ts,
		Type:       timerecord.TypePunch,
		Status:     timerecord.StatusValid,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(base time.Time, hour, minute int) time.Time {
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestComputeDailyFullWorkday(t *testing.T) {
	d := day(2025, 3, 10) // a Monday
	records := []timerecord.PunchEvent{
		punch("emp-1", at(d, 8, 0)),
		punch("emp-1", at(d, 17, 0)),
	}

	got := ComputeDaily(records, d, "emp-1", 8, true)

	assert.InDelta(t, 9.0, got.WorkedHours, 1e-9)
	assert.InDelta(t, 1.0, got.OvertimeHours, 1e-9)
	assert.InDelta(t, 1.0, got.TimeBankDelta, 1e-9)
	assert.Equal(t, 0, got.AbsenceCount)
}

func TestComputeDailyWithLunchBreak(t *testing.T) {
	d := day(2025, 3, 10)
	records := []timerecord.PunchEvent{
		punch("emp-1", at(d, 8, 0)),
		punch("emp-1", at(d, 12, 0)),
		punch("emp-1", at(d, 13, 0)),
		punch("emp-1", at(d, 17, 0)),
	}

	got := ComputeDaily(records, d, "emp-1", 8, true)

	assert.InDelta(t, 8.0, got.WorkedHours, 1e-9)
	assert.InDelta(t, 0.0, got.OvertimeHours, 1e-9)
	assert.InDelta(t, 0.0, got.TimeBankDelta, 1e-9)
}

func TestComputeDailyShortDayFeedsTimeBankNegative(t *testing.T) {
	d := day(2025, 3, 10)
	records := []timerecord.PunchEvent{
		punch("emp-1", at(d, 9, 0)),
		punch("emp-1", at(d, 15, 0)),
	}

	got := ComputeDaily(records, d, "emp-1", 8, true)

	assert.InDelta(t, 6.0, got.WorkedHours, 1e-9)
	assert.InDelta(t, 0.0, got.OvertimeHours, 1e-9)
	assert.InDelta(t, -2.0, got.TimeBankDelta, 1e-9)
	assert.Equal(t, 0, got.AbsenceCount, "a worked day is not an absence")
}

func TestComputeDailyOddPunchIgnoresTrailing(t *testing.T) {
	d := day(2025, 3, 10)
	records := []timerecord.PunchEvent{
		punch("emp-1", at(d, 8, 0)),
		punch("emp-1", at(d, 12, 0)),
		punch("emp-1", at(d, 13, 0)), // forgot to clock out
	}

	got := ComputeDaily(records, d, "emp-1", 8, true)

	assert.InDelta(t, 4.0, got.WorkedHours, 1e-9)
}

func TestComputeDailySinglePunchIsZeroHoursNotAbsence(t *testing.T) {
	d := day(2025, 3, 10)
	records := []timerecord.PunchEvent{punch("emp-1", at(d, 8, 0))}

	got := ComputeDaily(records, d, "emp-1", 8, true)

	assert.InDelta(t, 0.0, got.WorkedHours, 1e-9)
	assert.Equal(t, 0, got.AbsenceCount, "the day has a punch, so it is not an absence")
	assert.InDelta(t, -8.0, got.TimeBankDelta, 1e-9)
}

func TestComputeDailyAbsenceOnWorkday(t *testing.T) {
	d := day(2025, 3, 10)

	got := ComputeDaily(nil, d, "emp-1", 8, true)

	assert.Equal(t, 1, got.AbsenceCount)
	assert.InDelta(t, 0.0, got.WorkedHours, 1e-9)
	assert.InDelta(t, 0.0, got.TimeBankDelta, 1e-9, "absences do not drain the time bank")
}

func TestComputeDailyNoAbsenceOnRestDay(t *testing.T) {
	d := day(2025, 3, 9) // a Sunday

	got := ComputeDaily(nil, d, "emp-1", 8, false)

	assert.Equal(t, 0, got.AbsenceCount)
}

func TestComputeDailyIgnoresOtherEmployeesAndRejected(t *testing.T) {
	d := day(2025, 3, 10)
	rejected := punch("emp-1", at(d, 7, 0))
	rejected.Status = timerecord.StatusRejected
	records := []timerecord.PunchEvent{
		rejected,
		punch("emp-2", at(d, 6, 0)),
		punch("emp-1", at(d, 8, 0)),
		punch("emp-1", at(d, 16, 0)),
	}

	got := ComputeDaily(records, d, "emp-1", 8, true)

	assert.InDelta(t, 8.0, got.WorkedHours, 1e-9)
}

func TestComputeDailyUnsortedInput(t *testing.T) {
	d := day(2025, 3, 10)
	records := []timerecord.PunchEvent{
		punch("emp-1", at(d, 17, 0)),
		punch("emp-1", at(d, 8, 0)),
	}

	got := ComputeDaily(records, d, "emp-1", 8, true)

	assert.InDelta(t, 9.0, got.WorkedHours, 1e-9)
}

func TestSummarize(t *testing.T) {
	details := []report.DailyMetrics{
		{Date: "2025-03-10", WorkedHours: 16, OvertimeHours: 1},
		{Date: "2025-03-11", WorkedHours: 14},
		{Date: "2025-03-12", WorkedHours: 0, AbsenceCount: 2},
	}

	got := Summarize(details, 2)

	assert.Equal(t, 2, got.TotalEmployees)
	assert.Equal(t, 3, got.TotalWorkDays)
	assert.InDelta(t, 10.0, got.AverageWorkHours, 1e-9)
	assert.InDelta(t, 1.0, got.TotalOvertime, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil, 0)

	assert.Equal(t, 0, got.TotalEmployees)
	assert.Equal(t, 0, got.TotalWorkDays)
	assert.InDelta(t, 0.0, got.AverageWorkHours, 1e-9)
}
