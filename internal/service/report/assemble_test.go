package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
)

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

func staff() []employee.Employee {
	deptA := "dept-a"
	return []employee.Employee{
		{ID: "emp-1", ClientID: "client-1", Workdays: weekdays},
		{ID: "emp-2", ClientID: "client-1", DepartmentID: &deptA, Workdays: weekdays},
	}
}

func TestAssembleOneRowPerDayEvenWithoutRecords(t *testing.T) {
	filter := report.Filter{
		Start: day(2025, 3, 10),
		End:   day(2025, 3, 16),
	}

	doc, err := Assemble(filter, nil, nil, 8, weekdays)
	require.NoError(t, err)

	require.Len(t, doc.Details, 7)
	assert.Equal(t, "2025-03-10", doc.Details[0].Date)
	assert.Equal(t, "2025-03-16", doc.Details[6].Date)
	for i := 1; i < len(doc.Details); i++ {
		assert.Less(t, doc.Details[i-1].Date, doc.Details[i].Date)
	}
	assert.Equal(t, 0, doc.Summary.TotalEmployees)
	assert.Equal(t, 7, doc.Summary.TotalWorkDays)
}

func TestAssembleSingleDayRange(t *testing.T) {
	d := day(2025, 3, 10)
	doc, err := Assemble(report.Filter{Start: d, End: d}, nil, staff(), 8, weekdays)
	require.NoError(t, err)
	require.Len(t, doc.Details, 1)
	assert.Equal(t, "2025-03-10", doc.Details[0].Date)
}

func TestAssembleInvalidRange(t *testing.T) {
	_, err := Assemble(report.Filter{
		Start: day(2025, 3, 16),
		End:   day(2025, 3, 10),
	}, nil, staff(), 8, weekdays)

	assert.ErrorIs(t, err, report.ErrInvalidRange)
}

func TestAssembleAggregatesAcrossEmployees(t *testing.T) {
	d := day(2025, 3, 10) // Monday
	records := []timerecord.PunchEvent{
		punch("emp-1", at(d, 8, 0)),
		punch("emp-1", at(d, 17, 0)), // 9h worked, 1h overtime
		punch("emp-2", at(d, 9, 0)),
		punch("emp-2", at(d, 15, 0)), // 6h worked, -2h bank
	}

	doc, err := Assemble(report.Filter{Start: d, End: d}, records, staff(), 8, weekdays)
	require.NoError(t, err)

	require.Len(t, doc.Details, 1)
	row := doc.Details[0]
	assert.InDelta(t, 15.0, row.WorkedHours, 1e-9)
	assert.InDelta(t, 1.0, row.OvertimeHours, 1e-9)
	assert.InDelta(t, -1.0, row.TimeBankDelta, 1e-9)
	assert.Equal(t, 0, row.AbsenceCount)
	assert.Equal(t, 2, doc.Summary.TotalEmployees)
}

func TestAssembleCountsAbsences(t *testing.T) {
	monday := day(2025, 3, 10)
	tuesday := day(2025, 3, 11)
	records := []timerecord.PunchEvent{
		punch("emp-1", at(monday, 8, 0)),
		punch("emp-1", at(monday, 16, 0)),
		// emp-2 never shows up; emp-1 misses Tuesday.
	}

	doc, err := Assemble(report.Filter{Start: monday, End: tuesday}, records, staff(), 8, weekdays)
	require.NoError(t, err)

	require.Len(t, doc.Details, 2)
	assert.Equal(t, 1, doc.Details[0].AbsenceCount, "emp-2 absent on Monday")
	assert.Equal(t, 2, doc.Details[1].AbsenceCount, "both absent on Tuesday")
	assert.Equal(t, 1, doc.Summary.TotalEmployees, "only emp-1 has valid records")
}

func TestAssembleNoAbsencesOnWeekend(t *testing.T) {
	saturday := day(2025, 3, 15)
	sunday := day(2025, 3, 16)

	doc, err := Assemble(report.Filter{Start: saturday, End: sunday}, nil, staff(), 8, weekdays)
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Details[0].AbsenceCount)
	assert.Equal(t, 0, doc.Details[1].AbsenceCount)
}

func TestAssembleEmployeeFilter(t *testing.T) {
	d := day(2025, 3, 10)
	records := []timerecord.PunchEvent{
		punch("emp-1", at(d, 8, 0)),
		punch("emp-1", at(d, 17, 0)),
		punch("emp-2", at(d, 9, 0)),
		punch("emp-2", at(d, 15, 0)),
	}

	doc, err := Assemble(report.Filter{
		Start:       d,
		End:         d,
		EmployeeIDs: []string{"emp-2"},
	}, records, staff(), 8, weekdays)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, doc.Details[0].WorkedHours, 1e-9)
	assert.Equal(t, 1, doc.Summary.TotalEmployees)
}

func TestAssembleDepartmentFilter(t *testing.T) {
	d := day(2025, 3, 10)
	records := []timerecord.PunchEvent{
		punch("emp-1", at(d, 8, 0)),
		punch("emp-1", at(d, 17, 0)),
		punch("emp-2", at(d, 9, 0)),
		punch("emp-2", at(d, 15, 0)),
	}

	// Only emp-2 belongs to dept-a; emp-1 has no department and is
	// excluded by a department filter.
	doc, err := Assemble(report.Filter{
		Start:         d,
		End:           d,
		DepartmentIDs: []string{"dept-a"},
	}, records, staff(), 8, weekdays)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, doc.Details[0].WorkedHours, 1e-9)
	assert.Equal(t, 1, doc.Summary.TotalEmployees)
}

func TestAssembleIgnoresRecordsOutsidePeriod(t *testing.T) {
	d := day(2025, 3, 10)
	before := day(2025, 3, 9)
	after := day(2025, 3, 11)
	records := []timerecord.PunchEvent{
		punch("emp-1", at(before, 8, 0)),
		punch("emp-1", at(before, 17, 0)),
		punch("emp-1", at(d, 8, 0)),
		punch("emp-1", at(d, 16, 0)),
		punch("emp-1", at(after, 8, 0)),
		punch("emp-1", at(after, 17, 0)),
	}

	doc, err := Assemble(report.Filter{Start: d, End: d}, records, staff(), 8, weekdays)
	require.NoError(t, err)

	require.Len(t, doc.Details, 1)
	assert.InDelta(t, 8.0, doc.Details[0].WorkedHours, 1e-9)
}

func TestAssembleIsIdempotent(t *testing.T) {
	start := day(2025, 3, 10)
	end := day(2025, 3, 14)
	records := []timerecord.PunchEvent{
		punch("emp-1", at(start, 8, 17)),
		punch("emp-1", at(start, 17, 43)),
		punch("emp-2", at(start.AddDate(0, 0, 2), 9, 5)),
		punch("emp-2", at(start.AddDate(0, 0, 2), 18, 31)),
	}
	filter := report.Filter{Start: start, End: end}

	first, err := Assemble(filter, records, staff(), 8, weekdays)
	require.NoError(t, err)
	second, err := Assemble(filter, records, staff(), 8, weekdays)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssembleNoCalendarFallsBackToDefaultWorkdays(t *testing.T) {
	noCalendar := []employee.Employee{{ID: "emp-3", ClientID: "client-1"}}

	monday := day(2025, 3, 10)
	doc, err := Assemble(report.Filter{Start: monday, End: monday}, nil, noCalendar, 8, weekdays)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Details[0].AbsenceCount, "default calendar makes Monday a workday")

	saturday := day(2025, 3, 15)
	doc, err = Assemble(report.Filter{Start: saturday, End: saturday}, nil, noCalendar, 8, weekdays)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Details[0].AbsenceCount, "default calendar excludes Saturday")
}

func TestAssembleDefaultsToAllMetrics(t *testing.T) {
	d := day(2025, 3, 10)
	doc, err := Assemble(report.Filter{Start: d, End: d}, nil, nil, 8, weekdays)
	require.NoError(t, err)
	assert.Equal(t, report.AllMetrics, doc.Metrics)
}
