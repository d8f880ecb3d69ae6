package timerecord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/client"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/geo"
)

type fakePunchRepo struct {
	events    []timerecord.PunchEvent
	createErr error
}

func (f *fakePunchRepo) Create(_ context.Context, event timerecord.PunchEvent) (timerecord.PunchEvent, error) {
	if f.createErr != nil {
		return timerecord.PunchEvent{}, f.createErr
	}
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakePunchRepo) ListByEmployee(_ context.Context, employeeID string, start, end time.Time) ([]timerecord.PunchEvent, error) {
	var result []timerecord.PunchEvent
	for _, event := range f.events {
		if event.EmployeeID != employeeID {
			continue
		}
		if event.Timestamp.Before(start) || !event.Timestamp.Before(end) {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (f *fakePunchRepo) ListByPeriod(_ context.Context, clientID string, start, end time.Time) ([]timerecord.PunchEvent, error) {
	var result []timerecord.PunchEvent
	for _, event := range f.events {
		if event.ClientID != clientID {
			continue
		}
		if event.Timestamp.Before(start) || !event.Timestamp.Before(end) {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) ListByClient(_ context.Context, clientID string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		if emp.ClientID == clientID {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, clientID, email string) (bool, error) {
	for _, emp := range f.employees {
		if emp.ClientID == clientID && emp.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeClientRepo struct {
	clients map[string]client.Client
}

func (f *fakeClientRepo) Create(_ context.Context, c client.Client) (client.Client, error) {
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (client.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return client.Client{}, client.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) Update(_ context.Context, c client.Client) error {
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) List(_ context.Context) ([]client.Client, error) {
	var result []client.Client
	for _, c := range f.clients {
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeClientRepo) ListByAccountant(_ context.Context, accountantID string) ([]client.Client, error) {
	var result []client.Client
	for _, c := range f.clients {
		if c.AccountantID == accountantID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeClientRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, c := range f.clients {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// officeCenter is roughly Avenida Paulista.
var officeCenter = geo.Point{Latitude: -23.5614, Longitude: -46.6559}

func newFixture(area geofence.Area) (*PunchServiceImpl, *fakePunchRepo) {
	punchRepo := &fakePunchRepo{}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:       "emp-1",
			ClientID: "client-1",
			Name:     "Maria Silva",
			Email:    "maria@empresa.com.br",
			Status:   "active",
		},
	}}
	clientRepo := &fakeClientRepo{clients: map[string]client.Client{
		"client-1": {
			ID:           "client-1",
			AccountantID: "acc-1",
			CompanyName:  "Empresa LTDA",
			Geofence:     area,
		},
	}}
	return NewPunchService(punchRepo, employeeRepo, clientRepo), punchRepo
}

func TestRecordPunchInsideArea(t *testing.T) {
	svc, repo := newFixture(geofence.Area{Center: officeCenter, RadiusMeters: 100, Enabled: true})

	resp, err := svc.RecordPunch(context.Background(), timerecord.RecordPunchRequest{
		EmployeeID: "emp-1",
		Latitude:   officeCenter.Latitude,
		Longitude:  officeCenter.Longitude,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, timerecord.TypePunch, resp.Type)
	assert.Equal(t, timerecord.StatusValid, resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
	require.Len(t, repo.events, 1)
	assert.Equal(t, "client-1", repo.events[0].ClientID)
}

func TestRecordPunchOutsideAreaStoresNothing(t *testing.T) {
	svc, repo := newFixture(geofence.Area{Center: officeCenter, RadiusMeters: 100, Enabled: true})

	// About 5km away.
	_, err := svc.RecordPunch(context.Background(), timerecord.RecordPunchRequest{
		EmployeeID: "emp-1",
		Latitude:   -23.5505,
		Longitude:  -46.6333,
	})
	require.Error(t, err)

	var violation *geofence.ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, float64(100), violation.RadiusMeters)
	assert.Greater(t, violation.DistanceMeters, float64(1000))
	assert.Empty(t, repo.events, "rejected punch must not be persisted")
}

func TestRecordPunchDisabledAreaAcceptsAnywhere(t *testing.T) {
	svc, repo := newFixture(geofence.Area{Center: officeCenter, RadiusMeters: 100, Enabled: false})

	_, err := svc.RecordPunch(context.Background(), timerecord.RecordPunchRequest{
		EmployeeID: "emp-1",
		Latitude:   35.6762,
		Longitude:  139.6503,
	})
	require.NoError(t, err)
	assert.Len(t, repo.events, 1)
}

func TestRecordPunchEmployeeOverrideWins(t *testing.T) {
	svc, repo := newFixture(geofence.Area{Center: officeCenter, RadiusMeters: 100, Enabled: true})

	// Remote employee with a personal allowed area far from the office.
	home := geo.Point{Latitude: -22.9068, Longitude: -43.1729}
	empRepo := svc.EmployeeRepository.(*fakeEmployeeRepo)
	emp := empRepo.employees["emp-1"]
	emp.Geofence = &geofence.Area{Center: home, RadiusMeters: 200, Enabled: true}
	empRepo.employees["emp-1"] = emp

	resp, err := svc.RecordPunch(context.Background(), timerecord.RecordPunchRequest{
		EmployeeID: "emp-1",
		Latitude:   home.Latitude,
		Longitude:  home.Longitude,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Len(t, repo.events, 1)

	// The office is now out of bounds for this employee.
	_, err = svc.RecordPunch(context.Background(), timerecord.RecordPunchRequest{
		EmployeeID: "emp-1",
		Latitude:   officeCenter.Latitude,
		Longitude:  officeCenter.Longitude,
	})
	var violation *geofence.ViolationError
	require.ErrorAs(t, err, &violation)
}

func TestRecordPunchUnknownEmployee(t *testing.T) {
	svc, _ := newFixture(geofence.Area{Center: officeCenter, RadiusMeters: 100, Enabled: true})

	_, err := svc.RecordPunch(context.Background(), timerecord.RecordPunchRequest{
		EmployeeID: "emp-missing",
		Latitude:   officeCenter.Latitude,
		Longitude:  officeCenter.Longitude,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordPunchStoreFailure(t *testing.T) {
	svc, repo := newFixture(geofence.Area{Center: officeCenter, RadiusMeters: 100, Enabled: true})
	repo.createErr = errors.New("connection refused")

	_, err := svc.RecordPunch(context.Background(), timerecord.RecordPunchRequest{
		EmployeeID: "emp-1",
		Latitude:   officeCenter.Latitude,
		Longitude:  officeCenter.Longitude,
	})
	assert.ErrorIs(t, err, timerecord.ErrStoreUnavailable)
}

func TestRecordPunchInvalidCoordinates(t *testing.T) {
	svc, _ := newFixture(geofence.Area{Center: officeCenter, RadiusMeters: 100, Enabled: true})

	_, err := svc.RecordPunch(context.Background(), timerecord.RecordPunchRequest{
		EmployeeID: "emp-1",
		Latitude:   91,
		Longitude:  0,
	})
	assert.Error(t, err)
}

func TestListPunchesFiltersByEmployeeAndPeriod(t *testing.T) {
	svc, repo := newFixture(geofence.Area{Center: officeCenter, RadiusMeters: 100, Enabled: true})

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	repo.events = []timerecord.PunchEvent{
		{ID: "a", EmployeeID: "emp-1", ClientID: "client-1", Timestamp: base},
		{ID: "b", EmployeeID: "emp-1", ClientID: "client-1", Timestamp: base.Add(9 * time.Hour)},
		{ID: "c", EmployeeID: "emp-2", ClientID: "client-1", Timestamp: base},
		{ID: "d", EmployeeID: "emp-1", ClientID: "client-1", Timestamp: base.AddDate(0, 0, 5)},
	}

	got, err := svc.ListPunches(context.Background(), timerecord.ListPunchesFilter{
		EmployeeID: "emp-1",
		Start:      base.Add(-time.Hour),
		End:        base.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}
