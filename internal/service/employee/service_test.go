package employee

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontolabs/ponto-backend-go/internal/domain/client"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/geo"
)

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) ListByClient(_ context.Context, clientID string) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []employee.Employee
	for _, emp := range f.employees {
		if emp.ClientID == clientID {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, clientID, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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

type welcomeCall struct {
	to           string
	tempPassword string
}

type fakeEmailService struct {
	mu       sync.Mutex
	once     sync.Once
	welcomes []welcomeCall
	done     chan struct{}
}

func (f *fakeEmailService) SendWelcome(to, _, _, _, tempPassword, _ string) error {
	f.mu.Lock()
	f.welcomes = append(f.welcomes, welcomeCall{to: to, tempPassword: tempPassword})
	f.mu.Unlock()
	f.once.Do(func() { close(f.done) })
	return nil
}

func (f *fakeEmailService) SendAbsenceNotice(_, _, _, _ string) error {
	return nil
}

func (f *fakeEmailService) SendAbsenceSummary(_, _, _ string, _ []string) error {
	return nil
}

type fakeWhatsAppService struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeWhatsAppService) SendMessage(_ context.Context, phone, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, phone)
	return nil
}

func newFixture() (*EmployeeServiceImpl, *fakeEmployeeRepo, *fakeEmailService) {
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	clientRepo := &fakeClientRepo{clients: map[string]client.Client{
		"client-1": {ID: "client-1", CompanyName: "Empresa LTDA", Status: "active"},
	}}
	emailSvc := &fakeEmailService{done: make(chan struct{})}
	whatsappSvc := &fakeWhatsAppService{}
	svc := NewEmployeeService(employeeRepo, clientRepo, emailSvc, whatsappSvc, "https://app.ponto.local")
	return svc, employeeRepo, emailSvc
}

func TestCreateEmployee(t *testing.T) {
	svc, repo, emailSvc := newFixture()

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		ClientID: "client-1",
		Name:     "Maria Silva",
		Email:    "maria@empresa.com.br",
		Phone:    "11987654321",
		Workdays: []string{"mon", "tue", "wed", "thu", "fri"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, []string{"mon", "tue", "wed", "thu", "fri"}, resp.Workdays)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)

	select {
	case <-emailSvc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("welcome email was not sent")
	}
	emailSvc.mu.Lock()
	defer emailSvc.mu.Unlock()
	require.Len(t, emailSvc.welcomes, 1)
	assert.Equal(t, "maria@empresa.com.br", emailSvc.welcomes[0].to)
	assert.NotEmpty(t, emailSvc.welcomes[0].tempPassword)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	svc, _, _ := newFixture()

	req := employee.CreateEmployeeRequest{
		ClientID: "client-1",
		Name:     "Maria Silva",
		Email:    "maria@empresa.com.br",
	}
	_, err := svc.CreateEmployee(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateEmployee(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateEmployeeUnknownClient(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		ClientID: "client-missing",
		Name:     "Maria Silva",
		Email:    "maria@empresa.com.br",
	})
	assert.ErrorIs(t, err, client.ErrClientNotFound)
}

func TestUpdateEmployeeGeofenceOverride(t *testing.T) {
	svc, repo, _ := newFixture()

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		ClientID: "client-1",
		Name:     "Maria Silva",
		Email:    "maria@empresa.com.br",
	})
	require.NoError(t, err)

	_, err = svc.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID: resp.ID,
		Geofence: &geofence.Input{
			Latitude:     -22.9068,
			Longitude:    -43.1729,
			RadiusMeters: 200,
			Enabled:      true,
		},
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Geofence)
	assert.Equal(t, geo.Point{Latitude: -22.9068, Longitude: -43.1729}, stored.Geofence.Center)
	assert.True(t, stored.Geofence.Enabled)
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	svc, _, _ := newFixture()

	err := svc.DeleteEmployee(context.Background(), "emp-missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
