package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pontolabs/ponto-backend-go/internal/domain/client"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/email"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/password"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/whatsapp"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	client.ClientRepository
	emailSvc    email.EmailService
	whatsappSvc whatsapp.Service
	frontendURL string
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	clientRepo client.ClientRepository,
	emailSvc email.EmailService,
	whatsappSvc whatsapp.Service,
	frontendURL string,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		ClientRepository:   clientRepo,
		emailSvc:           emailSvc,
		whatsappSvc:        whatsappSvc,
		frontendURL:        frontendURL,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	c, err := s.ClientRepository.GetByID(ctx, req.ClientID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get client: %w", err)
	}

	exists, err := s.EmployeeRepository.ExistsByEmail(ctx, req.ClientID, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	tempPassword, err := password.GenerateTemporary()
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	hash, err := password.Hash(tempPassword)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	workdays, err := employee.ParseWorkdays(req.Workdays)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	now := time.Now().UTC()
	emp := employee.Employee{
		ID:           uuid.NewString(),
		ClientID:     req.ClientID,
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Status:       "active",
		PasswordHash: hash,
		Workdays:     workdays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Geofence != nil {
		area := req.Geofence.Area()
		emp.Geofence = &area
	}

	stored, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	// Welcome notifications must not block or fail the onboarding.
	go s.sendWelcome(stored, c.CompanyName, tempPassword)

	return toResponse(stored), nil
}

func (s *EmployeeServiceImpl) sendWelcome(emp employee.Employee, companyName, tempPassword string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	loginLink := s.frontendURL + "/login"
	if err := s.emailSvc.SendWelcome(emp.Email, emp.Name, companyName, emp.Email, tempPassword, loginLink); err != nil {
		slog.Error("Failed to send welcome email", "employee_id", emp.ID, "error", err)
	}

	if emp.Phone == "" {
		return
	}
	message := fmt.Sprintf(
		"Olá, %s! Você foi cadastrado no controle de ponto de %s. Acesse %s com o e-mail %s. Sua senha temporária chegou por e-mail.",
		emp.Name, companyName, loginLink, emp.Email,
	)
	if err := s.whatsappSvc.SendMessage(ctx, emp.Phone, message); err != nil {
		slog.Error("Failed to send welcome WhatsApp message", "employee_id", emp.ID, "error", err)
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
	if len(req.Workdays) > 0 {
		workdays, err := employee.ParseWorkdays(req.Workdays)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.Workdays = workdays
	}
	if req.Geofence != nil {
		area := req.Geofence.Area()
		emp.Geofence = &area
	}
	emp.UpdatedAt = time.Now().UTC()

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return toResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.EmployeeRepository.Delete(ctx, id)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, clientID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		ClientID:     emp.ClientID,
		DepartmentID: emp.DepartmentID,
		Name:         emp.Name,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Status:       emp.Status,
		Workdays:     employee.FormatWorkdays(emp.Workdays),
		CreatedAt:    emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    emp.UpdatedAt.Format(time.RFC3339),
	}
	if emp.Geofence != nil {
		resp.Geofence = &geofence.Input{
			Latitude:     emp.Geofence.Center.Latitude,
			Longitude:    emp.Geofence.Center.Longitude,
			RadiusMeters: emp.Geofence.RadiusMeters,
			Enabled:      emp.Geofence.Enabled,
		}
	}
	return resp
}
