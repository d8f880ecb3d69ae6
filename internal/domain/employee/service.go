package employee

import "context"

// EmployeeService defines business logic for employee onboarding and
// maintenance by a client company.
type EmployeeService interface {
	// CreateEmployee registers an employee, generates a temporary
	// password and triggers welcome notifications (fire-and-forget).
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
	ListEmployees(ctx context.Context, clientID string) ([]EmployeeResponse, error)
}
