package department

import "context"

type DepartmentService interface {
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
	ListDepartments(ctx context.Context, clientID string) ([]DepartmentResponse, error)
}
