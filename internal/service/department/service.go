package department

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pontolabs/ponto-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) *DepartmentServiceImpl {
	return &DepartmentServiceImpl{DepartmentRepository: departmentRepo}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	exists, err := s.DepartmentRepository.ExistsByName(ctx, req.ClientID, req.Name)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return department.DepartmentResponse{}, department.ErrNameExists
	}

	now := time.Now().UTC()
	d := department.Department{
		ID:        uuid.NewString(),
		ClientID:  req.ClientID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored, err := s.DepartmentRepository.Create(ctx, d)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}
	return toResponse(stored), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.DepartmentRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.DepartmentRepository.Delete(ctx, id)
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context, clientID string) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, toResponse(d))
	}
	return responses, nil
}

func toResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:        d.ID,
		ClientID:  d.ClientID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
}
