package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	Delete(ctx context.Context, id string) error
	ListByClient(ctx context.Context, clientID string) ([]Department, error)
	ExistsByName(ctx context.Context, clientID, name string) (bool, error)
}
