package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	ListByClient(ctx context.Context, clientID string) ([]Employee, error)
	ExistsByEmail(ctx context.Context, clientID, email string) (bool, error)
}
