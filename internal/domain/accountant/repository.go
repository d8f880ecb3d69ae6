package accountant

import "context"

type AccountantRepository interface {
	Create(ctx context.Context, a Accountant) (Accountant, error)
	GetByID(ctx context.Context, id string) (Accountant, error)
	Update(ctx context.Context, a Accountant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Accountant, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
