package client

import "context"

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string) error
	ListByAccountant(ctx context.Context, accountantID string) ([]Client, error)
	List(ctx context.Context) ([]Client, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
