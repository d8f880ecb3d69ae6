package client

import "context"

// ClientService defines business logic for client company onboarding by
// an accounting firm.
type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	GetClient(ctx context.Context, id string) (ClientResponse, error)
	UpdateClient(ctx context.Context, req UpdateClientRequest) (ClientResponse, error)
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context, accountantID string) ([]ClientResponse, error)
}
