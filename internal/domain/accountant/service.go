package accountant

import "context"

// AccountantService defines business logic for onboarding accounting
// firms (provider-level administration).
type AccountantService interface {
	CreateAccountant(ctx context.Context, req CreateAccountantRequest) (AccountantResponse, error)
	GetAccountant(ctx context.Context, id string) (AccountantResponse, error)
	UpdateAccountant(ctx context.Context, req UpdateAccountantRequest) (AccountantResponse, error)
	DeleteAccountant(ctx context.Context, id string) error
	ListAccountants(ctx context.Context) ([]AccountantResponse, error)
}
