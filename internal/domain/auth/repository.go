package auth

import "context"

// AccountRepository looks up credentials across the accountant, client
// and employee collections.
type AccountRepository interface {
	// FindByEmail returns the account matching email, searching
	// accountants, then clients, then employees.
	FindByEmail(ctx context.Context, email string) (Account, error)
}
