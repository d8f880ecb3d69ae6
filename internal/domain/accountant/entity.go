package accountant

import "time"

// Accountant is an accounting firm onboarded by the provider. Each
// accountant manages a portfolio of client companies.
type Accountant struct {
	ID           string
	Name         string
	Company      string
	Email        string
	Phone        string
	Status       string
	PasswordHash string
	ClientCount  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
