package auth

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// Roles issued in access tokens, matching the onboarding chain.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleClient     = "client"
	RoleEmployee   = "employee"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	Name        string `json:"name"`
}

// Account is the credential view of any user in the onboarding chain
// (accountant, client or employee).
type Account struct {
	ID           string
	Role         string
	Name         string
	Email        string
	PasswordHash string
	ClientID     string // set for employees
}
