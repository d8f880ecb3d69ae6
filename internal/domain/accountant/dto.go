package accountant

import (
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type CreateAccountantRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (r *CreateAccountantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAccountantRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name,omitempty"`
	Company *string `json:"company,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Status  *string `json:"status,omitempty"`
}

func (r *UpdateAccountantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{"active", "inactive"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AccountantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Status      string `json:"status"`
	ClientCount int    `json:"client_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
