package client

import (
	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type CreateClientRequest struct {
	AccountantID string         `json:"-"`
	CompanyName  string         `json:"company_name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Geofence     geofence.Input `json:"geofence"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_name",
			Message: "company_name is required",
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

	errs = append(errs, r.Geofence.Validate("geofence")...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateClientRequest struct {
	ID          string          `json:"-"`
	CompanyName *string         `json:"company_name,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Status      *string         `json:"status,omitempty"`
	Geofence    *geofence.Input `json:"geofence,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
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

	if r.Geofence != nil {
		errs = append(errs, r.Geofence.Validate("geofence")...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClientResponse struct {
	ID           string         `json:"id"`
	AccountantID string         `json:"accountant_id"`
	CompanyName  string         `json:"company_name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	Status       string         `json:"status"`
	Geofence     geofence.Input `json:"geofence"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}
