package employee

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	ClientID     string          `json:"client_id"`
	DepartmentID *string         `json:"department_id,omitempty"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Workdays     []string        `json:"workdays,omitempty"`
	Geofence     *geofence.Input `json:"geofence,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

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

	if _, err := ParseWorkdays(r.Workdays); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "workdays",
			Message: err.Error(),
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

type UpdateEmployeeRequest struct {
	ID           string          `json:"-"`
	DepartmentID *string         `json:"department_id,omitempty"`
	Name         *string         `json:"name,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Status       *string         `json:"status,omitempty"`
	Workdays     []string        `json:"workdays,omitempty"`
	Geofence     *geofence.Input `json:"geofence,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
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

	if _, err := ParseWorkdays(r.Workdays); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "workdays",
			Message: err.Error(),
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

type EmployeeResponse struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	DepartmentID *string         `json:"department_id,omitempty"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	Status       string          `json:"status"`
	Workdays     []string        `json:"workdays"`
	Geofence     *geofence.Input `json:"geofence,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

var weekdayLabels = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

// ParseWorkdays converts day labels ("mon".."sun") to weekdays. An
// empty slice is valid and means "use the company default".
func ParseWorkdays(labels []string) ([]time.Weekday, error) {
	var result []time.Weekday
	for _, label := range labels {
		day, ok := weekdayNames[label]
		if !ok {
			return nil, &UnknownWorkdayError{Label: label}
		}
		result = append(result, day)
	}
	return result, nil
}

// FormatWorkdays converts weekdays back to their labels.
func FormatWorkdays(days []time.Weekday) []string {
	labels := make([]string, 0, len(days))
	for _, day := range days {
		labels = append(labels, weekdayLabels[day])
	}
	return labels
}

type UnknownWorkdayError struct {
	Label string
}

func (e *UnknownWorkdayError) Error() string {
	return "unknown workday label: " + e.Label
}
