package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/domain/accountant"
	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/domain/client"
	"github.com/pontolabs/ponto-backend-go/internal/domain/department"
	"github.com/pontolabs/ponto-backend-go/internal/domain/employee"
	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
	"github.com/pontolabs/ponto-backend-go/internal/domain/timerecord"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Punches rejected by the geofence carry distance details
	var violation *geofence.ViolationError
	if errors.As(err, &violation) {
		GeofenceViolation(w, "Punch location is outside the allowed area", map[string]string{
			"distance_meters": fmt.Sprintf("%.0f", violation.DistanceMeters),
			"radius_meters":   fmt.Sprintf("%.0f", violation.RadiusMeters),
		})
		return
	}

	var unknownWorkday *employee.UnknownWorkdayError
	if errors.As(err, &unknownWorkday) {
		BadRequest(w, unknownWorkday.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// Accountant domain errors
	case errors.Is(err, accountant.ErrAccountantNotFound):
		NotFound(w, "Accountant not found")
	case errors.Is(err, accountant.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "Department name already exists for this company")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Time record domain errors
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, timerecord.ErrStoreUnavailable):
		ServiceUnavailable(w, "Time record store is unavailable, try again")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidRange):
		BadRequest(w, "Report end date is before start date", nil)
	case errors.Is(err, report.ErrUnknownFormat):
		BadRequest(w, "Unknown export format, use pdf, xlsx or csv", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
