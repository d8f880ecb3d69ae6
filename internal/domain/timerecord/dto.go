package timerecord

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// RecordPunchRequest is the wire shape of a punch attempt. EmployeeID
// comes from the authenticated token, not the body.
type RecordPunchRequest struct {
	EmployeeID string  `json:"-"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Type       string  `json:"type,omitempty"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Type != "" && !validator.IsInSlice(r.Type, []string{TypePunch, TypeEntry, TypeExit}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be punch, entry or exit",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListPunchesFilter selects punch events for listing.
type ListPunchesFilter struct {
	EmployeeID string
	Start      time.Time
	End        time.Time
}

// PunchResponse is the wire shape of a stored punch event.
type PunchResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Timestamp  time.Time `json:"timestamp"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
}

// ToPunchResponse maps a stored event to its wire shape.
func ToPunchResponse(event PunchEvent) PunchResponse {
	return PunchResponse{
		ID:         event.ID,
		EmployeeID: event.EmployeeID,
		Timestamp:  event.Timestamp,
		Latitude:   event.Location.Latitude,
		Longitude:  event.Location.Longitude,
		Type:       event.Type,
		Status:     event.Status,
	}
}
