package employee

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/geofence"
)

type Employee struct {
	ID           string
	ClientID     string
	DepartmentID *string
	Name         string
	Email        string
	Phone        string
	Status       string
	PasswordHash string

	// Workdays is the employee's expected working days. A day with no
	// valid punches only counts as an absence when it is a workday.
	Workdays []time.Weekday

	// Geofence, when set and enabled, overrides the client company's
	// allowed area for this employee.
	Geofence *geofence.Area

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWorkday reports whether day is a designated working day for the
// employee.
func (e Employee) IsWorkday(day time.Time) bool {
	for _, wd := range e.Workdays {
		if day.Weekday() == wd {
			return true
		}
	}
	return false
}
