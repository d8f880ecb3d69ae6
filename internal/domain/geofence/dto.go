package geofence

import (
	"fmt"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/geo"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// Admin-editable radius bounds. The validator itself accepts any
// positive radius; the clamp only applies when areas are created or
// edited through the CRUD surface.
const (
	MinRadiusMeters = 50
	MaxRadiusMeters = 1000
)

// Input is the admin-facing shape of an allowed area, embedded in
// client and employee create/update requests.
type Input struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	Enabled      bool    `json:"enabled"`
}

// Validate checks the input, prefixing reported fields with prefix
// (e.g. "geofence.latitude").
func (i Input) Validate(prefix string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(i.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + ".latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(i.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + ".longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if i.Enabled && (i.RadiusMeters < MinRadiusMeters || i.RadiusMeters > MaxRadiusMeters) {
		errs = append(errs, validator.ValidationError{
			Field:   prefix + ".radius_meters",
			Message: fmt.Sprintf("radius must be between %d and %d meters", MinRadiusMeters, MaxRadiusMeters),
		})
	}

	return errs
}

// Area converts the input to its domain value.
func (i Input) Area() Area {
	return Area{
		Center:       geo.Point{Latitude: i.Latitude, Longitude: i.Longitude},
		RadiusMeters: i.RadiusMeters,
		Enabled:      i.Enabled,
	}
}
