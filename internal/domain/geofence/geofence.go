package geofence

import (
	"fmt"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/geo"
)

// Area is a circular allowed zone around a workplace. A disabled area
// accepts punches from anywhere.
type Area struct {
	Center       geo.Point
	RadiusMeters float64
	Enabled      bool
}

// Contains reports whether point falls inside the area. The boundary
// is inclusive: a punch exactly RadiusMeters from the center is
// accepted. Disabled areas contain every point.
func Contains(point geo.Point, area Area) bool {
	if !area.Enabled {
		return true
	}
	return geo.DistanceMeters(point, area.Center) <= area.RadiusMeters
}

// ViolationError reports a punch attempted from outside the allowed
// area, carrying the measured distance and the area radius so callers
// can show how far off the employee was.
type ViolationError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf(
		"location is %.0fm from the allowed area center, %.0fm beyond the %.0fm radius",
		e.DistanceMeters, e.DistanceMeters-e.RadiusMeters, e.RadiusMeters,
	)
}
