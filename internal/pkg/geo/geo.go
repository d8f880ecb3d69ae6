package geo

import "math"

// Point is a WGS84 coordinate in decimal degrees.
// Callers are responsible for supplying latitude in [-90, 90] and
// longitude in [-180, 180]; out-of-range values are not clamped.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

const earthRadiusMeters = 6371000

// DistanceMeters returns the great-circle distance between two points
// using the haversine formula. Accurate to a few meters at urban scales.
func DistanceMeters(a, b Point) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	latARad := a.Latitude * (math.Pi / 180.0)
	latBRad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latARad)*math.Cos(latBRad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
