package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates (latitude, longitude).
type Coordinate struct {
	Lat float64
	Lng float64
}

// Render as "lat,lng" for directions API query parameters.
func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lng)
}

// CloseTo reports whether both components are within tolerance degrees
// of the other coordinate.
func (c Coordinate) CloseTo(other Coordinate, tolerance float64) bool {
	return math.Abs(c.Lat-other.Lat) <= tolerance && math.Abs(c.Lng-other.Lng) <= tolerance
}
