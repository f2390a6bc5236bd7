// Package units provides shared angle constants and conversions.
package units

import "math"

// Bearing limits accepted for sector bounds, in degrees.
const (
	MinBearing = -180
	MaxBearing = 180
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ValidBearing checks that deg lies in [MinBearing, MaxBearing].
func ValidBearing(deg int) bool {
	return deg >= MinBearing && deg <= MaxBearing
}
