package gd

import "math"

// Degrees converts an angle in degrees to radians, e.g. Degrees(90)
func Degrees(d float64) float64 {
	return d * 2 * math.Pi / 360
}

// ToDegrees converts an angle in radians to degrees
func ToDegrees(rad float64) float64 {
	return rad * 360 / math.Pi / 2
}

// Percent converts a percentage to a fraction, e.g. Percent(50) is 0.5
func Percent(p float64) float64 {
	return p / 100
}

// ToPercent converts a fraction to a percentage, e.g. 0.5 to 50
func ToPercent(f float64) float64 {
	return f * 100
}
