package gomath3d

import "math"

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * (180 / math.Pi)
}
