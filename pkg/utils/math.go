package utils

import "math"

// RoundDecimal rounds a float64 value to the specified number of decimal places,
// half away from zero. For example, RoundDecimal(3.14159, 2) returns 3.14.
// A negative decimals value returns the input unchanged, as does any precision
// too large for the scaled value to stay finite.
func RoundDecimal(value float64, decimals int) float64 {
	if decimals < 0 {
		return value
	}
	pow := math.Pow(10, float64(decimals))
	scaled := value * pow
	if math.IsInf(pow, 0) || math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return value
	}
	return math.Round(scaled) / pow
}
