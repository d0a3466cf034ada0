package domain

import "math"

const knotsToMPHRatio = 1.15078

// DegreesToDirection maps a wind direction to one of eight compass points.
// Directions outside [0, 360) are reported as "variable".
func DegreesToDirection(degrees int) string {
	d := float64(degrees)
	for _, s := range compassSectors {
		if s.low <= d && d < s.high {
			return s.name
		}
	}
	return "variable"
}

// KnotsToMPH converts knots to whole miles per hour.
// Rounding is half-to-even: 10kt is 11.5078 and becomes 12.
func KnotsToMPH(knots int) int {
	return int(math.RoundToEven(float64(knots) * knotsToMPHRatio))
}

// CelsiusToFahrenheit converts whole degrees Celsius to whole degrees
// Fahrenheit, rounding half-to-even.
func CelsiusToFahrenheit(celsius int) int {
	return int(math.RoundToEven(float64(celsius)*9/5 + 32))
}

const metersPerStatuteMile = 1609.34

func metersToMiles(meters int) float64 {
	return float64(meters) / metersPerStatuteMile
}
