package domain

import (
	"strconv"
	"strings"
)

// Flight category labels, from worst to best.
const (
	CategoryLIFR = "LIFR (Low Instrument Flight Rules) - Very poor conditions"
	CategoryIFR  = "IFR (Instrument Flight Rules) - Poor conditions"
	CategoryMVFR = "MVFR (Marginal Visual Flight Rules) - Moderate conditions"
	CategoryVFR  = "VFR (Visual Flight Rules) - Good conditions"
)

// Values assumed for a group that is absent when estimating a category.
const (
	unrestrictedVisibilityMiles = 10.0
	unlimitedCeilingFeet        = 100000
)

// FlightCategory classifies flying conditions from visibility in statute miles
// and ceiling in feet. The worse of the two decides.
func FlightCategory(visibilityMiles float64, ceilingFeet int) string {
	switch {
	case ceilingFeet < 500 || visibilityMiles < 1:
		return CategoryLIFR
	case ceilingFeet < 1000 || visibilityMiles < 3:
		return CategoryIFR
	case ceilingFeet <= 3000 || visibilityMiles <= 5:
		return CategoryMVFR
	default:
		return CategoryVFR
	}
}

// MeasureConditions extracts numeric visibility and ceiling from a raw report.
// The ceiling is the lowest broken, overcast or vertical-visibility layer.
func MeasureConditions(raw string) Conditions {
	var c Conditions
	var visibility []string

	for _, tok := range classify(tokenize(raw)) {
		switch tok.kind {
		case kindVisibility:
			visibility = append(visibility, tok.text)
		case kindCloud:
			feet, ok := ceilingLayerFeet(tok.text)
			if ok && (!c.HasCeiling || feet < c.CeilingFeet) {
				c.CeilingFeet = feet
				c.HasCeiling = true
			}
		}
	}

	if len(visibility) > 0 {
		c.VisibilityMiles, c.HasVisibility = visibilityMiles(strings.Join(visibility, " "))
	}
	return c
}

// EstimateFlightCategory derives a flight category from a raw report. A missing
// group is treated as unrestricted; with neither reported it returns "".
func EstimateFlightCategory(raw string) string {
	c := MeasureConditions(raw)
	if !c.HasVisibility && !c.HasCeiling {
		return ""
	}

	vis := unrestrictedVisibilityMiles
	if c.HasVisibility {
		vis = c.VisibilityMiles
	}
	ceiling := unlimitedCeilingFeet
	if c.HasCeiling {
		ceiling = c.CeilingFeet
	}
	return FlightCategory(vis, ceiling)
}

func ceilingLayerFeet(tok string) (int, bool) {
	m := cloudLayerRe.FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	switch m[1] {
	case "BKN", "OVC", "VV":
		return atoiOrZero(m[2]) * 100, true
	default:
		return 0, false
	}
}

// visibilityMiles mirrors ParseVisibility but returns the numeric value.
func visibilityMiles(s string) (float64, bool) {
	if m := visibilityMilesRe.FindStringSubmatch(s); m != nil {
		if miles, err := strconv.Atoi(m[1]); err == nil {
			return float64(miles), true
		}
	}
	if total, ok := fractionalMiles(s); ok {
		return total, true
	}
	if m := visibilityMetersRe.FindStringSubmatch(s); m != nil {
		return metersToMiles(atoiOrZero(m[1])), true
	}
	return 0, false
}
