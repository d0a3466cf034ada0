package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const (
	calmWinds        = "Calm winds"
	windNotAvailable = "Wind information not available"
	clearSkies       = "clear skies"
	skyNotReported   = "Sky conditions not reported"
)

var (
	observationTimeRe = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z`)

	variableWindRe = regexp.MustCompile(`^VRB(\d{2,3})KT`)
	fixedWindRe    = regexp.MustCompile(`^(\d{3})(\d{2,3})(G(\d{2,3}))?KT`)

	visibilityMilesRe    = regexp.MustCompile(`^(\d+)SM`)
	visibilityFractionRe = regexp.MustCompile(`^((\d+)\s+)?(\d+)/(\d+)SM`)
	visibilityMetersRe   = regexp.MustCompile(`^(\d{4})`)

	cloudLayerRe   = regexp.MustCompile(`^(FEW|SCT|BKN|OVC|VV)(\d{3})(CB|TCU)?`)
	tempDewpointRe = regexp.MustCompile(`^(M)?(\d{2})/(M)?(\d{2})`)

	altimeterInHgRe = regexp.MustCompile(`^A(\d{4})`)
	altimeterHPaRe  = regexp.MustCompile(`^Q(\d{4})`)
)

// ParseObservationTime renders a DDHHMMZ group, e.g. "251200Z" -> "Day 25 at 12:00 UTC".
// Returns "" when the group does not match.
func ParseObservationTime(s string) string {
	m := observationTimeRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("Day %s at %s:%s UTC", m[1], m[2], m[3])
}

// ParseWind describes a wind group such as "18010KT", "27015G25KT" or "VRB05KT".
// Zero speed is calm whatever the direction. Unrecognized groups are echoed
// back behind a "Wind:" label.
func ParseWind(s string) string {
	if s == "" {
		return windNotAvailable
	}

	if m := variableWindRe.FindStringSubmatch(s); m != nil {
		speed := atoiOrZero(m[1])
		if speed == 0 {
			return calmWinds
		}
		return fmt.Sprintf("Variable wind at %d mph", KnotsToMPH(speed))
	}

	if m := fixedWindRe.FindStringSubmatch(s); m != nil {
		direction := atoiOrZero(m[1])
		speed := atoiOrZero(m[2])
		if speed == 0 {
			return calmWinds
		}

		out := fmt.Sprintf("Wind from the %s at %d mph", DegreesToDirection(direction), KnotsToMPH(speed))
		if gust := atoiOrZero(m[4]); gust != 0 {
			out += fmt.Sprintf(", gusting to %d mph", KnotsToMPH(gust))
		}
		return out
	}

	return "Wind: " + s
}

// ParseVisibility describes the visibility group(s) of a report, joined by a
// single space. Whole statute miles are tiered, fractions are always
// "reduced", and four-digit meter values are converted without a tier.
func ParseVisibility(s string) string {
	if s == "" {
		return ""
	}

	if m := visibilityMilesRe.FindStringSubmatch(s); m != nil {
		if miles, err := strconv.Atoi(m[1]); err == nil {
			switch {
			case miles >= 10:
				return "Visibility 10 miles or more (excellent)"
			case miles >= 6:
				return fmt.Sprintf("Visibility %d miles (good)", miles)
			case miles >= 3:
				return fmt.Sprintf("Visibility %d miles (moderate)", miles)
			default:
				return fmt.Sprintf("Visibility %d miles (poor)", miles)
			}
		}
	}

	if total, ok := fractionalMiles(s); ok {
		return fmt.Sprintf("Visibility %s miles (reduced)", formatDecimal(total))
	}

	if m := visibilityMetersRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("Visibility %.1f miles", metersToMiles(atoiOrZero(m[1])))
	}

	return "Visibility: " + s
}

// fractionalMiles evaluates "N/DSM" or "W N/DSM". A zero denominator does not match.
func fractionalMiles(s string) (float64, bool) {
	m := visibilityFractionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	whole := atoiOrZero(m[2])
	num, errN := strconv.Atoi(m[3])
	denom, errD := strconv.Atoi(m[4])
	if errN != nil || errD != nil || denom == 0 {
		return 0, false
	}
	return float64(whole) + float64(num)/float64(denom), true
}

// ParseWeather describes present-weather tokens such as "-RA", "+SN" or "VCFG".
// Two-letter groups missing from the code table are dropped.
func ParseWeather(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	descriptions := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if d := describeWeatherToken(tok); d != "" {
			descriptions = append(descriptions, d)
		}
	}
	if len(descriptions) == 0 {
		return ""
	}
	return "Weather: " + strings.Join(descriptions, ", ")
}

func describeWeatherToken(tok string) string {
	var parts []string
	rest := tok

	switch {
	case strings.HasPrefix(rest, "-"):
		parts = append(parts, weatherCodes["-"])
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		parts = append(parts, weatherCodes["+"])
		rest = rest[1:]
	}

	if strings.HasPrefix(rest, "VC") {
		parts = append(parts, weatherCodes["VC"])
		rest = rest[2:]
	}

	for rest != "" {
		n := min(2, len(rest))
		if phrase, ok := weatherCodes[rest[:n]]; ok {
			parts = append(parts, phrase)
		}
		rest = rest[n:]
	}
	return strings.Join(parts, " ")
}

// ParseClouds describes sky-condition tokens. A clear-sky token anywhere wins
// over every layer. With no tokens at all the sky is "not reported".
func ParseClouds(tokens []string) string {
	if len(tokens) == 0 {
		return skyNotReported
	}

	layers := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "SKC" || tok == "CLR" {
			return clearSkies
		}

		m := cloudLayerRe.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		feet := int64(atoiOrZero(m[2])) * 100

		desc := fmt.Sprintf("%s at %s feet", cloudCodes[m[1]], humanize.Comma(feet))
		switch m[3] {
		case "CB":
			desc += " (cumulonimbus - thunderstorm clouds)"
		case "TCU":
			desc += " (towering cumulus)"
		}
		layers = append(layers, desc)
	}

	if len(layers) == 0 {
		return ""
	}
	return capitalize(strings.Join(layers, ", "))
}

// ParseTempDewpoint returns the temperature and dewpoint descriptions for a
// group such as "20/10" or "M05/M08", or two empty strings.
func ParseTempDewpoint(s string) (string, string) {
	m := tempDewpointRe.FindStringSubmatch(s)
	if m == nil {
		return "", ""
	}
	temp := signedCelsius(m[1], m[2])
	dew := signedCelsius(m[3], m[4])
	return formatTemperature(temp), formatTemperature(dew)
}

func signedCelsius(minus, digits string) int {
	c := atoiOrZero(digits)
	if minus == "M" {
		return -c
	}
	return c
}

func formatTemperature(celsius int) string {
	return fmt.Sprintf("%d°F (%d°C)", CelsiusToFahrenheit(celsius), celsius)
}

// ParseAltimeter describes an altimeter setting: "A3012" in hundredths of an
// inch of mercury or "Q1013" in hectopascals. Other values are returned as-is.
func ParseAltimeter(s string) string {
	if s == "" {
		return ""
	}
	if m := altimeterInHgRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%.2f inches of mercury", float64(atoiOrZero(m[1]))/100)
	}
	if m := altimeterHPaRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%d hectopascals", atoiOrZero(m[1]))
	}
	return s
}

// atoiOrZero parses a decimal string, returning 0 on failure.
func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// formatDecimal prints a float with the shortest exact digits and always at
// least one decimal place: 0.5 -> "0.5", 1 -> "1.0".
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
