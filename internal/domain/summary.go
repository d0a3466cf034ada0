package domain

import "strings"

// GenerateSummary composes a one-sentence narrative from decoded fields.
// Unremarkable visibility (good or excellent) is left out.
func GenerateSummary(r DecodedReport) string {
	parts := make([]string, 0, 5)

	clouds := strings.ToLower(r.Clouds)
	switch {
	case strings.Contains(clouds, "clear"):
		parts = append(parts, "It's a clear day")
	case strings.Contains(clouds, "overcast"):
		parts = append(parts, "The sky is overcast")
	case strings.Contains(clouds, "broken"):
		parts = append(parts, "The sky is mostly cloudy")
	case strings.Contains(clouds, "scattered"):
		parts = append(parts, "There are some clouds in the sky")
	case strings.Contains(clouds, "few"):
		parts = append(parts, "There are a few clouds")
	default:
		parts = append(parts, "Current conditions")
	}

	if r.Temperature != "" {
		parts = append(parts, "with a temperature of "+r.Temperature)
	}

	wind := strings.ToLower(r.Wind)
	switch {
	case strings.Contains(wind, "calm"):
		parts = append(parts, "and calm winds")
	case r.Wind != "":
		parts = append(parts, "and "+wind)
	}

	if r.Weather != "" {
		parts = append(parts, ". "+r.Weather)
	}

	if isNotableVisibility(r.Visibility) {
		parts = append(parts, ". "+r.Visibility)
	}

	return strings.Join(parts, " ") + "."
}

func isNotableVisibility(visibility string) bool {
	v := strings.ToLower(visibility)
	return strings.Contains(v, "poor") ||
		strings.Contains(v, "reduced") ||
		strings.Contains(v, "moderate")
}
