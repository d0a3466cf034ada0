package domain

import "strings"

// Decode converts a raw METAR into a DecodedReport. It never fails: groups that
// are missing or do not match a known grammar leave their fields empty, and
// tokens that fit no grammar are skipped.
func Decode(raw string) DecodedReport {
	trimmed := strings.TrimSpace(raw)
	report := DecodedReport{RawMETAR: trimmed}

	fields := tokenize(trimmed)
	if len(fields) == 0 {
		return report
	}

	var visibility, weather, clouds []string
	for _, tok := range classify(fields) {
		switch tok.kind {
		case kindStation:
			report.Airport = tok.text
		case kindTime:
			report.ObservationTime = ParseObservationTime(tok.text)
		case kindWind:
			report.Wind = ParseWind(tok.text)
		case kindVisibility:
			visibility = append(visibility, tok.text)
		case kindWeather:
			weather = append(weather, tok.text)
		case kindCloud:
			clouds = append(clouds, tok.text)
		case kindTempDewpoint:
			report.Temperature, report.Dewpoint = ParseTempDewpoint(tok.text)
		case kindAltimeter:
			report.Altimeter = ParseAltimeter(tok.text)
		}
	}

	if len(visibility) > 0 {
		report.Visibility = ParseVisibility(strings.Join(visibility, " "))
	}
	report.Weather = ParseWeather(weather)
	report.Clouds = ParseClouds(clouds)
	report.Summary = GenerateSummary(report)

	return report
}
