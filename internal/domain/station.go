package domain

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrStationRequired is returned when no station identifier was entered.
	ErrStationRequired = errors.New("please enter an airport code")

	// ErrStationFormat is returned for identifiers that are not four letters.
	ErrStationFormat = errors.New("airport code must be exactly 4 letters (e.g., KJFK)")

	// ErrNoReport is returned when the weather service has no report for a station.
	ErrNoReport = errors.New("no METAR data found")
)

// Fetcher retrieves the latest raw METAR text for an ICAO station.
type Fetcher interface {
	FetchMETAR(ctx context.Context, station string) (string, error)
}

// ValidateStation normalizes user input to an uppercase ICAO identifier.
func ValidateStation(input string) (string, error) {
	station := strings.ToUpper(strings.TrimSpace(input))
	if station == "" {
		return "", ErrStationRequired
	}
	if len(station) != 4 {
		return "", ErrStationFormat
	}
	for _, r := range station {
		if r < 'A' || r > 'Z' {
			return "", ErrStationFormat
		}
	}
	return station, nil
}
