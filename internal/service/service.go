// Package service looks up and decodes the current METAR for a station.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couchcryptid/metar-reader/internal/domain"
	"github.com/couchcryptid/metar-reader/internal/observability"
)

// FetchError reports a failure retrieving a report for a valid station.
// Its message is the underlying fetch error, without station context.
type FetchError struct {
	Station string
	Err     error
}

func (e *FetchError) Error() string { return e.Err.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// Result is a decoded lookup with its estimated flight category.
type Result struct {
	Report         domain.DecodedReport `json:"report"`
	FlightCategory string               `json:"flight_category"`
}

// Service validates station input, fetches the latest report and decodes it.
type Service struct {
	fetcher domain.Fetcher
	metrics *observability.Metrics
	logger  *slog.Logger
}

// New creates a lookup service backed by fetcher.
func New(fetcher domain.Fetcher, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		metrics: metrics,
		logger:  logger,
	}
}

// Lookup validates input as an ICAO station, fetches its latest report and
// decodes it. Validation failures return domain.ErrStationRequired or
// domain.ErrStationFormat; fetch failures return a *FetchError.
func (s *Service) Lookup(ctx context.Context, input string) (Result, error) {
	station, err := domain.ValidateStation(input)
	if err != nil {
		s.metrics.Lookups.WithLabelValues("invalid").Inc()
		return Result{}, err
	}

	raw, err := s.fetcher.FetchMETAR(ctx, station)
	if err != nil {
		outcome := "error"
		if errors.Is(err, domain.ErrNoReport) {
			outcome = "not_found"
		}
		s.metrics.Lookups.WithLabelValues(outcome).Inc()
		s.logger.Warn("metar lookup failed", "station", station, "error", err)
		return Result{}, &FetchError{Station: station, Err: err}
	}

	s.metrics.Lookups.WithLabelValues("success").Inc()
	s.logger.Debug("metar fetched", "station", station, "raw", raw)
	return Result{
		Report:         s.Decode(raw),
		FlightCategory: domain.EstimateFlightCategory(raw),
	}, nil
}

// Decode decodes a raw report supplied by the caller.
func (s *Service) Decode(raw string) domain.DecodedReport {
	s.metrics.ReportsDecoded.Inc()
	return domain.Decode(raw)
}

// CheckReadiness always succeeds: the lookup path has no connections to
// warm up, and upstream outages surface per request.
func (s *Service) CheckReadiness(_ context.Context) error {
	return nil
}
