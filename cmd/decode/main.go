// Command decode prints plain-English renderings of METAR reports.
//
// Usage:
//
//	go run ./cmd/decode "METAR KJFK 251200Z 00000KT 10SM CLR 20/10 A3000"
//	echo "METAR EGLL ..." | go run ./cmd/decode -json
//	go run ./cmd/decode -station KSFO
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/metar-reader/internal/adapter/aviationweather"
	"github.com/couchcryptid/metar-reader/internal/domain"
	"github.com/couchcryptid/metar-reader/internal/fixture"
	"github.com/couchcryptid/metar-reader/internal/observability"
	"github.com/couchcryptid/metar-reader/internal/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	station := fs.String("station", "", "fetch and decode the latest report for this ICAO station")
	asJSON := fs.Bool("json", false, "print JSON instead of text")
	baseURL := fs.String("url", aviationweather.DefaultBaseURL, "aviationweather.gov METAR endpoint")
	timeout := fs.Duration("timeout", 10*time.Second, "fetch timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *station != "" {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		metrics := observability.NewMetricsForTesting()
		client := aviationweather.NewClient(*baseURL, *timeout, 1, metrics, logger)

		res, err := service.New(client, metrics, logger).Lookup(context.Background(), *station)
		if err != nil {
			return err
		}
		return render(stdout, []service.Result{res}, *asJSON)
	}

	reports := fs.Args()
	if len(reports) == 0 {
		var err error
		if reports, err = fixture.ParseReports(stdin); err != nil {
			return err
		}
	}
	if len(reports) == 0 {
		return errors.New("no reports given")
	}

	results := make([]service.Result, 0, len(reports))
	for _, raw := range reports {
		results = append(results, service.Result{
			Report:         domain.Decode(raw),
			FlightCategory: domain.EstimateFlightCategory(raw),
		})
	}
	return render(stdout, results, *asJSON)
}

func render(w io.Writer, results []service.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeText(w, res)
	}
	return nil
}

func writeText(w io.Writer, res service.Result) {
	r := res.Report
	fmt.Fprintf(w, "Weather Report: %s\n", orNotReported(r.Airport))
	fmt.Fprintf(w, "  %s\n", r.RawMETAR)
	rows := []struct{ label, value string }{
		{"Observed", r.ObservationTime},
		{"Temperature", r.Temperature},
		{"Dewpoint", r.Dewpoint},
		{"Wind", r.Wind},
		{"Visibility", r.Visibility},
		{"Weather", r.Weather},
		{"Sky Conditions", r.Clouds},
		{"Altimeter", r.Altimeter},
		{"Flight Category", res.FlightCategory},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		fmt.Fprintf(w, "  %-16s %s\n", row.label+":", row.value)
	}
	if r.Summary != "" {
		fmt.Fprintf(w, "\n  %s\n", strings.TrimSpace(r.Summary))
	}
}

func orNotReported(s string) string {
	if s == "" {
		return "(not reported)"
	}
	return s
}
