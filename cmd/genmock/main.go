// Command genmock decodes a file of raw METAR reports into a golden JSON
// fixture. It uses the actual domain package so the fixture matches what the
// service and the relay produce.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -in testdata/metars.txt \
//	  -out testdata/golden.json
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/couchcryptid/metar-reader/internal/fixture"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	in := flag.String("in", "testdata/metars.txt", "file of raw reports, one per line")
	out := flag.String("out", "testdata/golden.json", "output path for the golden fixture")
	flag.Parse()

	reports, err := fixture.ReadReports(*in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *in, err)
	}
	if len(reports) == 0 {
		return fmt.Errorf("no reports in %s", *in)
	}

	entries := make([]fixture.Entry, 0, len(reports))
	for _, raw := range reports {
		entries = append(entries, fixture.NewEntry(raw))
	}

	if err := fixture.WriteGolden(*out, entries); err != nil {
		return fmt.Errorf("writing golden fixture: %w", err)
	}
	log.Printf("wrote %d entries: %s", len(entries), *out)

	printStats(entries)
	return nil
}

// printStats reports field coverage so test assertions can be updated.
func printStats(entries []fixture.Entry) {
	categories := map[string]int{}
	missing := map[string]int{}
	for i := range entries {
		e := &entries[i]
		cat := e.FlightCategory
		if cat == "" {
			cat = "(none)"
		}
		categories[cat]++

		fields := map[string]string{
			"observation_time": e.Report.ObservationTime,
			"wind":             e.Report.Wind,
			"visibility":       e.Report.Visibility,
			"clouds":           e.Report.Clouds,
			"temperature":      e.Report.Temperature,
			"altimeter":        e.Report.Altimeter,
		}
		for name, v := range fields {
			if v == "" {
				missing[name]++
			}
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(entries))
	for _, k := range sortedKeys(categories) {
		fmt.Printf("  %-60s %d\n", k, categories[k])
	}
	if len(missing) > 0 {
		fmt.Println("Missing fields:")
		for _, k := range sortedKeys(missing) {
			fmt.Printf("  %-20s %d\n", k, missing[k])
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
