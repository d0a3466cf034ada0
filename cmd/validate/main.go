// Command validate re-decodes a golden fixture and checks it for drift and
// for the invariants every decoded report must satisfy.
//
// Usage:
//
//	go run ./cmd/validate -golden testdata/golden.json
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/couchcryptid/metar-reader/internal/domain"
	"github.com/couchcryptid/metar-reader/internal/fixture"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	golden := flag.String("golden", "testdata/golden.json", "path to the golden fixture")
	flag.Parse()

	os.Exit(run(*golden))
}

func run(goldenPath string) int {
	fmt.Println("=== METAR Decode Validation ===")
	fmt.Println()

	entries, err := fixture.ReadGolden(goldenPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateDrift(entries),
		validateInvariants(entries),
		validateCategories(entries),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Entries: %d\n", len(entries))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// validateDrift re-decodes every raw report and diffs it against the fixture.
func validateDrift(entries []fixture.Entry) *phase {
	p := &phase{name: "Decode matches golden fixture"}
	for i, e := range entries {
		if diff := cmp.Diff(e.Report, domain.Decode(e.Raw)); diff != "" {
			p.errorf("entry %d (%s): (-golden +current)\n%s", i, e.Report.Airport, diff)
		}
	}
	return p
}

// validateInvariants checks properties that hold for any decoded report.
func validateInvariants(entries []fixture.Entry) *phase {
	p := &phase{name: "Decoded report invariants"}
	for i, e := range entries {
		r := domain.Decode(e.Raw)

		if r.RawMETAR != strings.TrimSpace(e.Raw) {
			p.errorf("entry %d: raw_metar %q is not the trimmed input", i, r.RawMETAR)
		}
		if r != domain.Decode(r.RawMETAR) {
			p.errorf("entry %d: decoding raw_metar again gives a different report", i)
		}
		if r.FlightCategory != "" {
			p.errorf("entry %d: decode populated flight_category", i)
		}
		if strings.TrimSpace(e.Raw) == "" {
			continue
		}
		if r.Airport == "" {
			p.errorf("entry %d: missing airport", i)
		}
		if !strings.HasSuffix(r.Summary, ".") {
			p.errorf("entry %d (%s): summary %q does not end with a period", i, r.Airport, r.Summary)
		}
		if (r.Temperature == "") != (r.Dewpoint == "") {
			p.errorf("entry %d (%s): temperature and dewpoint must be set together", i, r.Airport)
		}
		if r.Weather != "" && !strings.HasPrefix(r.Weather, "Weather: ") {
			p.errorf("entry %d (%s): weather %q lacks prefix", i, r.Airport, r.Weather)
		}
	}
	return p
}

// validateCategories checks the stored flight category estimates.
func validateCategories(entries []fixture.Entry) *phase {
	p := &phase{name: "Flight category estimates"}
	valid := map[string]bool{
		"":                  true,
		domain.CategoryLIFR: true,
		domain.CategoryIFR:  true,
		domain.CategoryMVFR: true,
		domain.CategoryVFR:  true,
	}
	for i, e := range entries {
		if !valid[e.FlightCategory] {
			p.errorf("entry %d: unknown flight category %q", i, e.FlightCategory)
		}
		if got := domain.EstimateFlightCategory(e.Raw); got != e.FlightCategory {
			p.errorf("entry %d (%s): category %q, golden %q", i, e.Report.Airport, got, e.FlightCategory)
		}
	}
	return p
}
