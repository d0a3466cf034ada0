// Package fixture reads sample report files and golden decode fixtures.
package fixture

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/metar-reader/internal/domain"
)

// Entry is one golden fixture record: a raw report with its expected decode.
type Entry struct {
	Raw            string               `json:"raw"`
	Report         domain.DecodedReport `json:"report"`
	FlightCategory string               `json:"flight_category"`
}

// NewEntry decodes raw into a golden entry.
func NewEntry(raw string) Entry {
	return Entry{
		Raw:            raw,
		Report:         domain.Decode(raw),
		FlightCategory: domain.EstimateFlightCategory(raw),
	}
}

// ParseReports returns one report per non-blank line, skipping # comments.
func ParseReports(r io.Reader) ([]string, error) {
	var reports []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		reports = append(reports, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}
	return reports, nil
}

// ReadReports loads a report file from disk.
func ReadReports(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	return ParseReports(f)
}

// ReadGolden loads a golden fixture written by WriteGolden.
func ReadGolden(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read golden: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode golden: %w", err)
	}
	return entries, nil
}

// WriteGolden writes entries as indented JSON, creating parent directories.
func WriteGolden(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
