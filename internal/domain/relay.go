package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyReport is returned for relay messages whose value is blank.
var ErrEmptyReport = errors.New("empty METAR message")

// ParseRawEvent decodes the METAR text carried in a relay message.
func ParseRawEvent(raw RawEvent) (DecodedReport, error) {
	text := strings.TrimSpace(string(raw.Value))
	if text == "" {
		return DecodedReport{}, fmt.Errorf("parse raw event: %w", ErrEmptyReport)
	}
	return Decode(text), nil
}

// SerializeReport marshals a decoded report for the relay sink topic, keyed by
// station so reports for one airport stay on one partition.
func SerializeReport(report DecodedReport) (OutputEvent, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize decoded report: %w", err)
	}
	return OutputEvent{
		Key:   []byte(report.Airport),
		Value: data,
		Headers: map[string]string{
			"station":      report.Airport,
			"processed_at": clock.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}
