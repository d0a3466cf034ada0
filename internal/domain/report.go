package domain

import (
	"context"
	"time"
)

// DecodedReport is the plain-English rendering of a single METAR.
// Every field except RawMETAR is derived; fields whose group is absent from
// the report are left empty ("not reported" rather than an error).
type DecodedReport struct {
	Airport         string `json:"airport"`
	ObservationTime string `json:"observation_time"`
	Wind            string `json:"wind"`
	Visibility      string `json:"visibility"`
	Weather         string `json:"weather"`
	Clouds          string `json:"clouds"`
	Temperature     string `json:"temperature"`
	Dewpoint        string `json:"dewpoint"`
	Altimeter       string `json:"altimeter"`
	FlightCategory  string `json:"flight_category"`
	RawMETAR        string `json:"raw_metar"`
	Summary         string `json:"summary"`
}

// Conditions holds the numeric visibility and ceiling extracted from a raw
// report. A zero Has* flag means the group was not reported.
type Conditions struct {
	VisibilityMiles float64
	HasVisibility   bool
	CeilingFeet     int
	HasCeiling      bool
}

// RawEvent represents an unprocessed message from the relay source topic.
// Value carries the raw METAR text.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the relay sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
