package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/metar-reader/internal/service"
)

const clearCalm = "METAR KJFK 251200Z 00000KT 10SM CLR 20/10 A3000"

func TestRun_ArgText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{clearCalm}, strings.NewReader(""), &out))

	text := out.String()
	assert.Contains(t, text, "Weather Report: KJFK")
	assert.Contains(t, text, "Calm winds")
	assert.Contains(t, text, "It's a clear day with a temperature of 68°F (20°C) and calm winds.")
	assert.Contains(t, text, "VFR (Visual Flight Rules)")
}

func TestRun_StdinJSON(t *testing.T) {
	stdin := strings.NewReader("# comment\n" + clearCalm + "\nMETAR EGLL 252300Z 27012KT 9999 SCT040 15/08 Q1015\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-json"}, stdin, &out))

	var results []service.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "KJFK", results[0].Report.Airport)
	assert.Equal(t, "1015 hectopascals", results[1].Report.Altimeter)
}

func TestRun_NoReports(t *testing.T) {
	err := run(nil, strings.NewReader("\n"), &bytes.Buffer{})
	require.Error(t, err)
}

func TestRun_Station(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "KJFK", r.URL.Query().Get("ids"))
		fmt.Fprintln(w, clearCalm)
	}))
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, run([]string{"-station", "kjfk", "-url", srv.URL, "-json"}, strings.NewReader(""), &out))

	var res service.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, clearCalm, res.Report.RawMETAR)
}

func TestRun_StationInvalid(t *testing.T) {
	err := run([]string{"-station", "JFK"}, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 letters")
}
