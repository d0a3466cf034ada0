package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseObservationTime(t *testing.T) {
	assert.Equal(t, "Day 25 at 12:00 UTC", ParseObservationTime("251200Z"))
	assert.Equal(t, "Day 01 at 09:53 UTC", ParseObservationTime("010953Z"))
	assert.Empty(t, ParseObservationTime("2512Z"))
}

func TestParseWind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"calm", "00000KT", "Calm winds"},
		{"calm with direction", "27000KT", "Calm winds"},
		{"variable calm", "VRB00KT", "Calm winds"},
		{"standard", "18010KT", "Wind from the south at 12 mph"},
		{"gusts", "27015G25KT", "Wind from the west at 17 mph, gusting to 29 mph"},
		{"zero gust ignored", "27015G00KT", "Wind from the west at 17 mph"},
		{"variable", "VRB05KT", "Variable wind at 6 mph"},
		{"strong northerly", "35030KT", "Wind from the north at 35 mph"},
		{"three digit speed", "180100KT", "Wind from the south at 115 mph"},
		{"direction out of range", "36020KT", "Wind from the variable at 23 mph"},
		{"empty", "", "Wind information not available"},
		{"unrecognized", "18010MPS", "Wind: 18010MPS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseWind(tt.input))
		})
	}
}

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"excellent", "10SM", "Visibility 10 miles or more (excellent)"},
		{"above ten", "15SM", "Visibility 10 miles or more (excellent)"},
		{"good boundary", "6SM", "Visibility 6 miles (good)"},
		{"moderate boundary", "3SM", "Visibility 3 miles (moderate)"},
		{"poor", "1SM", "Visibility 1 miles (poor)"},
		{"half mile", "1/2SM", "Visibility 0.5 miles (reduced)"},
		{"quarter mile", "1/4SM", "Visibility 0.25 miles (reduced)"},
		{"mixed fraction", "1 1/2SM", "Visibility 1.5 miles (reduced)"},
		{"whole fraction", "4/4SM", "Visibility 1.0 miles (reduced)"},
		{"meters", "9999", "Visibility 6.2 miles"},
		{"meters low", "0800", "Visibility 0.5 miles"},
		{"zero denominator", "1/0SM", "Visibility: 1/0SM"},
		{"empty", "", ""},
		{"unrecognized", "P6SM", "Visibility: P6SM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseVisibility(tt.input))
		})
	}
}

func TestParseWeather(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"rain", []string{"RA"}, "Weather: rain"},
		{"light rain", []string{"-RA"}, "Weather: light rain"},
		{"heavy snow", []string{"+SN"}, "Weather: heavy snow"},
		{"thunderstorm rain", []string{"TSRA"}, "Weather: thunderstorm rain"},
		{"freezing rain", []string{"-FZRA"}, "Weather: light freezing rain"},
		{"vicinity fog", []string{"VCFG"}, "Weather: in the vicinity fog"},
		{"multiple tokens", []string{"BR", "HZ"}, "Weather: mist, haze"},
		{"unknown codes dropped", []string{"RAXX"}, "Weather: rain"},
		{"nothing recognized", []string{"XX"}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseWeather(tt.input))
		})
	}
}

func TestParseClouds(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"clear", []string{"CLR"}, "clear skies"},
		{"sky clear", []string{"SKC"}, "clear skies"},
		{"clear wins over layers", []string{"FEW030", "CLR"}, "clear skies"},
		{"few", []string{"FEW030"}, "Few clouds at 3,000 feet"},
		{"scattered", []string{"SCT050"}, "Scattered clouds at 5,000 feet"},
		{"broken", []string{"BKN100"}, "Broken clouds at 10,000 feet"},
		{"overcast", []string{"OVC020"}, "Overcast at 2,000 feet"},
		{"vertical visibility", []string{"VV002"}, "Vertical visibility at 200 feet"},
		{"cumulonimbus", []string{"BKN030CB"}, "Broken clouds at 3,000 feet (cumulonimbus - thunderstorm clouds)"},
		{"towering cumulus", []string{"SCT020TCU"}, "Scattered clouds at 2,000 feet (towering cumulus)"},
		{
			"multiple layers",
			[]string{"FEW030", "SCT080", "BKN150", "OVC250"},
			"Few clouds at 3,000 feet, scattered clouds at 8,000 feet, broken clouds at 15,000 feet, overcast at 25,000 feet",
		},
		{"no height", []string{"FEW"}, ""},
		{"not reported", nil, "Sky conditions not reported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseClouds(tt.input))
		})
	}
}

func TestParseTempDewpoint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		temp     string
		dewpoint string
	}{
		{"positive", "20/10", "68°F (20°C)", "50°F (10°C)"},
		{"negative", "M05/M10", "23°F (-5°C)", "14°F (-10°C)"},
		{"mixed", "05/M02", "41°F (5°C)", "28°F (-2°C)"},
		{"minus zero", "M00/M00", "32°F (0°C)", "32°F (0°C)"},
		{"unparseable", "2/10", "", ""},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temp, dew := ParseTempDewpoint(tt.input)
			assert.Equal(t, tt.temp, temp)
			assert.Equal(t, tt.dewpoint, dew)
		})
	}
}

func TestParseAltimeter(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"A3000", "30.00 inches of mercury"},
		{"A2950", "29.50 inches of mercury"},
		{"A2992", "29.92 inches of mercury"},
		{"Q1015", "1015 hectopascals"},
		{"Q0998", "998 hectopascals"},
		{"SLP123", "SLP123"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseAltimeter(tt.input), "input=%q", tt.input)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Few clouds", capitalize("few clouds"))
	assert.Equal(t, "Overcast", capitalize("OVERCAST"))
	assert.Equal(t, "", capitalize(""))
}
