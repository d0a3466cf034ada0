package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightCategory(t *testing.T) {
	tests := []struct {
		name       string
		visibility float64
		ceiling    int
		expected   string
	}{
		{"clear", 10, 5000, CategoryVFR},
		{"low ceiling", 10, 400, CategoryLIFR},
		{"low visibility", 0.5, 5000, CategoryLIFR},
		{"ifr ceiling", 10, 800, CategoryIFR},
		{"ifr visibility", 2, 5000, CategoryIFR},
		{"mvfr ceiling boundary", 10, 3000, CategoryMVFR},
		{"mvfr visibility boundary", 5, 5000, CategoryMVFR},
		{"ifr boundary is mvfr", 3, 1000, CategoryMVFR},
		{"vfr just above", 5.1, 3001, CategoryVFR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FlightCategory(tt.visibility, tt.ceiling))
		})
	}
}

func TestMeasureConditions(t *testing.T) {
	c := MeasureConditions(mockMETARs["rain"])
	assert.True(t, c.HasVisibility)
	assert.Equal(t, 3.0, c.VisibilityMiles)
	assert.True(t, c.HasCeiling)
	assert.Equal(t, 2000, c.CeilingFeet)

	c = MeasureConditions(mockMETARs["multi_cloud"])
	assert.Equal(t, 15000, c.CeilingFeet, "FEW and SCT layers are not a ceiling")

	c = MeasureConditions(mockMETARs["international"])
	assert.InDelta(t, 6.21, c.VisibilityMiles, 0.01)
	assert.False(t, c.HasCeiling)

	c = MeasureConditions(mockMETARs["fog"])
	assert.Equal(t, 0.25, c.VisibilityMiles)
	assert.Equal(t, 200, c.CeilingFeet)
}

func TestEstimateFlightCategory(t *testing.T) {
	assert.Equal(t, CategoryVFR, EstimateFlightCategory(mockMETARs["clear_calm"]))
	assert.Equal(t, CategoryMVFR, EstimateFlightCategory(mockMETARs["rain"]))
	assert.Equal(t, CategoryLIFR, EstimateFlightCategory(mockMETARs["heavy_snow"]))
	assert.Equal(t, CategoryIFR, EstimateFlightCategory(mockMETARs["thunderstorm"]))
	assert.Equal(t, CategoryVFR, EstimateFlightCategory(mockMETARs["international"]))
	assert.Empty(t, EstimateFlightCategory("METAR KJFK 251200Z"))
	assert.Empty(t, EstimateFlightCategory(""))
}
