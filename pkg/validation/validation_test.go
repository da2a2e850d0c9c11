package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
		errMsg  string
	}{
		{name: "Moscow", lat: 55.75, lon: 37.62},
		{name: "NorthPole", lat: 90, lon: 0},
		{name: "SouthPole", lat: -90, lon: 0},
		{name: "DateLineEast", lat: 0, lon: 180},
		{name: "DateLineWest", lat: 0, lon: -180},
		{name: "LatitudeTooHigh", lat: 90.01, lon: 0, wantErr: true, errMsg: "latitude out of range"},
		{name: "LatitudeTooLow", lat: -91, lon: 0, wantErr: true, errMsg: "latitude out of range"},
		{name: "LongitudeTooHigh", lat: 0, lon: 181, wantErr: true, errMsg: "longitude out of range"},
		{name: "BothOutOfRange", lat: 100, lon: -200, wantErr: true, errMsg: "latitude out of range"},
		{name: "NaN", lat: math.NaN(), lon: 0, wantErr: true, errMsg: "finite"},
		{name: "Infinity", lat: 0, lon: math.Inf(1), wantErr: true, errMsg: "finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.lat, tt.lon)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, IsNotEmpty("ru"))
	assert.False(t, IsNotEmpty("   "))
	assert.False(t, IsNotEmpty(""))
}
