package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allweather.app/internal/ports"
)

func moscowSnapshot() *Snapshot {
	return &Snapshot{
		ID:          ports.SnapshotID,
		CityName:    "Moscow",
		Temperature: 5.3,
		FeelsLike:   2.1,
		Pressure:    1013,
		Humidity:    80,
		WindSpeed:   3.5,
		WindDegree:  200,
		Conditions:  []ports.Condition{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
		Timestamp:   1700000000,
		LastUpdated: 1700000000123,
	}
}

func TestSnapshot_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Snapshot)
		wantErr string
	}{
		{name: "ValidSnapshot", mutate: func(s *Snapshot) {}},
		{name: "NoConditions", mutate: func(s *Snapshot) { s.Conditions = nil }},
		{name: "EmptyCity", mutate: func(s *Snapshot) { s.CityName = "" }},
		{
			name:    "BelowAbsoluteZero",
			mutate:  func(s *Snapshot) { s.Temperature = -300 },
			wantErr: "temperature cannot be below absolute zero",
		},
		{
			name:    "HumidityOutOfRange",
			mutate:  func(s *Snapshot) { s.Humidity = 101 },
			wantErr: "humidity must be between 0 and 100",
		},
		{
			name:    "NegativePressure",
			mutate:  func(s *Snapshot) { s.Pressure = -1 },
			wantErr: "pressure cannot be negative",
		},
		{
			name:    "NegativeWind",
			mutate:  func(s *Snapshot) { s.WindSpeed = -0.5 },
			wantErr: "wind speed cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := moscowSnapshot()
			tt.mutate(s)

			err := s.IsValid()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestSnapshot_PrimaryCondition(t *testing.T) {
	s := moscowSnapshot()
	assert.Equal(t, "clear sky", s.PrimaryDescription())
	assert.Equal(t, "01d", s.PrimaryIcon())

	s.Conditions = nil
	assert.Equal(t, "", s.PrimaryDescription())
	assert.Equal(t, "", s.PrimaryIcon())
}

func TestSnapshot_Times(t *testing.T) {
	s := moscowSnapshot()
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), s.ObservedAt())
	assert.Equal(t, time.UnixMilli(1700000000123).UTC(), s.CapturedAt())
}

func TestSnapshot_PortsRoundTrip(t *testing.T) {
	s := moscowSnapshot()

	converted := SnapshotFromPorts(s.ToPorts())

	assert.Equal(t, s, converted)
	assert.Nil(t, SnapshotFromPorts(nil))
}

func TestSnapshot_ToPortsDefaultsID(t *testing.T) {
	s := moscowSnapshot()
	s.ID = ""

	assert.Equal(t, ports.SnapshotID, s.ToPorts().ID)
}

func TestSnapshot_ToPortsCopiesConditions(t *testing.T) {
	s := moscowSnapshot()
	data := s.ToPorts()

	data.Conditions[0].Description = "changed"

	assert.Equal(t, "clear sky", s.PrimaryDescription())
}

func TestSnapshot_String(t *testing.T) {
	assert.Equal(t, "Moscow: 5.3°C, 80% humidity, clear sky", moscowSnapshot().String())
}

func TestNotificationFor(t *testing.T) {
	msg := NotificationFor(moscowSnapshot())
	assert.Equal(t, "Weather in Moscow", msg.Title)
	assert.Equal(t, "clear sky, 5°C", msg.Text)

	s := moscowSnapshot()
	s.Conditions = nil
	s.Temperature = -3.7
	msg = NotificationFor(s)
	assert.Equal(t, "Cloudy, -3°C", msg.Text)
}
