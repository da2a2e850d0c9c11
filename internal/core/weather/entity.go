package weather

import (
	"fmt"
	"time"

	"allweather.app/internal/ports"
)

const absoluteZeroCelsius = -273.15

// Snapshot represents one complete weather observation for the current location
type Snapshot struct {
	ID          string
	CityName    string
	Temperature float64
	FeelsLike   float64
	Pressure    int
	Humidity    int
	WindSpeed   float64
	WindDegree  int
	Conditions  []ports.Condition
	Timestamp   int64
	LastUpdated int64
}

// PrimaryDescription returns the first condition's description, or "" when there is none
func (s *Snapshot) PrimaryDescription() string {
	if len(s.Conditions) == 0 {
		return ""
	}
	return s.Conditions[0].Description
}

// PrimaryIcon returns the first condition's icon token, or "" when there is none
func (s *Snapshot) PrimaryIcon() string {
	if len(s.Conditions) == 0 {
		return ""
	}
	return s.Conditions[0].Icon
}

// ObservedAt returns the provider observation time
func (s *Snapshot) ObservedAt() time.Time {
	return time.Unix(s.Timestamp, 0).UTC()
}

// CapturedAt returns the local capture time
func (s *Snapshot) CapturedAt() time.Time {
	return time.UnixMilli(s.LastUpdated).UTC()
}

// IsValid validates weather data
func (s *Snapshot) IsValid() error {
	if s.Temperature < absoluteZeroCelsius || s.FeelsLike < absoluteZeroCelsius {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if s.Humidity < 0 || s.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if s.Pressure < 0 {
		return fmt.Errorf("pressure cannot be negative")
	}
	if s.WindSpeed < 0 {
		return fmt.Errorf("wind speed cannot be negative")
	}
	return nil
}

// String returns a string representation of the weather
func (s *Snapshot) String() string {
	return fmt.Sprintf("%s: %.1f°C, %d%% humidity, %s",
		s.CityName, s.Temperature, s.Humidity, s.PrimaryDescription())
}

// SnapshotFromPorts converts a port-level snapshot into the domain type
func SnapshotFromPorts(data *ports.WeatherSnapshot) *Snapshot {
	if data == nil {
		return nil
	}
	conditions := make([]ports.Condition, len(data.Conditions))
	copy(conditions, data.Conditions)

	return &Snapshot{
		ID:          data.ID,
		CityName:    data.CityName,
		Temperature: data.Temperature,
		FeelsLike:   data.FeelsLike,
		Pressure:    data.Pressure,
		Humidity:    data.Humidity,
		WindSpeed:   data.WindSpeed,
		WindDegree:  data.WindDegree,
		Conditions:  conditions,
		Timestamp:   data.Timestamp,
		LastUpdated: data.LastUpdated,
	}
}

// ToPorts converts the domain snapshot into its port-level representation
func (s *Snapshot) ToPorts() *ports.WeatherSnapshot {
	conditions := make([]ports.Condition, len(s.Conditions))
	copy(conditions, s.Conditions)

	id := s.ID
	if id == "" {
		id = ports.SnapshotID
	}

	return &ports.WeatherSnapshot{
		ID:          id,
		CityName:    s.CityName,
		Temperature: s.Temperature,
		FeelsLike:   s.FeelsLike,
		Pressure:    s.Pressure,
		Humidity:    s.Humidity,
		WindSpeed:   s.WindSpeed,
		WindDegree:  s.WindDegree,
		Conditions:  conditions,
		Timestamp:   s.Timestamp,
		LastUpdated: s.LastUpdated,
	}
}

// NotificationFor builds the one-line system notification for a snapshot
func NotificationFor(s *Snapshot) ports.NotificationMessage {
	description := s.PrimaryDescription()
	if description == "" {
		description = "Cloudy"
	}
	return ports.NotificationMessage{
		Title: fmt.Sprintf("Weather in %s", s.CityName),
		Text:  fmt.Sprintf("%s, %d°C", description, int(s.Temperature)),
	}
}
