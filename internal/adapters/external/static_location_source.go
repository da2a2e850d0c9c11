package external

import (
	"context"
	"sync"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
	"allweather.app/pkg/validation"
)

// StaticLocationSource serves a last-known fix that is configured or pushed by the host
type StaticLocationSource struct {
	mu  sync.RWMutex
	fix *ports.Coordinates
}

// NewStaticLocationSource creates a source; nil coordinates mean no fix yet
func NewStaticLocationSource(lat, lon *float64) *StaticLocationSource {
	source := &StaticLocationSource{}
	if lat != nil && lon != nil {
		source.fix = &ports.Coordinates{Latitude: *lat, Longitude: *lon}
	}
	return source
}

// RequestLastLocation completes the callback synchronously with the stored fix
func (s *StaticLocationSource) RequestLastLocation(ctx context.Context, onResult ports.LocationCallback) {
	if err := ctx.Err(); err != nil {
		onResult(nil, err)
		return
	}
	onResult(s.LastLocation(), nil)
}

// LastLocation returns a copy of the stored fix, or nil
func (s *StaticLocationSource) LastLocation() *ports.Coordinates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fix == nil {
		return nil
	}
	fix := *s.fix
	return &fix
}

// SetLocation replaces the stored fix
func (s *StaticLocationSource) SetLocation(lat, lon float64) error {
	if err := validation.ValidateCoordinates(lat, lon); err != nil {
		return errors.NewValidationError("invalid coordinates: " + err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fix = &ports.Coordinates{Latitude: lat, Longitude: lon}
	return nil
}

// GetSourceName returns the name of this location source
func (s *StaticLocationSource) GetSourceName() string {
	return "static"
}
