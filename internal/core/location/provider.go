package location

import (
	"context"
	"fmt"
	"sync"
	"time"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
	"allweather.app/pkg/validation"
)

const defaultTimeout = 10 * time.Second

// ProviderDependencies contains all dependencies for the location provider
type ProviderDependencies struct {
	Source            ports.LocationSource
	PermissionChecker ports.PermissionChecker
	Logger            ports.Logger
	Timeout           time.Duration
}

// Provider resolves the current position through a callback-style platform source
type Provider struct {
	source      ports.LocationSource
	permissions ports.PermissionChecker
	logger      ports.Logger
	timeout     time.Duration
}

// NewProvider creates a new location provider
func NewProvider(deps ProviderDependencies) (*Provider, error) {
	if deps.Source == nil {
		return nil, errors.NewValidationError("location source is required")
	}
	if deps.PermissionChecker == nil {
		return nil, errors.NewValidationError("permission checker is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Provider{
		source:      deps.Source,
		permissions: deps.PermissionChecker,
		logger:      deps.Logger,
		timeout:     timeout,
	}, nil
}

type locationResult struct {
	fix *ports.Coordinates
	err error
}

// GetCurrentLocation returns the last known fix. ok is false when permission is
// missing, the source reports nothing or fails, or the wait exceeds the timeout.
func (p *Provider) GetCurrentLocation(ctx context.Context) (ports.Coordinates, bool) {
	if !p.permissions.HasLocationPermission() {
		p.logger.Warn("location permission not granted", ports.F("source", p.source.GetSourceName()))
		return ports.Coordinates{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	slot := make(chan locationResult, 1)
	var once sync.Once
	complete := func(fix *ports.Coordinates, err error) {
		once.Do(func() {
			slot <- locationResult{fix: fix, err: err}
		})
	}

	go p.request(ctx, complete)

	select {
	case res := <-slot:
		return p.resolve(res)
	case <-ctx.Done():
		p.logger.Warn("location request did not complete",
			ports.F("source", p.source.GetSourceName()),
			ports.F("timeout", p.timeout.String()),
			ports.F("error", ctx.Err()))
		return ports.Coordinates{}, false
	}
}

func (p *Provider) request(ctx context.Context, complete ports.LocationCallback) {
	defer func() {
		if r := recover(); r != nil {
			complete(nil, fmt.Errorf("location source panicked: %v", r))
		}
	}()
	p.source.RequestLastLocation(ctx, complete)
}

func (p *Provider) resolve(res locationResult) (ports.Coordinates, bool) {
	source := p.source.GetSourceName()

	if res.err != nil {
		p.logger.Warn("location source failed", ports.F("source", source), ports.F("error", res.err))
		return ports.Coordinates{}, false
	}
	if res.fix == nil {
		p.logger.Info("no last known location", ports.F("source", source))
		return ports.Coordinates{}, false
	}
	if err := validation.ValidateCoordinates(res.fix.Latitude, res.fix.Longitude); err != nil {
		p.logger.Warn("location source returned invalid fix", ports.F("source", source), ports.F("error", err))
		return ports.Coordinates{}, false
	}

	p.logger.Debug("location resolved",
		ports.F("source", source),
		ports.F("lat", res.fix.Latitude),
		ports.F("lon", res.fix.Longitude))
	return *res.fix, true
}
