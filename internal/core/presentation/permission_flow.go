package presentation

import (
	"context"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

// ErrPermissionDenied is returned when the host refuses location permission
var ErrPermissionDenied = errors.NewPermissionDeniedError("location permission denied")

// WeatherLoader triggers a weather load
type WeatherLoader interface {
	LoadWeather()
}

// PermissionFlowDependencies contains all dependencies for the permission flow
type PermissionFlowDependencies struct {
	Checker   ports.PermissionChecker
	Requester ports.PermissionRequester
	Loader    WeatherLoader
	Logger    ports.Logger
}

// PermissionFlow gates every load behind the location permission
type PermissionFlow struct {
	checker   ports.PermissionChecker
	requester ports.PermissionRequester
	loader    WeatherLoader
	logger    ports.Logger
}

// NewPermissionFlow creates a new permission flow
func NewPermissionFlow(deps PermissionFlowDependencies) (*PermissionFlow, error) {
	if deps.Checker == nil {
		return nil, errors.NewValidationError("permission checker is required")
	}
	if deps.Requester == nil {
		return nil, errors.NewValidationError("permission requester is required")
	}
	if deps.Loader == nil {
		return nil, errors.NewValidationError("weather loader is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &PermissionFlow{
		checker:   deps.Checker,
		requester: deps.Requester,
		loader:    deps.Loader,
		logger:    deps.Logger,
	}, nil
}

// CheckAndLoad starts a load when permission is held or granted on request.
// A denial returns ErrPermissionDenied and leaves the weather state untouched.
func (f *PermissionFlow) CheckAndLoad(ctx context.Context) error {
	if f.checker.HasLocationPermission() {
		f.loader.LoadWeather()
		return nil
	}

	f.logger.Info("Requesting location permission")
	grant, err := f.requester.RequestLocationPermission(ctx)
	if err != nil {
		f.logger.Warn("Location permission request failed", ports.F("error", err))
		return errors.Wrap(errors.PermissionDeniedError, "location permission request failed", err)
	}

	if !grant.Granted() {
		f.logger.Warn("Location permission denied",
			ports.F("fine", grant.Fine),
			ports.F("coarse", grant.Coarse))
		return ErrPermissionDenied
	}

	f.logger.Info("Location permission granted",
		ports.F("fine", grant.Fine),
		ports.F("coarse", grant.Coarse))
	f.loader.LoadWeather()
	return nil
}
