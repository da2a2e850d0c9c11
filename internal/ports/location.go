package ports

import "context"

// LocationCallback receives the outcome of a last-known-location lookup.
// A nil fix with a nil error means the platform has no location.
type LocationCallback func(fix *Coordinates, err error)

// LocationSource is the platform location API. Implementations complete the
// callback at most once, possibly from another goroutine.
type LocationSource interface {
	RequestLastLocation(ctx context.Context, onResult LocationCallback)
	GetSourceName() string
}

// PermissionGrant holds the runtime location permissions of the host
type PermissionGrant struct {
	Fine   bool `json:"fine"`
	Coarse bool `json:"coarse"`
}

// Granted reports whether either fine or coarse location is allowed
func (g PermissionGrant) Granted() bool {
	return g.Fine || g.Coarse
}

// PermissionChecker reports the current permission state
type PermissionChecker interface {
	HasLocationPermission() bool
}

// PermissionRequester asks the host to grant location permission
type PermissionRequester interface {
	RequestLocationPermission(ctx context.Context) (PermissionGrant, error)
}

// LocationProvider yields at most one fix; ok is false when location is unavailable
type LocationProvider interface {
	GetCurrentLocation(ctx context.Context) (Coordinates, bool)
}
