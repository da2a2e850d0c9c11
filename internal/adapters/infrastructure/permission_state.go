package infrastructure

import (
	"context"
	"sync"

	"allweather.app/internal/ports"
)

// PermissionPolicy decides how a permission request is answered
type PermissionPolicy string

const (
	PermissionPolicyGrant PermissionPolicy = "grant"
	PermissionPolicyDeny  PermissionPolicy = "deny"
)

// PermissionStateAdapter holds the host's runtime location permissions.
// A server has no interactive prompt, so requests are answered by policy.
type PermissionStateAdapter struct {
	mu     sync.RWMutex
	grant  ports.PermissionGrant
	policy PermissionPolicy
	logger ports.Logger
}

// NewPermissionStateAdapter creates the permission state with an initial grant
func NewPermissionStateAdapter(initial ports.PermissionGrant, policy PermissionPolicy, logger ports.Logger) *PermissionStateAdapter {
	return &PermissionStateAdapter{
		grant:  initial,
		policy: policy,
		logger: logger,
	}
}

func (p *PermissionStateAdapter) HasLocationPermission() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.grant.Granted()
}

// RequestLocationPermission answers the prompt by policy and records the result
func (p *PermissionStateAdapter) RequestLocationPermission(ctx context.Context) (ports.PermissionGrant, error) {
	if err := ctx.Err(); err != nil {
		return ports.PermissionGrant{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.policy == PermissionPolicyGrant {
		p.grant = ports.PermissionGrant{Fine: true, Coarse: true}
	}

	p.logger.Info("Location permission requested",
		ports.F("policy", string(p.policy)),
		ports.F("fine", p.grant.Fine),
		ports.F("coarse", p.grant.Coarse))

	return p.grant, nil
}

// Grant returns the current permission state
func (p *PermissionStateAdapter) Grant() ports.PermissionGrant {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.grant
}

// SetGrant replaces the permission state, e.g. when the user revokes access
func (p *PermissionStateAdapter) SetGrant(grant ports.PermissionGrant) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grant = grant
}
