package infrastructure

import (
	"context"

	"allweather.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// Pinger is anything that can verify its backing connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHealthChecker reports a component healthy when its Ping succeeds
type PingHealthChecker struct {
	component string
	pinger    Pinger
}

// NewPingHealthChecker creates a health checker for a database or cache connection
func NewPingHealthChecker(component string, pinger Pinger) *PingHealthChecker {
	return &PingHealthChecker{component: component, pinger: pinger}
}

func (p *PingHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: p.component,
		Details:   make(map[string]interface{}),
	}

	if p.pinger == nil {
		status.Status = statusUnhealthy
		status.Error = p.component + " is not configured"
		return status
	}

	if err := p.pinger.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		status.Details["connected"] = false
		return status
	}

	status.Status = statusHealthy
	status.Details["connected"] = true
	return status
}

// BreakerReporter exposes a weather client's circuit breaker state
type BreakerReporter interface {
	GetProviderName() string
	BreakerState() string
}

// WeatherAPIHealthChecker reports the weather API through its circuit breaker
type WeatherAPIHealthChecker struct {
	client BreakerReporter
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(client BreakerReporter) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{client: client}
}

// Check maps breaker states: closed is healthy, half-open degraded, open unhealthy
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Details:   make(map[string]interface{}),
	}

	if w.client == nil {
		status.Status = statusUnhealthy
		status.Error = "weather client is not available"
		return status
	}

	state := w.client.BreakerState()
	status.Details["provider"] = w.client.GetProviderName()
	status.Details["breaker"] = state

	switch state {
	case "closed":
		status.Status = statusHealthy
	case "half-open":
		status.Status = statusDegraded
	default:
		status.Status = statusUnhealthy
		status.Error = "weather service temporarily unavailable"
	}

	return status
}

// StatsReporter exposes cache hit/miss counters
type StatsReporter interface {
	GetStats() ports.CacheStats
}

// CacheStatsHealthChecker reports key/value cache statistics
type CacheStatsHealthChecker struct {
	cacheType string
	stats     StatsReporter
}

func NewCacheStatsHealthChecker(cacheType string, stats StatsReporter) *CacheStatsHealthChecker {
	return &CacheStatsHealthChecker{cacheType: cacheType, stats: stats}
}

func (c *CacheStatsHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	stats := c.stats.GetStats()
	return ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type":      c.cacheType,
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
		},
	}
}

// PermissionHealthChecker reports whether the host currently holds location permission
type PermissionHealthChecker struct {
	state *PermissionStateAdapter
}

func NewPermissionHealthChecker(state *PermissionStateAdapter) *PermissionHealthChecker {
	return &PermissionHealthChecker{state: state}
}

func (p *PermissionHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	grant := p.state.Grant()
	status := ports.HealthStatus{
		Component: "locationPermission",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"fine":   grant.Fine,
			"coarse": grant.Coarse,
		},
	}
	if !grant.Granted() {
		status.Status = statusDegraded
		status.Error = "location permission not granted"
	}
	return status
}
