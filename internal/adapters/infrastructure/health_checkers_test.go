package infrastructure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allweather.app/internal/config"
	"allweather.app/internal/ports"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type fakeBreaker struct{ state string }

func (f fakeBreaker) GetProviderName() string { return "openweathermap" }
func (f fakeBreaker) BreakerState() string    { return f.state }

type fakeStats struct{ stats ports.CacheStats }

func (f fakeStats) GetStats() ports.CacheStats { return f.stats }

type slowChecker struct{}

func (slowChecker) Check(ctx context.Context) ports.HealthStatus {
	<-ctx.Done()
	return ports.HealthStatus{Component: "slow", Status: statusUnhealthy, Error: ctx.Err().Error()}
}

func TestPingHealthChecker(t *testing.T) {
	ok := NewPingHealthChecker("database", pingFunc(func(ctx context.Context) error { return nil })).Check(context.Background())
	assert.Equal(t, statusHealthy, ok.Status)
	assert.Equal(t, true, ok.Details["connected"])

	failed := NewPingHealthChecker("redis", pingFunc(func(ctx context.Context) error { return errors.New("connection refused") })).Check(context.Background())
	assert.Equal(t, statusUnhealthy, failed.Status)
	assert.Equal(t, "redis", failed.Component)
	assert.Equal(t, "connection refused", failed.Error)

	missing := NewPingHealthChecker("database", nil).Check(context.Background())
	assert.Equal(t, statusUnhealthy, missing.Status)
}

func TestWeatherAPIHealthChecker(t *testing.T) {
	tests := []struct {
		state    string
		expected string
	}{
		{"closed", statusHealthy},
		{"half-open", statusDegraded},
		{"open", statusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			status := NewWeatherAPIHealthChecker(fakeBreaker{state: tt.state}).Check(context.Background())
			assert.Equal(t, tt.expected, status.Status)
			assert.Equal(t, tt.state, status.Details["breaker"])
			assert.Equal(t, "openweathermap", status.Details["provider"])
		})
	}

	assert.Equal(t, statusUnhealthy, NewWeatherAPIHealthChecker(nil).Check(context.Background()).Status)
}

func TestCacheStatsHealthChecker(t *testing.T) {
	status := NewCacheStatsHealthChecker("memory", fakeStats{ports.CacheStats{Hits: 3, Misses: 1, TotalOps: 4, HitRatio: 0.75}}).
		Check(context.Background())

	assert.Equal(t, statusHealthy, status.Status)
	assert.Equal(t, "memory", status.Details["type"])
	assert.Equal(t, int64(3), status.Details["hits"])
	assert.Equal(t, 0.75, status.Details["hit_ratio"])
}

func TestPermissionHealthChecker(t *testing.T) {
	state := NewPermissionStateAdapter(ports.PermissionGrant{}, PermissionPolicyDeny, quietLogger(t))
	checker := NewPermissionHealthChecker(state)

	assert.Equal(t, statusDegraded, checker.Check(context.Background()).Status)

	state.SetGrant(ports.PermissionGrant{Coarse: true})
	status := checker.Check(context.Background())
	assert.Equal(t, statusHealthy, status.Status)
	assert.Equal(t, true, status.Details["coarse"])
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	cfg := &config.Config{
		Weather:      config.WeatherConfig{Locale: "ru", RequestTimeoutSeconds: 15, SingleFlight: true},
		Location:     config.LocationConfig{Source: config.LocationSourceStatic, TimeoutSeconds: 10},
		Cache:        config.CacheConfig{Type: config.CacheTypeDatabase},
		Notification: config.NotificationConfig{Channel: "log"},
	}

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		Checkers: map[string]ports.HealthChecker{
			"database":   NewPingHealthChecker("database", pingFunc(func(ctx context.Context) error { return nil })),
			"weatherAPI": NewWeatherAPIHealthChecker(fakeBreaker{state: "closed"}),
			"skipped":    nil,
		},
		ConfigProvider: NewConfigProviderAdapter(cfg),
	})

	results := checker.CheckAll(context.Background())

	require.Len(t, results, 3)
	assert.Equal(t, statusHealthy, results["database"].Status)
	assert.Equal(t, statusHealthy, results["weatherAPI"].Status)
	assert.Equal(t, "ru", results["config"].Details["locale"])
	assert.Equal(t, "static", results["config"].Details["locationSource"])
	assert.Equal(t, "database", results["config"].Details["snapshotStore"])
}

func TestSystemHealthChecker_TimeoutBoundsSlowChecks(t *testing.T) {
	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		Checkers: map[string]ports.HealthChecker{"slow": slowChecker{}},
		Timeout:  20 * time.Millisecond,
	})

	start := time.Now()
	results := checker.CheckAll(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, statusUnhealthy, results["slow"].Status)
}
