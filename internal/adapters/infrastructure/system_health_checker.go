package infrastructure

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"allweather.app/internal/ports"
)

const defaultCheckTimeout = 3 * time.Second

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
	timeout        time.Duration
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	Checkers       map[string]ports.HealthChecker
	ConfigProvider ports.ConfigProvider
	Timeout        time.Duration
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}

	checkers := make(map[string]ports.HealthChecker, len(config.Checkers))
	for name, checker := range config.Checkers {
		if checker != nil {
			checkers[name] = checker
		}
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
		timeout:        timeout,
	}
}

// CheckAll runs every check concurrently, each bounded by the check timeout
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)
	var mu sync.Mutex

	var g errgroup.Group
	for name, checker := range s.checkers {
		name, checker := name, checker
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			status := checker.Check(checkCtx)

			mu.Lock()
			results[name] = status
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if s.configProvider != nil {
		weatherCfg := s.configProvider.GetWeatherConfig()
		locationCfg := s.configProvider.GetLocationConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"locale":          weatherCfg.Locale,
				"singleFlight":    weatherCfg.SingleFlight,
				"locationSource":  locationCfg.Source,
				"snapshotStore":   s.configProvider.GetCacheConfig().Type,
				"notifyOnUpdate":  s.configProvider.GetNotificationConfig().NotifyOnUpdate,
				"requestTimeoutS": weatherCfg.RequestTimeout.Seconds(),
			},
		}
	}

	return results
}
