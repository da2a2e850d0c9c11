package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"allweather.app/internal/adapters/database"
	"allweather.app/internal/adapters/external"
	"allweather.app/internal/adapters/infrastructure"
	"allweather.app/internal/config"
	"allweather.app/internal/core/location"
	"allweather.app/internal/ports"
)

// DependencyContainer builds and owns every adapter behind the application ports
type DependencyContainer struct {
	config *config.Config

	db          *gorm.DB
	redis       *external.RedisCacheProviderAdapter
	fileLogger  *infrastructure.FileLoggerAdapter
	weatherAPI  *external.OpenWeatherMapClientAdapter
	permissions *infrastructure.PermissionStateAdapter
	static      *external.StaticLocationSource
	stats       infrastructure.StatsReporter
	storePinger infrastructure.Pinger

	ports *ports.ApplicationPorts
}

// DependencyOptions carries the process-wide collaborators a test may replace
type DependencyOptions struct {
	Registerer prometheus.Registerer
	HTTPClient external.HTTPClient
}

// NewDependencyContainer wires the adapters selected by cfg
func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	c := &DependencyContainer{config: cfg}

	if err := c.initializePorts(opts); err != nil {
		if cleanupErr := c.Cleanup(); cleanupErr != nil {
			slog.Warn("Cleanup after failed initialization", "error", cleanupErr)
		}
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return c, nil
}

func (c *DependencyContainer) initializePorts(opts DependencyOptions) error {
	slog.Info("Initializing ports...")

	logger, err := c.initializeLogger()
	if err != nil {
		return err
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	metrics := infrastructure.NewPrometheusMetricsCollector(opts.Registerer)

	c.weatherAPI = external.NewOpenWeatherMapClientAdapter(external.OpenWeatherMapClientParams{
		APIKey:           c.config.Weather.OpenWeatherMapKey,
		BaseURL:          c.config.Weather.OpenWeatherMapBaseURL,
		Locale:           c.config.Weather.Locale,
		Timeout:          time.Duration(c.config.Weather.RequestTimeoutSeconds) * time.Second,
		BreakerThreshold: c.config.Weather.BreakerThreshold,
		HTTPClient:       opts.HTTPClient,
		Logger:           logger,
		Metrics:          metrics,
	})

	var weatherClient ports.WeatherClient = c.weatherAPI
	if c.config.Weather.EnableLogging {
		weatherClient = external.NewWeatherClientLoggingDecorator(weatherClient, logger)
		slog.Info("Weather client logging enabled")
	}

	c.permissions = infrastructure.NewPermissionStateAdapter(
		ports.PermissionGrant{Fine: c.config.Location.GrantFine, Coarse: c.config.Location.GrantCoarse},
		infrastructure.PermissionPolicy(c.config.Location.PermissionPolicy),
		logger,
	)

	source, err := c.initializeLocationSource(logger, opts.HTTPClient)
	if err != nil {
		return err
	}

	locationProvider, err := location.NewProvider(location.ProviderDependencies{
		Source:            source,
		PermissionChecker: c.permissions,
		Logger:            logger,
		Timeout:           time.Duration(c.config.Location.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create location provider: %w", err)
	}

	store, err := c.initializeSnapshotStore()
	if err != nil {
		return err
	}

	notifier, err := c.initializeNotifier(logger)
	if err != nil {
		return err
	}

	c.ports = &ports.ApplicationPorts{
		WeatherClient: weatherClient,
		SnapshotStore: store,

		LocationProvider:    locationProvider,
		PermissionChecker:   c.permissions,
		PermissionRequester: c.permissions,

		Notifier: notifier,

		ConfigProvider: configProvider,
		Logger:         logger,
		Metrics:        metrics,
	}
	c.ports.HealthChecker = c.buildHealthChecker(configProvider)

	slog.Info("Ports initialized successfully",
		"cache", c.config.Cache.Type.String(),
		"location_source", c.config.Location.Source.String())
	return nil
}

func (c *DependencyContainer) initializeLogger() (ports.Logger, error) {
	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
			return logger, nil
		}
		c.fileLogger = fileLogger
		slog.Info("File logging enabled", "path", c.config.Weather.LogFilePath)
		return infrastructure.MultiLogger{logger, fileLogger}, nil
	}

	return logger, nil
}

func (c *DependencyContainer) initializeLocationSource(logger ports.Logger, client external.HTTPClient) (ports.LocationSource, error) {
	switch c.config.Location.Source {
	case config.LocationSourceStatic:
		c.static = external.NewStaticLocationSource(c.config.Location.Latitude, c.config.Location.Longitude)
		return c.static, nil
	case config.LocationSourceIP:
		return external.NewIPLocationSource(external.IPLocationSourceParams{
			URL:        c.config.Location.IPLookupURL,
			Timeout:    time.Duration(c.config.Location.TimeoutSeconds) * time.Second,
			HTTPClient: client,
			Logger:     logger,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported location source: %s", c.config.Location.Source.String())
	}
}

func (c *DependencyContainer) initializeSnapshotStore() (ports.SnapshotStore, error) {
	if c.config.Cache.Type == config.CacheTypeDatabase {
		db, err := database.Open(c.config.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		c.db = db

		repo := database.NewSnapshotRepositoryAdapter(db)
		c.storePinger = repo
		slog.Info("Snapshot store initialized", "type", "database", "driver", c.config.Database.Driver)
		return repo, nil
	}

	provider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return nil, fmt.Errorf("create cache provider: %w", err)
	}

	if redis, ok := provider.(*external.RedisCacheProviderAdapter); ok {
		c.redis = redis
		c.storePinger = redis
	}
	if stats, ok := provider.(infrastructure.StatsReporter); ok {
		c.stats = stats
	}

	slog.Info("Snapshot store initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)
	return external.NewSnapshotCacheAdapter(provider), nil
}

func (c *DependencyContainer) initializeNotifier(logger ports.Logger) (ports.Notifier, error) {
	if !c.config.Notification.NotifyOnUpdate {
		return nil, nil
	}

	if c.config.Notification.Channel != "email" {
		return external.NewLogNotifier(logger), nil
	}

	emailProvider := external.NewSMTPEmailProviderAdapter(external.EmailProviderConfig{
		Host:     c.config.Email.SMTPHost,
		Port:     c.config.Email.SMTPPort,
		Username: c.config.Email.SMTPUsername,
		Password: c.config.Email.SMTPPassword,
		FromName: c.config.Email.FromName,
		FromAddr: c.config.Email.FromAddress,
	})
	if err := emailProvider.ValidateConfiguration(); err != nil {
		return nil, fmt.Errorf("validate email provider: %w", err)
	}

	notifier, err := external.NewEmailNotifier(external.EmailNotifierDependencies{
		EmailProvider: emailProvider,
		Recipient:     c.config.Email.Recipient,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create email notifier: %w", err)
	}
	return notifier, nil
}

func (c *DependencyContainer) buildHealthChecker(configProvider ports.ConfigProvider) *infrastructure.SystemHealthChecker {
	checkers := map[string]ports.HealthChecker{
		"weather_api": infrastructure.NewWeatherAPIHealthChecker(c.weatherAPI),
		"permission":  infrastructure.NewPermissionHealthChecker(c.permissions),
	}
	if c.storePinger != nil {
		checkers["store"] = infrastructure.NewPingHealthChecker(c.config.Cache.Type.String(), c.storePinger)
	}
	if c.stats != nil {
		checkers["cache"] = infrastructure.NewCacheStatsHealthChecker(c.config.Cache.Type.String(), c.stats)
	}

	return infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers:       checkers,
		ConfigProvider: configProvider,
	})
}

// ApplicationPorts returns the wired ports
func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Permissions returns the runtime permission state shared by the flow and the HTTP surface
func (c *DependencyContainer) Permissions() *infrastructure.PermissionStateAdapter {
	return c.permissions
}

// StaticLocation returns the static source, or nil when another source is configured
func (c *DependencyContainer) StaticLocation() *external.StaticLocationSource {
	return c.static
}

// Ping checks the snapshot store backend, if it has one to reach
func (c *DependencyContainer) Ping(ctx context.Context) error {
	if c.storePinger == nil {
		return nil
	}
	return c.storePinger.Ping(ctx)
}

// Cleanup closes every resource the container opened
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			keep(sqlDB.Close())
		} else {
			keep(err)
		}
	}
	if c.redis != nil {
		keep(c.redis.Close())
	}
	if c.fileLogger != nil {
		keep(c.fileLogger.Close())
	}
	return firstErr
}
