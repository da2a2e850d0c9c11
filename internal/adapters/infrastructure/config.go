package infrastructure

import (
	"time"

	"allweather.app/internal/config"
	"allweather.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns weather pipeline configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		Locale:         c.config.Weather.Locale,
		RequestTimeout: time.Duration(c.config.Weather.RequestTimeoutSeconds) * time.Second,
		SingleFlight:   c.config.Weather.SingleFlight,
	}
}

// GetLocationConfig returns location acquisition configuration
func (c *ConfigProviderAdapter) GetLocationConfig() ports.LocationConfig {
	return ports.LocationConfig{
		Source:  c.config.Location.Source.String(),
		Timeout: time.Duration(c.config.Location.TimeoutSeconds) * time.Second,
	}
}

// GetNotificationConfig returns notification configuration
func (c *ConfigProviderAdapter) GetNotificationConfig() ports.NotificationConfig {
	return ports.NotificationConfig{
		NotifyOnUpdate: c.config.Notification.NotifyOnUpdate,
		Channel:        c.config.Notification.Channel,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetCacheConfig returns snapshot store configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
	}
}
