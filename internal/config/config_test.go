package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allweather.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("MissingAPIKey", func(t *testing.T) {
		os.Clearenv()

		cfg, err := LoadConfig()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "OPENWEATHERMAP_API_KEY")
	})

	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("OPENWEATHERMAP_API_KEY", "test-key")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, 30, cfg.Server.RefreshPerMinute)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "weather_database.db", cfg.Database.GetDSN())
		assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Weather.OpenWeatherMapBaseURL)
		assert.Equal(t, "ru", cfg.Weather.Locale)
		assert.Equal(t, 15, cfg.Weather.RequestTimeoutSeconds)
		assert.True(t, cfg.Weather.SingleFlight)
		assert.Equal(t, 5, cfg.Weather.BreakerThreshold)
		assert.Equal(t, LocationSourceStatic, cfg.Location.Source)
		assert.Equal(t, 10, cfg.Location.TimeoutSeconds)
		assert.Nil(t, cfg.Location.Latitude)
		assert.Equal(t, "grant", cfg.Location.PermissionPolicy)
		assert.Equal(t, CacheTypeDatabase, cfg.Cache.Type)
		assert.False(t, cfg.Notification.NotifyOnUpdate)
		assert.Equal(t, "log", cfg.Notification.Channel)
		assert.Equal(t, 0, cfg.Scheduler.RefreshIntervalMinutes)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("OPENWEATHERMAP_API_KEY", "custom-key")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("WEATHER_LOCALE", "en")
		t.Setenv("WEATHER_SINGLE_FLIGHT", "false")
		t.Setenv("LOCATION_SOURCE", "ip")
		t.Setenv("LOCATION_TIMEOUT", "3")
		t.Setenv("CACHE_TYPE", "redis")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REFRESH_INTERVAL_MINUTES", "30")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "en", cfg.Weather.Locale)
		assert.False(t, cfg.Weather.SingleFlight)
		assert.Equal(t, LocationSourceIP, cfg.Location.Source)
		assert.Equal(t, 3, cfg.Location.TimeoutSeconds)
		assert.Equal(t, CacheTypeRedis, cfg.Cache.Type)
		assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
		assert.Equal(t, 30, cfg.Scheduler.RefreshIntervalMinutes)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("StaticCoordinates", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("OPENWEATHERMAP_API_KEY", "test-key")
		t.Setenv("LOCATION_LATITUDE", "55.75")
		t.Setenv("LOCATION_LONGITUDE", "37.62")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, cfg.Location.Latitude)
		require.NotNil(t, cfg.Location.Longitude)
		assert.InDelta(t, 55.75, *cfg.Location.Latitude, 1e-9)
		assert.InDelta(t, 37.62, *cfg.Location.Longitude, 1e-9)
	})
}

func TestConfigValidation(t *testing.T) {
	lat := 95.0
	lon := 10.0

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:        "invalid port",
			mutate:      func(c *Config) { c.Server.Port = 0 },
			expectError: "SERVER_PORT",
		},
		{
			name:        "invalid base url",
			mutate:      func(c *Config) { c.Weather.OpenWeatherMapBaseURL = "ftp://weather" },
			expectError: "OPENWEATHERMAP_API_BASE_URL",
		},
		{
			name:        "unknown cache type",
			mutate:      func(c *Config) { c.Cache.Type = CacheTypeUnknown },
			expectError: "CACHE_TYPE",
		},
		{
			name:        "unknown location source",
			mutate:      func(c *Config) { c.Location.Source = LocationSourceUnknown },
			expectError: "LOCATION_SOURCE",
		},
		{
			name: "static latitude out of range",
			mutate: func(c *Config) {
				c.Location.Latitude = &lat
				c.Location.Longitude = &lon
			},
			expectError: "invalid static location",
		},
		{
			name:        "half of static location",
			mutate:      func(c *Config) { c.Location.Latitude = &lon },
			expectError: "both be provided",
		},
		{
			name:        "unknown permission policy",
			mutate:      func(c *Config) { c.Location.PermissionPolicy = "ask" },
			expectError: "LOCATION_PERMISSION_POLICY",
		},
		{
			name:        "unknown database driver",
			mutate:      func(c *Config) { c.Database.Driver = "mysql" },
			expectError: "DB_DRIVER",
		},
		{
			name: "postgres with bad ssl mode",
			mutate: func(c *Config) {
				c.Database.Driver = "postgres"
				c.Database.SSLMode = "sometimes"
			},
			expectError: "DB_SSL_MODE",
		},
		{
			name: "email channel without recipient",
			mutate: func(c *Config) {
				c.Notification.NotifyOnUpdate = true
				c.Notification.Channel = "email"
			},
			expectError: "EMAIL_RECIPIENT",
		},
		{
			name:        "unknown notification channel",
			mutate:      func(c *Config) { c.Notification.Channel = "sms" },
			expectError: "NOTIFY_CHANNEL",
		},
		{
			name:        "negative refresh interval",
			mutate:      func(c *Config) { c.Scheduler.RefreshIntervalMinutes = -1 },
			expectError: "REFRESH_INTERVAL_MINUTES",
		},
		{
			name: "redis without address",
			mutate: func(c *Config) {
				c.Cache.Type = CacheTypeRedis
				c.Cache.Redis.Addr = ""
			},
			expectError: "REDIS_ADDR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestEnumParsing(t *testing.T) {
	assert.Equal(t, CacheTypeMemory, CacheTypeFromString("memory"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("disk"))
	assert.Equal(t, "database", CacheTypeDatabase.String())
	assert.Equal(t, LocationSourceIP, LocationSourceFromString("ip"))
	assert.Equal(t, "unknown", LocationSourceUnknown.String())

	var source LocationSourceType
	require.NoError(t, source.UnmarshalText([]byte("static")))
	assert.Equal(t, LocationSourceStatic, source)
}

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080, RefreshPerMinute: 30},
		Database: DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:", Host: "localhost", Port: 5432, User: "postgres", Name: "allweather", SSLMode: "disable"},
		Weather: WeatherConfig{
			OpenWeatherMapKey:     "key",
			OpenWeatherMapBaseURL: "https://api.openweathermap.org/data/2.5",
			Locale:                "ru",
			RequestTimeoutSeconds: 15,
			BreakerThreshold:      5,
		},
		Location: LocationConfig{
			Source:           LocationSourceStatic,
			TimeoutSeconds:   10,
			IPLookupURL:      "http://ip-api.com/json",
			PermissionPolicy: "grant",
		},
		Cache: CacheConfig{
			Type:  CacheTypeDatabase,
			Redis: RedisConfig{Addr: "localhost:6379", DialTimeout: 5, ReadTimeout: 3, WriteTimeout: 3},
		},
		Email:        EmailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587, FromAddress: "no-reply@example.com"},
		Notification: NotificationConfig{Channel: "log"},
	}
}
