package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"allweather.app/pkg/errors"
	"allweather.app/pkg/validation"
)

const (
	maxRedisDB          = 15
	maxPortNumber       = 65535
	maxTimeoutSeconds   = 300
	maxRefreshMinutes   = 1440
	maxBreakerThreshold = 100
)

// Config represents the application configuration structure
type Config struct {
	Server       ServerConfig       `split_words:"true"`
	Database     DatabaseConfig     `split_words:"true"`
	Weather      WeatherConfig      `split_words:"true"`
	Location     LocationConfig     `split_words:"true"`
	Cache        CacheConfig        `split_words:"true"`
	Email        EmailConfig        `split_words:"true"`
	Notification NotificationConfig `split_words:"true"`
	Scheduler    SchedulerConfig    `split_words:"true"`
	LogLevel     string             `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port             int      `envconfig:"SERVER_PORT" default:"8080"`
	AllowedOrigins   []string `envconfig:"SERVER_ALLOWED_ORIGINS" default:"*"`
	RefreshPerMinute int      `envconfig:"SERVER_REFRESH_PER_MINUTE" default:"30"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"allweather"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"weather_database.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	Locale                string `envconfig:"WEATHER_LOCALE" default:"ru"`
	RequestTimeoutSeconds int    `envconfig:"WEATHER_REQUEST_TIMEOUT" default:"15"`
	SingleFlight          bool   `envconfig:"WEATHER_SINGLE_FLIGHT" default:"true"`
	BreakerThreshold      int    `envconfig:"WEATHER_BREAKER_THRESHOLD" default:"5"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:""`
}

// LocationSourceType selects the platform location backend
type LocationSourceType int

const (
	LocationSourceUnknown LocationSourceType = iota
	LocationSourceStatic
	LocationSourceIP
)

// String returns the string representation of the location source
func (l LocationSourceType) String() string {
	switch l {
	case LocationSourceStatic:
		return "static"
	case LocationSourceIP:
		return "ip"
	default:
		return "unknown"
	}
}

// LocationSourceFromString converts string to LocationSourceType
func LocationSourceFromString(s string) LocationSourceType {
	switch s {
	case "static":
		return LocationSourceStatic
	case "ip":
		return LocationSourceIP
	default:
		return LocationSourceUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (l *LocationSourceType) UnmarshalText(text []byte) error {
	*l = LocationSourceFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (l LocationSourceType) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

type LocationConfig struct {
	Source           LocationSourceType `envconfig:"LOCATION_SOURCE" default:"static"`
	TimeoutSeconds   int                `envconfig:"LOCATION_TIMEOUT" default:"10"`
	Latitude         *float64           `envconfig:"LOCATION_LATITUDE"`
	Longitude        *float64           `envconfig:"LOCATION_LONGITUDE"`
	IPLookupURL      string             `envconfig:"LOCATION_IP_LOOKUP_URL" default:"http://ip-api.com/json"`
	PermissionPolicy string             `envconfig:"LOCATION_PERMISSION_POLICY" default:"grant"`
	GrantFine        bool               `envconfig:"LOCATION_GRANT_FINE" default:"false"`
	GrantCoarse      bool               `envconfig:"LOCATION_GRANT_COARSE" default:"false"`
}

// CacheType represents the snapshot store backend
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
	CacheTypeDatabase
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	case CacheTypeDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis || c == CacheTypeDatabase
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	case "database":
		return CacheTypeDatabase
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"database"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type EmailConfig struct {
	SMTPHost     string `envconfig:"EMAIL_SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"EMAIL_SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"EMAIL_SMTP_USERNAME"`
	SMTPPassword string `envconfig:"EMAIL_SMTP_PASSWORD"`
	FromName     string `envconfig:"EMAIL_FROM_NAME" default:"AllWeather"`
	FromAddress  string `envconfig:"EMAIL_FROM_ADDRESS" default:"no-reply@allweather.app"`
	Recipient    string `envconfig:"EMAIL_RECIPIENT"`
}

type NotificationConfig struct {
	NotifyOnUpdate bool   `envconfig:"NOTIFY_ON_UPDATE" default:"false"`
	Channel        string `envconfig:"NOTIFY_CHANNEL" default:"log"`
}

type SchedulerConfig struct {
	RefreshIntervalMinutes int `envconfig:"REFRESH_INTERVAL_MINUTES" default:"0"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Location.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if c.Cache.Type == CacheTypeDatabase {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if err := c.Notification.Validate(); err != nil {
		return err
	}
	if c.Notification.NotifyOnUpdate && c.Notification.Channel == "email" {
		if err := c.Email.Validate(); err != nil {
			return err
		}
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.RefreshPerMinute < 1 {
		return errors.NewConfigurationError("SERVER_REFRESH_PER_MINUTE must be at least 1", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if !strings.HasPrefix(w.OpenWeatherMapBaseURL, "http://") && !strings.HasPrefix(w.OpenWeatherMapBaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if !validation.IsNotEmpty(w.Locale) {
		return errors.NewConfigurationError("WEATHER_LOCALE cannot be empty", nil)
	}
	if w.RequestTimeoutSeconds < 1 || w.RequestTimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT must be between 1 and 300 seconds", nil)
	}
	if w.BreakerThreshold < 1 || w.BreakerThreshold > maxBreakerThreshold {
		return errors.NewConfigurationError("WEATHER_BREAKER_THRESHOLD must be between 1 and 100", nil)
	}
	return nil
}

func (l *LocationConfig) Validate() error {
	if l.TimeoutSeconds < 1 || l.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("LOCATION_TIMEOUT must be between 1 and 300 seconds", nil)
	}

	switch l.Source {
	case LocationSourceStatic:
		if (l.Latitude == nil) != (l.Longitude == nil) {
			return errors.NewConfigurationError("LOCATION_LATITUDE and LOCATION_LONGITUDE must both be provided or both be empty", nil)
		}
		if l.Latitude != nil {
			if err := validation.ValidateCoordinates(*l.Latitude, *l.Longitude); err != nil {
				return errors.NewConfigurationError("invalid static location", err)
			}
		}
	case LocationSourceIP:
		if !strings.HasPrefix(l.IPLookupURL, "http://") && !strings.HasPrefix(l.IPLookupURL, "https://") {
			return errors.NewConfigurationError("LOCATION_IP_LOOKUP_URL must start with http:// or https://", nil)
		}
	default:
		return errors.NewConfigurationError("LOCATION_SOURCE must be one of: static, ip", nil)
	}

	if l.PermissionPolicy != "grant" && l.PermissionPolicy != "deny" {
		return errors.NewConfigurationError("LOCATION_PERMISSION_POLICY must be one of: grant, deny", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis, database", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (e *EmailConfig) Validate() error {
	if e.SMTPHost == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty", nil)
	}
	if e.SMTPPort < 1 || e.SMTPPort > maxPortNumber {
		return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
	}
	if (e.SMTPUsername == "") != (e.SMTPPassword == "") {
		return errors.NewConfigurationError("EMAIL_SMTP_USERNAME and EMAIL_SMTP_PASSWORD must both be provided or both be empty", nil)
	}
	if !strings.Contains(e.FromAddress, "@") {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS must be a valid email address", nil)
	}
	if !strings.Contains(e.Recipient, "@") {
		return errors.NewConfigurationError("EMAIL_RECIPIENT must be a valid email address when NOTIFY_CHANNEL is email", nil)
	}
	return nil
}

func (n *NotificationConfig) Validate() error {
	if n.Channel != "log" && n.Channel != "email" {
		return errors.NewConfigurationError("NOTIFY_CHANNEL must be one of: log, email", nil)
	}
	return nil
}

func (s *SchedulerConfig) Validate() error {
	if s.RefreshIntervalMinutes < 0 || s.RefreshIntervalMinutes > maxRefreshMinutes {
		return errors.NewConfigurationError("REFRESH_INTERVAL_MINUTES must be between 0 and 1440 minutes", nil)
	}
	return nil
}
