package ports

import (
	"time"
)

// WeatherConfig represents weather pipeline configuration
type WeatherConfig struct {
	Locale         string
	RequestTimeout time.Duration
	SingleFlight   bool
}

// LocationConfig represents location acquisition configuration
type LocationConfig struct {
	Source  string
	Timeout time.Duration
}

// NotificationConfig represents notification configuration
type NotificationConfig struct {
	NotifyOnUpdate bool
	Channel        string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CacheConfig represents snapshot store configuration
type CacheConfig struct {
	Type string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetLocationConfig() LocationConfig
	GetNotificationConfig() NotificationConfig
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Load outcomes reported to MetricsCollector
const (
	OutcomeSuccess             = "success"
	OutcomeLocationUnavailable = "location_unavailable"
	OutcomeFailure             = "failure"
	OutcomeSuperseded          = "superseded"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordLoad(outcome string, duration time.Duration)
	RecordCacheWrite(success bool)
	RecordWeatherAPICall(provider string, success bool, duration time.Duration)
}
