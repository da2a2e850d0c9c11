// Package api provides HTTP adapters for the hexagonal architecture
// These adapters expose the weather state machine over JSON and server-sent events
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"allweather.app/internal/core/weather"
	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port             int
	AllowedOrigins   []string
	RefreshPerMinute int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	weather       WeatherService
	loader        LoadTrigger
	location      LocationSetter
	permissions   PermissionStore
	healthChecker ports.SystemHealthChecker
	gatherer      prometheus.Gatherer
	logger        ports.Logger
}

// WeatherService is the orchestrator surface the HTTP adapter reads from
type WeatherService interface {
	State() weather.State
	Subscribe() (<-chan weather.State, func())
	CachedSnapshot(ctx context.Context) (*weather.Snapshot, error)
	ClearCache(ctx context.Context) error
	LoadForecast(ctx context.Context) ([]ports.ForecastItem, error)
}

// LoadTrigger starts a permission-gated weather load
type LoadTrigger interface {
	CheckAndLoad(ctx context.Context) error
}

// LocationSetter accepts a manually supplied last-known fix
type LocationSetter interface {
	SetLocation(lat, lon float64) error
}

// PermissionStore exposes the host's runtime location permissions
type PermissionStore interface {
	Grant() ports.PermissionGrant
	SetGrant(grant ports.PermissionGrant)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	Weather       WeatherService
	Loader        LoadTrigger
	Location      LocationSetter
	Permissions   PermissionStore
	HealthChecker ports.SystemHealthChecker
	Gatherer      prometheus.Gatherer
	Logger        ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		weather:       opts.Weather,
		loader:        opts.Loader,
		location:      opts.Location,
		permissions:   opts.Permissions,
		healthChecker: opts.HealthChecker,
		gatherer:      opts.Gatherer,
		logger:        opts.Logger,
	}

	router.Use(server.requestLogger())
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Weather == nil {
		return errors.NewValidationError("weather service is required")
	}
	if opts.Loader == nil {
		return errors.NewValidationError("load trigger is required")
	}
	if opts.Permissions == nil {
		return errors.NewValidationError("permission store is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.POST("/weather/refresh", s.refreshLimiter(), s.refreshWeather)
		api.GET("/weather/stream", s.streamWeather)
		api.GET("/weather/cached", s.getCachedWeather)
		api.DELETE("/weather/cached", s.clearCachedWeather)
		api.GET("/forecast", s.getForecast)
		api.PUT("/location/permission", s.setPermission)
		api.GET("/health", s.getHealth)

		if s.location != nil {
			api.PUT("/location", s.setLocation)
		}
	}

	gatherer := s.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// Handler returns the router wrapped with CORS handling
func (s *HTTPServerAdapter) Handler() http.Handler {
	origins := s.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Last-Event-ID"},
	}).Handler(s.router)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// refreshLimiter throttles manual refreshes; zero disables the limit
func (s *HTTPServerAdapter) refreshLimiter() gin.HandlerFunc {
	perMinute := s.config.RefreshPerMinute
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			s.logger.Warn("Refresh rate limit exceeded", ports.F("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many refresh requests"})
			return
		}
		c.Next()
	}
}

func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Debug("HTTP request handled",
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}
