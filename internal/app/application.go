package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"allweather.app/internal/adapters/api"
	"allweather.app/internal/config"
	"allweather.app/internal/core/presentation"
	"allweather.app/internal/core/weather"
	"allweather.app/internal/ports"
	"allweather.app/pkg/logger"
)

type Application struct {
	config *config.Config

	// Use Cases
	orchestrator *weather.Orchestrator
	flow         *presentation.PermissionFlow

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps      *DependencyContainer
	ports     *ports.ApplicationPorts
	gatherer  prometheus.Gatherer
	stopChan  chan struct{}
	stopOnce  sync.Once
	scheduler sync.WaitGroup
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel)).SetDefault()

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps, prometheus.DefaultGatherer)
}

// NewApplicationWithDependencies creates an application around an existing container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer, gatherer prometheus.Gatherer) (*Application, error) {
	app := &Application{
		config:   cfg,
		deps:     deps,
		ports:    deps.ApplicationPorts(),
		gatherer: gatherer,
		stopChan: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		app.orchestrator.Close()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	orchestrator, err := weather.NewOrchestrator(weather.OrchestratorDependencies{
		LocationProvider: a.ports.LocationProvider,
		WeatherClient:    a.ports.WeatherClient,
		Store:            a.ports.SnapshotStore,
		Notifier:         a.ports.Notifier,
		Config:           a.ports.ConfigProvider,
		Logger:           a.ports.Logger,
		Metrics:          a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather orchestrator: %w", err)
	}
	a.orchestrator = orchestrator

	flow, err := presentation.NewPermissionFlow(presentation.PermissionFlowDependencies{
		Checker:   a.ports.PermissionChecker,
		Requester: a.ports.PermissionRequester,
		Loader:    orchestrator,
		Logger:    a.ports.Logger,
	})
	if err != nil {
		orchestrator.Close()
		return fmt.Errorf("create permission flow: %w", err)
	}
	a.flow = flow

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	opts := api.ServerOptions{
		Config: api.ServerConfig{
			Port:             a.config.Server.Port,
			AllowedOrigins:   a.config.Server.AllowedOrigins,
			RefreshPerMinute: a.config.Server.RefreshPerMinute,
		},
		Weather:       a.orchestrator,
		Loader:        a.flow,
		Permissions:   a.deps.Permissions(),
		HealthChecker: a.ports.HealthChecker,
		Gatherer:      a.gatherer,
		Logger:        a.ports.Logger,
	}
	if static := a.deps.StaticLocation(); static != nil {
		opts.Location = static
	}

	httpAdapter, err := api.NewHTTPServerAdapter(opts)
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	// WriteTimeout stays zero so the event stream is not cut off.
	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:           httpAdapter.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	// Closing the orchestrator ends open event streams, which Shutdown would otherwise wait on.
	a.httpServer.RegisterOnShutdown(a.orchestrator.Close)

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start triggers the first load, starts the refresh scheduler and serves HTTP until shutdown
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	a.refresh(ctx)

	if interval := time.Duration(a.config.Scheduler.RefreshIntervalMinutes) * time.Minute; interval > 0 {
		a.scheduler.Add(1)
		go func() {
			defer a.scheduler.Done()
			a.startScheduler(ctx, interval)
		}()
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) refresh(ctx context.Context) {
	if err := a.flow.CheckAndLoad(ctx); err != nil {
		slog.Warn("Weather refresh skipped", "error", err)
	}
}

func (a *Application) startScheduler(ctx context.Context, interval time.Duration) {
	slog.Info("Starting refresh scheduler...", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Scheduler stopped")
			return
		case <-ticker.C:
			a.refresh(ctx)
		}
	}
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })
	a.scheduler.Wait()

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.orchestrator.Close()

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetOrchestrator returns the weather orchestrator for testing
func (a *Application) GetOrchestrator() *weather.Orchestrator {
	return a.orchestrator
}

// GetPermissionFlow returns the permission flow for testing
func (a *Application) GetPermissionFlow() *presentation.PermissionFlow {
	return a.flow
}
