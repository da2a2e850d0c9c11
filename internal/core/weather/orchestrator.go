package weather

import (
	"context"
	stderrors "errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

const (
	MsgLocationUnavailable = "location unavailable"
	MsgLoadFailed          = "failed to load weather"

	defaultRequestTimeout = 15 * time.Second
	sideEffectTimeout     = 10 * time.Second
	singleFlightKey       = "current"
)

// OrchestratorDependencies contains all dependencies for the orchestrator.
// Notifier and Tracer are optional.
type OrchestratorDependencies struct {
	LocationProvider ports.LocationProvider
	WeatherClient    ports.WeatherClient
	Store            ports.SnapshotStore
	Notifier         ports.Notifier
	Config           ports.ConfigProvider
	Logger           ports.Logger
	Metrics          ports.MetricsCollector
	Tracer           trace.Tracer
}

// Orchestrator runs the location, fetch and cache pipeline and owns the weather state
type Orchestrator struct {
	location ports.LocationProvider
	client   ports.WeatherClient
	store    ports.SnapshotStore
	notifier ports.Notifier
	logger   ports.Logger
	metrics  ports.MetricsCollector
	tracer   trace.Tracer

	requestTimeout time.Duration
	singleFlight   bool
	notifyOnUpdate bool
	now            func() time.Time

	stream     *StateStream
	group      singleflight.Group
	publishMu  sync.Mutex
	generation atomic.Uint64

	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.Mutex
	closed    bool
	pipelines sync.WaitGroup
	writes    sync.WaitGroup
}

type loadResult struct {
	state   State
	outcome string
}

// NewOrchestrator creates a new orchestrator in the Loading state
func NewOrchestrator(deps OrchestratorDependencies) (*Orchestrator, error) {
	if deps.LocationProvider == nil {
		return nil, errors.NewValidationError("location provider is required")
	}
	if deps.WeatherClient == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("snapshot store is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	weatherCfg := deps.Config.GetWeatherConfig()
	notificationCfg := deps.Config.GetNotificationConfig()

	requestTimeout := weatherCfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	tracer := deps.Tracer
	if tracer == nil {
		tracer = otel.Tracer("WeatherOrchestrator")
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Orchestrator{
		location:       deps.LocationProvider,
		client:         deps.WeatherClient,
		store:          deps.Store,
		notifier:       deps.Notifier,
		logger:         deps.Logger,
		metrics:        deps.Metrics,
		tracer:         tracer,
		requestTimeout: requestTimeout,
		singleFlight:   weatherCfg.SingleFlight,
		notifyOnUpdate: notificationCfg.NotifyOnUpdate && deps.Notifier != nil,
		now:            time.Now,
		stream:         NewStateStream(Loading()),
		ctx:            ctx,
		cancel:         cancel,
	}, nil
}

// LoadWeather publishes Loading and starts the pipeline in the background.
// It is a no-op after Close.
func (o *Orchestrator) LoadWeather() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}

	o.publishMu.Lock()
	gen := o.generation.Add(1)
	o.stream.Publish(Loading())
	o.publishMu.Unlock()

	loadID := uuid.NewString()
	o.logger.Debug("Weather load started", ports.F("load_id", loadID), ports.F("generation", gen))

	o.pipelines.Add(1)
	go func() {
		defer o.pipelines.Done()
		o.run(gen, loadID)
	}()
}

// State returns the current weather state
func (o *Orchestrator) State() State {
	return o.stream.Current()
}

// Subscribe returns a channel that receives the current state and every later change
func (o *Orchestrator) Subscribe() (<-chan State, func()) {
	return o.stream.Subscribe()
}

// CachedSnapshot returns the last stored snapshot without any freshness check
func (o *Orchestrator) CachedSnapshot(ctx context.Context) (*Snapshot, error) {
	data, err := o.store.Get(ctx)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewDatabaseError("failed to read cached weather", err)
	}
	return SnapshotFromPorts(data), nil
}

// ClearCache removes the stored snapshot
func (o *Orchestrator) ClearCache(ctx context.Context) error {
	if err := o.store.Clear(ctx); err != nil {
		return errors.NewDatabaseError("failed to clear cached weather", err)
	}
	o.logger.Info("Cached weather cleared")
	return nil
}

// LoadForecast fetches the forecast for the current location without touching state or cache
func (o *Orchestrator) LoadForecast(ctx context.Context) ([]ports.ForecastItem, error) {
	fix, ok := o.location.GetCurrentLocation(ctx)
	if !ok {
		return nil, errors.NewLocationUnavailableError(MsgLocationUnavailable, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, o.requestTimeout)
	defer cancel()

	items, err := o.client.FetchForecast(ctx, fix.Latitude, fix.Longitude)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Close cancels in-flight loads, waits for outstanding cache writes and closes subscribers
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	o.cancel()
	o.pipelines.Wait()
	o.writes.Wait()
	o.stream.Close()
}

func (o *Orchestrator) run(gen uint64, loadID string) {
	start := o.now()

	var result loadResult
	if o.singleFlight {
		v, _, shared := o.group.Do(singleFlightKey, func() (interface{}, error) {
			return o.execute(loadID), nil
		})
		result = v.(loadResult)
		if shared {
			o.logger.Debug("Weather load joined in-flight pipeline", ports.F("load_id", loadID))
		}
	} else {
		result = o.execute(loadID)
	}

	if !o.publishTerminal(gen, result.state) {
		o.metrics.RecordLoad(ports.OutcomeSuperseded, o.now().Sub(start))
		o.logger.Debug("Weather load result dropped",
			ports.F("load_id", loadID),
			ports.F("outcome", result.outcome))
		return
	}
	o.metrics.RecordLoad(result.outcome, o.now().Sub(start))
}

// publishTerminal publishes state only if gen is still the latest load and the
// orchestrator has not been cancelled.
func (o *Orchestrator) publishTerminal(gen uint64, state State) bool {
	o.publishMu.Lock()
	defer o.publishMu.Unlock()

	if o.ctx.Err() != nil || o.generation.Load() != gen {
		return false
	}
	o.stream.Publish(state)
	return true
}

func (o *Orchestrator) execute(loadID string) loadResult {
	ctx, span := o.tracer.Start(o.ctx, "weather.load", trace.WithAttributes(
		attribute.String("load.id", loadID),
	))
	defer span.End()

	fix, ok := o.location.GetCurrentLocation(ctx)
	if !ok {
		o.logger.Warn("Location unavailable", ports.F("load_id", loadID))
		span.SetStatus(codes.Error, MsgLocationUnavailable)
		return loadResult{state: Failure(MsgLocationUnavailable), outcome: ports.OutcomeLocationUnavailable}
	}
	span.SetAttributes(
		attribute.Float64("location.lat", fix.Latitude),
		attribute.Float64("location.lon", fix.Longitude),
	)

	snapshot, err := o.fetch(ctx, fix)
	if err != nil {
		o.logger.Error("Failed to load weather", ports.F("load_id", loadID), ports.F("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "weather fetch failed")
		return loadResult{state: Failure(failureReason(err)), outcome: ports.OutcomeFailure}
	}

	o.persist(loadID, snapshot)
	if o.notifyOnUpdate {
		o.notify(loadID, snapshot)
	}

	span.SetAttributes(attribute.String("weather.city", snapshot.CityName))
	span.SetStatus(codes.Ok, "weather loaded")
	o.logger.Info("Weather loaded",
		ports.F("load_id", loadID),
		ports.F("city", snapshot.CityName),
		ports.F("temperature", snapshot.Temperature))
	return loadResult{state: Success(snapshot), outcome: ports.OutcomeSuccess}
}

func (o *Orchestrator) fetch(ctx context.Context, fix ports.Coordinates) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, o.requestTimeout)
	defer cancel()

	data, err := o.client.FetchCurrentWeather(ctx, fix.Latitude, fix.Longitude)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.NewExternalAPIError("weather provider returned no data", nil)
	}

	snapshot := SnapshotFromPorts(data)
	if err := snapshot.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather data from provider: " + err.Error())
	}
	if snapshot.ID == "" {
		snapshot.ID = ports.SnapshotID
	}
	if snapshot.LastUpdated == 0 {
		snapshot.LastUpdated = o.now().UnixMilli()
	}
	return snapshot, nil
}

// persist writes the snapshot without blocking the caller. Writes outlive
// cancellation so Close can wait for them.
func (o *Orchestrator) persist(loadID string, snapshot *Snapshot) {
	data := snapshot.ToPorts()

	o.writes.Add(1)
	go func() {
		defer o.writes.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(o.ctx), sideEffectTimeout)
		defer cancel()

		if err := o.store.Put(ctx, data); err != nil {
			o.metrics.RecordCacheWrite(false)
			o.logger.Warn("Failed to cache weather snapshot",
				ports.F("load_id", loadID),
				ports.F("error", err))
			return
		}
		o.metrics.RecordCacheWrite(true)
		o.logger.Debug("Weather snapshot cached", ports.F("load_id", loadID))
	}()
}

func (o *Orchestrator) notify(loadID string, snapshot *Snapshot) {
	message := NotificationFor(snapshot)

	o.writes.Add(1)
	go func() {
		defer o.writes.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(o.ctx), sideEffectTimeout)
		defer cancel()

		if err := o.notifier.Notify(ctx, message); err != nil {
			o.logger.Warn("Failed to deliver weather notification",
				ports.F("load_id", loadID),
				ports.F("error", err))
		}
	}()
}

// failureReason prefers the AppError message, then the plain error text
func failureReason(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		if appErr.Message != "" {
			return appErr.Message
		}
		return MsgLoadFailed
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgLoadFailed
}
