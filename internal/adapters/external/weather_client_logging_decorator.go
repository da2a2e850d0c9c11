package external

import (
	"context"
	"time"

	"allweather.app/internal/ports"
)

// WeatherClientLoggingDecorator decorates weather clients with structured logging
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for weather clients
func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) *WeatherClientLoggingDecorator {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// FetchCurrentWeather wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchCurrentWeather(ctx context.Context, lat, lon float64) (*ports.WeatherSnapshot, error) {
	providerName := d.client.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("lat", lat),
		ports.F("lon", lon),
		ports.F("event", "request"))

	startTime := time.Now()
	snapshot, err := d.client.FetchCurrentWeather(ctx, lat, lon)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("city", snapshot.CityName),
		ports.F("temperature", snapshot.Temperature),
		ports.F("humidity", snapshot.Humidity))

	return snapshot, nil
}

// FetchForecast wraps the forecast call with structured logging
func (d *WeatherClientLoggingDecorator) FetchForecast(ctx context.Context, lat, lon float64) ([]ports.ForecastItem, error) {
	providerName := d.client.GetProviderName()

	startTime := time.Now()
	items, err := d.client.FetchForecast(ctx, lat, lon)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast request failed",
			ports.F("provider", providerName),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast request completed",
		ports.F("provider", providerName),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("items", len(items)))

	return items, nil
}

// GetProviderName returns the name of the wrapped client with logging indication
func (d *WeatherClientLoggingDecorator) GetProviderName() string {
	return "logged(" + d.client.GetProviderName() + ")"
}
