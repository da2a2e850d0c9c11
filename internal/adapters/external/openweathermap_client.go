package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
	"allweather.app/pkg/validation"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultBreakerThreshold      = 5
	breakerOpenTimeout           = 30 * time.Second
	forecastSteps                = 40
	maxErrorBodyBytes            = 4096

	msgServiceUnavailable = "weather service temporarily unavailable"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapClientAdapter implements the WeatherClient port for OpenWeatherMap
type OpenWeatherMapClientAdapter struct {
	apiKey  string
	baseURL string
	locale  string
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker
	logger  ports.Logger
	metrics ports.MetricsCollector
	now     func() time.Time
}

// OpenWeatherMapClientParams holds parameters for creating the OpenWeatherMap client.
// Metrics and HTTPClient are optional.
type OpenWeatherMapClientParams struct {
	APIKey           string
	BaseURL          string
	Locale           string
	Timeout          time.Duration
	BreakerThreshold int
	HTTPClient       HTTPClient
	Logger           ports.Logger
	Metrics          ports.MetricsCollector
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type owmCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmWind struct {
	Speed  float64 `json:"speed"`
	Degree int     `json:"deg"`
}

// OpenWeatherMapCurrentResponse represents the /weather response
type OpenWeatherMapCurrentResponse struct {
	Name    string         `json:"name"`
	Main    *owmMain       `json:"main"`
	Weather []owmCondition `json:"weather"`
	Wind    owmWind        `json:"wind"`
	Dt      int64          `json:"dt"`
}

// OpenWeatherMapForecastResponse represents the /forecast response
type OpenWeatherMapForecastResponse struct {
	List []struct {
		Dt      int64          `json:"dt"`
		Main    *owmMain       `json:"main"`
		Weather []owmCondition `json:"weather"`
		Wind    owmWind        `json:"wind"`
		DtTxt   string         `json:"dt_txt"`
	} `json:"list"`
}

type owmErrorResponse struct {
	Message string `json:"message"`
}

// NewOpenWeatherMapClientAdapter creates a new OpenWeatherMap client adapter
func NewOpenWeatherMapClientAdapter(params OpenWeatherMapClientParams) *OpenWeatherMapClientAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := params.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	threshold := params.BreakerThreshold
	if threshold <= 0 {
		threshold = defaultBreakerThreshold
	}

	adapter := &OpenWeatherMapClientAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		locale:  params.Locale,
		client:  client,
		logger:  params.Logger,
		metrics: params.Metrics,
		now:     time.Now,
	}

	adapter.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "openweathermap",
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(threshold)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			adapter.logger.Warn("Weather API circuit breaker state changed",
				ports.F("breaker", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})

	return adapter
}

// FetchCurrentWeather retrieves current conditions for the given coordinates
func (p *OpenWeatherMapClientAdapter) FetchCurrentWeather(ctx context.Context, lat, lon float64) (*ports.WeatherSnapshot, error) {
	if err := validation.ValidateCoordinates(lat, lon); err != nil {
		return nil, errors.NewValidationError("invalid coordinates: " + err.Error())
	}

	var resp OpenWeatherMapCurrentResponse
	if err := p.call(ctx, "weather", p.query(lat, lon), &resp); err != nil {
		return nil, err
	}

	if resp.Main == nil {
		return nil, errors.NewExternalAPIError("weather API response is missing main block", nil)
	}

	return &ports.WeatherSnapshot{
		ID:          ports.SnapshotID,
		CityName:    resp.Name,
		Temperature: resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Pressure:    resp.Main.Pressure,
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
		WindDegree:  resp.Wind.Degree,
		Conditions:  toConditions(resp.Weather),
		Timestamp:   resp.Dt,
		LastUpdated: p.now().UnixMilli(),
	}, nil
}

// FetchForecast retrieves the three-hourly forecast for the given coordinates
func (p *OpenWeatherMapClientAdapter) FetchForecast(ctx context.Context, lat, lon float64) ([]ports.ForecastItem, error) {
	if err := validation.ValidateCoordinates(lat, lon); err != nil {
		return nil, errors.NewValidationError("invalid coordinates: " + err.Error())
	}

	query := p.query(lat, lon)
	query.Set("cnt", strconv.Itoa(forecastSteps))

	var resp OpenWeatherMapForecastResponse
	if err := p.call(ctx, "forecast", query, &resp); err != nil {
		return nil, err
	}

	items := make([]ports.ForecastItem, 0, len(resp.List))
	for _, entry := range resp.List {
		if entry.Main == nil {
			return nil, errors.NewExternalAPIError("forecast entry is missing main block", nil)
		}
		items = append(items, ports.ForecastItem{
			Timestamp:   entry.Dt,
			Temperature: entry.Main.Temp,
			FeelsLike:   entry.Main.FeelsLike,
			Pressure:    entry.Main.Pressure,
			Humidity:    entry.Main.Humidity,
			WindSpeed:   entry.Wind.Speed,
			WindDegree:  entry.Wind.Degree,
			Conditions:  toConditions(entry.Weather),
			DateText:    entry.DtTxt,
		})
	}
	return items, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapClientAdapter) GetProviderName() string {
	return "openweathermap"
}

// BreakerState reports the circuit breaker state (closed, half-open, open)
func (p *OpenWeatherMapClientAdapter) BreakerState() string {
	return p.breaker.State().String()
}

func (p *OpenWeatherMapClientAdapter) query(lat, lon float64) url.Values {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("units", "metric")
	if p.locale != "" {
		query.Set("lang", p.locale)
	}
	query.Set("appid", p.apiKey)
	return query
}

func (p *OpenWeatherMapClientAdapter) call(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	start := p.now()
	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.get(ctx, endpoint, query, out)
	})
	p.recordCall(err == nil, p.now().Sub(start))

	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.NewExternalAPIError(msgServiceUnavailable, err)
	}
	return err
}

func (p *OpenWeatherMapClientAdapter) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build weather API request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.NewExternalAPIError("weather API request timed out", err)
		}
		return errors.NewExternalAPIError("failed to reach weather API", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.NewExternalAPIError(statusMessage(resp), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode weather API response", err)
	}
	return nil
}

func (p *OpenWeatherMapClientAdapter) recordCall(success bool, duration time.Duration) {
	if p.metrics == nil {
		return
	}
	p.metrics.RecordWeatherAPICall(p.GetProviderName(), success, duration)
}

func statusMessage(resp *http.Response) string {
	msg := fmt.Sprintf("weather API returned status %d", resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return msg
	}
	var apiErr owmErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
		return msg + ": " + apiErr.Message
	}
	return msg
}

func toConditions(in []owmCondition) []ports.Condition {
	out := make([]ports.Condition, 0, len(in))
	for _, c := range in {
		out = append(out, ports.Condition{
			ID:          c.ID,
			Main:        c.Main,
			Description: c.Description,
			Icon:        c.Icon,
		})
	}
	return out
}
