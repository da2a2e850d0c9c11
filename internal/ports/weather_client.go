package ports

import "context"

// SnapshotID is the fixed key of the single cached weather row
const SnapshotID = "current"

// Coordinates is a single resolved location fix
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Condition describes one weather condition reported by the provider
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WeatherSnapshot represents one complete weather observation plus local capture time
type WeatherSnapshot struct {
	ID          string      `json:"id"`
	CityName    string      `json:"city_name"`
	Temperature float64     `json:"temperature"`
	FeelsLike   float64     `json:"feels_like"`
	Pressure    int         `json:"pressure"`
	Humidity    int         `json:"humidity"`
	WindSpeed   float64     `json:"wind_speed"`
	WindDegree  int         `json:"wind_degree"`
	Conditions  []Condition `json:"conditions"`
	Timestamp   int64       `json:"timestamp"`
	LastUpdated int64       `json:"last_updated"`
}

// ForecastItem represents one three-hour forecast step
type ForecastItem struct {
	Timestamp   int64       `json:"timestamp"`
	Temperature float64     `json:"temperature"`
	FeelsLike   float64     `json:"feels_like"`
	Pressure    int         `json:"pressure"`
	Humidity    int         `json:"humidity"`
	WindSpeed   float64     `json:"wind_speed"`
	WindDegree  int         `json:"wind_degree"`
	Conditions  []Condition `json:"conditions"`
	DateText    string      `json:"date_text"`
}

// WeatherClient defines the contract for fetching weather by coordinates
type WeatherClient interface {
	FetchCurrentWeather(ctx context.Context, lat, lon float64) (*WeatherSnapshot, error)
	FetchForecast(ctx context.Context, lat, lon float64) ([]ForecastItem, error)
	GetProviderName() string
}
