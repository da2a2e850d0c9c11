package infrastructure

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsCollector implements the MetricsCollector port with Prometheus collectors
type PrometheusMetricsCollector struct {
	loads        *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	cacheWrites  *prometheus.CounterVec
	apiCalls     *prometheus.CounterVec
	apiDuration  *prometheus.HistogramVec
}

// NewPrometheusMetricsCollector registers the weather collectors with reg
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		loads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_loads_total",
				Help: "The total number of weather loads by outcome",
			},
			[]string{"outcome"},
		),
		loadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_load_duration_seconds",
				Help:    "Weather load pipeline duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		cacheWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_cache_writes_total",
				Help: "The total number of snapshot store writes",
			},
			[]string{"success"},
		),
		apiCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_api_calls_total",
				Help: "The total number of weather API calls",
			},
			[]string{"provider", "success"},
		),
		apiDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_api_duration_seconds",
				Help:    "Weather API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordLoad(outcome string, duration time.Duration) {
	m.loads.WithLabelValues(outcome).Inc()
	m.loadDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordCacheWrite(success bool) {
	m.cacheWrites.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (m *PrometheusMetricsCollector) RecordWeatherAPICall(provider string, success bool, duration time.Duration) {
	m.apiCalls.WithLabelValues(provider, strconv.FormatBool(success)).Inc()
	m.apiDuration.WithLabelValues(provider).Observe(duration.Seconds())
}
