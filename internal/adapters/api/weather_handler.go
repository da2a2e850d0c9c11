package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"allweather.app/internal/core/presentation"
	"allweather.app/internal/core/weather"
	"allweather.app/internal/ports"
)

// MessageResponse represents a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// ForecastResponse wraps the forecast steps for the current fix
type ForecastResponse struct {
	Items []ports.ForecastItem `json:"items"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	c.JSON(http.StatusOK, presentation.Render(s.weather.State()))
}

// refreshWeather handles POST /api/weather/refresh; it also serves as the retry action
func (s *HTTPServerAdapter) refreshWeather(c *gin.Context) {
	if err := s.loader.CheckAndLoad(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, MessageResponse{Message: "Weather refresh started"})
}

// streamWeather handles GET /api/weather/stream as server-sent events.
// The current view is sent first, then every later state.
func (s *HTTPServerAdapter) streamWeather(c *gin.Context) {
	updates, unsubscribe := s.weather.Subscribe()
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			c.SSEvent("weather", presentation.Render(state))
			c.Writer.Flush()
		}
	}
}

// getCachedWeather handles GET /api/weather/cached
func (s *HTTPServerAdapter) getCachedWeather(c *gin.Context) {
	snapshot, err := s.weather.CachedSnapshot(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, presentation.Render(weather.Success(snapshot)))
}

// clearCachedWeather handles DELETE /api/weather/cached
func (s *HTTPServerAdapter) clearCachedWeather(c *gin.Context) {
	if err := s.weather.ClearCache(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// getForecast handles GET /api/forecast
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	items, err := s.weather.LoadForecast(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	if items == nil {
		items = []ports.ForecastItem{}
	}
	c.JSON(http.StatusOK, ForecastResponse{Items: items})
}
