package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"allweather.app/internal/ports"
	"allweather.app/pkg/errors"
)

const defaultIPLookupURL = "http://ip-api.com/json"

// IPLocationSource resolves an approximate position from the host's public IP
type IPLocationSource struct {
	url    string
	client HTTPClient
	logger ports.Logger
}

// IPLocationSourceParams holds parameters for creating the IP location source
type IPLocationSourceParams struct {
	URL        string
	Timeout    time.Duration
	HTTPClient HTTPClient
	Logger     ports.Logger
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}

// NewIPLocationSource creates a new IP geolocation source
func NewIPLocationSource(params IPLocationSourceParams) *IPLocationSource {
	lookupURL := params.URL
	if lookupURL == "" {
		lookupURL = defaultIPLookupURL
	}

	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &IPLocationSource{
		url:    lookupURL,
		client: client,
		logger: params.Logger,
	}
}

// RequestLastLocation performs the lookup in the background and completes the callback once
func (s *IPLocationSource) RequestLastLocation(ctx context.Context, onResult ports.LocationCallback) {
	go func() {
		fix, err := s.lookup(ctx)
		onResult(fix, err)
	}()
}

// GetSourceName returns the name of this location source
func (s *IPLocationSource) GetSourceName() string {
	return "ip"
}

func (s *IPLocationSource) lookup(ctx context.Context) (*ports.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.NewLocationUnavailableError("failed to build IP lookup request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.NewLocationUnavailableError("IP lookup request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Warn("Failed to close IP lookup response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewLocationUnavailableError(fmt.Sprintf("IP lookup returned status %d", resp.StatusCode), nil)
	}

	var body ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.NewLocationUnavailableError("failed to decode IP lookup response", err)
	}

	if body.Status != "success" {
		s.logger.Info("IP lookup returned no location", ports.F("message", body.Message))
		return nil, nil
	}

	s.logger.Debug("IP location resolved", ports.F("city", body.City))
	return &ports.Coordinates{Latitude: body.Lat, Longitude: body.Lon}, nil
}
