package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-chat/config"
	"weather-chat/internal/models"
	"weather-chat/pkg/observe"
)

// HTTPClient is the part of *http.Client the repositories need. Injected so
// tests can substitute their own transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GeocodeRepository resolves a location string to coordinates. A nil result
// with a nil error means the provider found nothing for that location.
type GeocodeRepository interface {
	Name() string
	Geocode(ctx context.Context, location string) (*models.Coordinates, error)
}

// ForecastRepository fetches forecast data for resolved coordinates.
type ForecastRepository interface {
	Name() string
	FetchForecast(ctx context.Context, coords models.Coordinates) (*models.ForecastBundle, error)
	CurrentConditions(ctx context.Context, coords models.Coordinates) (*models.Observation, error)
}

// InitRepositories builds the geocoding and forecast clients from config,
// each behind a rate-limited wrapper. The shared http.Client carries the
// per-call timeout and is safe for concurrent use.
func InitRepositories(cfg *config.Config, l *observe.Logger) (GeocodeRepository, ForecastRepository) {
	geoClient := &http.Client{Timeout: time.Duration(cfg.Geocode.Timeout) * time.Second}
	nwsClient := &http.Client{Timeout: time.Duration(cfg.Weather.Timeout) * time.Second}

	geo := NewNominatimRepository(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, geoClient, l)
	nws := NewNWSRepository(cfg.Weather.BaseURL, cfg.Weather.UserAgent, nwsClient, l)

	// Nominatim's usage policy caps anonymous clients at one request per
	// second; the NWS limit is generous but still worth honoring.
	return NewRateLimitedGeocoder(geo, cfg.Geocode.RPS, 1),
		NewRateLimitedForecaster(nws, cfg.Weather.RPS, cfg.Weather.Burst)
}
