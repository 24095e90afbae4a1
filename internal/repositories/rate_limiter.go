package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-chat/internal/models"
)

// RateLimitedGeocoder wraps a GeocodeRepository with a token-bucket limiter.
type RateLimitedGeocoder struct {
	repo    GeocodeRepository
	limiter *rate.Limiter
}

// NewRateLimitedGeocoder allows rps requests per second with the given burst.
// rps may be fractional for slower-than-one-per-second providers.
func NewRateLimitedGeocoder(repo GeocodeRepository, rps float64, burst int) *RateLimitedGeocoder {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitedGeocoder{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedGeocoder) Name() string {
	return r.repo.Name()
}

func (r *RateLimitedGeocoder) Geocode(ctx context.Context, location string) (*models.Coordinates, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.repo.Geocode(ctx, location)
}

// RateLimitedForecaster wraps a ForecastRepository with a token-bucket limiter.
type RateLimitedForecaster struct {
	repo    ForecastRepository
	limiter *rate.Limiter
}

func NewRateLimitedForecaster(repo ForecastRepository, rps float64, burst int) *RateLimitedForecaster {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitedForecaster{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedForecaster) Name() string {
	return r.repo.Name()
}

func (r *RateLimitedForecaster) FetchForecast(ctx context.Context, coords models.Coordinates) (*models.ForecastBundle, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.repo.FetchForecast(ctx, coords)
}

func (r *RateLimitedForecaster) CurrentConditions(ctx context.Context, coords models.Coordinates) (*models.Observation, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.repo.CurrentConditions(ctx, coords)
}
