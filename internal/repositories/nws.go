package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"weather-chat/internal/models"
	"weather-chat/pkg/observe"
)

const NWSBaseURL = "https://api.weather.gov"

// NWSRepository talks to the National Weather Service API. Forecasts are a
// two-step fetch: /points/{lat},{lon} yields a forecast URL, which yields the
// periods. Current conditions go through the nearest observation station.
type NWSRepository struct {
	BaseURL    string
	UserAgent  string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewNWSRepository(baseURL, userAgent string, httpClient HTTPClient, l *observe.Logger) *NWSRepository {
	if baseURL == "" {
		baseURL = NWSBaseURL
	}
	return &NWSRepository{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		httpClient: httpClient,
		l:          l,
	}
}

func (w *NWSRepository) Name() string {
	return "nws"
}

type pointsResponse struct {
	Properties struct {
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []models.ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

type stationsResponse struct {
	Features []struct {
		Properties struct {
			StationIdentifier string `json:"stationIdentifier"`
		} `json:"properties"`
	} `json:"features"`
}

type observationResponse struct {
	Properties struct {
		Temperature struct {
			Value    *float64 `json:"value"`
			UnitCode string   `json:"unitCode"`
		} `json:"temperature"`
		TextDescription string `json:"textDescription"`
	} `json:"properties"`
}

// FetchForecast returns the multi-period forecast for the given coordinates.
func (w *NWSRepository) FetchForecast(ctx context.Context, coords models.Coordinates) (*models.ForecastBundle, error) {
	w.l.Info("making NWS points request", map[string]any{"params": coords.RequestParams()})

	pointsURL := fmt.Sprintf("%s/points/%f,%f", w.BaseURL, coords.Lat, coords.Lon)
	var points pointsResponse
	if err := w.getJSON(ctx, pointsURL, &points); err != nil {
		return nil, fmt.Errorf("failed to get point metadata: %w", err)
	}

	if points.Properties.Forecast == "" {
		return nil, fmt.Errorf("points response has no forecast URL")
	}

	var forecast forecastResponse
	if err := w.getJSON(ctx, points.Properties.Forecast, &forecast); err != nil {
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	w.l.Info("parsed NWS forecast", map[string]any{"periods": len(forecast.Properties.Periods)})

	return &models.ForecastBundle{Periods: forecast.Properties.Periods}, nil
}

// CurrentConditions returns the latest observation from the station nearest
// to the given coordinates.
func (w *NWSRepository) CurrentConditions(ctx context.Context, coords models.Coordinates) (*models.Observation, error) {
	stationsURL := fmt.Sprintf("%s/points/%f,%f/stations", w.BaseURL, coords.Lat, coords.Lon)
	var stations stationsResponse
	if err := w.getJSON(ctx, stationsURL, &stations); err != nil {
		return nil, fmt.Errorf("failed to get stations: %w", err)
	}

	if len(stations.Features) == 0 {
		return nil, fmt.Errorf("no observation stations for %s", coords.RequestParams())
	}

	stationID := stations.Features[0].Properties.StationIdentifier
	obsURL := fmt.Sprintf("%s/stations/%s/observations/latest", w.BaseURL, stationID)

	var obs observationResponse
	if err := w.getJSON(ctx, obsURL, &obs); err != nil {
		return nil, fmt.Errorf("failed to get latest observation: %w", err)
	}

	return &models.Observation{
		StationID:       stationID,
		Temperature:     obs.Properties.Temperature.Value,
		TemperatureUnit: obs.Properties.Temperature.UnitCode,
		TextDescription: obs.Properties.TextDescription,
	}, nil
}

func (w *NWSRepository) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", w.UserAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}
