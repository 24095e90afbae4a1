package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"weather-chat/internal/models"
	"weather-chat/pkg/observe"
)

const NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// NominatimRepository geocodes location strings through the OpenStreetMap
// Nominatim API.
type NominatimRepository struct {
	BaseURL    string
	UserAgent  string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewNominatimRepository(baseURL, userAgent string, httpClient HTTPClient, l *observe.Logger) *NominatimRepository {
	if baseURL == "" {
		baseURL = NominatimBaseURL
	}
	return &NominatimRepository{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		httpClient: httpClient,
		l:          l,
	}
}

func (n *NominatimRepository) Name() string {
	return "nominatim"
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a location string to coordinates. Returns (nil, nil) when
// the provider has no match for the location.
func (n *NominatimRepository) Geocode(ctx context.Context, location string) (*models.Coordinates, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("format", "json")
	params.Set("limit", "1")
	requestURL := n.BaseURL + "?" + params.Encode()

	n.l.Info("making geocoding request", map[string]any{"location": location})

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", n.UserAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if len(results) == 0 {
		n.l.Warning("no geocoding results", map[string]any{"location": location})
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", results[0].Lon, err)
	}

	coords := &models.Coordinates{Lat: lat, Lon: lon}

	n.l.Info("geocoded location", map[string]any{
		"location": location,
		"params":   coords.RequestParams(),
	})

	return coords, nil
}
