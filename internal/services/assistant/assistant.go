// Package assistant holds the query-to-answer pipeline: extraction strategy,
// forecast period selection, response composition and the orchestration
// between them and the external geocoding/forecast providers.
package assistant

import (
	"context"
	"fmt"

	"weather-chat/internal/models"
	"weather-chat/internal/repositories"
	"weather-chat/pkg/observe"
)

// AssistantService runs a query through parse, geocode, fetch and compose.
// It holds no per-request state and is safe for concurrent use. It never
// returns an error to its caller: every failure becomes a user-facing
// sentence.
type AssistantService struct {
	strategy   Strategy
	aiEnhanced bool
	geo        repositories.GeocodeRepository
	forecast   repositories.ForecastRepository
	l          *observe.Logger
}

func NewAssistantService(
	strategy Strategy,
	aiEnhanced bool,
	geo repositories.GeocodeRepository,
	forecast repositories.ForecastRepository,
	l *observe.Logger,
) *AssistantService {
	return &AssistantService{
		strategy:   strategy,
		aiEnhanced: aiEnhanced,
		geo:        geo,
		forecast:   forecast,
		l:          l,
	}
}

// AIEnhanced reports whether the language-model strategy is live.
func (s *AssistantService) AIEnhanced() bool {
	return s.aiEnhanced
}

// Respond answers a natural-language weather query.
func (s *AssistantService) Respond(ctx context.Context, q string) string {
	parsed := s.strategy.Extract(ctx, q)

	s.l.Info("parsed weather query", map[string]any{
		"strategy":     s.strategy.Name(),
		"location":     parsed.Location,
		"weather_type": parsed.WeatherType,
	})

	if parsed.Location == "" {
		return "I couldn't understand the location in your query. Please try asking about a specific city or area."
	}

	coords, err := s.geo.Geocode(ctx, PrepareLocation(parsed.Location))
	if err != nil {
		s.l.Error(err, map[string]any{"location": parsed.Location})
		coords = nil
	}
	if coords == nil {
		return fmt.Sprintf("I couldn't find weather information for %s. Please check the location name and try again.", parsed.Location)
	}

	forecast, err := s.forecast.FetchForecast(ctx, *coords)
	if err != nil {
		// A failed fetch degrades to an absent forecast; the composer
		// apologizes instead of the request failing.
		s.l.Warning("failed to fetch forecast", map[string]any{
			"params": coords.RequestParams(),
			"err":    err,
		})
		forecast = nil
	}

	return s.strategy.Compose(ctx, parsed, forecast)
}

// CurrentConditions returns the latest station observation for coordinates.
// Used by the current-conditions endpoint, outside the chat pipeline.
func (s *AssistantService) CurrentConditions(ctx context.Context, coords models.Coordinates) (*models.Observation, error) {
	return s.forecast.CurrentConditions(ctx, coords)
}
