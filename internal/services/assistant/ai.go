package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"weather-chat/config"
	"weather-chat/internal/models"
	"weather-chat/internal/query"
	"weather-chat/pkg/observe"
)

const extractSystemPrompt = `You are a weather query parser. Extract the following information from weather queries:
- location: The city, state, or area mentioned
- time_reference: When the user is asking about (today, tomorrow, Sunday, etc.)
- weather_intent: What weather condition they're asking about (rain, snow, temperature, etc.)
- is_question: Whether they're asking a yes/no question or requesting general info

Return the information as a JSON object with these exact keys.`

const composeSystemPrompt = `You are a friendly weather assistant. Generate a natural, conversational response to weather queries.

Guidelines:
- Be conversational and friendly
- Answer the specific question asked
- Include relevant weather details (temperature, conditions)
- If asked about specific weather (rain, snow), give a clear yes/no answer
- Keep responses concise but informative
- Use the weather data provided to give accurate information`

// ChatModel is the slice of the eino chat-model surface the strategy calls.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// AIStrategy extracts and composes through a language model. Every failure
// mode (transport error, empty completion, completion without a parsable
// JSON object) falls back to deterministic rules; the caller never sees an
// error.
type AIStrategy struct {
	cm ChatModel
	l  *observe.Logger
}

func NewAIStrategy(cm ChatModel, l *observe.Logger) *AIStrategy {
	return &AIStrategy{cm: cm, l: l}
}

func (s *AIStrategy) Name() string {
	return "ai"
}

// NewStrategy builds the configured strategy. When the AI path is enabled
// but the chat model cannot be constructed, the service degrades to the
// rule-based strategy with a warning; the second return value reports
// whether the AI path is live.
func NewStrategy(ctx context.Context, cfg *config.Config, l *observe.Logger) (Strategy, bool) {
	if !cfg.LLM.Enabled {
		return RuleStrategy{}, false
	}

	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})
	if err != nil {
		l.Warning("failed to initialize chat model, falling back to rule-based strategy", map[string]any{"err": err})
		return RuleStrategy{}, false
	}

	l.Info("chat model initialized", map[string]any{"model": cfg.LLM.Model})
	return NewAIStrategy(cm, l), true
}

// Extract asks the model to parse the query and normalizes its JSON answer
// into a ParsedQuery. Any failure runs the simplified fallback extraction
// instead.
func (s *AIStrategy) Extract(ctx context.Context, q string) models.ParsedQuery {
	extracted := s.extract(ctx, q)
	return models.ParsedQuery{
		Location:      extracted.Location,
		TargetDay:     query.ResolveTimeReference(extracted.TimeReference),
		WeatherType:   extracted.WeatherIntent,
		OriginalQuery: q,
		IsQuestion:    extracted.IsQuestion,
		AIExtracted:   &extracted,
	}
}

func (s *AIStrategy) extract(ctx context.Context, q string) models.AIExtraction {
	messages := []*schema.Message{
		{Role: schema.System, Content: extractSystemPrompt},
		{Role: schema.User, Content: fmt.Sprintf("Parse this weather query: %s", q)},
	}

	resp, err := s.cm.Generate(ctx, messages)
	if err != nil || resp == nil {
		if err != nil {
			s.l.Warning("chat model extraction failed, using fallback parsing", map[string]any{"err": err})
		}
		return FallbackExtraction(q)
	}

	jsonStr, ok := extractJSONObject(resp.Content)
	if !ok {
		s.l.Warning("no JSON object in model response, using fallback parsing", map[string]any{"response": resp.Content})
		return FallbackExtraction(q)
	}

	var extracted models.AIExtraction
	if err := json.Unmarshal([]byte(jsonStr), &extracted); err != nil {
		s.l.Warning("failed to parse model response, using fallback parsing", map[string]any{"err": err})
		return FallbackExtraction(q)
	}

	s.l.Info("model extracted query info", map[string]any{
		"location":       extracted.Location,
		"time_reference": extracted.TimeReference,
		"weather_intent": extracted.WeatherIntent,
	})

	return extracted
}

// Compose asks the model for a conversational answer built on the forecast.
// A failed or empty completion degrades to the fallback composition.
func (s *AIStrategy) Compose(ctx context.Context, parsed models.ParsedQuery, forecast *models.ForecastBundle) string {
	extracted := models.AIExtraction{}
	if parsed.AIExtracted != nil {
		extracted = *parsed.AIExtracted
	}

	userPrompt := fmt.Sprintf(`User Query: %q

Extracted Information:
- Location: %s
- Time: %s
- Weather Intent: %s
- Is Question: %t

Weather Data: %s

Generate a friendly, conversational response that directly answers the user's question.`,
		parsed.OriginalQuery,
		orDefault(extracted.Location, "unknown"),
		orDefault(extracted.TimeReference, "current"),
		orDefault(extracted.WeatherIntent, "general"),
		extracted.IsQuestion,
		weatherSummary(forecast),
	)

	messages := []*schema.Message{
		{Role: schema.System, Content: composeSystemPrompt},
		{Role: schema.User, Content: userPrompt},
	}

	resp, err := s.cm.Generate(ctx, messages)
	if err != nil || resp == nil || resp.Content == "" {
		if err != nil {
			s.l.Warning("chat model composition failed, using fallback response", map[string]any{"err": err})
		}
		return FallbackResponse(parsed, forecast)
	}

	return strings.TrimSpace(resp.Content)
}

// FallbackExtraction is the simplified rule parser used when the model path
// fails. It is deliberately cruder than query.Extract: single-token location
// after " in ", a shorter intent vocabulary with a combined temperature
// bucket. The two parsers are independent on purpose; do not unify them.
func FallbackExtraction(q string) models.AIExtraction {
	queryLower := strings.ToLower(q)

	var location string
	if parts := strings.Split(queryLower, " in "); len(parts) > 1 {
		if fields := strings.Fields(parts[1]); len(fields) > 0 {
			location = strings.TrimSpace(fields[0])
		}
	}

	var timeRef string
	for _, kw := range []string{"today", "tomorrow", "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		if strings.Contains(queryLower, kw) {
			timeRef = kw
			break
		}
	}

	fallbackIntents := []struct {
		Intent   string
		Keywords []string
	}{
		{"rain", []string{"rain", "raining", "rainy"}},
		{"snow", []string{"snow", "snowing", "snowy"}},
		{"temperature", []string{"temperature", "temp", "hot", "cold", "warm"}},
		{"sunny", []string{"sunny", "sun", "clear"}},
		{"cloudy", []string{"cloudy", "clouds", "overcast"}},
	}

	var intent string
	for _, fi := range fallbackIntents {
		for _, kw := range fi.Keywords {
			if strings.Contains(queryLower, kw) {
				intent = fi.Intent
				break
			}
		}
		if intent != "" {
			break
		}
	}

	return models.AIExtraction{
		Location:      location,
		TimeReference: timeRef,
		WeatherIntent: intent,
		IsQuestion:    query.IsQuestion(q),
	}
}

// FallbackResponse composes an answer without the model. Unlike the
// rule-based composer it always reads the first period; it mirrors what the
// AI path promises, not what the rule strategy does.
func FallbackResponse(parsed models.ParsedQuery, forecast *models.ForecastBundle) string {
	location := "the area"
	var intent string
	if parsed.AIExtracted != nil {
		if parsed.AIExtracted.Location != "" {
			location = parsed.AIExtracted.Location
		}
		intent = parsed.AIExtracted.WeatherIntent
	}

	if forecast == nil {
		return fmt.Sprintf("I'm sorry, I couldn't get weather information for %s right now. Please try again later!", location)
	}
	if len(forecast.Periods) == 0 {
		return fmt.Sprintf("I couldn't find detailed weather information for %s.", location)
	}

	period := forecast.Periods[0]
	unit := period.TemperatureUnit
	if unit == "" {
		unit = "F"
	}
	tail := fmt.Sprintf("Temperature will be around %d°%s. %s", period.Temperature, unit, period.ShortForecast)

	switch intent {
	case "rain":
		if containsAny(strings.ToLower(period.ShortForecast), rainWords) {
			return fmt.Sprintf("Yes, there's a chance of rain in %s! %s", location, tail)
		}
		return fmt.Sprintf("No, it doesn't look like it will rain in %s. %s", location, tail)
	case "snow":
		if containsAny(strings.ToLower(period.ShortForecast), snowWords) {
			return fmt.Sprintf("Yes, there's a chance of snow in %s! %s", location, tail)
		}
		return fmt.Sprintf("No, it doesn't look like it will snow in %s. %s", location, tail)
	default:
		return fmt.Sprintf("Here's the weather for %s: %s", location, tail)
	}
}

// weatherSummary renders the first forecast period for the composition
// prompt.
func weatherSummary(forecast *models.ForecastBundle) string {
	if forecast == nil {
		return "No weather data available"
	}
	if len(forecast.Periods) == 0 {
		return "No weather forecast available"
	}

	period := forecast.Periods[0]
	unit := period.TemperatureUnit
	if unit == "" {
		unit = "F"
	}
	return fmt.Sprintf(`Period: %s
Temperature: %d°%s
Short Forecast: %s
Detailed Forecast: %s`,
		period.Name, period.Temperature, unit, period.ShortForecast, period.DetailedForecast)
}

// extractJSONObject pulls the substring between the first "{" and the last
// "}" out of a free-form completion.
func extractJSONObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
