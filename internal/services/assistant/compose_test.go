package assistant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-chat/internal/models"
	"weather-chat/internal/services/assistant"
)

func intPtr(i int) *int { return &i }

func samplePeriods() []models.ForecastPeriod {
	return []models.ForecastPeriod{
		{Name: "Today", Temperature: 75, TemperatureUnit: "F", ShortForecast: "Sunny", DetailedForecast: "Sunny with clear skies"},
		{Name: "Tonight", Temperature: 55, TemperatureUnit: "F", ShortForecast: "Clear", DetailedForecast: "Clear skies"},
		{Name: "Sunday", Temperature: 45, TemperatureUnit: "F", ShortForecast: "Rain showers likely", DetailedForecast: "Rain showers with cloudy conditions"},
		{Name: "Sunday Night", Temperature: 38, TemperatureUnit: "F", ShortForecast: "Cloudy", DetailedForecast: "Mostly cloudy"},
	}
}

func TestSelectPeriod_NoTargetDayReturnsFirst(t *testing.T) {
	period := assistant.SelectPeriod(samplePeriods(), nil)

	require.NotNil(t, period)
	assert.Equal(t, "Today", period.Name)
}

func TestSelectPeriod_TargetDayMatchesByName(t *testing.T) {
	period := assistant.SelectPeriod(samplePeriods(), intPtr(6))

	require.NotNil(t, period)
	assert.Equal(t, "Sunday", period.Name)
}

func TestSelectPeriod_NoMatchReturnsNil(t *testing.T) {
	// index 2 is wednesday; no period carries that name
	period := assistant.SelectPeriod(samplePeriods(), intPtr(2))

	assert.Nil(t, period)
}

func TestSelectPeriod_EmptyPeriods(t *testing.T) {
	assert.Nil(t, assistant.SelectPeriod(nil, nil))
	assert.Nil(t, assistant.SelectPeriod([]models.ForecastPeriod{}, intPtr(3)))
}

func TestSelectPeriod_Idempotent(t *testing.T) {
	periods := samplePeriods()

	first := assistant.SelectPeriod(periods, intPtr(6))
	second := assistant.SelectPeriod(periods, intPtr(6))

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

// "today" resolves to day index 0, which is monday in the selection table,
// so a "today" query against a week of periods picks Monday. Known quirk of
// the day table, reproduced deliberately.
func TestSelectPeriod_TodayIndexSelectsMonday(t *testing.T) {
	periods := []models.ForecastPeriod{
		{Name: "Monday", Temperature: 60, TemperatureUnit: "F", ShortForecast: "Sunny"},
		{Name: "Tuesday", Temperature: 62, TemperatureUnit: "F", ShortForecast: "Cloudy"},
	}

	period := assistant.SelectPeriod(periods, intPtr(0))

	require.NotNil(t, period)
	assert.Equal(t, "Monday", period.Name)
}

func TestCompose_RainQuestionWithShowers(t *testing.T) {
	parsed := models.ParsedQuery{
		Location:    "denver",
		WeatherType: "rain",
		TargetDay:   intPtr(6),
	}
	forecast := &models.ForecastBundle{Periods: samplePeriods()}

	response := assistant.RuleStrategy{}.Compose(context.Background(), parsed, forecast)

	assert.Contains(t, response, "Yes, there's a chance of rain in denver!")
	assert.Contains(t, response, "Temperature will be around 45°F.")
	assert.Contains(t, response, "Rain showers likely")
}

func TestCompose_RainQuestionSunnyForecast(t *testing.T) {
	parsed := models.ParsedQuery{
		Location:    "denver",
		WeatherType: "rain",
	}
	forecast := &models.ForecastBundle{Periods: []models.ForecastPeriod{
		{Name: "Sunday", Temperature: 75, TemperatureUnit: "F", ShortForecast: "Sunny", DetailedForecast: "Clear and sunny"},
	}}

	response := assistant.RuleStrategy{}.Compose(context.Background(), parsed, forecast)

	assert.True(t, len(response) > 0)
	assert.Contains(t, response, "No, it doesn't look like it will rain in denver.")
	assert.Contains(t, response, "75")
}

func TestCompose_SnowQuestion(t *testing.T) {
	parsed := models.ParsedQuery{Location: "boston", WeatherType: "snow"}
	forecast := &models.ForecastBundle{Periods: []models.ForecastPeriod{
		{Name: "Today", Temperature: 28, TemperatureUnit: "F", ShortForecast: "Snow likely"},
	}}

	response := assistant.RuleStrategy{}.Compose(context.Background(), parsed, forecast)

	assert.Contains(t, response, "Yes, there's a chance of snow in boston!")
}

func TestCompose_GeneralIntent(t *testing.T) {
	parsed := models.ParsedQuery{Location: "chicago", WeatherType: "hot"}
	forecast := &models.ForecastBundle{Periods: samplePeriods()}

	response := assistant.RuleStrategy{}.Compose(context.Background(), parsed, forecast)

	assert.Contains(t, response, "Here's the weather for chicago:")
	assert.Contains(t, response, "Temperature will be around 75°F.")
	assert.Contains(t, response, "Sunny")
}

func TestCompose_NilForecast(t *testing.T) {
	parsed := models.ParsedQuery{Location: "denver"}

	response := assistant.RuleStrategy{}.Compose(context.Background(), parsed, nil)

	assert.Equal(t, "I'm sorry, I couldn't get weather information for denver right now. Please try again later!", response)
}

func TestCompose_EmptyPeriods(t *testing.T) {
	parsed := models.ParsedQuery{Location: "denver"}
	forecast := &models.ForecastBundle{}

	response := assistant.RuleStrategy{}.Compose(context.Background(), parsed, forecast)

	assert.Equal(t, "I couldn't find detailed weather information for denver.", response)
}

func TestCompose_NoPeriodForRequestedDay(t *testing.T) {
	parsed := models.ParsedQuery{Location: "denver", TargetDay: intPtr(2)}
	forecast := &models.ForecastBundle{Periods: samplePeriods()}

	response := assistant.RuleStrategy{}.Compose(context.Background(), parsed, forecast)

	assert.Equal(t, "I couldn't find weather information for the specific time you mentioned in denver.", response)
}

func TestCompose_MissingLocationNamesTheArea(t *testing.T) {
	response := assistant.RuleStrategy{}.Compose(context.Background(), models.ParsedQuery{}, nil)

	assert.Contains(t, response, "the area")
}

func TestCompose_ZeroTemperatureOmitted(t *testing.T) {
	parsed := models.ParsedQuery{Location: "fargo"}
	forecast := &models.ForecastBundle{Periods: []models.ForecastPeriod{
		{Name: "Today", Temperature: 0, TemperatureUnit: "F", ShortForecast: "Bitter cold"},
	}}

	response := assistant.RuleStrategy{}.Compose(context.Background(), parsed, forecast)

	assert.NotContains(t, response, "Temperature")
	assert.Contains(t, response, "Bitter cold")
}

func TestPrepareLocation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"boston", "boston, USA"},
		{"in boston", "boston, USA"},
		{"denver, co", "denver, co"},
		{"new york city", "new york city"},
		{"  seattle  ", "seattle, USA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, assistant.PrepareLocation(tt.in), "input: %q", tt.in)
	}
}

// The region check is a bare substring match, so "ca" inside "chicago" and
// "nv" inside "denver" suppress the ", USA" suffix. Crude, but long-standing
// behavior.
func TestPrepareLocation_SubstringHintQuirk(t *testing.T) {
	assert.Equal(t, "chicago", assistant.PrepareLocation("chicago"))
	assert.Equal(t, "denver", assistant.PrepareLocation("denver"))
}
