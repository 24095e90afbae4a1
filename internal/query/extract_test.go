package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-chat/internal/query"
)

func TestExtract_RainInDenverOnSunday(t *testing.T) {
	result := query.Extract("Will it rain in Denver on Sunday?")

	assert.Equal(t, "denver", result.Location)
	assert.Equal(t, "rain", result.WeatherType)
	require.NotNil(t, result.TargetDay)
	assert.Equal(t, 6, *result.TargetDay)
	assert.True(t, result.IsQuestion)
	assert.Equal(t, "Will it rain in Denver on Sunday?", result.OriginalQuery)
}

func TestExtract_TemperatureInNewYorkToday(t *testing.T) {
	result := query.Extract("What's the temperature in New York today?")

	assert.Equal(t, "new york", result.Location)
	require.NotNil(t, result.TargetDay)
	assert.Equal(t, 0, *result.TargetDay)
	// "temperature" lands in the hot bucket.
	assert.Equal(t, "hot", result.WeatherType)
}

func TestExtract_MultiWordLocation(t *testing.T) {
	result := query.Extract("Is it going to snow in Salt Lake City tomorrow?")

	assert.Equal(t, "salt lake city", result.Location)
	assert.Equal(t, "snow", result.WeatherType)
	require.NotNil(t, result.TargetDay)
	assert.Equal(t, 1, *result.TargetDay)
}

func TestExtract_LocationStopsAtStopWord(t *testing.T) {
	result := query.Extract("What's the weather in Boston this weekend")

	assert.Equal(t, "boston", result.Location)
}

func TestExtract_EmbeddedTimeWordStripped(t *testing.T) {
	// "today?" slips past the stop-word scan; the span cleanup removes it.
	result := query.Extract("weather in seattle today?")

	assert.Equal(t, "seattle", result.Location)
}

func TestExtract_NoLocation(t *testing.T) {
	result := query.Extract("today?")

	assert.Empty(t, result.Location)
	require.NotNil(t, result.TargetDay)
	assert.Equal(t, 0, *result.TargetDay)
	assert.True(t, result.IsQuestion)
}

func TestExtract_WithoutLocationStillReturnsResult(t *testing.T) {
	result := query.Extract("What's the weather like?")

	assert.Equal(t, "What's the weather like?", result.OriginalQuery)
	assert.True(t, result.IsQuestion)
}

func TestExtract_RegexCascadeWithoutInKeyword(t *testing.T) {
	// No " in " present: the regex cascade picks up the location.
	result := query.Extract("Denver on sunday")

	assert.Equal(t, "denver", result.Location)
	require.NotNil(t, result.TargetDay)
	assert.Equal(t, 6, *result.TargetDay)
}

func TestExtract_TodayWinsOverWeekday(t *testing.T) {
	// Scan order is fixed: today is checked before weekday names.
	result := query.Extract("weather in denver today or sunday")

	require.NotNil(t, result.TargetDay)
	assert.Equal(t, 0, *result.TargetDay)
}

func TestExtract_IntentOrderIsDeterministic(t *testing.T) {
	// rain is checked before sunny, so a query with both yields rain.
	result := query.Extract("will it be rainy or sunny in portland")

	assert.Equal(t, "rain", result.WeatherType)
}

func TestExtract_WeatherIntents(t *testing.T) {
	tests := []struct {
		query  string
		intent string
	}{
		{"will it rain in denver", "rain"},
		{"chance of precipitation in denver", "rain"},
		{"is it snowing in boston", "snow"},
		{"is it clear in phoenix", "sunny"},
		{"is it overcast in seattle", "cloudy"},
		{"how windy is it in chicago", "windy"},
		{"is it warm in miami", "hot"},
		{"is it freezing in fargo", "cold"},
	}

	for _, tt := range tests {
		result := query.Extract(tt.query)
		assert.Equal(t, tt.intent, result.WeatherType, "query: %s", tt.query)
	}
}

func TestIsQuestion(t *testing.T) {
	assert.True(t, query.IsQuestion("Will it rain in Denver?"))
	assert.True(t, query.IsQuestion("is it cold"))
	assert.True(t, query.IsQuestion("weather tomorrow?"))
	assert.False(t, query.IsQuestion("weather forecast denver"))
}

func TestResolveTimeReference(t *testing.T) {
	tests := []struct {
		word string
		day  int
	}{
		{"today", 0},
		{"tomorrow", 1},
		{"monday", 0},
		{"tuesday", 1},
		{"wednesday", 2},
		{"thursday", 3},
		{"friday", 4},
		{"saturday", 5},
		{"sunday", 6},
		{"Sunday", 6},
	}

	for _, tt := range tests {
		day := query.ResolveTimeReference(tt.word)
		require.NotNil(t, day, "word: %s", tt.word)
		assert.Equal(t, tt.day, *day, "word: %s", tt.word)
	}

	assert.Nil(t, query.ResolveTimeReference(""))
	assert.Nil(t, query.ResolveTimeReference("next week"))
}

// today and monday share index 0, tomorrow and tuesday share index 1. The
// table has always been this way; this pins the behavior down so a change is
// a deliberate decision, not an accident.
func TestResolveTimeReference_KnownDayIndexCollision(t *testing.T) {
	today := query.ResolveTimeReference("today")
	monday := query.ResolveTimeReference("monday")
	require.NotNil(t, today)
	require.NotNil(t, monday)
	assert.Equal(t, *today, *monday)

	tomorrow := query.ResolveTimeReference("tomorrow")
	tuesday := query.ResolveTimeReference("tuesday")
	require.NotNil(t, tomorrow)
	require.NotNil(t, tuesday)
	assert.Equal(t, *tomorrow, *tuesday)
}
