package assistant

import (
	"fmt"
	"strings"

	"weather-chat/internal/models"
)

// dayNames indexes the day table used by period selection. Index 0 is
// monday; "today" resolves to 0 as well, so today and monday are
// indistinguishable here. That collision is long-standing behavior and is
// kept as is.
var dayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// rainWords and snowWords are the forecast-text indicators for a yes answer
// to "will it rain/snow" questions.
var (
	rainWords = []string{"rain", "shower", "precipitation"}
	snowWords = []string{"snow", "winter"}
)

// SelectPeriod picks the forecast period matching targetDay, or the first
// period when no day was asked for. Returns nil when the requested day has
// no matching period; the caller must report that rather than substitute
// another period.
func SelectPeriod(periods []models.ForecastPeriod, targetDay *int) *models.ForecastPeriod {
	if targetDay == nil {
		if len(periods) == 0 {
			return nil
		}
		return &periods[0]
	}

	if *targetDay < 0 || *targetDay >= len(dayNames) {
		return nil
	}
	dayName := dayNames[*targetDay]

	for i := range periods {
		if strings.Contains(strings.ToLower(periods[i].Name), dayName) {
			return &periods[i]
		}
	}
	return nil
}

// composeRuleResponse builds the deterministic answer from the parsed query
// and the forecast. It never fails; every degraded input maps to an
// apologetic sentence.
func composeRuleResponse(parsed models.ParsedQuery, forecast *models.ForecastBundle) string {
	location := parsed.Location
	if location == "" {
		location = "the area"
	}

	if forecast == nil {
		return fmt.Sprintf("I'm sorry, I couldn't get weather information for %s right now. Please try again later!", location)
	}

	if len(forecast.Periods) == 0 {
		return fmt.Sprintf("I couldn't find detailed weather information for %s.", location)
	}

	period := SelectPeriod(forecast.Periods, parsed.TargetDay)
	if period == nil {
		return fmt.Sprintf("I couldn't find weather information for the specific time you mentioned in %s.", location)
	}

	var parts []string

	switch parsed.WeatherType {
	case "rain":
		if containsAny(strings.ToLower(period.ShortForecast), rainWords) {
			parts = append(parts, fmt.Sprintf("Yes, there's a chance of rain in %s!", location))
		} else {
			parts = append(parts, fmt.Sprintf("No, it doesn't look like it will rain in %s.", location))
		}
	case "snow":
		if containsAny(strings.ToLower(period.ShortForecast), snowWords) {
			parts = append(parts, fmt.Sprintf("Yes, there's a chance of snow in %s!", location))
		} else {
			parts = append(parts, fmt.Sprintf("No, it doesn't look like it will snow in %s.", location))
		}
	default:
		parts = append(parts, fmt.Sprintf("Here's the weather for %s:", location))
	}

	// Zero temperature is treated as missing.
	if period.Temperature != 0 {
		unit := period.TemperatureUnit
		if unit == "" {
			unit = "F"
		}
		parts = append(parts, fmt.Sprintf("Temperature will be around %d°%s.", period.Temperature, unit))
	}

	if period.ShortForecast != "" {
		parts = append(parts, period.ShortForecast)
	}

	return strings.Join(parts, " ")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
