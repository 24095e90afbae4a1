package models

// ForecastPeriod is one named time slot ("Tonight", "Sunday") of an NWS
// forecast. Periods are supplied by the forecast provider and treated as
// read-only input.
type ForecastPeriod struct {
	Name             string `json:"name" example:"Sunday"`
	Temperature      int    `json:"temperature" example:"75"`
	TemperatureUnit  string `json:"temperatureUnit" example:"F"`
	ShortForecast    string `json:"shortForecast" example:"Sunny"`
	DetailedForecast string `json:"detailedForecast"`
}

// ForecastBundle is the ordered sequence of periods returned by the forecast
// provider for one location. A nil bundle means the provider failed.
type ForecastBundle struct {
	Periods []ForecastPeriod `json:"periods"`
}

// Observation is the latest reading from an NWS observation station.
type Observation struct {
	StationID       string   `json:"station_id"`
	Temperature     *float64 `json:"temperature"`
	TemperatureUnit string   `json:"temperature_unit"`
	TextDescription string   `json:"text_description"`
}
