package models

// ParsedQuery is the structured result of extracting location, time and
// weather intent from a free-text query. It is produced once per request,
// by either the rule-based or the AI extractor, and is read-only afterward.
type ParsedQuery struct {
	Location      string `json:"location"`
	TargetDay     *int   `json:"target_day"`
	WeatherType   string `json:"weather_type"`
	OriginalQuery string `json:"original_query"`
	IsQuestion    bool   `json:"is_question"`

	// AIExtracted keeps the raw fields returned by the language model, so the
	// composer can hand full context back to it. Nil on the rule-based path.
	AIExtracted *AIExtraction `json:"ai_extracted,omitempty"`
}

// AIExtraction is the JSON object the language model is asked to produce
// when parsing a query.
type AIExtraction struct {
	Location      string `json:"location"`
	TimeReference string `json:"time_reference"`
	WeatherIntent string `json:"weather_intent"`
	IsQuestion    bool   `json:"is_question"`
}
