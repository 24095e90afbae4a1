// Package query turns a free-text weather question into a structured
// ParsedQuery using deterministic rules. It is the fallback path when the
// language model is disabled or unavailable, and it never fails: unmatched
// fields come back empty.
package query

import (
	"regexp"
	"strings"

	"weather-chat/internal/models"
)

// locationStopWords end the word scan after "in" when looking for a location.
var locationStopWords = []string{
	"on", "today", "tomorrow", "this", "next", "will", "is", "going", "be", "the", "area", "tonight", "?",
}

// locationPatterns is a cascade of fallback matchers tried in order when the
// plain " in " scan finds nothing. Order matters: each pattern is weaker than
// the one before it.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`in ([a-zA-Z\s]+?)(?:\s+(?:on|today|tomorrow|this|next|will|is|going|be|the|area|tonight))`),
	regexp.MustCompile(`in ([a-zA-Z\s]+?)(?:\?|$)`),
	regexp.MustCompile(`([a-zA-Z\s]+?)(?:\s+(?:on|today|tomorrow|this|next))`),
	regexp.MustCompile(`([a-zA-Z\s]+?)(?:\?|$)`),
}

var (
	collapseSpaces  = regexp.MustCompile(`\s+`)
	locationFillers = regexp.MustCompile(`\b(area|tonight|today|tomorrow|this|next|will|is|going|be|the)\b`)
)

// timeKeywords maps time words to the day index used by period selection.
// Scan order is significant: today/tomorrow are checked before weekday names.
// Note the index collisions (today and monday both map to 0, tomorrow and
// tuesday both to 1): this reproduces the table the service has always used.
var timeKeywords = []struct {
	Word string
	Day  int
}{
	{"today", 0},
	{"tomorrow", 1},
	{"sunday", 6},
	{"monday", 0},
	{"tuesday", 1},
	{"wednesday", 2},
	{"thursday", 3},
	{"friday", 4},
	{"saturday", 5},
}

// weatherIntents maps an intent to the keywords that signal it. Iteration
// order is fixed for deterministic tie-breaking.
var weatherIntents = []struct {
	Intent   string
	Keywords []string
}{
	{"rain", []string{"rain", "raining", "rainy", "precipitation"}},
	{"snow", []string{"snow", "snowing", "snowy"}},
	{"sunny", []string{"sunny", "clear", "sun"}},
	{"cloudy", []string{"cloudy", "clouds", "overcast"}},
	{"windy", []string{"windy", "wind"}},
	{"hot", []string{"hot", "warm", "temperature"}},
	{"cold", []string{"cold", "cool", "freezing"}},
}

var questionWords = []string{"will", "is", "going", "be"}

// Extract parses a weather query into its location, target day and weather
// intent. Best effort: a field that cannot be determined is left empty/nil.
func Extract(q string) models.ParsedQuery {
	queryLower := strings.ToLower(q)

	location := extractLocation(queryLower)

	var targetDay *int
	for _, tk := range timeKeywords {
		if strings.Contains(queryLower, tk.Word) {
			day := tk.Day
			targetDay = &day
			break
		}
	}

	var weatherType string
	for _, wi := range weatherIntents {
		for _, kw := range wi.Keywords {
			if strings.Contains(queryLower, kw) {
				weatherType = wi.Intent
				break
			}
		}
		if weatherType != "" {
			break
		}
	}

	return models.ParsedQuery{
		Location:      location,
		TargetDay:     targetDay,
		WeatherType:   weatherType,
		OriginalQuery: q,
		IsQuestion:    IsQuestion(q),
	}
}

// IsQuestion reports whether the query reads as a question: it carries a
// question mark or one of the usual question words.
func IsQuestion(q string) bool {
	if strings.Contains(q, "?") {
		return true
	}
	queryLower := strings.ToLower(q)
	for _, w := range questionWords {
		if strings.Contains(queryLower, w) {
			return true
		}
	}
	return false
}

func extractLocation(queryLower string) string {
	var location string

	// Prefer the explicit "in <place>" form: take words after the first
	// " in " until a stop word.
	if parts := strings.Split(queryLower, " in "); len(parts) > 1 {
		var words []string
		for _, word := range strings.Fields(parts[1]) {
			if isStopWord(word) {
				break
			}
			words = append(words, word)
		}
		if len(words) > 0 {
			location = strings.TrimSpace(strings.Join(words, " "))
			location = strings.TrimSpace(strings.TrimRight(location, "?"))
			// The stop-word scan can still let a time word through when it
			// is glued to the location span; strip those as well.
			for _, timeWord := range []string{"today", "tomorrow", "tonight"} {
				location = strings.TrimSpace(strings.ReplaceAll(location, timeWord, ""))
			}
		}
	}

	if location == "" {
		for _, pattern := range locationPatterns {
			m := pattern.FindStringSubmatch(queryLower)
			if m == nil {
				continue
			}
			candidate := strings.TrimSpace(m[1])
			candidate = strings.TrimSpace(collapseSpaces.ReplaceAllString(candidate, " "))
			candidate = strings.TrimSpace(locationFillers.ReplaceAllString(candidate, ""))
			if len(candidate) > 1 {
				location = candidate
				break
			}
		}
	}

	return location
}

func isStopWord(word string) bool {
	for _, sw := range locationStopWords {
		if word == sw {
			return true
		}
	}
	return false
}

// ResolveTimeReference maps a time word ("today", "sunday") to the day index
// used to pick a forecast period. Unknown words resolve to nil.
func ResolveTimeReference(timeRef string) *int {
	if timeRef == "" {
		return nil
	}
	for _, tk := range timeKeywords {
		if tk.Word == strings.ToLower(timeRef) {
			day := tk.Day
			return &day
		}
	}
	return nil
}
