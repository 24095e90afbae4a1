package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"weather-chat/internal/models"
)

// WeatherQueryRequest is a natural-language weather question.
type WeatherQueryRequest struct {
	Query     string `json:"query" example:"Will it rain in Denver on Sunday?"`
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// WeatherQueryResponse carries the composed answer back to the caller.
type WeatherQueryResponse struct {
	Response   string `json:"response"`
	Query      string `json:"query"`
	UserID     string `json:"user_id,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	Timestamp  string `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	AIEnhanced bool   `json:"ai_enhanced"`
}

// ErrorResponse represents a structured error
type ErrorResponse struct {
	Error   string `json:"error" example:"Missing query parameter"`
	Message string `json:"message" example:"Please provide a weather query"`
}

// HealthResponse reports service liveness metadata
type HealthResponse struct {
	Status         string `json:"status" example:"healthy"`
	Service        string `json:"service" example:"weather-chat"`
	Version        string `json:"version" example:"1.0.0"`
	AIModelEnabled bool   `json:"ai_model_enabled"`
}

// HandleWeatherQuery godoc
// @Summary Answer a natural-language weather question
// @Description Extracts location/time/intent from the query, resolves the location, fetches an NWS forecast and composes a conversational answer
// @Tags Weather
// @Accept json
// @Produce json
// @Param request body WeatherQueryRequest true "Weather question"
// @Success 200 {object} WeatherQueryResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - missing query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /weather [post]
func (r *routes) handleWeatherQuery(c *fiber.Ctx) error {
	var req WeatherQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Invalid request body",
			Message: "Request body must be a JSON object with a query field",
		})
	}

	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Missing query parameter",
			Message: "Please provide a weather query",
		})
	}

	requestID := uuid.NewString()
	r.l.Info("received weather query", map[string]any{
		"request_id": requestID,
		"query":      req.Query,
		"user_id":    req.UserID,
	})

	responseText := r.service.Respond(c.Context(), req.Query)

	r.l.Info("generated response", map[string]any{
		"request_id":  requestID,
		"ai_enhanced": r.service.AIEnhanced(),
		"response":    responseText,
	})

	return c.JSON(WeatherQueryResponse{
		Response:   responseText,
		Query:      req.Query,
		UserID:     req.UserID,
		SessionID:  req.SessionID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		AIEnhanced: r.service.AIEnhanced(),
	})
}

// HandleCurrentConditions godoc
// @Summary Get current conditions
// @Description Returns the latest observation from the NWS station nearest to the coordinates
// @Tags Weather
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(39.7392)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-104.9903)
// @Success 200 {object} models.Observation "Latest observation"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /weather/current [get]
func (r *routes) handleCurrentConditions(c *fiber.Ctx) error {
	lat := c.Query("lat")
	lon := c.Query("lon")

	if lat == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Missing required parameter: lat",
			Message: "Provide lat and lon query parameters",
		})
	}

	if lon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Missing required parameter: lon",
			Message: "Provide lat and lon query parameters",
		})
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Invalid latitude format",
			Message: "Latitude must be a number",
		})
	}

	if latFloat < -90 || latFloat > 90 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Latitude must be between -90 and 90",
			Message: "Latitude out of range",
		})
	}

	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Invalid longitude format",
			Message: "Longitude must be a number",
		})
	}

	if lonFloat < -180 || lonFloat > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Longitude must be between -180 and 180",
			Message: "Longitude out of range",
		})
	}

	obs, err := r.service.CurrentConditions(c.Context(), models.Coordinates{Lat: latFloat, Lon: lonFloat})
	if err != nil {
		r.l.Error(err, map[string]any{"lat": latFloat, "lon": lonFloat})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Failed to fetch current conditions",
			Message: "The weather provider did not return an observation",
		})
	}

	return c.JSON(obs)
}

// HandleHealth godoc
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (r *routes) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:         "healthy",
		Service:        r.appName,
		Version:        r.appVersion,
		AIModelEnabled: r.service.AIEnhanced(),
	})
}

// HandleCapabilities godoc
// @Summary Service capabilities
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]any
// @Router /capabilities [get]
func (r *routes) handleCapabilities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":             r.appName,
		"version":          r.appVersion,
		"description":      "A friendly weather assistant that provides weather information through natural language queries",
		"ai_model_enabled": r.service.AIEnhanced(),
		"capabilities": fiber.Map{
			"weather_queries": fiber.Map{
				"description": "Process natural language weather queries",
				"examples": []string{
					"Will it rain in Denver on Sunday?",
					"What's the temperature in New York today?",
					"Is it going to snow in Seattle this weekend?",
				},
			},
			"ai_enhancement": fiber.Map{
				"description": "AI-powered query understanding and response generation",
				"enabled":     r.service.AIEnhanced(),
				"features": []string{
					"Natural language location extraction",
					"Contextual response generation",
					"Intent recognition",
					"Conversational responses",
				},
			},
		},
	})
}
