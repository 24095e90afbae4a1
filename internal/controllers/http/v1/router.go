package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-chat/internal/services/assistant"
	"weather-chat/pkg/observe"
)

type routes struct {
	service    *assistant.AssistantService
	l          *observe.Logger
	appName    string
	appVersion string
}

func NewRouter(
	app *fiber.App,
	service *assistant.AssistantService,
	appName, appVersion string,
	l *observe.Logger,
) {
	r := &routes{
		service:    service,
		l:          l,
		appName:    appName,
		appVersion: appVersion,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile("docs/swagger.json")
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/", r.handleHealth)
	app.Get("/health", r.handleHealth)
	app.Get("/capabilities", r.handleCapabilities)
	app.Post("/weather", r.handleWeatherQuery)
	app.Get("/weather/current", r.handleCurrentConditions)
}
