package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"weather-chat/config"
	_ "weather-chat/docs"
	v1 "weather-chat/internal/controllers/http/v1"
	"weather-chat/internal/repositories"
	"weather-chat/internal/services/assistant"
	"weather-chat/pkg/httpserver"
	"weather-chat/pkg/observe"
)

// @title Weather Chat API
// @version 1.0.0
// @description A conversational weather service. Send a natural-language weather question and get a friendly answer,
// @description backed by NWS forecasts with optional language-model query understanding.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Weather query operations
// @tag.name Meta
// @tag.description Health and capability metadata
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	_ = godotenv.Load()

	cnf := config.NewConfig()

	writers := []io.Writer{os.Stdout}
	if cnf.Sentry.DSN != "" {
		writers = append(writers, observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.AppEnv != "production", cnf.Sentry.DSN))
	}
	l := observe.NewZapLogger(cnf.AppName, writers...)

	app := httpserver.InitFiberServer(cnf.AppName)

	geo, forecast := repositories.InitRepositories(cnf, l)

	strategy, aiEnabled := assistant.NewStrategy(ctx, cnf, l)

	service := assistant.NewAssistantService(strategy, aiEnabled, geo, forecast, l)

	v1.NewRouter(
		app,
		service,
		cnf.AppName,
		cnf.AppVersion,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":        cnf.Port,
		"ai_enhanced": aiEnabled,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
