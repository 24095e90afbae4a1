// Command chat-cli runs a single weather query through the full pipeline
// without the HTTP server. Useful for poking at extraction and composition
// locally:
//
//	go run ./cmd/chat-cli "Will it rain in Denver on Sunday?"
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"weather-chat/config"
	"weather-chat/internal/repositories"
	"weather-chat/internal/services/assistant"
	"weather-chat/pkg/observe"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: chat-cli <weather query>")
		os.Exit(1)
	}
	queryText := strings.Join(os.Args[1:], " ")

	_ = godotenv.Load()

	cnf := config.NewConfig()
	l := observe.NewZapLogger(cnf.AppName, os.Stderr)
	defer func() { _ = l.Stop() }()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	geo, forecast := repositories.InitRepositories(cnf, l)
	strategy, aiEnabled := assistant.NewStrategy(ctx, cnf, l)
	service := assistant.NewAssistantService(strategy, aiEnabled, geo, forecast, l)

	fmt.Printf("Query: %s\n", queryText)
	fmt.Printf("AI enhanced: %t\n", aiEnabled)
	fmt.Printf("Response: %s\n", service.Respond(ctx, queryText))
}
