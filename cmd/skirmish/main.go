// Package main is the entry point for the skirmish terminal host.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/skirmish/internal/config"
	"github.com/samdwyer/skirmish/internal/game"
	"github.com/samdwyer/skirmish/internal/telemetry"
)

// settings collects everything read from the environment.
type settings struct {
	Game      game.Config
	Telemetry telemetry.Config
}

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	var cfg settings
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(cfg.Game)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
