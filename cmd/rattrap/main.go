// Package main is the entry point for rat trap parts.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/rattrap/internal/config"
	"github.com/samdwyer/rattrap/internal/game"
	"github.com/samdwyer/rattrap/internal/lexicon"
	"github.com/samdwyer/rattrap/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, logClose, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logClose()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv(cfg)

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	dict, err := lexicon.LoadDictionary()
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Create and run game
	g, err := game.New(dict, rng, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// newLogger builds the debug logger. The game owns the terminal, so log
// output goes to the configured file or nowhere at all.
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closeFn, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(cfg config.Config) {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	if cfg.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s",
				cfg.HoneycombAPIKey, cfg.HoneycombDataset))
	}
}
