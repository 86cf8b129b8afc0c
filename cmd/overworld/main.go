// Package main is the entry point for the overworld.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/overworld/internal/game"
	"github.com/samdwyer/overworld/internal/gamedata"
	"github.com/samdwyer/overworld/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_OVERWORLD_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("telemetry shutdown", zap.Error(err))
			}
		}()
	}

	registry, err := loadRegistry(cfg)
	if err != nil {
		logger.Error("loading maps", zap.Error(err))
		log.Fatalf("Failed to load maps: %v", err)
	}
	logger.Info("maps loaded", zap.Int("count", registry.Count()), zap.Strings("names", registry.Names()))

	// Create and run game
	g, err := game.New(cfg, registry, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.Error("game stopped", zap.Error(err))
		log.Fatalf("Game error: %v", err)
	}
}

// newLogger writes JSON logs to cfg.LogFile; the terminal is owned by tcell.
func newLogger(cfg game.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	return zc.Build()
}

func loadRegistry(cfg game.Config) (*gamedata.MapRegistry, error) {
	if cfg.MapsFile != "" {
		return gamedata.LoadMapRegistryFile(cfg.MapsFile)
	}
	return gamedata.LoadMapRegistry()
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_OVERWORLD_API_KEY")
	dataset := os.Getenv("HONEYCOMB_OVERWORLD_DATASET")
	if dataset == "" {
		dataset = "overworld"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
