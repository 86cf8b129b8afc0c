package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config holds game configuration options.
type Config struct {
	// StartMap is the registry name of the map loaded at startup.
	StartMap string
	// TickRate is the number of simulation ticks per second. Every duration in
	// the map data is expressed in ticks at 60 per second.
	TickRate int
	// MapsFile optionally points at a YAML or JSON map registry that replaces
	// the embedded one.
	MapsFile string
	// LogFile receives the structured log; the terminal belongs to the game.
	LogFile string
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
}

// DefaultConfig returns the configuration used when no environment overrides
// are present.
func DefaultConfig() Config {
	return Config{
		StartMap: "Street",
		TickRate: 60,
		LogFile:  "overworld.log",
		LogLevel: "info",
	}
}

// ConfigFromEnv reads OVERWORLD_* variables on top of DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if v := os.Getenv("OVERWORLD_START_MAP"); v != "" {
		cfg.StartMap = v
	}
	if v := os.Getenv("OVERWORLD_TICK_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("OVERWORLD_TICK_RATE: %w", err)
		}
		cfg.TickRate = rate
	}
	if v := os.Getenv("OVERWORLD_MAPS_FILE"); v != "" {
		cfg.MapsFile = v
	}
	if v := os.Getenv("OVERWORLD_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("OVERWORLD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, cfg.Validate()
}

// Validate checks the values a game cannot start without.
func (c Config) Validate() error {
	if c.StartMap == "" {
		return fmt.Errorf("start map is empty")
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// TickInterval is the wall-clock time between ticks.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
