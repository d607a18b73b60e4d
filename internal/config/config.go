// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ironsheep/sandwich-tools-mcp/internal/game"
	"github.com/ironsheep/sandwich-tools-mcp/internal/imaging"
	"github.com/ironsheep/sandwich-tools-mcp/internal/silhouette"
)

// Environment variables.
const (
	EnvLogLevel      = "SANDWICH_MCP_LOG_LEVEL"
	EnvIngredientDir = "SANDWICH_INGREDIENT_DIR"
	EnvRounds        = "SANDWICH_ROUNDS"
	EnvRoundSeconds  = "SANDWICH_ROUND_SECONDS"
	EnvChamferRadius = "SANDWICH_CHAMFER_RADIUS"
	EnvHullFallback  = "SANDWICH_HULL_FALLBACK"
	EnvCanvasSize    = "SANDWICH_CANVAS_SIZE"
	EnvAutoClock     = "SANDWICH_AUTO_CLOCK"
	EnvTickInterval  = "SANDWICH_TICK_INTERVAL"
)

// Config holds the server settings read from the environment.
type Config struct {
	LogLevel      slog.Level
	IngredientDir string
	Rounds        int
	RoundSeconds  int
	ChamferRadius float64
	HullFallback  silhouette.Fallback
	CanvasSize    int

	// AutoClock runs the round clock on a goroutine instead of waiting for
	// game_tick calls.
	AutoClock    bool
	TickInterval time.Duration
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	def := game.DefaultConfig()
	return &Config{
		LogLevel:      slog.LevelInfo,
		IngredientDir: "img",
		Rounds:        def.TotalRounds,
		RoundSeconds:  def.RoundTicks,
		ChamferRadius: silhouette.ChamferRadius,
		HullFallback:  silhouette.FallbackReject,
		CanvasSize:    imaging.DefaultCanvasSize,
		TickInterval:  time.Second,
	}
}

// Load reads the configuration from the environment. Unset variables keep
// their defaults; malformed ones are reported by name.
func Load() (*Config, error) {
	c := Default()
	var err error

	if c.LogLevel, err = parseLevel(getEnv(EnvLogLevel, "info")); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	c.IngredientDir = getEnv(EnvIngredientDir, c.IngredientDir)
	if c.Rounds, err = getEnvInt(EnvRounds, c.Rounds); err != nil {
		return nil, err
	}
	if c.RoundSeconds, err = getEnvInt(EnvRoundSeconds, c.RoundSeconds); err != nil {
		return nil, err
	}
	if c.ChamferRadius, err = getEnvFloat(EnvChamferRadius, c.ChamferRadius); err != nil {
		return nil, err
	}
	if c.HullFallback, err = silhouette.ParseFallback(getEnv(EnvHullFallback, "reject")); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvHullFallback, err)
	}
	if c.CanvasSize, err = getEnvInt(EnvCanvasSize, c.CanvasSize); err != nil {
		return nil, err
	}
	if c.AutoClock, err = getEnvBool(EnvAutoClock, c.AutoClock); err != nil {
		return nil, err
	}
	if c.TickInterval, err = getEnvDuration(EnvTickInterval, c.TickInterval); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Rounds < 1:
		return fmt.Errorf("%s must be positive, got %d", EnvRounds, c.Rounds)
	case c.RoundSeconds < 1:
		return fmt.Errorf("%s must be positive, got %d", EnvRoundSeconds, c.RoundSeconds)
	case c.CanvasSize < 1:
		return fmt.Errorf("%s must be positive, got %d", EnvCanvasSize, c.CanvasSize)
	case c.TickInterval <= 0:
		return fmt.Errorf("%s must be positive, got %v", EnvTickInterval, c.TickInterval)
	}
	return nil
}

// GameConfig returns the game settings, leaving the world size at its
// default.
func (c *Config) GameConfig() game.Config {
	g := game.DefaultConfig()
	g.TotalRounds = c.Rounds
	g.RoundTicks = c.RoundSeconds
	return g
}

// Extractor returns the silhouette extractor for the configured radius and
// fallback. A radius of zero disables chamfering.
func (c *Config) Extractor() silhouette.Extractor {
	r := c.ChamferRadius
	if r == 0 {
		r = -1
	}
	return silhouette.Extractor{Radius: r, Fallback: c.HullFallback}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, val)
	}
	return n, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, val)
	}
	return f, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, val)
	}
	return b, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(val))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, val)
	}
	return d, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
