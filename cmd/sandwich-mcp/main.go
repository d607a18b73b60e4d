package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/sandwich-tools-mcp/internal/config"
	"github.com/ironsheep/sandwich-tools-mcp/internal/game"
	"github.com/ironsheep/sandwich-tools-mcp/internal/server"
	"github.com/ironsheep/sandwich-tools-mcp/internal/silhouette"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("sandwich-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("sandwich-tools-mcp - MCP server for the sandwich stacking game")
			fmt.Println()
			fmt.Println("Usage: sandwich-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug        Log level: debug, info, warn, error (default: info)\n", config.EnvLogLevel)
			fmt.Printf("  %s=img         Directory of ingredient PNGs\n", config.EnvIngredientDir)
			fmt.Printf("  %s=3                  Rounds per game\n", config.EnvRounds)
			fmt.Printf("  %s=4           Clock ticks per round\n", config.EnvRoundSeconds)
			fmt.Printf("  %s=10         Corner cut of ingredient outlines, 0 disables\n", config.EnvChamferRadius)
			fmt.Printf("  %s=reject      Degenerate outline policy: reject or bounds\n", config.EnvHullFallback)
			fmt.Printf("  %s=400           Sampling canvas side in pixels\n", config.EnvCanvasSize)
			fmt.Printf("  %s=false          Run the round clock without game_tick\n", config.EnvAutoClock)
			fmt.Printf("  %s=1s          Auto clock tick interval\n", config.EnvTickInterval)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}

	// Log to stderr; stdout is for MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	silhouette.SetLogger(logger)
	game.SetLogger(logger)
	logger.Debug("sandwich MCP server starting",
		"version", Version, "built", BuildTime, "commit", GitCommit,
		"ingredients", cfg.IngredientDir, "auto_clock", cfg.AutoClock)

	if Version != "dev" {
		server.Version = Version
	}
	srv := server.NewWithConfig(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
