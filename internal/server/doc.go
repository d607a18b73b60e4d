// Package server implements the MCP (Model Context Protocol) server for the
// sandwich game tools.
//
// This package provides a JSON-RPC 2.0 server that exposes ingredient
// silhouette extraction and a turn-based sandwich stacking game through the
// MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Silhouette Extraction:
//   - silhouette_boundary: Boundary samples and points
//   - silhouette_hull: Hull, chamfered polygon and its measurements
//   - silhouette_overlay: Outline drawn over the ingredient
//
// Game:
//   - game_new: Start a game
//   - game_start_round: Run the round clock
//   - game_tick: Advance the round clock
//   - game_drop: Drop an ingredient
//   - game_status: Current phase and message
//   - game_score: Per-round scores
//   - game_result_image: Render the sandwich and score card
//
// # Game Clock
//
// By default the client drives the round clock with game_tick. With auto
// clock enabled, game_new starts a background clock that ticks once per
// configured interval until the game finishes, a new game replaces it, or
// the server stops.
//
// # Image Caching
//
// Images are decoded once per path and cached for the lifetime of the
// server process. Game drops and the result image reuse the cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.NewWithConfig(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
