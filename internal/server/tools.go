package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and how much of it is opaque enough to count as ingredient.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Silhouette Extraction
		{
			Name:        "silhouette_boundary",
			Description: "Sample the opaque boundary of an ingredient image. Marches from 8 directions on a 10 pixel grid and returns every sample plus the de-duplicated boundary points.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the ingredient PNG",
					},
					"canvas_size": map[string]interface{}{
						"type":        "integer",
						"description": "Side of the square sampling canvas in pixels; the image is clipped to it (default: server canvas size, normally 400)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Resize factor applied before clipping (default: 1.0)",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "silhouette_hull",
			Description: "Extract the collision outline of an ingredient: boundary points, their convex hull, and the chamfered polygon with its bounds, area and centroid.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the ingredient PNG",
					},
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Chamfer radius for the body outline; 0 disables chamfering (default: 10)",
						"default":     10,
					},
					"fallback": map[string]interface{}{
						"type":        "string",
						"description": "Outline used when fewer than 3 boundary points are found: reject or bounds (default: server setting)",
						"enum":        []string{"reject", "bounds"},
					},
					"canvas_size": map[string]interface{}{
						"type":        "integer",
						"description": "Side of the square sampling canvas in pixels; the image is clipped to it (default: server canvas size, normally 400)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Resize factor applied before clipping (default: 1.0)",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "silhouette_overlay",
			Description: "Render the extracted hull, chamfered polygon and boundary points over the ingredient image and return it as base64-encoded PNG. Use this to check an outline visually.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the ingredient PNG",
					},
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Chamfer radius for the body outline; 0 disables chamfering (default: 10)",
						"default":     10,
					},
					"fallback": map[string]interface{}{
						"type":        "string",
						"description": "Outline used when fewer than 3 boundary points are found: reject or bounds (default: server setting)",
						"enum":        []string{"reject", "bounds"},
					},
					"canvas_size": map[string]interface{}{
						"type":        "integer",
						"description": "Side of the square sampling canvas in pixels; the image is clipped to it (default: server canvas size, normally 400)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Resize factor applied before clipping (default: 1.0)",
						"default":     1.0,
					},
					"hull_color": map[string]interface{}{
						"type":        "string",
						"description": "Hull fill color as hex (default: #00A0FF60)",
						"default":     "#00A0FF60",
					},
					"polygon_color": map[string]interface{}{
						"type":        "string",
						"description": "Polygon fill color as hex (default: #FF6A0080)",
						"default":     "#FF6A0080",
					},
					"point_color": map[string]interface{}{
						"type":        "string",
						"description": "Boundary point color as hex (default: #FF0000)",
						"default":     "#FF0000",
					},
					"show_mask": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the binary opacity mask instead of the image (default: false)",
						"default":     false,
					},
					"show_labels": map[string]interface{}{
						"type":        "boolean",
						"description": "Label every boundary point with its index and coordinates (default: false)",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Game
		{
			Name:        "game_new",
			Description: "Start a new sandwich game, replacing any game in progress. The bottom slice of bread is placed on the floor and the game waits for its first round.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"rounds": map[string]interface{}{
						"type":        "integer",
						"description": "Number of rounds (default: 3)",
						"default":     3,
					},
					"round_seconds": map[string]interface{}{
						"type":        "integer",
						"description": "Clock ticks per round (default: 4)",
						"default":     4,
					},
					"ingredient_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory of ingredient PNGs to pick from (default: server setting)",
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Seed for ingredient selection, for repeatable games",
					},
					"auto_clock": map[string]interface{}{
						"type":        "boolean",
						"description": "Advance the round clock automatically once per tick interval (default: server setting)",
					},
				},
			},
		},
		{
			Name:        "game_start_round",
			Description: "Set the round clock running. Before the first tick this starts round 1 as soon as it is armed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "game_tick",
			Description: "Advance the round clock. A waiting game arms its next round, a running round loses one second, and a round with no time left closes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of ticks to apply (default: 1, max: 1000)",
						"default":     1,
					},
				},
			},
		},
		{
			Name:        "game_drop",
			Description: "Drop an ingredient at a horizontal position. It falls onto the stack or the floor and ends the current round. Only one drop is allowed per round.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Horizontal drop position in world pixels (default: center of the world)",
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Ingredient PNG to drop (default: random pick from the catalog)",
					},
				},
			},
		},
		{
			Name:        "game_status",
			Description: "Get the current phase, round, time left and message of the game.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "game_score",
			Description: "Get the per-round scores. A round scores 1 when its ingredient landed centered over the bottom slice of bread.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "game_result_image",
			Description: "Render the sandwich with the bread, every dropped ingredient and, once finished, the score summary. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"background_color": map[string]interface{}{
						"type":        "string",
						"description": "Background color as hex (default: #FFF8E7)",
						"default":     "#FFF8E7",
					},
					"bread_color": map[string]interface{}{
						"type":        "string",
						"description": "Bread color as hex (default: #A52A2A)",
						"default":     "#A52A2A",
					},
					"text_color": map[string]interface{}{
						"type":        "string",
						"description": "Text color as hex (default: #202020)",
						"default":     "#202020",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
