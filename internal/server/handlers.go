package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ironsheep/sandwich-tools-mcp/internal/game"
	"github.com/ironsheep/sandwich-tools-mcp/internal/imaging"
	"github.com/ironsheep/sandwich-tools-mcp/internal/silhouette"
)

// loadTimeout bounds a single image decode.
const loadTimeout = 30 * time.Second

// errNoGame is returned by game tools before game_new.
var errNoGame = errors.New("no game in progress: call game_new first")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "game_drop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Info("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/silhouette/game function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Silhouette Extraction
	case "silhouette_boundary":
		return s.handleSilhouetteBoundary(args)
	case "silhouette_hull":
		return s.handleSilhouetteHull(args)
	case "silhouette_overlay":
		return s.handleSilhouetteOverlay(args)

	// Game
	case "game_new":
		return s.handleGameNew(args)
	case "game_start_round":
		return s.handleGameStartRound(args)
	case "game_tick":
		return s.handleGameTick(args)
	case "game_drop":
		return s.handleGameDrop(args)
	case "game_status":
		return s.handleGameStatus(args)
	case "game_score":
		return s.handleGameScore(args)
	case "game_result_image":
		return s.handleGameResultImage(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// loadImage decodes path through the cache, giving up after loadTimeout or
// when the server shuts down.
func (s *Server) loadImage(path string) (image.Image, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	ctx, cancel := context.WithTimeout(s.ctx, loadTimeout)
	defer cancel()

	res := <-s.cache.LoadAsync(ctx, path)
	return res.Image, res.Err
}

// loadIngredient loads path and clips it to the sampling canvas.
func (s *Server) loadIngredient(path string, canvasSize int, scale float64) (*image.NRGBA, error) {
	img, err := s.loadImage(path)
	if err != nil {
		return nil, err
	}
	if canvasSize == 0 {
		canvasSize = s.cfg.CanvasSize
	}
	if scale == 0 {
		scale = 1.0
	}
	return imaging.ClipToCanvas(img, canvasSize, canvasSize, scale)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if _, err := s.loadImage(a.Path); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if _, err := s.loadImage(a.Path); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Silhouette Handlers ===

type silhouetteArgs struct {
	Path       string   `json:"path"`
	CanvasSize int      `json:"canvas_size"`
	Scale      float64  `json:"scale"`
	Radius     *float64 `json:"radius,omitempty"`
	Fallback   string   `json:"fallback"`
}

// extractorFor returns the server extractor with per-call overrides applied.
func (s *Server) extractorFor(a silhouetteArgs) (silhouette.Extractor, error) {
	e := s.extractor
	if a.Radius != nil {
		e.Radius = *a.Radius
		if e.Radius == 0 {
			e.Radius = -1
		}
	}
	if a.Fallback != "" {
		f, err := silhouette.ParseFallback(a.Fallback)
		if err != nil {
			return e, err
		}
		e.Fallback = f
	}
	return e, nil
}

// BoundaryResult is the output of silhouette_boundary.
type BoundaryResult struct {
	Width   int                 `json:"width"`
	Height  int                 `json:"height"`
	Stride  int                 `json:"stride"`
	Samples []silhouette.Sample `json:"samples"`
	Points  []silhouette.Point  `json:"points"`
}

func (s *Server) handleSilhouetteBoundary(args json.RawMessage) (interface{}, error) {
	var a silhouetteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadIngredient(a.Path, a.CanvasSize, a.Scale)
	if err != nil {
		return nil, err
	}

	buf := silhouette.NewBufferFromAlpha(imaging.AlphaPlane(img))
	samples := silhouette.SampleBoundary(buf)
	return &BoundaryResult{
		Width:   buf.Width(),
		Height:  buf.Height(),
		Stride:  silhouette.Stride,
		Samples: samples,
		Points:  silhouette.ExtractBoundaryPoints(buf),
	}, nil
}

func (s *Server) handleSilhouetteHull(args json.RawMessage) (interface{}, error) {
	var a silhouetteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	e, err := s.extractorFor(a)
	if err != nil {
		return nil, err
	}
	img, err := s.loadIngredient(a.Path, a.CanvasSize, a.Scale)
	if err != nil {
		return nil, err
	}
	return e.Extract(img)
}

type silhouetteOverlayArgs struct {
	silhouetteArgs
	HullColor    string `json:"hull_color"`
	PolygonColor string `json:"polygon_color"`
	PointColor   string `json:"point_color"`
	ShowMask     bool   `json:"show_mask"`
	ShowLabels   bool   `json:"show_labels"`
}

func (s *Server) handleSilhouetteOverlay(args json.RawMessage) (interface{}, error) {
	var a silhouetteOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	e, err := s.extractorFor(a.silhouetteArgs)
	if err != nil {
		return nil, err
	}
	img, err := s.loadIngredient(a.Path, a.CanvasSize, a.Scale)
	if err != nil {
		return nil, err
	}
	res, err := e.Extract(img)
	if err != nil {
		return nil, err
	}
	return imaging.Overlay(img, res, imaging.OverlayOptions{
		HullColor:    a.HullColor,
		PolygonColor: a.PolygonColor,
		PointColor:   a.PointColor,
		ShowMask:     a.ShowMask,
		ShowLabels:   a.ShowLabels,
	})
}

// === Game Handlers ===

type gameNewArgs struct {
	Rounds        int    `json:"rounds"`
	RoundSeconds  int    `json:"round_seconds"`
	IngredientDir string `json:"ingredient_dir"`
	Seed          *int64 `json:"seed,omitempty"`
	AutoClock     *bool  `json:"auto_clock,omitempty"`
}

// GameNewResult is the output of game_new.
type GameNewResult struct {
	Config      game.Config `json:"config"`
	Ingredients int         `json:"ingredients"`
	Catalog     []string    `json:"catalog"`
	AutoClock   bool        `json:"auto_clock"`
	Status      game.Status `json:"status"`
}

func (s *Server) handleGameNew(args json.RawMessage) (interface{}, error) {
	var a gameNewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	cfg := s.cfg.GameConfig()
	if a.Rounds != 0 {
		cfg.TotalRounds = a.Rounds
	}
	if a.RoundSeconds != 0 {
		cfg.RoundTicks = a.RoundSeconds
	}
	session, err := game.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	dir := a.IngredientDir
	if dir == "" {
		dir = s.cfg.IngredientDir
	}
	catalog, err := game.LoadCatalog(dir)
	if err != nil {
		if a.IngredientDir != "" || !errors.Is(err, game.ErrNoIngredients) {
			return nil, err
		}
		// Without a catalog every drop must name its image.
		s.logger.Warn("no ingredient catalog", "dir", dir, "err", err)
		catalog = game.NewCatalog()
	}

	autoClock := s.cfg.AutoClock
	if a.AutoClock != nil {
		autoClock = *a.AutoClock
	}

	s.stopGameClock()

	s.mu.Lock()
	s.session = session
	s.catalog = catalog
	if a.Seed != nil {
		s.rng = rand.New(rand.NewPCG(uint64(*a.Seed), 0))
	}
	if autoClock {
		ctx, cancel := context.WithCancel(s.ctx)
		s.stopClock = cancel
		go func() {
			if err := game.RunClock(ctx, session, s.cfg.TickInterval); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error("game clock stopped", "err", err)
			}
		}()
	}
	s.mu.Unlock()

	s.logger.Info("new game", "rounds", cfg.TotalRounds, "ingredients", catalog.Len(), "auto_clock", autoClock)
	return &GameNewResult{
		Config:      session.Config(),
		Ingredients: catalog.Len(),
		Catalog:     catalog.Paths(),
		AutoClock:   autoClock,
		Status:      session.Status(),
	}, nil
}

func (s *Server) stopGameClock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopClock != nil {
		s.stopClock()
		s.stopClock = nil
	}
}

// currentGame returns the active session.
func (s *Server) currentGame() (*game.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, errNoGame
	}
	return s.session, nil
}

func (s *Server) handleGameStartRound(args json.RawMessage) (interface{}, error) {
	g, err := s.currentGame()
	if err != nil {
		return nil, err
	}
	if err := g.Start(); err != nil {
		return nil, err
	}
	return g.Status(), nil
}

type gameTickArgs struct {
	Count int `json:"count"`
}

// maxTicks caps a single game_tick call.
const maxTicks = 1000

func (s *Server) handleGameTick(args json.RawMessage) (interface{}, error) {
	var a gameTickArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 1
	}
	if a.Count < 0 || a.Count > maxTicks {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", maxTicks, a.Count)
	}

	g, err := s.currentGame()
	if err != nil {
		return nil, err
	}
	var st game.Status
	for i := 0; i < a.Count; i++ {
		st = g.Tick()
	}
	return st, nil
}

type gameDropArgs struct {
	X    *float64 `json:"x,omitempty"`
	Path string   `json:"path"`
}

// GameDropResult is the output of game_drop.
type GameDropResult struct {
	Body   game.Body   `json:"body"`
	Status game.Status `json:"status"`
}

func (s *Server) handleGameDrop(args json.RawMessage) (interface{}, error) {
	var a gameDropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	g, err := s.currentGame()
	if err != nil {
		return nil, err
	}
	// Fail before decoding anything.
	if err := g.CheckDrop(); err != nil {
		return nil, err
	}

	x := float64(g.Config().Width) / 2
	if a.X != nil {
		x = *a.X
	}

	path := a.Path
	if path == "" {
		s.mu.Lock()
		path, err = s.catalog.Pick(s.rng)
		s.mu.Unlock()
		if err != nil {
			return nil, fmt.Errorf("no path given: %w", err)
		}
	}

	img, err := s.loadIngredient(path, 0, 1.0)
	if err != nil {
		return nil, err
	}
	res, err := s.extractor.Extract(img)
	if err != nil {
		return nil, fmt.Errorf("ingredient %s: %w", path, err)
	}
	body, err := game.NewBody(res.Polygon, path, x, 0)
	if err != nil {
		return nil, err
	}

	landed, err := g.Drop(body)
	if err != nil {
		return nil, err
	}
	return &GameDropResult{Body: landed, Status: g.Status()}, nil
}

func (s *Server) handleGameStatus(args json.RawMessage) (interface{}, error) {
	g, err := s.currentGame()
	if err != nil {
		return nil, err
	}
	return g.Status(), nil
}

// GameScoreResult is the output of game_score.
type GameScoreResult struct {
	Scores   []int  `json:"scores"`
	Total    int    `json:"total"`
	Text     string `json:"text"`
	Finished bool   `json:"finished"`
}

func (s *Server) handleGameScore(args json.RawMessage) (interface{}, error) {
	g, err := s.currentGame()
	if err != nil {
		return nil, err
	}
	scores := g.Scores()
	return &GameScoreResult{
		Scores:   scores,
		Total:    game.Total(scores),
		Text:     game.FormatScores(scores, game.ScoreMark),
		Finished: g.Finished(),
	}, nil
}

type gameResultImageArgs struct {
	BackgroundColor string `json:"background_color"`
	BreadColor      string `json:"bread_color"`
	TextColor       string `json:"text_color"`
}

// scoreCardMark replaces the check mark, which the bitmap font lacks.
const scoreCardMark = "OK"

func (s *Server) handleGameResultImage(args json.RawMessage) (interface{}, error) {
	var a gameResultImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := s.currentGame()
	if err != nil {
		return nil, err
	}

	cfg := g.Config()
	st := g.Status()
	scene := imaging.Scene{
		Width:           cfg.Width,
		Height:          cfg.Height,
		Bread:           []image.Rectangle{g.BottomBread().Rectangle()},
		Title:           st.Message,
		BackgroundColor: a.BackgroundColor,
		BreadColor:      a.BreadColor,
		TextColor:       a.TextColor,
	}
	if top, ok := g.TopBread(); ok {
		scene.Bread = append(scene.Bread, top.Rectangle())
	}
	if st.Phase == game.PhaseFinished {
		text := game.FormatScores(g.Scores(), scoreCardMark)
		scene.Lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	}

	bodies := g.Bodies()
	paths := make([]string, len(bodies))
	for i, b := range bodies {
		paths[i] = b.Sprite
	}
	ctx, cancel := context.WithTimeout(s.ctx, loadTimeout)
	defer cancel()
	sprites, err := s.cache.LoadAll(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprites: %w", err)
	}

	for i, b := range bodies {
		img, err := imaging.ClipToCanvas(sprites[i], s.cfg.CanvasSize, s.cfg.CanvasSize, 1.0)
		if err != nil {
			return nil, err
		}
		size := img.Bounds().Size()
		scene.Sprites = append(scene.Sprites, imaging.Sprite{
			Image:   img,
			CenterX: b.Offset.X + float64(size.X)/2,
			CenterY: b.Offset.Y + float64(size.Y)/2,
		})
	}

	return imaging.RenderScoreCard(scene)
}
