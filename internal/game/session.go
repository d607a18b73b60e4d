package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ironsheep/sandwich-tools-mcp/internal/silhouette"
)

// Config sets the size and pace of a game.
type Config struct {
	// TotalRounds is the number of rounds, one ingredient each.
	TotalRounds int `json:"total_rounds"`

	// RoundTicks is how many clock ticks a running round lasts.
	RoundTicks int `json:"round_ticks"`

	// Width and Height are the world size in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// ParticleRadius is the radius of one bread particle.
	ParticleRadius int `json:"particle_radius"`
}

// DefaultConfig returns the classic game: three four-second rounds on an
// 800×600 world.
func DefaultConfig() Config {
	return Config{
		TotalRounds:    3,
		RoundTicks:     4,
		Width:          800,
		Height:         600,
		ParticleRadius: 8,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TotalRounds == 0 {
		c.TotalRounds = def.TotalRounds
	}
	if c.RoundTicks == 0 {
		c.RoundTicks = def.RoundTicks
	}
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.ParticleRadius == 0 {
		c.ParticleRadius = def.ParticleRadius
	}
	return c
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.TotalRounds < 1:
		return fmt.Errorf("%w: total rounds must be positive, got %d", ErrInvalidConfig, c.TotalRounds)
	case c.RoundTicks < 1:
		return fmt.Errorf("%w: round ticks must be positive, got %d", ErrInvalidConfig, c.RoundTicks)
	case c.ParticleRadius < 1:
		return fmt.Errorf("%w: particle radius must be positive, got %d", ErrInvalidConfig, c.ParticleRadius)
	case c.Width < 2*BreadMargin+2*c.ParticleRadius:
		return fmt.Errorf("%w: width %d leaves no room for bread", ErrInvalidConfig, c.Width)
	case c.Height < 2*BreadRows*2*c.ParticleRadius:
		return fmt.Errorf("%w: height %d cannot hold two slices of bread", ErrInvalidConfig, c.Height)
	}
	return nil
}

// Phase is the state of the round clock.
type Phase int

const (
	// PhaseWaiting is between rounds; the next tick arms a round.
	PhaseWaiting Phase = iota

	// PhaseArmed has a round ready but its clock is stopped until Start.
	PhaseArmed

	// PhaseRunning counts the round down one second per tick.
	PhaseRunning

	// PhaseEnding has run out of time; the next tick closes the round.
	PhaseEnding

	// PhaseFinished follows the last round.
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseArmed:
		return "armed"
	case PhaseRunning:
		return "running"
	case PhaseEnding:
		return "ending"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// noTimer marks that no round is open.
const noTimer = -1

// Session is one game.
type Session struct {
	mu sync.Mutex

	cfg        Config
	round      int
	timer      int
	inProgress bool
	finished   bool

	bottom Bread
	top    *Bread
	bodies []Body
}

// NewSession creates a game waiting for its first round. Zero fields of cfg
// take their DefaultConfig values. The bottom slice is placed on the floor.
func NewSession(cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		cfg:    cfg,
		timer:  noTimer,
		bottom: dropBread(NewBread(cfg), nil, float64(cfg.Height)),
	}, nil
}

// Config returns the effective configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Tick advances the round clock by one step and returns the new status.
//
// Waiting arms the next round. A running round loses one tick. A round with
// no time left closes; closing the last round finishes the game and lays
// the top slice of bread. Armed and finished sessions are unchanged.
func (s *Session) Tick() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.finished:
	case s.timer == noTimer:
		s.round++
		s.timer = s.cfg.RoundTicks
		Logger().Info("round armed", "round", s.round, "total", s.cfg.TotalRounds)
	case s.timer > 0 && s.inProgress:
		s.timer--
		Logger().Debug("round tick", "round", s.round, "left", s.timer)
	case s.timer == 0:
		s.endRound()
	}
	return s.status()
}

func (s *Session) endRound() {
	s.timer = noTimer
	s.inProgress = false
	Logger().Info("round finished", "round", s.round)

	if s.round >= s.cfg.TotalRounds {
		s.finished = true
		top := dropBread(NewBread(s.cfg), s.supports(), float64(s.cfg.Height))
		s.top = &top
		Logger().Info("game finished", "scores", s.scores())
	}
}

// Start sets the round clock running. Calling it while waiting starts the
// next round as soon as it is armed.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.finished:
		return ErrGameFinished
	case s.timer == 0:
		return ErrRoundEnding
	}
	s.inProgress = true
	return nil
}

// Drop adds an ingredient to the current round and ends the round early.
// The body falls from its current position and the settled copy is
// returned.
func (s *Session) Drop(b Body) (Body, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkDrop(); err != nil {
		return Body{}, err
	}

	b = b.Clone()
	b.Round = s.round
	b.translate(silhouette.Vec{Y: fallDistance(b.Bounds, s.supports(), float64(s.cfg.Height))})
	s.bodies = append(s.bodies, b)
	s.timer = 0

	Logger().Info("ingredient dropped",
		"round", s.round, "sprite", b.Sprite, "x", b.Position.X, "y", b.Position.Y)
	return b.Clone(), nil
}

// CheckDrop reports whether Drop would currently accept an ingredient.
func (s *Session) CheckDrop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkDrop()
}

func (s *Session) checkDrop() error {
	switch {
	case s.finished:
		return ErrGameFinished
	case s.round == 0 || s.timer == noTimer:
		return ErrNoActiveRound
	case s.droppedIn(s.round):
		return fmt.Errorf("round %d: %w", s.round, ErrDropLimit)
	}
	return nil
}

func (s *Session) droppedIn(round int) bool {
	for _, b := range s.bodies {
		if b.Round == round {
			return true
		}
	}
	return false
}

func (s *Session) supports() []silhouette.Rect {
	out := make([]silhouette.Rect, 0, len(s.bodies)+1)
	out = append(out, s.bottom.Bounds)
	for _, b := range s.bodies {
		out = append(out, b.Bounds)
	}
	return out
}

// Scores returns one entry per round played so far: 1 when that round's
// ingredient landed with its centre strictly inside the bread's horizontal
// extent, 0 otherwise or when nothing was dropped.
func (s *Session) Scores() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores()
}

func (s *Session) scores() []int {
	out := make([]int, s.round)
	for _, b := range s.bodies {
		cx := b.Bounds.CenterX()
		if cx > s.bottom.Bounds.MinX && cx < s.bottom.Bounds.MaxX {
			out[b.Round-1] = 1
		}
	}
	return out
}

// ScoreMark is the mark ScoreText puts next to a scoring round.
const ScoreMark = "✅"

// ScoreText returns one "Round N: ✅" line per round.
func (s *Session) ScoreText() string {
	return FormatScores(s.Scores(), ScoreMark)
}

// FormatScores renders scores as newline-terminated "Round N: mark" lines,
// leaving the mark off rounds that scored nothing.
func FormatScores(scores []int, mark string) string {
	var sb strings.Builder
	for i, v := range scores {
		m := ""
		if v > 0 {
			m = mark
		}
		fmt.Fprintf(&sb, "Round %d: %s\n", i+1, m)
	}
	return sb.String()
}

// Total returns the sum of scores.
func Total(scores []int) int {
	n := 0
	for _, v := range scores {
		n += v
	}
	return n
}

// Bodies returns copies of the dropped ingredients in drop order.
func (s *Session) Bodies() []Body {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Body, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Clone()
	}
	return out
}

// BottomBread returns the slice the sandwich is built on.
func (s *Session) BottomBread() Bread {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bottom
}

// TopBread returns the closing slice, laid when the game finishes.
func (s *Session) TopBread() (Bread, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.top == nil {
		return Bread{}, false
	}
	return *s.top, true
}

// Status is a snapshot of the round clock.
type Status struct {
	Phase       Phase  `json:"phase"`
	Round       int    `json:"round"`
	TotalRounds int    `json:"total_rounds"`
	TimeLeft    int    `json:"time_left"`
	Drops       int    `json:"drops"`
	CanDrop     bool   `json:"can_drop"`
	Message     string `json:"message"`
}

// Status returns the current status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status()
}

// Finished reports whether the last round has ended.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

func (s *Session) phase() Phase {
	switch {
	case s.finished:
		return PhaseFinished
	case s.timer == noTimer:
		return PhaseWaiting
	case s.timer == 0:
		return PhaseEnding
	case s.inProgress:
		return PhaseRunning
	default:
		return PhaseArmed
	}
}

func (s *Session) status() Status {
	st := Status{
		Phase:       s.phase(),
		Round:       s.round,
		TotalRounds: s.cfg.TotalRounds,
		Drops:       len(s.bodies),
	}
	if s.timer > 0 {
		st.TimeLeft = s.timer
	}
	st.CanDrop = s.checkDrop() == nil

	switch st.Phase {
	case PhaseFinished:
		st.Message = "Great sandwich!!"
	case PhaseWaiting:
		if s.round == 0 {
			st.Message = fmt.Sprintf("Click to start round 1 of %d", s.cfg.TotalRounds)
		} else {
			st.Message = "Round finished"
		}
	case PhaseArmed:
		st.Message = fmt.Sprintf("Click to start round %d of %d", s.round, s.cfg.TotalRounds)
	default:
		st.Message = fmt.Sprintf("Round %d: %ds left", s.round, st.TimeLeft)
	}
	return st
}
