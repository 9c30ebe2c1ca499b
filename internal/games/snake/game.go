package snake

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Game adapts a round controller to the registry.Game interface.
type Game struct {
	variant Variant
	cfg     config.SnakeConfig
	ctrl    *Controller

	// Test hooks passed through to the controller.
	clock func() time.Time
	sleep func(time.Duration)
}

// Package-level settings applied on Reset, set by the CLI before a game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to every new round controller.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the variant this game plays.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset loads the configuration and starts a fresh controller.
// A broken config file falls back to the defaults; the CLI validates the
// file up front so this only happens when Reset is used directly.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&cfg, difficultyPreset)
	g.cfg = cfg

	opts := []Option{WithSeed(rc.Seed), WithLogger(logger)}
	if g.clock != nil {
		opts = append(opts, WithClock(g.clock))
	}
	if g.sleep != nil {
		opts = append(opts, WithSleep(g.sleep))
	}
	g.ctrl = NewController(SettingsFromConfig(cfg, g.variant), opts...)
}

// Step feeds this frame's input to the round in arrival order, then lets the
// controller decide whether a tick is due.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.ctrl.Input(a)
	}
	ticked, reset := g.ctrl.Update(now)
	return core.StepResult{
		State:  g.State(),
		Ticked: ticked,
		Reset:  reset,
	}
}

// Render draws the round onto the canvas.
func (g *Game) Render(dst core.Canvas) {
	g.ctrl.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	r := g.ctrl.Round()
	return core.GameState{
		Score:  int(r.Score.Value()),
		Frozen: g.ctrl.Frozen(),
	}
}

// Layout returns the playfield geometry and key set.
func (g *Game) Layout() core.Layout {
	return core.Layout{
		GridW:    g.cfg.Grid.Width,
		GridH:    g.cfg.Grid.Height,
		CellSize: g.cfg.CellSize,
		Keys:     g.variant.Keys,
	}
}

// Controller exposes the round controller for inspection.
func (g *Game) Controller() *Controller {
	return g.ctrl
}
