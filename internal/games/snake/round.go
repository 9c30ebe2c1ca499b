package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Colors used when painting a round.
const (
	FoodColor  = core.ColorRed
	TailColor  = core.ColorGreen
	HeadColor  = core.ColorBrightGreen
	ScoreColor = core.ColorWhite
)

// Settings fixes everything about a round that does not change while playing.
type Settings struct {
	Grid         Grid
	Start        Coordinate // Initial head cell
	StartDir     Direction
	FoodStart    Coordinate
	ScoreAt      Coordinate // Pixel position of the score text
	TickInterval time.Duration
	ResetPause   time.Duration
	ResetMode    string // config.ResetModeBlock or config.ResetModeFreeze
	Variant      Variant
}

// SettingsFromConfig builds round settings for a variant from a loaded config.
func SettingsFromConfig(cfg config.SnakeConfig, v Variant) Settings {
	return Settings{
		Grid:         Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
		Start:        Coordinate{X: cfg.Start.X, Y: cfg.Start.Y},
		StartDir:     DirRight,
		FoodStart:    Coordinate{X: cfg.FoodStart.X, Y: cfg.FoodStart.Y},
		ScoreAt:      Coordinate{X: cfg.ScorePosition.X, Y: cfg.ScorePosition.Y},
		TickInterval: cfg.TickInterval(),
		ResetPause:   cfg.ResetPause(),
		ResetMode:    cfg.Reset.Mode,
		Variant:      v,
	}
}

// Round is one life of the snake. A new round is always built whole; nothing
// in it is reset field by field.
type Round struct {
	ID       string
	Snake    Snake
	Food     Food
	Score    ScoreTracker
	LastTick time.Time
}

func newRound(s Settings, now time.Time) Round {
	return Round{
		ID:       uuid.NewString(),
		Snake:    NewSnake(s.Start, s.StartDir, s.Variant.TailLength, s.Variant.QueueTurns),
		Food:     NewFood(s.FoodStart),
		Score:    NewScoreTracker(s.ScoreAt),
		LastTick: now,
	}
}

// deathCause tells why a tick ended the round.
type deathCause int

const (
	alive deathCause = iota
	hitWall
	hitSelf
	gridFull
)

func (d deathCause) String() string {
	switch d {
	case hitWall:
		return "wall"
	case hitSelf:
		return "self"
	case gridFull:
		return "grid full"
	default:
		return "alive"
	}
}

// Controller owns the current round and runs the tick loop over it.
//
// Update is called once per platform frame. A tick runs only when at least
// one tick interval has passed since the last one, and never more than one
// tick per call: a late frame does not catch up on missed ticks.
type Controller struct {
	settings Settings
	round    Round
	rng      *rand.Rand
	now      func() time.Time
	sleep    func(time.Duration)
	logger   *log.Logger

	frozenUntil time.Time // zero unless a freeze-mode reset is pending
	ticks       uint64
	resets      int
}

// Option configures a Controller.
type Option func(*Controller)

// WithSeed seeds food placement.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithSleep replaces time.Sleep for the blocking reset pause.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Controller) {
		c.sleep = sleep
	}
}

// WithLogger sets the logger for round lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController starts the first round.
func NewController(s Settings, opts ...Option) *Controller {
	c := &Controller{
		settings: s,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		sleep:    time.Sleep,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.startRound(c.now())
	return c
}

func (c *Controller) startRound(now time.Time) {
	c.round = newRound(c.settings, now)
	c.logger.Debug("round started", "round", c.round.ID, "variant", c.settings.Variant.ID)
}

// Settings returns the settings the controller was built with.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Round returns the current round. The returned value shares the tail with
// the controller and must be treated as read-only.
func (c *Controller) Round() Round {
	return c.round
}

// Frozen reports whether the controller is waiting out a freeze-mode reset.
func (c *Controller) Frozen() bool {
	return !c.frozenUntil.IsZero()
}

// Ticks returns the number of ticks run since the controller was created.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Resets returns how many rounds have ended.
func (c *Controller) Resets() int {
	return c.resets
}

// Input feeds one input action to the snake. Non-directional actions are
// ignored, and so is everything while frozen.
func (c *Controller) Input(a core.Action) {
	if c.Frozen() {
		return
	}
	if d, ok := DirectionFromAction(a); ok {
		c.round.Snake.RequestDirection(d)
	}
}

// Update runs at most one tick if the tick interval has elapsed at now.
// It reports whether a tick ran and whether the round was replaced.
func (c *Controller) Update(now time.Time) (ticked, reset bool) {
	if c.Frozen() {
		if now.Before(c.frozenUntil) {
			return false, false
		}
		c.frozenUntil = time.Time{}
		c.startRound(now)
		return false, true
	}

	if now.Sub(c.round.LastTick) < c.settings.TickInterval {
		return false, false
	}
	c.round.LastTick = now
	return true, c.Tick()
}

// Tick runs one simulation step regardless of the clock and reports whether
// the round ended. In block mode the fresh round is already in place when
// Tick returns; in freeze mode it arrives with the first Update after the pause.
func (c *Controller) Tick() bool {
	c.ticks++
	cause := c.step()
	if cause == alive {
		return false
	}
	c.endRound(cause)
	return true
}

// step moves the snake and resolves collisions in a fixed order: wall,
// then food or plain movement, then the snake's own body.
func (c *Controller) step() deathCause {
	r := &c.round
	s := &r.Snake

	s.ApplyPendingTurn()
	s.Advance()

	if c.settings.Grid.OutOfBounds(s.Head()) {
		return hitWall
	}

	if s.Head() == r.Food.At() {
		s.Grow()
		r.Score.Increment()
		// The grown tail already covers the head cell.
		if !r.Food.Relocate(c.rng, c.settings.Grid, s.tail) {
			return gridFull
		}
	} else {
		s.Slide()
	}

	if s.HitsItself() {
		return hitSelf
	}
	return alive
}

func (c *Controller) endRound(cause deathCause) {
	c.resets++
	c.logger.Info("round over",
		"round", c.round.ID,
		"cause", cause,
		"score", c.round.Score.Value(),
		"length", c.round.Snake.Len(),
	)

	if c.settings.ResetMode == config.ResetModeFreeze {
		c.frozenUntil = c.now().Add(c.settings.ResetPause)
		return
	}

	// Blocks the caller's loop on purpose: nothing renders or reads input
	// until the pause is over.
	c.sleep(c.settings.ResetPause)
	c.startRound(c.now())
}

// Paint is one filled cell of a frame.
type Paint struct {
	At    Coordinate
	Color core.Color
}

// Cells returns the cells to paint this frame: food, then the tail oldest
// first, then the head on top.
func (c *Controller) Cells() []Paint {
	r := &c.round
	cells := make([]Paint, 0, r.Snake.Len()+2)
	cells = append(cells, Paint{At: r.Food.At(), Color: FoodColor})
	for _, seg := range r.Snake.tail {
		cells = append(cells, Paint{At: seg, Color: TailColor})
	}
	cells = append(cells, Paint{At: r.Snake.Head(), Color: HeadColor})
	return cells
}

// Draw paints the round onto a frontend canvas.
func (c *Controller) Draw(dst core.Canvas) {
	for _, p := range c.Cells() {
		if c.settings.Grid.OutOfBounds(p.At) {
			continue
		}
		dst.FillCell(p.At.X, p.At.Y, p.Color)
	}
	score := c.round.Score
	dst.DrawText(score.Position.X, score.Position.Y, score.Text())
}
