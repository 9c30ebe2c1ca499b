// Package config provides YAML-based configuration loading and difficulty
// presets for the snake rounds.
package config

import (
	"fmt"
	"time"
)

// Reset modes understood by the round controller.
const (
	ResetModeBlock  = "block"  // sleep through the pause; nothing renders or reads input
	ResetModeFreeze = "freeze" // keep rendering the dead round until the pause elapses
)

// MaxTailLength is the longest starting tail of any variant. Every round
// starts heading right, so the tail trails left of start.
const MaxTailLength = 4

// SnakeConfig contains all configuration for a snake round.
type SnakeConfig struct {
	Grid           GridConfig  `yaml:"grid"`
	CellSize       int         `yaml:"cell_size"`        // Pixel size of one grid cell (window frontend)
	TicksPerSecond int         `yaml:"ticks_per_second"` // Simulation ticks per second
	Reset          ResetConfig `yaml:"reset"`
	Start          Point       `yaml:"start"`          // Initial head cell
	FoodStart      Point       `yaml:"food_start"`     // Initial food cell
	ScorePosition  Point       `yaml:"score_position"` // Pixel position of the score text
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ResetConfig defines what happens between a death and the next round.
type ResetConfig struct {
	PauseMillis int    `yaml:"pause_ms"`
	Mode        string `yaml:"mode"` // "block" or "freeze"
}

// Point is a plain x/y pair as written in YAML.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TickInterval returns the wall-clock time between two simulation ticks.
func (c SnakeConfig) TickInterval() time.Duration {
	if c.TicksPerSecond <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.TicksPerSecond)
}

// ResetPause returns the pause between a death and the next round.
func (c SnakeConfig) ResetPause() time.Duration {
	return time.Duration(c.Reset.PauseMillis) * time.Millisecond
}

// WindowSize returns the pixel size of a window showing the whole grid.
func (c SnakeConfig) WindowSize() (int, int) {
	return c.CellSize * c.Grid.Width, c.CellSize * c.Grid.Height
}

// Validate reports the first inconsistency in the configuration.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", c.CellSize)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("config: ticks_per_second must be positive, got %d", c.TicksPerSecond)
	}
	if c.Reset.PauseMillis < 0 {
		return fmt.Errorf("config: reset.pause_ms must not be negative, got %d", c.Reset.PauseMillis)
	}
	switch c.Reset.Mode {
	case ResetModeBlock, ResetModeFreeze:
	default:
		return fmt.Errorf("config: unknown reset.mode %q (want %q or %q)", c.Reset.Mode, ResetModeBlock, ResetModeFreeze)
	}
	if !c.inGrid(c.Start) {
		return fmt.Errorf("config: start (%d, %d) is outside the grid", c.Start.X, c.Start.Y)
	}
	if end := c.Start.X - (MaxTailLength - 1); end < 0 {
		return fmt.Errorf("config: start (%d, %d) leaves no room for a %d cell tail", c.Start.X, c.Start.Y, MaxTailLength)
	}
	if !c.inGrid(c.FoodStart) {
		return fmt.Errorf("config: food_start (%d, %d) is outside the grid", c.FoodStart.X, c.FoodStart.Y)
	}
	if c.onStartTail(c.FoodStart) {
		return fmt.Errorf("config: food_start (%d, %d) lies on the starting tail", c.FoodStart.X, c.FoodStart.Y)
	}
	return nil
}

func (c SnakeConfig) onStartTail(p Point) bool {
	return p.Y == c.Start.Y && p.X <= c.Start.X && p.X > c.Start.X-MaxTailLength
}

func (c SnakeConfig) inGrid(p Point) bool {
	return p.X >= 0 && p.X < c.Grid.Width && p.Y >= 0 && p.Y < c.Grid.Height
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// TicksForPreset returns the ticks per second for a difficulty preset.
// Zero means the configured value is kept.
func TicksForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 6
	case DifficultyNormal:
		return 8
	case DifficultyHard:
		return 12
	default:
		return 0
	}
}

// ParsePreset validates a preset name given on the command line.
// The empty string selects DifficultyFixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}
