package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		CellSize:       20,
		TicksPerSecond: 8,
		Reset: ResetConfig{
			PauseMillis: 1500,
			Mode:        ResetModeBlock,
		},
		Start:         Point{X: 10, Y: 10},
		FoodStart:     Point{X: 20, Y: 10},
		ScorePosition: Point{X: 10, Y: 10},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
