package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SnakeConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &fromYAML))
	assert.Equal(t, DefaultSnakeConfig(), fromYAML)
	assert.NoError(t, fromYAML.Validate())
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  width: 30\n  height: 15\nticks_per_second: 10\nreset:\n  mode: freeze\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadSnake(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Grid.Width)
	assert.Equal(t, 15, cfg.Grid.Height)
	assert.Equal(t, 10, cfg.TicksPerSecond)
	assert.Equal(t, ResetModeFreeze, cfg.Reset.Mode)
	// Keys missing from the file keep their defaults
	assert.Equal(t, 20, cfg.CellSize)
	assert.Equal(t, 1500, cfg.Reset.PauseMillis)
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSnake(filepath.Join(dir, "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read config")
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grid: [1, 2"), 0o600))
		_, err := LoadSnake(path)
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ticks_per_second: 0\n"), 0o600))
		_, err := LoadSnake(path)
		assert.ErrorContains(t, err, "ticks_per_second")
	})
}

func TestLoadSnakeSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// Without any override the embedded default is used
	cfg, err := LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), cfg)

	// A user config takes precedence over the default
	userDir := filepath.Join(home, ".snake", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "snake.yaml"), []byte("cell_size: 12\n"), 0o600))

	cfg, err = LoadSnake("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.CellSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		errMsg string
	}{
		{"defaults", func(*SnakeConfig) {}, ""},
		{"zero width", func(c *SnakeConfig) { c.Grid.Width = 0 }, "grid must be positive"},
		{"zero cell size", func(c *SnakeConfig) { c.CellSize = 0 }, "cell_size"},
		{"negative pause", func(c *SnakeConfig) { c.Reset.PauseMillis = -1 }, "pause_ms"},
		{"unknown mode", func(c *SnakeConfig) { c.Reset.Mode = "later" }, "unknown reset.mode"},
		{"start outside", func(c *SnakeConfig) { c.Start = Point{X: 40, Y: 0} }, "start (40, 0)"},
		{"food outside", func(c *SnakeConfig) { c.FoodStart = Point{X: 0, Y: -1} }, "food_start"},
		{"tail off grid", func(c *SnakeConfig) { c.Start = Point{X: 1, Y: 5} }, "no room for a 4 cell tail"},
		{"tail touches edge", func(c *SnakeConfig) { c.Start = Point{X: 3, Y: 5}; c.FoodStart = Point{X: 4, Y: 5} }, ""},
		{"food on head", func(c *SnakeConfig) { c.FoodStart = c.Start }, "lies on the starting tail"},
		{"food on tail", func(c *SnakeConfig) { c.Start = Point{X: 5, Y: 5}; c.FoodStart = Point{X: 2, Y: 5} }, "lies on the starting tail"},
		{"food behind tail", func(c *SnakeConfig) { c.Start = Point{X: 5, Y: 5}; c.FoodStart = Point{X: 1, Y: 5} }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.errMsg)
		})
	}
}

func TestDerivedDurations(t *testing.T) {
	cfg := DefaultSnakeConfig()
	assert.Equal(t, "125ms", cfg.TickInterval().String())
	assert.Equal(t, "1.5s", cfg.ResetPause().String())

	w, h := cfg.WindowSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		tps    int
		pause  int
	}{
		{DifficultyEasy, 6, 2000},
		{DifficultyNormal, 8, 1500},
		{DifficultyHard, 12, 1000},
		{DifficultyFixed, 8, 1500},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			assert.Equal(t, tc.tps, cfg.TicksPerSecond)
			assert.Equal(t, tc.pause, cfg.Reset.PauseMillis)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyFixed, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}
