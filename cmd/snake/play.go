package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant. Without a variant a picker is shown.

Controls:
  snake_v1   - W/A/S/D steer
  snake_v2   - Arrow keys steer
  snake      - Arrow keys steer; a second turn within one tick is queued
  Esc        - Quit (Q also quits in the arrow-key variants)
  Ctrl+S     - Save a screenshot to ~/.snake/screenshots (terminal only)

A round ends when the snake leaves the grid or runs into itself. The
game pauses briefly and starts a fresh round.

Difficulty options:
  easy   - 6 ticks per second, longer pause after a death
  normal - 8 ticks per second
  hard   - 12 ticks per second, shorter pause after a death
  fixed  - Keep the config's ticks per second

Examples:
  snake play snake
  snake play snake_v1 --difficulty easy
  snake play snake --config ./my-snake.yaml
  snake play snake --window`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window (needs a build with -tags ebiten)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Surface config problems before the terminal is taken over
	if _, err := config.LoadSnake(flagConfig); err != nil {
		return err
	}

	if flagWindow && !window.Available {
		return window.ErrUnavailable
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      seed,
	}

	var gameID string
	if len(args) > 0 {
		gameID = args[0]
	} else {
		gameID, err = tui.RunPicker(cfg)
		if err != nil {
			return fmt.Errorf("variant picker: %w", err)
		}
		// User quit the picker
		if gameID == "" {
			return nil
		}
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see available variants)", gameID)
	}

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(preset)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if flagWindow {
		err = window.Run(game, cfg)
	} else {
		err = tui.Run(game, cfg)
	}
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
