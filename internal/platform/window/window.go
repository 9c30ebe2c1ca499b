//go:build ebiten

// Package window runs a snake variant in a desktop window through ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Available reports whether this binary was built with the windowed frontend.
const Available = true

// background fills the window behind the playfield.
const background = core.ColorBlue

// Game adapts a registry game to the ebiten.Game interface.
type Game struct {
	game   registry.Game
	layout core.Layout
	canvas *imageCanvas

	frame   core.InputFrame
	pressed []ebiten.Key
}

// New constructs a windowed frontend for a game that has already been Reset.
func New(game registry.Game) *Game {
	layout := game.Layout()
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Game{
		game:   game,
		layout: layout,
		canvas: &imageCanvas{pixel: pixel, cellSize: layout.CellSize},
	}
}

// Update gathers this frame's key presses in order and steps the game.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		a := actionForKey(g.layout.Keys, k)
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		g.frame.Set(a)
	}

	g.game.Step(time.Now(), g.frame)
	g.frame.Clear()
	return nil
}

// Draw renders the current round.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(background))
	g.canvas.dst = screen
	g.game.Render(g.canvas)
	g.canvas.dst = nil
}

// Layout returns the logical screen size: cell size times grid size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.PixelSize()
}

// actionForKey maps a physical key to a steering action for a key set.
// Keys of the other set map to ActionNone.
func actionForKey(keys core.KeySet, k ebiten.Key) core.Action {
	if k == ebiten.KeyEscape {
		return core.ActionQuit
	}

	if keys == core.KeysLetters {
		switch k {
		case ebiten.KeyW:
			return core.ActionUp
		case ebiten.KeyS:
			return core.ActionDown
		case ebiten.KeyA:
			return core.ActionLeft
		case ebiten.KeyD:
			return core.ActionRight
		}
		return core.ActionNone
	}

	switch k {
	case ebiten.KeyArrowUp:
		return core.ActionUp
	case ebiten.KeyArrowDown:
		return core.ActionDown
	case ebiten.KeyArrowLeft:
		return core.ActionLeft
	case ebiten.KeyArrowRight:
		return core.ActionRight
	case ebiten.KeyQ:
		return core.ActionQuit
	}
	return core.ActionNone
}

// imageCanvas paints cells as filled squares and text with a bitmap font.
type imageCanvas struct {
	dst      *ebiten.Image
	pixel    *ebiten.Image
	cellSize int
}

func (c *imageCanvas) FillCell(x, y int, col core.Color) {
	r, g, b, a := col.RGBA()
	size := float64(c.cellSize)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(float64(x)*size, float64(y)*size)
	op.ColorScale.Scale(float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255)
	c.dst.DrawImage(c.pixel, op)
}

// DrawText places the top-left corner of the text at (px, py).
func (c *imageCanvas) DrawText(px, py int, s string) {
	face := basicfont.Face7x13
	baseline := py + face.Metrics().Ascent.Ceil()
	text.Draw(c.dst, s, face, px, baseline, rgba(core.ColorWhite))
}

func rgba(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Run opens a window sized to the game's playfield and blocks until it closes.
// The game is Reset here; frames run at cfg.FrameRate.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	game.Reset(cfg)
	g := New(game)

	w, h := g.layout.PixelSize()
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w, h)
	if cfg.FrameRate > 0 {
		ebiten.SetTPS(cfg.FrameRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
