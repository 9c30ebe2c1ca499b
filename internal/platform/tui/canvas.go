package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellRune fills one grid cell. Each grid cell is one terminal column wide.
const cellRune = '█'

// screenCanvas draws a game's cells and pixel-positioned text onto a
// terminal screen buffer. The playfield starts at origin.
type screenCanvas struct {
	screen   *core.Screen
	origin   core.Rect // Playfield area on screen, one column per cell
	cellSize int
}

func newScreenCanvas(s *core.Screen, origin core.Rect, cellSize int) *screenCanvas {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &screenCanvas{screen: s, origin: origin, cellSize: cellSize}
}

// FillCell paints grid cell (x, y). Cells outside the playfield are dropped.
func (c *screenCanvas) FillCell(x, y int, col core.Color) {
	if x < 0 || y < 0 || x >= c.origin.W || y >= c.origin.H {
		return
	}
	c.screen.SetColored(c.origin.X+x, c.origin.Y+y, cellRune, col)
}

// DrawText maps a pixel position to the cell containing it and writes there.
func (c *screenCanvas) DrawText(px, py int, text string) {
	x := c.origin.X + px/c.cellSize
	y := c.origin.Y + py/c.cellSize
	c.screen.DrawTextColored(x, y, text, core.ColorWhite)
}
