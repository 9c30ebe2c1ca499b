package core

// Canvas is the drawing surface a frontend hands to a game each frame.
// Games only ever paint whole grid cells and short text labels.
type Canvas interface {
	// FillCell paints the grid cell at (x, y) with a solid color.
	FillCell(x, y int, c Color)

	// DrawText writes text with its top-left corner at pixel position (px, py).
	DrawText(px, py int, text string)
}

// Layout describes the playfield geometry and controls a frontend must honor.
type Layout struct {
	GridW    int    // Playfield width in cells
	GridH    int    // Playfield height in cells
	CellSize int    // Pixel size of one cell
	Keys     KeySet // Physical keys that steer
}

// PixelSize returns the window size in pixels: cell size times grid size.
func (l Layout) PixelSize() (int, int) {
	return l.CellSize * l.GridW, l.CellSize * l.GridH
}
