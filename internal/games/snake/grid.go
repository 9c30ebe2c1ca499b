// Package snake implements the snake rounds: a snake steered over a fixed
// grid, food pickup, a score counter, and a wall-clock gated tick loop that
// starts a fresh round whenever the snake dies.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Coordinate identifies a grid cell. It is a plain value, copied and compared with ==.
type Coordinate struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Grid is the playfield, Width x Height cells anchored at (0, 0).
type Grid struct {
	Width  int
	Height int
}

func (g Grid) bounds() core.Rect {
	return core.NewRect(0, 0, g.Width, g.Height)
}

// OutOfBounds reports whether c lies outside the grid.
func (g Grid) OutOfBounds(c Coordinate) bool {
	return !g.bounds().Contains(c.X, c.Y)
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.bounds().Area()
}

// FreeCells lists every in-grid cell not present in taken, row by row.
func (g Grid) FreeCells(taken map[Coordinate]struct{}) []Coordinate {
	free := make([]Coordinate, 0, g.Cells()-len(taken))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coordinate{X: x, Y: y}
			if _, hit := taken[c]; !hit {
				free = append(free, c)
			}
		}
	}
	return free
}
