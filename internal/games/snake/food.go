package snake

import "math/rand"

// maxRelocateAttempts caps the random tries before Relocate falls back to
// picking from the list of free cells.
const maxRelocateAttempts = 64

// Food is the single piece of food on the grid.
type Food struct {
	at Coordinate
}

// NewFood places food at a fixed cell.
func NewFood(at Coordinate) Food {
	return Food{at: at}
}

// At returns the food cell.
func (f Food) At() Coordinate {
	return f.at
}

// Relocate moves the food to a uniformly random cell not in occupied.
//
// While the grid is at most half full it tries random cells, up to
// maxRelocateAttempts times. Past that, or once the tries run out, it picks
// from the precomputed free cells, so it always terminates. It returns false,
// leaving the food where it was, only when no free cell exists.
func (f *Food) Relocate(rng *rand.Rand, grid Grid, occupied []Coordinate) bool {
	taken := make(map[Coordinate]struct{}, len(occupied))
	for _, c := range occupied {
		if !grid.OutOfBounds(c) {
			taken[c] = struct{}{}
		}
	}

	cells := grid.Cells()
	if len(taken) >= cells {
		return false
	}

	if len(taken)*2 <= cells {
		for i := 0; i < maxRelocateAttempts; i++ {
			c := Coordinate{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
			if _, hit := taken[c]; !hit {
				f.at = c
				return true
			}
		}
	}

	free := grid.FreeCells(taken)
	if len(free) == 0 {
		return false
	}
	f.at = free[rng.Intn(len(free))]
	return true
}
