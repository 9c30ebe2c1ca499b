package snake

import (
	"fmt"
	"math"
)

// ScoreTracker counts food eaten in the current round.
type ScoreTracker struct {
	value uint32

	// Position is the pixel position of the score text. Cosmetic only.
	Position Coordinate
}

// NewScoreTracker returns a zeroed tracker drawn at position.
func NewScoreTracker(position Coordinate) ScoreTracker {
	return ScoreTracker{Position: position}
}

// Increment adds one point. The counter saturates instead of wrapping.
func (s *ScoreTracker) Increment() {
	if s.value < math.MaxUint32 {
		s.value++
	}
}

// Value returns the current score.
func (s ScoreTracker) Value() uint32 {
	return s.value
}

// Text returns the label drawn on screen.
func (s ScoreTracker) Text() string {
	return fmt.Sprintf("Score: %d", s.value)
}
