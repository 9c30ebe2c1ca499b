package snake

// turnSlot holds at most one requested direction.
type turnSlot struct {
	dir Direction
	set bool
}

// Snake is the head cell, the ordered tail and the steering state.
//
// The tail runs oldest first. Its newest segment is always the head cell
// itself: every tick the controller appends the head's new position, and
// drops the oldest segment unless the snake just ate.
type Snake struct {
	head Coordinate
	tail []Coordinate
	dir  Direction

	// Turn requests wait here until the next tick. With queueing enabled a
	// second request made before that tick goes to queued instead of
	// replacing pending, so a quick double tap is not lost.
	pending    turnSlot
	queued     turnSlot
	queueTurns bool
}

// NewSnake places the head at start, heading dir, with a straight tail of
// tailLen segments that ends at the head and trails away opposite dir.
func NewSnake(start Coordinate, dir Direction, tailLen int, queueTurns bool) Snake {
	if tailLen < 1 {
		tailLen = 1
	}

	back := dir.Inverse()
	tail := make([]Coordinate, tailLen)
	c := start
	for i := tailLen - 1; i >= 0; i-- {
		tail[i] = c
		c = c.Step(back)
	}

	return Snake{
		head:       start,
		tail:       tail,
		dir:        dir,
		queueTurns: queueTurns,
	}
}

// Head returns the head cell.
func (s Snake) Head() Coordinate {
	return s.head
}

// Tail returns a copy of the tail segments, oldest first.
func (s Snake) Tail() []Coordinate {
	out := make([]Coordinate, len(s.tail))
	copy(out, s.tail)
	return out
}

// Len returns the number of tail segments.
func (s Snake) Len() int {
	return len(s.tail)
}

// Direction returns the current heading.
func (s Snake) Direction() Direction {
	return s.dir
}

// Pending returns the turn that the next tick will consider.
func (s Snake) Pending() (Direction, bool) {
	return s.pending.dir, s.pending.set
}

// Queued returns the turn buffered behind the pending one.
func (s Snake) Queued() (Direction, bool) {
	return s.queued.dir, s.queued.set
}

// RequestDirection buffers a turn for the next tick. Without queueing the
// latest request simply replaces the pending one. With queueing, a request
// made while one is already pending lands in the queued slot, replacing
// whatever was queued before.
func (s *Snake) RequestDirection(d Direction) {
	if !s.queueTurns || !s.pending.set {
		s.pending = turnSlot{dir: d, set: true}
		return
	}
	s.queued = turnSlot{dir: d, set: true}
}

// ApplyPendingTurn consumes at most one buffered turn. The pending slot is
// used first; the queued slot only when nothing is pending. A turn onto the
// inverse of the current heading is dropped without effect.
func (s *Snake) ApplyPendingTurn() {
	var turn turnSlot
	switch {
	case s.pending.set:
		turn = s.pending
		s.pending = turnSlot{}
	case s.queued.set:
		turn = s.queued
		s.queued = turnSlot{}
	default:
		return
	}

	if turn.dir != s.dir.Inverse() {
		s.dir = turn.dir
	}
}

// Advance moves the head one cell along the current heading. Bounds and
// collisions are the controller's business.
func (s *Snake) Advance() {
	s.head = s.head.Step(s.dir)
}

// Grow appends the head cell to the tail and keeps the oldest segment.
func (s *Snake) Grow() {
	s.tail = append(s.tail, s.head)
}

// Slide appends the head cell to the tail and drops the oldest segment.
func (s *Snake) Slide() {
	s.tail = append(s.tail, s.head)
	s.tail = s.tail[1:]
}

// HitsItself reports whether the head overlaps any tail segment other than
// the newest one, which always sits on the head cell.
func (s *Snake) HitsItself() bool {
	if len(s.tail) < 2 {
		return false
	}
	for _, seg := range s.tail[:len(s.tail)-1] {
		if seg == s.head {
			return true
		}
	}
	return false
}
