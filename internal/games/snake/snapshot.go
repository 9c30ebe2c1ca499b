package snake

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Round   string
	Ticks   uint64
	Resets  int
	Score   uint32
	TailLen int
	HeadX   int
	HeadY   int
	Dir     Direction
	FoodX   int
	FoodY   int
	Frozen  bool
}

// Snapshot returns the current controller snapshot.
func (c *Controller) Snapshot() Snapshot {
	r := c.round
	head := r.Snake.Head()
	food := r.Food.At()
	return Snapshot{
		Round:   r.ID,
		Ticks:   c.ticks,
		Resets:  c.resets,
		Score:   r.Score.Value(),
		TailLen: r.Snake.Len(),
		HeadX:   head.X,
		HeadY:   head.Y,
		Dir:     r.Snake.Direction(),
		FoodX:   food.X,
		FoodY:   food.Y,
		Frozen:  c.Frozen(),
	}
}
