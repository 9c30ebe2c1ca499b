package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Variant is one iteration of the game. They share the round rules and
// differ in controls, starting length and turn buffering.
type Variant struct {
	ID         string
	Title      string
	Keys       core.KeySet
	TailLength int  // Initial tail segments, including the one under the head
	QueueTurns bool // Keep a second turn pressed within one tick
}

// Variants lists every playable variant, oldest first.
var Variants = []Variant{
	{
		ID:         "snake_v1",
		Title:      "Snake (first cut)",
		Keys:       core.KeysLetters,
		TailLength: 1,
	},
	{
		ID:         "snake_v2",
		Title:      "Snake (arrow keys)",
		Keys:       core.KeysArrows,
		TailLength: 1,
	},
	{
		ID:         "snake",
		Title:      "Snake",
		Keys:       core.KeysArrows,
		TailLength: 4,
		QueueTurns: true,
	},
}

// VariantByID looks up a variant by its registry id.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
