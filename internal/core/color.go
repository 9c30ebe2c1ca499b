package core

// Color represents a foreground color for a screen cell.
// The platform maps it to ANSI codes (terminal) or RGBA (window).
type Color uint8

// Palette used by the snake frontends.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorWhite
	ColorBrightGreen
	ColorGray
)

// RGBA returns the 8-bit channel values used by pixel frontends.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorRed:
		return 204, 51, 51, 255
	case ColorGreen:
		return 40, 150, 60, 255
	case ColorBlue:
		return 135, 135, 235, 255
	case ColorWhite:
		return 240, 240, 240, 255
	case ColorBrightGreen:
		return 90, 220, 100, 255
	case ColorGray:
		return 128, 128, 128, 255
	default:
		return 0, 0, 0, 255
	}
}

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}
