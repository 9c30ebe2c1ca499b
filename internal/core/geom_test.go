package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"inside", 10, 5, true},
		{"last column", 19, 5, true},
		{"last row", 10, 9, true},
		{"right edge (exclusive)", 20, 5, false},
		{"bottom edge (exclusive)", 10, 10, false},
		{"negative x", -1, 5, false},
		{"negative y", 10, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Area() != 300 {
		t.Errorf("Area() = %d, expected 300", r.Area())
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v, expected {1 1 8 4}", r)
	}

	// Insetting past the size collapses to an empty rect
	empty := NewRect(0, 0, 2, 2).Inset(3)
	if empty.Area() != 0 {
		t.Errorf("Area() of collapsed rect = %d, expected 0", empty.Area())
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
