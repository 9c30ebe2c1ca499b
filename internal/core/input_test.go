package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone) // ignored
	f.Set(ActionLeft)

	if len(f.Actions) != 2 {
		t.Fatalf("len(Actions) = %d, expected 2", len(f.Actions))
	}
	if f.Actions[0] != ActionUp || f.Actions[1] != ActionLeft {
		t.Errorf("Actions = %v, expected [Up Left]", f.Actions)
	}
}

func TestNewInputFrameDropsNone(t *testing.T) {
	f := NewInputFrame(ActionNone, ActionDown, ActionNone, ActionRight)
	if len(f.Actions) != 2 || f.Actions[0] != ActionDown || f.Actions[1] != ActionRight {
		t.Errorf("Actions = %v, expected [Down Right]", f.Actions)
	}
}

func TestInputFrameClearKeepsCapacity(t *testing.T) {
	f := NewInputFrame(ActionRight, ActionUp)
	capBefore := cap(f.Actions)

	f.Clear()

	if len(f.Actions) != 0 {
		t.Errorf("len(Actions) after Clear = %d, expected 0", len(f.Actions))
	}
	if cap(f.Actions) != capBefore {
		t.Errorf("cap(Actions) after Clear = %d, expected %d", cap(f.Actions), capBefore)
	}
}

func TestActionIsDirectional(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionNone, false},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsDirectional(); got != tc.expected {
				t.Errorf("IsDirectional() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
