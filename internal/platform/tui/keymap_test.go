package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapperLetters(t *testing.T) {
	km := NewKeyMapper(core.KeysLetters)

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{runeKey('w'), core.ActionUp, false},
		{runeKey('s'), core.ActionDown, false},
		{runeKey('a'), core.ActionLeft, false},
		{runeKey('d'), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionNone, false},
		{runeKey('q'), core.ActionNone, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestKeyMapperArrows(t *testing.T) {
	km := NewKeyMapper(core.KeysArrows)

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{runeKey('w'), core.ActionNone, false},
		{runeKey('d'), core.ActionNone, false},
		{runeKey('q'), core.ActionQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper(core.KeysArrows)
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame))
	assert.False(t, km.MapKeyToFrame(runeKey('x'), &frame))
	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame))
	assert.True(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame))

	assert.Equal(t, []core.Action{core.ActionUp, core.ActionLeft}, frame.Actions)
}
