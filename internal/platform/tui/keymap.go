package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameKeyMap defines the key bindings while a round is running.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Screenshot, k.Quit},
	}
}

// NewGameKeyMap returns the steering bindings for a key set.
// Only the keys of that set steer; the other set is ignored.
func NewGameKeyMap(keys core.KeySet) GameKeyMap {
	km := GameKeyMap{
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}

	switch keys {
	case core.KeysLetters:
		km.Up = key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "up"))
		km.Down = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "down"))
		km.Left = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "left"))
		km.Right = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "right"))
	default:
		km.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up"))
		km.Down = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down"))
		km.Left = key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left"))
		km.Right = key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right"))
		// Letter q is free to quit when the letters do not steer
		km.Quit = key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q"),
			key.WithHelp("q/esc", "quit"),
		)
	}

	return km
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a key mapper for the given key set.
func NewKeyMapper(keys core.KeySet) *KeyMapper {
	return &KeyMapper{keys: NewGameKeyMap(keys)}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame appends the key's action to an input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	frame.Set(action)
	return false
}
