package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeGame records what the frontend hands it.
type fakeGame struct {
	layout core.Layout
	resets int
	steps  []time.Time
	frames [][]core.Action
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake Snake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
}
func (g *fakeGame) Step(now time.Time, in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, now)
	g.frames = append(g.frames, append([]core.Action(nil), in.Actions...))
	return core.StepResult{State: g.state}
}
func (g *fakeGame) Render(dst core.Canvas) {
	dst.FillCell(0, 0, core.ColorRed)
	dst.FillCell(g.layout.GridW, 0, core.ColorRed) // off the board
	dst.DrawText(20, 20, "Score: 7")
}
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Layout() core.Layout   { return g.layout }

func newFakeGame() *fakeGame {
	return &fakeGame{layout: core.Layout{GridW: 10, GridH: 5, CellSize: 20, Keys: core.KeysArrows}}
}

func TestModelFeedsFramesToGame(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, core.RuntimeConfig{FrameRate: 60, Seed: 1})
	require.Equal(t, 1, g.resets)
	require.NotNil(t, m.Init())

	var tm tea.Model = m
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyUp})
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyLeft})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm, cmd := tm.Update(FrameMsg(now))
	assert.NotNil(t, cmd, "frame loop should continue")

	tm, _ = tm.Update(FrameMsg(now.Add(time.Second / 60)))

	require.Len(t, g.steps, 2)
	assert.Equal(t, now, g.steps[0])
	assert.Equal(t, []core.Action{core.ActionUp, core.ActionLeft}, g.frames[0])
	assert.Empty(t, g.frames[1], "input should be cleared after each frame")
	_ = tm
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newFakeGame(), core.RuntimeConfig{FrameRate: 60})

	tm, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, tm.View())
}

func TestModelView(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, core.RuntimeConfig{FrameRate: 60})

	view := m.View()
	assert.Contains(t, view, "Fake Snake")

	// Board is 10x5 inside a box, then the HUD row.
	lines := strings.Split(m.screen.String(), "\n")
	require.Len(t, lines, 5+2+hudRows)
	assert.Equal(t, "┌──────────┐", lines[0])
	assert.Equal(t, "│█         │", lines[1])
	assert.Equal(t, "│ Score: 7 │", lines[2], "text at pixel (20,20) lands in cell (1,1)")
	assert.True(t, strings.HasPrefix(lines[7], " Fake Snake"))
}

func TestModelViewFrozen(t *testing.T) {
	g := newFakeGame()
	g.state.Frozen = true
	g.layout.GridW = 30
	m := NewModel(g, core.RuntimeConfig{FrameRate: 60})

	assert.Contains(t, m.View(), "restarting")
}

func TestModelTooSmall(t *testing.T) {
	m := NewModel(newFakeGame(), core.RuntimeConfig{FrameRate: 60, ScreenW: 80, ScreenH: 24})
	assert.NotContains(t, m.View(), "too small")

	tm, _ := m.Update(tea.WindowSizeMsg{Width: 8, Height: 4})
	view := tm.View()
	assert.Contains(t, view, "Terminal too small")
	assert.Contains(t, view, "need 12x9")
}
