package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Rows below the playfield box: the HUD line and the help footer.
const (
	hudRows  = 1
	helpRows = 1
)

// Model is the Bubble Tea model for running a snake variant.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	layout     core.Layout
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)
	layout := game.Layout()

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(layout.GridW+2, layout.GridH+2+hudRows),
		config:     cfg,
		layout:     layout,
		keyMapper:  NewKeyMapper(layout.Keys),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleFrame hands the buffered input to the game. The game decides
// whether this frame is a simulation tick.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(now, m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, frameCmd(m.config.FrameRate)
}

// MinSize returns the terminal size needed to show the whole playfield.
func (m Model) MinSize() (int, int) {
	return m.screen.Width(), m.screen.Height() + helpRows
}

// tooSmall reports whether the last known terminal size cannot fit the board.
// An unknown size (zero) is assumed to fit.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	w, h := m.MinSize()
	return m.width < w || m.height < h
}

// draw renders the playfield box, the game and the HUD into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()

	board := core.NewRect(0, 0, m.layout.GridW+2, m.layout.GridH+2)
	m.screen.DrawBox(board, core.ColorGray)
	m.game.Render(newScreenCanvas(m.screen, board.Inset(1), m.layout.CellSize))

	hud := m.game.Title()
	if m.gameState.Frozen {
		hud += "  restarting..."
	}
	m.screen.DrawTextColored(1, board.Bottom(), hud, core.ColorGray)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		w, h := m.MinSize()
		var b strings.Builder
		b.WriteString("\n")
		b.WriteString(centerText(warnStyle.Render("Terminal too small"), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(fmt.Sprintf("need %dx%d, have %dx%d", w, h, m.width, m.height), m.width))
		return b.String()
	}

	m.draw()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
