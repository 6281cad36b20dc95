package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/unicorn-dash/internal/core"
	"github.com/vovakirdan/unicorn-dash/internal/game"
)

// Options configures the front end.
type Options struct {
	FPS           int     // Frame rate of the redraw ticker
	Width, Height int     // Initial screen size, updated on resize
	WorldWidth    float64 // Simulated viewport width in world units
	ScreenshotDir string  // Where ctrl+s writes the current frame, empty disables it
}

// Model is the Bubble Tea model for a Unicorn Dash session.
type Model struct {
	machine   *game.Machine
	opts      Options
	screen    *core.Screen
	keyMapper *KeyMapper
	cursor    core.Difficulty
	duckTimer int // Frames left before an implicit duck release
	lastTick  time.Time
	quitting  bool
}

// NewModel creates a model that drives m.
func NewModel(m *game.Machine, opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	return Model{
		machine:   m,
		opts:      opts,
		screen:    core.NewScreen(opts.Width, opts.Height),
		keyMapper: NewKeyMapper(),
		cursor:    m.Difficulty(),
	}
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Width, m.opts.Height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	state := m.machine.State()
	if state == game.StateMenu {
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.machine.Handle(core.Quit())
		case MenuActionUp:
			m.cursor = nextDifficulty(m.cursor, -1)
		case MenuActionDown:
			m.cursor = nextDifficulty(m.cursor, 1)
		case MenuActionSelect:
			m.start(m.cursor)
		case MenuActionEasy:
			m.start(core.DifficultyEasy)
		case MenuActionNormal:
			m.start(core.DifficultyNormal)
		case MenuActionHard:
			m.start(core.DifficultyHard)
		}
		return m.quitIfRequested()
	}

	intent := m.keyMapper.MapKey(msg, state)
	switch intent.Kind {
	case core.IntentDuck:
		m.duckTimer = duckHoldFrames
	case core.IntentSelectDifficulty:
		m.cursor = intent.Difficulty
		m.lastTick = time.Time{}
	case core.IntentRestart:
		m.lastTick = time.Time{}
	case core.IntentMenu:
		m.duckTimer = 0
	case core.IntentNone:
		return m, nil
	}
	m.machine.Handle(intent)
	return m.quitIfRequested()
}

func (m *Model) start(d core.Difficulty) {
	m.cursor = d
	m.duckTimer = 0
	m.lastTick = time.Time{}
	m.machine.Handle(core.DifficultySelected(d))
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// The first frame of a run only sets the time base.
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.duckTimer > 0 {
		m.duckTimer--
		if m.duckTimer == 0 {
			m.machine.Handle(core.DuckHeld(false))
		}
	}

	m.machine.Advance(elapsed)
	if m.machine.QuitRequested() {
		return m.quitIfRequested()
	}
	return m, tickCmd(m.opts.FPS)
}

func (m Model) quitIfRequested() (tea.Model, tea.Cmd) {
	if m.machine.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// draw renders the current machine state into the screen buffer.
func (m Model) draw() {
	snap := m.machine.Snapshot()
	if snap.State == game.StateMenu {
		DrawMenu(m.screen, snap, m.cursor)
		return
	}
	DrawSnapshot(m.screen, snap, m.opts.WorldWidth)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.draw()

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.opts.ScreenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("dash_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(machine *game.Machine, opts Options) error {
	p := tea.NewProgram(
		NewModel(machine, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
