package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocketpet/internal/game"
	"github.com/vovakirdan/pocketpet/internal/pet"
)

// DefaultFPS is the tick rate when none is configured.
const DefaultFPS = 30

const (
	// Wall time between two ticks is fed to the game in steps no longer
	// than maxStep, and gaps longer than maxGap are cut short.
	maxStep = 100 * time.Millisecond
	maxGap  = time.Minute

	defaultAutosave = 10 * time.Second
)

// Options configures a Model.
type Options struct {
	Slot     string
	Store    Store // nil disables saving
	FPS      int
	Autosave time.Duration
	Bell     io.Writer // receives BEL whenever the game plays a song
	Logger   *log.Logger
}

// Model is the Bubble Tea model running one pet.
type Model struct {
	game      *game.Game
	opts      Options
	keys      KeyMap
	help      help.Model
	presses   *presses
	last      time.Time
	sinceSave time.Duration
	width     int
	height    int
	quitting  bool
}

// NewModel creates a model driving g.
func NewModel(g *game.Game, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Autosave <= 0 {
		opts.Autosave = defaultAutosave
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return Model{
		game:    g,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		presses: &presses{},
	}
}

// Init renders the first frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.RefreshDisplay(0)
	return tickCmd(frameInterval(m.opts.FPS))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.save()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.presses.push(b)
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := frameInterval(m.opts.FPS)
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now
	elapsed = min(max(elapsed, 0), maxGap)

	for left := elapsed; left > 0; left -= maxStep {
		m.game.UpdateInputStates(m.presses.next())
		m.game.Tick(min(left, maxStep))
	}
	m.game.RefreshDisplay(elapsed)

	cmds := []tea.Cmd{tickCmd(m.nextInterval())}
	if song := m.game.PullSong(); song != pet.SongNone && m.opts.Bell != nil {
		cmds = append(cmds, ring(m.opts.Bell))
	}

	m.sinceSave += elapsed
	if m.sinceSave >= m.opts.Autosave {
		m.save()
	}
	return m, tea.Batch(cmds...)
}

// nextInterval slows the loop down while the game allows it and no
// presses are waiting.
func (m Model) nextInterval() time.Duration {
	if m.game.LowPower() && m.presses.pending() == 0 {
		return lowPowerInterval
	}
	return frameInterval(m.opts.FPS)
}

// save writes the slot and resets the autosave timer.
func (m *Model) save() {
	m.sinceSave = 0
	if m.opts.Store == nil {
		return
	}
	if _, err := SaveGame(m.opts.Store, m.opts.Slot, m.game); err != nil {
		m.opts.Logger.Error("save failed", "slot", m.opts.Slot, "error", err)
	}
}

func ring(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // A missed bell is harmless
		w.Write([]byte{'\a'})
		return nil
	}
}

// View renders the framebuffer with a status and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.game.Display()
	w, h := FrameSize(screen)
	if m.width > 0 && (m.width < w || m.height < h+1) {
		return alertStyle.Render(fmt.Sprintf("terminal is %dx%d, pocketpet needs %dx%d", m.width, m.height, w, h+1))
	}

	ctx := m.game.Context()
	left := ctx.Pet.Name
	if ctx.Alarm.Ringing {
		left = alertStyle.Render("ALARM")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(screen),
		renderStatus(left, m.game.Time().String(), w),
		m.help.View(m.keys),
	)
}

// Game returns the game the model drives.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program for g and saves once it exits.
func Run(g *game.Game, opts Options) error {
	model := NewModel(g, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.save()
	return err
}
