package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocketpet/internal/core"
)

// KeyMap binds terminal keys to the three buttons.
type KeyMap struct {
	Left   key.Binding
	Middle key.Binding
	Right  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Middle, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Middle, k.Right},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h", "1"),
			key.WithHelp("←/a", "left"),
		),
		Middle: key.NewBinding(
			key.WithKeys("enter", " ", "space", "s", "j", "2"),
			key.WithHelp("enter/space", "select"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l", "3"),
			key.WithHelp("→/d", "right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "save & quit"),
		),
	}
}

// Button translates a key message to a button.
// Returns false when the key is not bound to one.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Middle):
		return core.ButtonMiddle, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	}
	return core.ButtonCount, false
}

// presses turns discrete key events into held button states. Terminals
// report no key releases, so each press is held for one tick and
// released for the next, which gives the game a clean edge every time.
type presses struct {
	queue []core.Button
	held  bool
}

func (p *presses) push(b core.Button) {
	// A held-down key repeats quickly; keep the backlog short.
	if len(p.queue) >= maxQueuedPresses {
		return
	}
	p.queue = append(p.queue, b)
}

// next returns the button states for the coming tick.
func (p *presses) next() core.ButtonStates {
	var s core.ButtonStates
	if p.held || len(p.queue) == 0 {
		p.held = false
		return s
	}
	s[p.queue[0]] = true
	p.queue = p.queue[1:]
	p.held = true
	return s
}

func (p *presses) pending() int {
	return len(p.queue)
}

const maxQueuedPresses = 8
