// Package tui provides the Bubble Tea shell for pocketpet: it feeds key
// presses and wall time into the game, renders the framebuffer and keeps
// the save slot up to date, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// lowPowerInterval is the tick interval while the game allows throttling.
const lowPowerInterval = 500 * time.Millisecond

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameInterval converts a frame rate to a tick interval.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
