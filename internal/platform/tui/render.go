package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocketpet/internal/core"
)

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245"))
	pixelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// RenderScreen converts a Screen to half-block rows inside a border.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Rows())
	for i := range rows {
		rows[i] = s.Row(i)
	}
	return frameStyle.Render(pixelStyle.Render(strings.Join(rows, "\n")))
}

// FrameSize returns the terminal cells RenderScreen needs for s.
func FrameSize(s *core.Screen) (width, height int) {
	return s.Width() + 2, s.Rows() + 2
}

// renderStatus is the line under the frame.
func renderStatus(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}
