package scene

import (
	"fmt"

	"github.com/vovakirdan/pocketpet/internal/core"
)

// menu is a cursor over n entries driven by the three buttons: left and
// right move, middle selects.
type menu struct {
	cursor int
}

// handle applies this tick's presses and reports whether the entry under
// the cursor was selected.
func (m *menu) handle(a *TickArgs, n int) bool {
	if n <= 0 {
		return false
	}
	if a.Pressed(core.ButtonLeft) {
		m.cursor--
	}
	if a.Pressed(core.ButtonRight) {
		m.cursor++
	}
	m.cursor = core.Wrap(m.cursor, n)
	return a.Pressed(core.ButtonMiddle)
}

const listRows = 8

// drawList draws entries as a vertical list starting at pixel row y,
// scrolled so the cursor stays visible.
func drawList(dst Surface, y int, entries []string, cursor int) {
	first := max(0, cursor-listRows+1)
	for i := first; i < len(entries) && i < first+listRows; i++ {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		dst.Text(2, y+(i-first)*4, marker+entries[i])
	}
	if first > 0 {
		dst.Text(dst.Width()-2, y, "^")
	}
	if first+listRows < len(entries) {
		dst.Text(dst.Width()-2, y+(listRows-1)*4, "v")
	}
}

// drawTitle draws a heading with a rule under it.
func drawTitle(dst Surface, title string) {
	dst.TextCentered(0, title)
	dst.DrawHLine(0, 3, dst.Width())
}

// drawPicker draws "< label >" centered on row y.
func drawPicker(dst Surface, y int, label string) {
	dst.TextCentered(y, fmt.Sprintf("< %s >", label))
}
