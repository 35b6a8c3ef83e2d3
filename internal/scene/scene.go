// Package scene implements the UI state machine: a closed set of scenes,
// each with a setup/teardown/tick/render lifecycle, and a manager that
// defers transitions to the start of the next tick and keeps a single
// stash slot so generic dialogs can hand control back to their caller.
package scene

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/gamectx"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// Scene is one UI mode. The set of implementations is closed: every
// variant lives in this package.
type Scene interface {
	// Kind identifies the variant.
	Kind() Kind

	// Setup runs once each time the scene becomes active, including when
	// it is resumed from the stash.
	Setup(args *TickArgs)

	// Teardown runs once each time the scene is deactivated, before the
	// replacement's Setup.
	Teardown(args *TickArgs)

	// Tick advances the scene by one frame and may request a transition.
	Tick(args *TickArgs) Output

	// Render draws the scene. The surface is cleared beforehand.
	Render(dst Surface, args *RenderArgs)

	sealed()
}

// base gives every variant the sealing method and empty lifecycle hooks.
type base struct{}

func (base) sealed()            {}
func (base) Setup(*TickArgs)    {}
func (base) Teardown(*TickArgs) {}

// Output is the result of a scene tick.
type Output struct {
	// Next is the scene to switch to at the start of the next tick, or nil
	// to stay.
	Next Scene
}

// Stay keeps the active scene.
func Stay() Output {
	return Output{}
}

// Goto requests a transition to s.
func Goto(s Scene) Output {
	return Output{Next: s}
}

// TickArgs is lent to the active scene for one tick.
type TickArgs struct {
	Now   timestamp.Timestamp
	Delta time.Duration
	Input *core.Input
	Ctx   *gamectx.Context

	mgr *Manager
}

// NewTickArgs builds tick arguments bound to m's stash slot.
func NewTickArgs(m *Manager, now timestamp.Timestamp, delta time.Duration, in *core.Input, ctx *gamectx.Context) *TickArgs {
	return &TickArgs{Now: now, Delta: delta, Input: in, Ctx: ctx, mgr: m}
}

// Pressed is shorthand for Input.Pressed.
func (a *TickArgs) Pressed(b core.Button) bool {
	return a.Input != nil && a.Input.Pressed(b)
}

// Resume takes the stashed scene out of the manager so a dialog can return
// to whoever opened it. An empty slot means a dialog was entered without a
// parent, which is a wiring bug, so Resume panics rather than guessing.
func (a *TickArgs) Resume() Scene {
	if a.mgr == nil || a.mgr.last == nil {
		panic("scene: resume with no stashed scene")
	}
	s := a.mgr.last
	a.mgr.last = nil
	return s
}

// RenderArgs is lent to the active scene for one frame.
type RenderArgs struct {
	Now   timestamp.Timestamp
	Ctx   *gamectx.Context
	Frame uint64 // frames rendered so far, for blinking
}

// Blink reports whether blinking elements are visible this frame.
func (a *RenderArgs) Blink() bool {
	return (a.Frame/8)%2 == 0
}

// Surface is the monochrome drawing target scenes render into.
type Surface interface {
	Width() int
	Height() int
	SetPixel(x, y int, on bool)
	Fill(r core.Rect, on bool)
	DrawBox(r core.Rect)
	DrawHLine(x, y, length int)
	Bar(x, y, width int, frac float64)
	Blit(x, y int, img *core.Image)
	BlitCentered(y int, img *core.Image)
	Text(x, y int, text string)
	TextCentered(y int, text string)
}

// timer counts down a fixed duration of scene time.
type timer struct {
	left time.Duration
}

func newTimer(d time.Duration) timer {
	return timer{left: d}
}

// tick advances the timer and reports whether it has run out.
func (t *timer) tick(d time.Duration) bool {
	t.left -= d
	return t.left <= 0
}
