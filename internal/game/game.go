// Package game is the facade shells drive: they feed it button states,
// temperature and elapsed time, and read back a framebuffer, queued songs
// and save snapshots.
package game

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/gamectx"
	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/save"
	"github.com/vovakirdan/pocketpet/internal/scene"
	"github.com/vovakirdan/pocketpet/internal/sim"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

const (
	// IdleQuitAfter returns menus to Home when nothing was pressed for this long.
	IdleQuitAfter = 5 * time.Minute
	// LowPowerAfter is the idle time after which Home allows throttling.
	LowPowerAfter = 30 * time.Second
)

// Game owns the context, the scene manager, input and the framebuffer.
type Game struct {
	ctx        *gamectx.Context
	rules      *sim.Rules
	mgr        *scene.Manager
	input      core.Input
	display    *core.Screen
	now        timestamp.Timestamp
	timeScale  float64
	catchUpCap time.Duration
	frames     uint64
	fps        float64
}

// Option configures a Game.
type Option func(*Game)

// WithRules replaces the default compiled tuning.
func WithRules(r *sim.Rules) Option {
	return func(g *Game) {
		if r != nil {
			g.rules = r
		}
	}
}

// WithCatchUpCap bounds how much absent time LoadSave replays. Zero or
// less removes the bound.
func WithCatchUpCap(d time.Duration) Option {
	return func(g *Game) {
		g.catchUpCap = d
	}
}

// WithTimeScale sets the initial simulation time scale.
func WithTimeScale(f float64) Option {
	return func(g *Game) {
		g.timeScale = f
	}
}

// New creates a game at now that boots into Home with a fresh context.
func New(now timestamp.Timestamp, opts ...Option) *Game {
	g := &Game{
		ctx:        gamectx.New(now),
		rules:      sim.DefaultRules(),
		display:    core.NewScreen(core.DisplayWidth, core.DisplayHeight),
		now:        now,
		timeScale:  1,
		catchUpCap: DefaultCatchUpCap,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.mgr = scene.NewManager(scene.NewHome())
	return g
}

// Blank creates a game that starts by hatching a random baby. A nil now
// means the shell has no clock: the game starts at timestamp.Default()
// and asks the player for the date first.
func Blank(now *timestamp.Timestamp, opts ...Option) *Game {
	resolved := timestamp.Default()
	if now != nil {
		resolved = *now
	}
	g := New(resolved, opts...)
	babies := pet.ByStage(pet.Baby)
	g.mgr.SetNext(scene.StartNewPet(babies[g.ctx.RNG.IntN(len(babies))], now == nil))
	return g
}

// UpdateInputStates sets the held buttons for the next tick.
func (g *Game) UpdateInputStates(states core.ButtonStates) {
	g.input.Set(states)
}

// UpdateTemperature records the ambient temperature in °C.
func (g *Game) UpdateTemperature(celsius float32) {
	g.ctx.Temperature = celsius
}

// SetSimTimeScale multiplies the delta the simulation sees. Scenes keep
// running in real time.
func (g *Game) SetSimTimeScale(f float64) {
	g.timeScale = f
}

// Tick advances the game by delta.
func (g *Game) Tick(delta time.Duration) {
	now := g.now.Add(delta)

	g.stir()

	if g.ctx.Alarm.Tick(now) {
		g.ctx.Sound.Push(pet.SongAlarm)
	}

	sim.Tick(g.ctx, g.rules, sim.Step{Now: now, Delta: delta, TimeScale: g.timeScale})

	g.mgr.Tick(scene.NewTickArgs(g.mgr, now, delta, &g.input, g.ctx))

	kind := g.mgr.Active().Kind()
	if g.mgr.Pending() == nil && g.input.Idle() > IdleQuitAfter && kind.QuitsOnIdle() {
		g.mgr.SetNext(scene.NewHome())
	}
	if kind.PersistWorthy() {
		g.ctx.ShouldSave = true
	}

	g.now = now
	if ts := g.ctx.SetTimestamp; ts != nil {
		g.now = *ts
		g.ctx.SetTimestamp = nil
	}
	g.input.Advance(delta)
}

// stir draws from the generator every tick, and a player-dependent number
// of extra times while a button is held, so outcomes depend on when the
// player acts.
func (g *Game) stir() {
	r := g.ctx.RNG
	if g.input.AnyDown() {
		for range r.IntN(10) {
			r.Bool()
		}
	}
	r.Bool()
}

// RefreshDisplay renders the active scene into the framebuffer.
func (g *Game) RefreshDisplay(delta time.Duration) {
	g.display.Clear()
	g.mgr.Render(g.display, &scene.RenderArgs{Now: g.now, Ctx: g.ctx, Frame: g.frames})
	g.frames++
	if delta > 0 {
		inst := 1 / delta.Seconds()
		if g.fps == 0 {
			g.fps = inst
		} else {
			g.fps += (inst - g.fps) * 0.1
		}
	}
}

// GetSave returns a snapshot once a persistence-worthy scene has been
// reached.
func (g *Game) GetSave(now timestamp.Timestamp) (save.Snapshot, bool) {
	if !g.ctx.ShouldSave {
		return save.Snapshot{}, false
	}
	return save.Generate(now, g.ctx), true
}

// Time is the game clock.
func (g *Game) Time() timestamp.Timestamp { return g.now }

// ActiveScene reports which scene is running.
func (g *Game) ActiveScene() scene.Kind { return g.mgr.Active().Kind() }

// Context exposes the game state. Callers must not hold it across ticks.
func (g *Game) Context() *gamectx.Context { return g.ctx }

// Display is the framebuffer written by RefreshDisplay.
func (g *Game) Display() *core.Screen { return g.display }

// Frames is the number of rendered frames.
func (g *Game) Frames() uint64 { return g.frames }

// FPS is a smoothed render rate.
func (g *Game) FPS() float64 { return g.fps }

// PullSong takes the queued song, if any.
func (g *Game) PullSong() pet.Song { return g.ctx.Sound.Pull() }

// Idle is the time since a button was last held.
func (g *Game) Idle() time.Duration { return g.input.Idle() }

// LowPower reports that the shell may throttle: Home is showing, nobody
// has pressed anything for a while and the alarm is quiet.
func (g *Game) LowPower() bool {
	return g.mgr.Active().Kind() == scene.KindHome &&
		g.input.Idle() > LowPowerAfter &&
		!g.ctx.Alarm.Ringing
}
