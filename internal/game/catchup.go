package game

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/gamectx"
	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/save"
	"github.com/vovakirdan/pocketpet/internal/scene"
	"github.com/vovakirdan/pocketpet/internal/sim"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

const (
	// CatchUpStep is the fixed step used to replay absent time.
	CatchUpStep = 16 * time.Millisecond
	// DefaultCatchUpCap bounds the replayed time.
	DefaultCatchUpCap = 7 * 24 * time.Hour
)

// ReplayReport describes one catch-up.
type ReplayReport struct {
	Elapsed   time.Duration  // wall time since the save, zero when Rewound
	Simulated time.Duration  // time actually replayed
	Steps     int64          // sim ticks run
	Capped    bool           // elapsed exceeded the cap
	Rewound   bool           // the clock reads earlier than the save
	Death     pet.DeathCause // set when the pet died while away
}

// Replay advances ctx through d of absent time in CatchUpStep steps, the
// same way live play would at a time scale of 1. The remainder below one
// step is dropped. It returns the timestamp reached and the step count.
func Replay(ctx *gamectx.Context, rules *sim.Rules, from timestamp.Timestamp, d time.Duration) (timestamp.Timestamp, int64) {
	steps := int64(max(d, 0) / CatchUpStep)
	now := from
	for range steps {
		now = now.Add(CatchUpStep)
		sim.Tick(ctx, rules, sim.Step{Now: now, Delta: CatchUpStep, TimeScale: 1})
	}
	return now, steps
}

// LoadSave restores snap and replays the time since it was written, then
// restarts the scenes at Home with the clock at now. The generator is not
// reseeded, so the result depends on this game's history as well as the
// save.
func (g *Game) LoadSave(now timestamp.Timestamp, snap save.Snapshot) ReplayReport {
	snap.Apply(g.ctx)

	// Sub saturates, so a clock set back replays nothing.
	rep := ReplayReport{
		Elapsed: now.Sub(snap.Timestamp),
		Rewound: now.Before(snap.Timestamp),
	}
	d := rep.Elapsed
	if g.catchUpCap > 0 && d > g.catchUpCap {
		d = g.catchUpCap
		rep.Capped = true
	}

	alive := g.ctx.Pet.Alive()
	_, rep.Steps = Replay(g.ctx, g.rules, snap.Timestamp, d)
	rep.Simulated = time.Duration(rep.Steps) * CatchUpStep
	if alive && !g.ctx.Pet.Alive() {
		rep.Death = g.ctx.Pet.Death
	}

	g.mgr.Reset(scene.NewHome())
	g.now = now
	return rep
}
