// Package sim is the simulation tick engine. Tick is the single source of
// time-driven mutation and is called identically by live play and by
// catch-up replay.
package sim

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/gamectx"
	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// Step is one logical advance of the simulation.
type Step struct {
	Now       timestamp.Timestamp
	Delta     time.Duration
	TimeScale float64
}

// Effective returns the scaled delta.
func (s Step) Effective() time.Duration {
	if s.TimeScale == 1 {
		return s.Delta
	}
	if s.TimeScale <= 0 {
		return 0
	}
	return time.Duration(float64(s.Delta) * s.TimeScale)
}

// SubStep is the longest slice of effective time one pass of the engine
// covers. Longer deltas are split so every subsystem sees fresh state.
const SubStep = time.Second

// Tick advances every time-driven subsystem of ctx by one step.
// The scaled delta is walked in slices of at most SubStep and every
// interval it spans gets its roll, so rates per unit of pet age do not
// depend on frame length or time scale. It does not allocate.
func Tick(ctx *gamectx.Context, rules *Rules, step Step) {
	d := step.Effective()
	if d <= 0 {
		return
	}
	sleeping := rules.Sleeping(step.Now.Hour())
	for d > 0 {
		slice := min(d, SubStep)
		advance(ctx, rules, slice, sleeping, step.Now)
		d -= slice
	}
}

func advance(ctx *gamectx.Context, rules *Rules, d time.Duration, sleeping bool, now timestamp.Timestamp) {
	tickEgg(ctx, rules, d)

	p := &ctx.Pet
	if !p.Alive() {
		return
	}

	tickBody(ctx, rules, d, sleeping)
	tickBreed(ctx, rules, d)
	tickDeath(ctx, rules, d, sleeping)
	if !p.Alive() {
		ctx.Suitor.Clear()
		ctx.Explore.Cancel()
		ctx.Sound.Push(pet.SongDeath)
		return
	}
	tickEvolve(p)
	tickIllness(ctx, rules, d)
	tickPoop(ctx, rules, d, sleeping, now)
	tickSuitor(ctx, rules, d, sleeping)
	tickExplore(ctx, d)
}

// due advances acc by d and returns how many whole intervals it now
// holds. Those are drained and the remainder kept.
func due(acc *time.Duration, d, interval time.Duration) int {
	*acc += d
	if *acc < interval {
		return 0
	}
	n := *acc / interval
	*acc -= n * interval
	return int(n)
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

func tickBody(ctx *gamectx.Context, rules *Rules, d time.Duration, sleeping bool) {
	p := &ctx.Pet
	secs := d.Seconds()

	hunger := rules.Rates.StomachDrainPerSecond * secs
	bored := d
	if sleeping {
		hunger *= rules.Rates.SleepingHungerFactor
		bored = scale(d, rules.Rates.SleepingBoredomFactor)
	}

	p.Age += d
	p.Stomach = max(p.Stomach-hunger, 0)
	p.ExtraWeight = max(p.ExtraWeight-rules.Rates.WeightLossPerSecond*secs, 0)
	if p.Stomach <= 0 {
		p.Starving += d
	} else {
		p.Starving = 0
	}

	if ctx.Warm(rules.Env.ColdBelow) {
		p.Cold = 0
	} else {
		p.Cold += d
	}

	p.Bored += bored
	p.PoopUrge += d
	if p.Ill {
		p.IllFor += d
	}
	if p.Definition().Stage == pet.Adult {
		p.Matured += d
	}
}

func tickDeath(ctx *gamectx.Context, rules *Rules, d time.Duration, sleeping bool) {
	for n := due(&ctx.Checks.Death, d, rules.Intervals.Death); n > 0 && ctx.Pet.Alive(); n-- {
		rollDeath(ctx, rules, sleeping)
	}
}

func rollDeath(ctx *gamectx.Context, rules *Rules, sleeping bool) {
	p := &ctx.Pet
	r := ctx.RNG
	switch {
	case r.Float32() < rules.Lightning:
		p.Death = pet.DeathLightningStrike
	case rules.Starvation.Roll(r, p.Starving):
		p.Death = pet.DeathStarvation
	case rules.OldAge.Roll(r, p.Age):
		p.Death = pet.DeathOldAge
	case rules.ToxicShock.Roll(r, ctx.PoopCount()):
		p.Death = pet.DeathToxicShock
	case p.Ill && rules.IllnessDeath.Roll(r, p.IllFor):
		p.Death = pet.DeathIllness
	case rules.Hypothermia.Roll(r, p.Cold):
		p.Death = pet.DeathHypothermia
	case !sleeping && rules.Leaving.Roll(r, p.Bored):
		p.Death = pet.DeathLeaving
	}
}

func tickEvolve(p *pet.Instance) {
	def := p.Definition()
	if !p.Evolving && def.EvolvesInto.Valid() && p.Age >= def.EvolveAt {
		p.Evolving = true
	}
}

func tickIllness(ctx *gamectx.Context, rules *Rules, d time.Duration) {
	p := &ctx.Pet
	for n := due(&ctx.Checks.Illness, d, rules.Intervals.Illness); n > 0 && !p.Ill; n-- {
		if rules.IllnessOnset.Roll(ctx.RNG, ctx.PoopCount()) {
			p.Ill = true
			p.IllFor = 0
		}
	}
}

func tickPoop(ctx *gamectx.Context, rules *Rules, d time.Duration, sleeping bool, now timestamp.Timestamp) {
	n := due(&ctx.Checks.Poop, d, rules.Intervals.Poop)
	if sleeping {
		return
	}
	p := &ctx.Pet
	for ; n > 0; n-- {
		if rules.Poop.Roll(ctx.RNG, p.PoopUrge) && ctx.AddPoop(now) {
			p.PoopUrge = 0
		}
	}
}

func tickBreed(ctx *gamectx.Context, rules *Rules, d time.Duration) {
	n := due(&ctx.Checks.Breed, d, rules.Intervals.Breed)
	p := &ctx.Pet
	if ctx.Egg != nil || p.Definition().Stage != pet.Adult {
		return
	}
	for ; n > 0 && !p.Receptive; n-- {
		if rules.Breed.Roll(ctx.RNG, p.Matured) {
			p.Receptive = true
		}
	}
}

func tickSuitor(ctx *gamectx.Context, rules *Rules, d time.Duration, sleeping bool) {
	s := &ctx.Suitor
	p := &ctx.Pet
	checks := due(&ctx.Checks.Suitor, d, rules.Intervals.Suitor)

	if s.Present {
		s.Visitor.Waiting += d
	}
	if sleeping || (s.Present && !p.CanBreed()) {
		s.Clear()
	}
	if sleeping || !p.CanBreed() || ctx.Egg != nil {
		return
	}

	if s.Present {
		for ; checks > 0; checks-- {
			if ctx.RNG.Float32() < rules.SuitorLeave {
				s.Clear()
				break
			}
		}
		return
	}

	s.WaitingFor += d
	for ; checks > 0; checks-- {
		if rules.SuitorArrival.Roll(ctx.RNG, s.WaitingFor) {
			s.Visitor = pet.NewSuitor(ctx.RNG)
			s.Present = true
			s.WaitingFor = 0
			break
		}
	}
}

func tickEgg(ctx *gamectx.Context, rules *Rules, d time.Duration) {
	e := ctx.Egg
	if e == nil || e.Ready {
		return
	}
	e.Age += d
	for n := due(&ctx.Checks.Egg, d, rules.Intervals.Egg); n > 0; n-- {
		if rules.EggHatch.Roll(ctx.RNG, e.Age) {
			e.Ready = true
			ctx.Sound.Push(pet.SongHatch)
			return
		}
	}
}

func tickExplore(ctx *gamectx.Context, d time.Duration) {
	x := &ctx.Explore
	if !x.Active {
		return
	}
	loc := pet.LookupLocation(x.Location)
	x.Elapsed += d

	for n := due(&x.SinceCheck, d, loc.CheckEvery); n > 0; n-- {
		x.Checks++
		skill := ctx.RNG.Float32() * (0.5 + ctx.Pet.Definition().Skill)
		if skill > ctx.RNG.Float32()*loc.Difficulty {
			x.Passes++
		}
	}

	if x.Elapsed >= loc.Length {
		res := x.Finish()
		ctx.Money += res.Money
		ctx.Inventory.Add(res.Found, 1)
		ctx.Sound.Push(pet.SongCoin)
	}
}
