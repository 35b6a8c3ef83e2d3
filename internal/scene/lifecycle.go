package scene

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/pet"
)

const (
	deathHold  = 2 * time.Second
	evolveTime = 3 * time.Second
	hatchTime  = 3 * time.Second
	breedTime  = 3 * time.Second
)

type newPetState uint8

const (
	newPetAskDate newPetState = iota
	newPetAskName
	newPetNamed
)

// NewPet installs a new pet. It asks for the date first when the shell
// has no clock, then for a name, and replaces the pet once both dialogs
// have answered.
type NewPet struct {
	base
	def       pet.DefinitionID
	upid      pet.UPID
	parents   *pet.Parents
	needClock bool
	state     newPetState
}

// StartNewPet creates the scene for a fresh pet of species def.
func StartNewPet(def pet.DefinitionID, needClock bool) *NewPet {
	s := &NewPet{def: def, needClock: needClock, state: newPetAskName}
	if needClock {
		s.state = newPetAskDate
	}
	return s
}

// WithLineage gives the new pet a known id and parents, as for a hatchling.
func (s *NewPet) WithLineage(upid pet.UPID, parents *pet.Parents) *NewPet {
	s.upid = upid
	s.parents = parents
	return s
}

func (s *NewPet) Kind() Kind { return KindNewPet }

func (s *NewPet) Tick(a *TickArgs) Output {
	ctx := a.Ctx
	switch s.state {
	case newPetAskDate:
		s.state = newPetAskName
		return Goto(NewEnterDate(NeedDateTime, "WHEN IS IT?", a.Now))
	case newPetAskName:
		if s.needClock {
			if t, err := ctx.Mailbox.Date.At(ctx.Mailbox.Clock); err == nil {
				ctx.SetTimestamp = &t
			}
		}
		s.state = newPetNamed
		return Goto(NewEnterText("NAME?", pet.MaxNameLen).ShowPet(s.def))
	default:
		upid := s.upid
		if upid == 0 {
			upid = pet.NewUPID(ctx.RNG)
		}
		p := pet.New(s.def, upid, ctx.Mailbox.Text, a.Now)
		p.Parents = s.parents
		ctx.ReplacePet(p)
		return Goto(NewHome())
	}
}

func (s *NewPet) Render(dst Surface, a *RenderArgs) {
	dst.BlitCentered(50, spriteEgg)
}

// Death shows the grave, records the pet and moves on to its successor.
type Death struct {
	base
	cause pet.DeathCause
	hold  timer
}

// NewDeath creates the death scene.
func NewDeath() *Death {
	return &Death{hold: newTimer(deathHold)}
}

func (s *Death) Kind() Kind { return KindDeath }

func (s *Death) Setup(a *TickArgs) {
	s.cause = a.Ctx.Pet.Death
	a.Ctx.ArchivePet(s.cause, a.Now)
}

func (s *Death) Tick(a *TickArgs) Output {
	if !s.hold.tick(a.Delta) || !a.Pressed(core.ButtonMiddle) {
		return Stay()
	}
	ctx := a.Ctx
	if ctx.Egg != nil {
		// The egg is all that is left, so it hatches now.
		ctx.Egg.Ready = true
		return Goto(NewEggHatch())
	}
	babies := pet.ByStage(pet.Baby)
	return Goto(StartNewPet(babies[ctx.RNG.IntN(len(babies))], false))
}

func (s *Death) Render(dst Surface, a *RenderArgs) {
	dst.TextCentered(10, "R.I.P.")
	dst.TextCentered(16, a.Ctx.Pet.Name)
	dst.BlitCentered(ground-spriteGrave.H, spriteGrave)
	dst.DrawHLine(0, ground+1, dst.Width())
	dst.TextCentered(80, s.cause.String())
	if s.hold.left <= 0 && a.Blink() {
		dst.TextCentered(120, "PRESS")
	}
}

// Evolve flickers between the old and new forms, then evolves the pet.
type Evolve struct {
	base
	from, to pet.DefinitionID
	t        timer
}

// NewEvolve creates the evolution scene.
func NewEvolve() *Evolve {
	return &Evolve{t: newTimer(evolveTime)}
}

func (s *Evolve) Kind() Kind { return KindEvolve }

func (s *Evolve) Setup(a *TickArgs) {
	s.from = a.Ctx.Pet.DefID
	s.to = a.Ctx.Pet.Definition().EvolvesInto
	a.Ctx.Sound.Push(pet.SongEvolve)
}

func (s *Evolve) Tick(a *TickArgs) Output {
	if s.t.tick(a.Delta) {
		a.Ctx.Pet.Evolve()
		return Goto(NewHome())
	}
	return Stay()
}

func (s *Evolve) Render(dst Surface, a *RenderArgs) {
	// Flicker faster as the timer runs out.
	period := max(s.t.left/6, 50*time.Millisecond)
	id := s.from
	if s.to.Valid() && (s.t.left/period)%2 == 1 {
		id = s.to
	}
	img := petSprite(id)
	dst.BlitCentered(ground-img.H, img)
	dst.TextCentered(100, "EVOLVING!")
}

// EggHatch cracks the egg. The current pet moves out and the hatchling
// takes the home.
type EggHatch struct {
	base
	t timer
}

// NewEggHatch creates the hatching scene.
func NewEggHatch() *EggHatch {
	return &EggHatch{t: newTimer(hatchTime)}
}

func (s *EggHatch) Kind() Kind { return KindEggHatch }

func (s *EggHatch) Tick(a *TickArgs) Output {
	ctx := a.Ctx
	if ctx.Egg == nil {
		return Goto(NewHome())
	}
	if !s.t.tick(a.Delta) {
		return Stay()
	}
	egg := *ctx.Egg
	ctx.Egg = nil
	if ctx.Pet.Alive() {
		ctx.ArchivePet(pet.DeathMovedOut, a.Now)
	}
	return Goto(StartNewPet(egg.Offspring(), false).WithLineage(egg.UPID, &egg.Parents))
}

func (s *EggHatch) Render(dst Surface, a *RenderArgs) {
	img := spriteEgg
	if s.t.left < hatchTime/2 {
		img = spriteEggCracked
	}
	shake := 0
	if a.Blink() {
		shake = 1
	}
	dst.Blit((dst.Width()-img.W)/2+shake, ground-img.H, img)
	dst.DrawHLine(0, ground+1, dst.Width())
	dst.TextCentered(100, "HATCHING!")
}

// Suitors shows the visitor at the door. Left sends them away, middle
// accepts and right leaves them waiting.
type Suitors struct {
	base
}

// NewSuitors creates the visitor scene.
func NewSuitors() *Suitors {
	return &Suitors{}
}

func (s *Suitors) Kind() Kind { return KindSuitors }

func (s *Suitors) Tick(a *TickArgs) Output {
	ctx := a.Ctx
	switch {
	case !ctx.Suitor.Present:
		return Goto(NewHome())
	case a.Pressed(core.ButtonLeft):
		ctx.Suitor.Clear()
		return Goto(NewHome())
	case a.Pressed(core.ButtonMiddle):
		return Goto(NewBreed())
	case a.Pressed(core.ButtonRight):
		return Goto(NewHome())
	}
	return Stay()
}

func (s *Suitors) Render(dst Surface, a *RenderArgs) {
	ctx := a.Ctx
	drawTitle(dst, "VISITOR")
	own := petSprite(ctx.Pet.DefID)
	dst.Blit(4, ground-own.H, own)
	if ctx.Suitor.Present {
		v := ctx.Suitor.Visitor
		img := petSprite(v.DefID).Mirror()
		dst.Blit(dst.Width()-img.W-4, ground-img.H, img)
		dst.TextCentered(80, v.Name)
		dst.TextCentered(86, v.DefID.String())
	}
	dst.DrawHLine(0, ground+1, dst.Width())
	dst.TextCentered(120, "NO  YES  LATER")
}

// Breed lays an egg with the visitor.
type Breed struct {
	base
	t    timer
	done bool
}

// NewBreed creates the breeding scene.
func NewBreed() *Breed {
	return &Breed{t: newTimer(breedTime)}
}

func (s *Breed) Kind() Kind { return KindBreed }

func (s *Breed) Setup(a *TickArgs) {
	ctx := a.Ctx
	if s.done || !ctx.Suitor.Present || ctx.Egg != nil {
		return
	}
	s.done = true
	v := ctx.Suitor.Visitor
	ctx.Egg = &pet.Egg{
		UPID: pet.NewUPID(ctx.RNG),
		Parents: pet.Parents{
			Mother: pet.Parent{Name: ctx.Pet.Name, DefID: ctx.Pet.DefID, UPID: ctx.Pet.UPID},
			Father: pet.Parent{Name: v.Name, DefID: v.DefID, UPID: v.UPID},
		},
	}
	ctx.Checks.Egg = 0
	ctx.Pet.Receptive = false
	ctx.Suitor.Clear()
}

func (s *Breed) Tick(a *TickArgs) Output {
	if s.t.tick(a.Delta) {
		return Goto(NewHome())
	}
	return Stay()
}

func (s *Breed) Render(dst Surface, a *RenderArgs) {
	rise := int((breedTime - s.t.left) / (100 * time.Millisecond))
	for i := 0; i < 3; i++ {
		y := ground - 10 - (rise+i*9)%40
		dst.Blit(12+i*16, y, spriteHeart)
	}
	if s.done {
		dst.BlitCentered(ground-spriteEgg.H, spriteEgg)
	}
	dst.DrawHLine(0, ground+1, dst.Width())
}
