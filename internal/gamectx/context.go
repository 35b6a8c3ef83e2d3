// Package gamectx defines the aggregate root of durable simulation state.
// It is owned by the game facade and lent to the tick engine and to the
// active scene one call at a time.
package gamectx

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/rng"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// DefaultTemperature is the reading assumed until a shell supplies one.
const DefaultTemperature float32 = 21

// Context holds everything that survives a scene change.
type Context struct {
	Pet       pet.Instance
	Poops     [pet.MaxPoops]pet.Poop
	Money     pet.Money
	Inventory pet.Inventory
	Layout    pet.HomeLayout
	Records   pet.History
	Egg       *pet.Egg
	Suitor    pet.SuitorSystem
	Explore   pet.Explore
	Alarm     pet.Alarm
	Sound     pet.Sound

	Checks      Checks
	Temperature float32

	// RNG is the only generator in the simulation.
	RNG *rng.Rand

	// ShouldSave is raised once a persistence-worthy scene is active.
	ShouldSave bool

	// SetTimestamp replaces the clock at the end of the tick when non-nil.
	SetTimestamp *timestamp.Timestamp

	Mailbox Mailbox
}

// Checks holds the time since each gated subsystem last rolled.
type Checks struct {
	Death   time.Duration
	Illness time.Duration
	Poop    time.Duration
	Breed   time.Duration
	Suitor  time.Duration
	Egg     time.Duration
}

// Mailbox carries a dialog's result back to the scene that opened it.
type Mailbox struct {
	Text     string
	Date     timestamp.Date
	Clock    timestamp.Clock
	Weekdays timestamp.WeekdaySet
}

// New creates a context seeded from the construction time.
func New(now timestamp.Timestamp) *Context {
	r := rng.New(now.Seed())
	return &Context{
		Pet:         pet.New(pet.Blob, pet.NewUPID(r), pet.RandomName(r), now),
		Money:       50,
		Temperature: DefaultTemperature,
		RNG:         r,
	}
}

// PoopCount returns the number of poops on the floor.
func (c *Context) PoopCount() int {
	n := 0
	for i := range c.Poops {
		if c.Poops[i].Present {
			n++
		}
	}
	return n
}

// AddPoop drops a poop in the first free slot. It reports false when the
// floor is full.
func (c *Context) AddPoop(now timestamp.Timestamp) bool {
	for i := range c.Poops {
		if !c.Poops[i].Present {
			c.Poops[i] = pet.Poop{
				Present: true,
				Dropped: now,
				X:       int8(c.RNG.Range(-20, 21)),
			}
			return true
		}
	}
	return false
}

// ClearPoops empties the floor and returns how many were removed.
func (c *Context) ClearPoops() int {
	n := c.PoopCount()
	c.Poops = [pet.MaxPoops]pet.Poop{}
	return n
}

// ReplacePet installs a new pet wholesale. The floor, the suitor and any
// outing belong to the old pet and are cleared.
func (c *Context) ReplacePet(p pet.Instance) {
	c.Pet = p
	c.Poops = [pet.MaxPoops]pet.Poop{}
	c.Suitor = pet.SuitorSystem{}
	c.Explore.Cancel()
}

// ArchivePet records the current pet in the history. A pet is recorded
// at most once, so a death scene entered again after a reload is harmless.
func (c *Context) ArchivePet(cause pet.DeathCause, died timestamp.Timestamp) {
	if last, ok := c.Records.Last(); ok && last.UPID == c.Pet.UPID {
		return
	}
	c.Records.Add(pet.Record{
		Name:  c.Pet.Name,
		DefID: c.Pet.DefID,
		UPID:  c.Pet.UPID,
		Born:  c.Pet.Born.Date(),
		Died:  died.Date(),
		Cause: cause,
	})
}

// Warm reports whether the home protects against the cold.
func (c *Context) Warm(coldBelow float32) bool {
	return c.Temperature >= coldBelow || c.Layout.Has(pet.ItemHeater)
}
