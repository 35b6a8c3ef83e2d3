package pet

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/rng"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// UPID uniquely identifies a pet across generations.
type UPID uint64

// NewUPID draws a fresh id.
func NewUPID(r *rng.Rand) UPID {
	return UPID(r.Uint64())
}

// Instance is the one living pet. Timers are simulation-domain durations.
type Instance struct {
	DefID       DefinitionID
	UPID        UPID
	Name        string
	Born        timestamp.Timestamp
	Parents     *Parents `cbor:",omitempty" yaml:",omitempty"`
	Age         time.Duration
	Stomach     float64
	ExtraWeight float64

	Starving time.Duration // stomach empty
	Cold     time.Duration // exposed below the cold bound
	Bored    time.Duration // since last play
	PoopUrge time.Duration // since last poop
	Matured  time.Duration // time spent as an adult

	Ill    bool
	IllFor time.Duration

	Receptive bool // wants to breed
	Evolving  bool // evolution pending, shown by the Evolve scene
	Death     DeathCause
}

// New creates a freshly hatched pet with a half-full stomach.
func New(def DefinitionID, upid UPID, name string, born timestamp.Timestamp) Instance {
	return Instance{
		DefID:   def,
		UPID:    upid,
		Name:    name,
		Born:    born,
		Stomach: Lookup(def).StomachSize / 2,
	}
}

// Definition returns the pet's species.
func (p *Instance) Definition() *Definition {
	return Lookup(p.DefID)
}

// Alive reports whether no death cause has been recorded.
func (p *Instance) Alive() bool {
	return p.Death == DeathNone
}

// Weight is the base weight plus what food added.
func (p *Instance) Weight() float64 {
	return p.Definition().BaseWeight + p.ExtraWeight
}

// Hunger is the empty fraction of the stomach in [0,1].
func (p *Instance) Hunger() float64 {
	size := p.Definition().StomachSize
	if size <= 0 {
		return 0
	}
	return 1 - p.Stomach/size
}

// Full reports whether the pet refuses food.
func (p *Instance) Full() bool {
	return p.Hunger() < 0.05
}

// Eat fills the stomach with item. It reports false when the item is not
// food or the pet is full.
func (p *Instance) Eat(item ItemKind) bool {
	info := item.Info()
	if info.Category != CategoryFood || p.Full() {
		return false
	}
	p.Stomach = min(p.Stomach+info.Fill, p.Definition().StomachSize)
	p.ExtraWeight += info.Weight
	p.Starving = 0
	return true
}

// Play resets boredom.
func (p *Instance) Play() {
	p.Bored = 0
}

// Heal cures illness.
func (p *Instance) Heal() {
	p.Ill = false
	p.IllFor = 0
}

// Evolve switches to the next species if one is pending.
func (p *Instance) Evolve() bool {
	if !p.Evolving {
		return false
	}
	p.Evolving = false
	next := p.Definition().EvolvesInto
	if !next.Valid() {
		return false
	}
	p.DefID = next
	if size := p.Definition().StomachSize; p.Stomach > size {
		p.Stomach = size
	}
	return true
}

// CanBreed reports whether the pet may accept a suitor.
func (p *Instance) CanBreed() bool {
	return p.Alive() && p.Receptive && p.Definition().Stage == Adult
}

// AgeDays is the age in whole days.
func (p *Instance) AgeDays() int {
	return int(p.Age / day)
}

// Parents records both parents of a bred pet.
type Parents struct {
	Mother Parent
	Father Parent
}

// Parent is a snapshot of one parent.
type Parent struct {
	Name  string
	DefID DefinitionID
	UPID  UPID
}
