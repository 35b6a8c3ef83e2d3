// Package pet holds the durable domain types of the simulation: species
// definitions, the pet instance, items, eggs, suitors, exploring, alarms
// and pet records. It contains no timing logic; internal/sim drives it.
package pet

import "time"

// DefinitionID identifies a species.
type DefinitionID uint8

const (
	Blob DefinitionID = iota
	Sprout
	Pawn
	Bud
	Hound
	Fern
	Owl

	definitionCount
)

// NoEvolution marks a final form.
const NoEvolution DefinitionID = 0xff

// LifeStage orders species from hatchling to adult.
type LifeStage uint8

const (
	Baby LifeStage = iota
	Child
	Adult
)

func (s LifeStage) String() string {
	switch s {
	case Baby:
		return "Baby"
	case Child:
		return "Child"
	case Adult:
		return "Adult"
	default:
		return "Unknown"
	}
}

// Definition is the static data of a species.
type Definition struct {
	ID          DefinitionID
	Name        string
	Stage       LifeStage
	StomachSize float64 // arbitrary fill units
	BaseWeight  float64 // grams
	EvolveAt    time.Duration
	EvolvesInto DefinitionID
	Skill       float32 // exploring aptitude in [0,1]
}

const day = 24 * time.Hour

var definitions = [definitionCount]Definition{
	{ID: Blob, Name: "Blob", Stage: Baby, StomachSize: 3000, BaseWeight: 80, EvolveAt: day, EvolvesInto: Pawn, Skill: 0.1},
	{ID: Sprout, Name: "Sprout", Stage: Baby, StomachSize: 2500, BaseWeight: 60, EvolveAt: day, EvolvesInto: Bud, Skill: 0.1},
	{ID: Pawn, Name: "Pawn", Stage: Child, StomachSize: 5000, BaseWeight: 400, EvolveAt: 3 * day, EvolvesInto: Hound, Skill: 0.3},
	{ID: Bud, Name: "Bud", Stage: Child, StomachSize: 4500, BaseWeight: 300, EvolveAt: 3 * day, EvolvesInto: Fern, Skill: 0.3},
	{ID: Hound, Name: "Hound", Stage: Adult, StomachSize: 8000, BaseWeight: 9000, EvolvesInto: NoEvolution, Skill: 0.6},
	{ID: Fern, Name: "Fern", Stage: Adult, StomachSize: 7000, BaseWeight: 5000, EvolvesInto: NoEvolution, Skill: 0.5},
	{ID: Owl, Name: "Owl", Stage: Adult, StomachSize: 6000, BaseWeight: 2000, EvolvesInto: NoEvolution, Skill: 0.7},
}

// Lookup returns the definition for id. Unknown ids fall back to Blob.
func Lookup(id DefinitionID) *Definition {
	if id >= definitionCount {
		return &definitions[Blob]
	}
	return &definitions[id]
}

// Definitions returns every species in id order.
func Definitions() []Definition {
	return definitions[:]
}

// ByStage returns the ids of every species at stage.
func ByStage(stage LifeStage) []DefinitionID {
	var ids []DefinitionID
	for _, d := range definitions {
		if d.Stage == stage {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// Valid reports whether id names a species.
func (id DefinitionID) Valid() bool {
	return id < definitionCount
}

func (id DefinitionID) String() string {
	return Lookup(id).Name
}
