package pet

import (
	"time"

	"github.com/vovakirdan/pocketpet/internal/rng"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// MaxPoops is how many poops fit on the floor.
const MaxPoops = 5

// Poop is one floor slot.
type Poop struct {
	Present bool
	Dropped timestamp.Timestamp
	X       int8 // horizontal offset, picked when dropped
}

// Egg is a laid egg waiting to hatch.
type Egg struct {
	UPID    UPID
	Age     time.Duration
	Parents Parents
	Ready   bool // the hatch roll succeeded
}

// Offspring picks the hatchling species from the parents' lines.
func (e *Egg) Offspring() DefinitionID {
	babies := ByStage(Baby)
	return babies[int(e.UPID%UPID(len(babies)))]
}

// Suitor is a visiting adult.
type Suitor struct {
	DefID   DefinitionID
	UPID    UPID
	Name    string
	Waiting time.Duration
}

// NewSuitor draws a random adult visitor.
func NewSuitor(r *rng.Rand) Suitor {
	adults := ByStage(Adult)
	return Suitor{
		DefID: adults[r.IntN(len(adults))],
		UPID:  NewUPID(r),
		Name:  RandomName(r),
	}
}

// SuitorSystem tracks whether someone is at the door.
type SuitorSystem struct {
	Visitor    Suitor
	Present    bool
	WaitingFor time.Duration // wanting to breed with nobody around
}

// Clear sends the visitor away.
func (s *SuitorSystem) Clear() {
	s.Present = false
	s.Visitor = Suitor{}
}

// History length of the pet records.
const HistoryEntries = 20

// Record is one past pet.
type Record struct {
	Name  string
	DefID DefinitionID
	UPID  UPID
	Born  timestamp.Date
	Died  timestamp.Date
	Cause DeathCause
}

// History is a ring of the most recent records.
type History struct {
	Entries [HistoryEntries]Record
	Total   int
}

// Add appends r, dropping the oldest when full.
func (h *History) Add(r Record) {
	h.Entries[h.Total%HistoryEntries] = r
	h.Total++
}

// Last returns the newest record.
func (h *History) Last() (Record, bool) {
	if h.Total == 0 {
		return Record{}, false
	}
	return h.Entries[(h.Total-1)%HistoryEntries], true
}

// List returns records newest first.
func (h *History) List() []Record {
	n := min(h.Total, HistoryEntries)
	out := make([]Record, 0, n)
	for i := range n {
		idx := (h.Total - 1 - i) % HistoryEntries
		out = append(out, h.Entries[idx])
	}
	return out
}

var syllables = []string{
	"po", "ki", "mu", "ra", "to", "ne", "lu", "sa", "bi", "zo", "fa", "mi", "do", "ku",
}

// MaxNameLen is the longest accepted name.
const MaxNameLen = 12

// RandomName draws a two or three syllable name.
func RandomName(r *rng.Rand) string {
	n := r.Range(2, 4)
	name := make([]byte, 0, n*2)
	for i := range n {
		s := syllables[r.IntN(len(syllables))]
		if i == 0 {
			name = append(name, s[0]-'a'+'A', s[1])
			continue
		}
		name = append(name, s...)
	}
	return string(name)
}
