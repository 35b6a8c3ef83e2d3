// Package threshold turns an elapsed magnitude (a duration or a count) into
// the probability of an event firing, using an ordered table of
// (bound, probability) pairs.
package threshold

import (
	"errors"
	"math"
	"time"
)

var (
	ErrEmpty     = errors.New("threshold: table has no entries")
	ErrUnordered = errors.New("threshold: bounds must be strictly increasing")
)

// Magnitude is anything a table can be keyed by. time.Duration satisfies it.
type Magnitude interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~float32 | ~float64
}

// MaxDuration is the conventional sentinel for the final entry of a
// duration table.
const MaxDuration = time.Duration(math.MaxInt64)

// Entry pairs an exclusive upper bound with the probability used below it.
type Entry[T Magnitude] struct {
	Below       T
	Probability float32
}

// Table is an ordered list of entries. The last entry's bound is treated
// as +infinity.
type Table[T Magnitude] struct {
	entries []Entry[T]
}

// Source yields uniform floats in [0,1).
type Source interface {
	Float32() float32
}

// New validates and builds a table.
func New[T Magnitude](entries ...Entry[T]) (Table[T], error) {
	if len(entries) == 0 {
		return Table[T]{}, ErrEmpty
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Below <= entries[i-1].Below {
			return Table[T]{}, ErrUnordered
		}
	}
	return Table[T]{entries: append([]Entry[T](nil), entries...)}, nil
}

// MustNew panics on an invalid table. For package-level literals.
func MustNew[T Magnitude](entries ...Entry[T]) Table[T] {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Never is a table that never fires.
func Never[T Magnitude]() Table[T] {
	return Table[T]{entries: []Entry[T]{{}}}
}

// Flat is a single-entry table with a constant probability.
func Flat[T Magnitude](p float32) Table[T] {
	return Table[T]{entries: []Entry[T]{{Probability: p}}}
}

// Lookup returns the probability of the first entry whose bound exceeds m,
// falling back to the last entry.
func (t Table[T]) Lookup(m T) float32 {
	n := len(t.entries)
	if n == 0 {
		return 0
	}
	for _, e := range t.entries[:n-1] {
		if m < e.Below {
			return e.Probability
		}
	}
	return t.entries[n-1].Probability
}

// Roll draws once from src and reports whether the event fires.
func (t Table[T]) Roll(src Source, m T) bool {
	return src.Float32() < t.Lookup(m)
}

// Len returns the number of entries.
func (t Table[T]) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table's entries.
func (t Table[T]) Entries() []Entry[T] {
	return append([]Entry[T](nil), t.entries...)
}

// Scale converts a chance expressed per period into a chance per check
// interval by ratio, clamped to [0,1]. The linear form slightly overstates
// large chances, which tuning accounts for.
func Scale(chance float64, per, interval time.Duration) float32 {
	if per <= 0 || interval <= 0 || chance <= 0 {
		return 0
	}
	p := chance * float64(interval) / float64(per)
	return float32(min(p, 1))
}
