package sim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/pocketpet/internal/config"
	"github.com/vovakirdan/pocketpet/internal/threshold"
)

var errMaxNotLast = errors.New(`"max" must be the last bound`)

// Rules is tuning compiled for the tick engine: every chance is already
// scaled to the interval of the check that rolls it.
type Rules struct {
	Intervals config.Intervals
	Rates     config.Rates
	Env       config.Environment

	Lightning    float32
	Starvation   threshold.Table[time.Duration]
	OldAge       threshold.Table[time.Duration]
	ToxicShock   threshold.Table[int]
	IllnessDeath threshold.Table[time.Duration]
	Hypothermia  threshold.Table[time.Duration]
	Leaving      threshold.Table[time.Duration]

	IllnessOnset  threshold.Table[int]
	Poop          threshold.Table[time.Duration]
	Breed         threshold.Table[time.Duration]
	SuitorArrival threshold.Table[time.Duration]
	SuitorLeave   float32
	EggHatch      threshold.Table[time.Duration]
}

// Compile validates tuning and scales its chances.
func Compile(t config.Tuning) (*Rules, error) {
	iv := t.Intervals
	for _, check := range []struct {
		name string
		d    time.Duration
	}{
		{"death", iv.Death}, {"illness", iv.Illness}, {"poop", iv.Poop},
		{"breed", iv.Breed}, {"suitor", iv.Suitor}, {"egg", iv.Egg},
	} {
		if check.d <= 0 {
			return nil, fmt.Errorf("sim: %s interval must be positive, got %v", check.name, check.d)
		}
	}

	r := &Rules{
		Intervals:   iv,
		Rates:       t.Rates,
		Env:         t.Environment,
		Lightning:   threshold.Scale(t.Death.Lightning.Chance, t.Death.Lightning.Per, iv.Death),
		SuitorLeave: threshold.Scale(t.Suitor.Leave.Chance, t.Suitor.Leave.Per, iv.Suitor),
	}

	var err error
	durTables := []struct {
		name     string
		dst      *threshold.Table[time.Duration]
		src      config.DurationTable
		interval time.Duration
	}{
		{"death.starvation", &r.Starvation, t.Death.Starvation, iv.Death},
		{"death.old_age", &r.OldAge, t.Death.OldAge, iv.Death},
		{"death.illness", &r.IllnessDeath, t.Death.Illness, iv.Death},
		{"death.hypothermia", &r.Hypothermia, t.Death.Hypothermia, iv.Death},
		{"death.leaving", &r.Leaving, t.Death.Leaving, iv.Death},
		{"poop", &r.Poop, t.Poop, iv.Poop},
		{"breed", &r.Breed, t.Breed, iv.Breed},
		{"suitor.arrival", &r.SuitorArrival, t.Suitor.Arrival, iv.Suitor},
		{"egg_hatch", &r.EggHatch, t.EggHatch, iv.Egg},
	}
	for _, dt := range durTables {
		if *dt.dst, err = compileTable(dt.src, dt.interval, threshold.MaxDuration); err != nil {
			return nil, fmt.Errorf("sim: table %s: %w", dt.name, err)
		}
	}

	if r.ToxicShock, err = compileTable(t.Death.ToxicShock, iv.Death, math.MaxInt); err != nil {
		return nil, fmt.Errorf("sim: table death.toxic_shock: %w", err)
	}
	if r.IllnessOnset, err = compileTable(t.Illness, iv.Illness, math.MaxInt); err != nil {
		return nil, fmt.Errorf("sim: table illness: %w", err)
	}

	return r, nil
}

// MustCompile panics on invalid tuning.
func MustCompile(t config.Tuning) *Rules {
	r, err := Compile(t)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRules compiles the built-in tuning.
func DefaultRules() *Rules {
	return MustCompile(config.DefaultTuning())
}

func compileTable[T int | time.Duration](src config.Table[T], interval time.Duration, ceiling T) (threshold.Table[T], error) {
	if len(src.Entries) == 0 {
		return threshold.Never[T](), nil
	}
	entries := make([]threshold.Entry[T], len(src.Entries))
	for i, e := range src.Entries {
		below := e.Below.Value
		if e.Below.Max {
			if i != len(src.Entries)-1 {
				return threshold.Table[T]{}, errMaxNotLast
			}
			below = ceiling
		}
		entries[i] = threshold.Entry[T]{
			Below:       below,
			Probability: threshold.Scale(e.Chance, src.Per, interval),
		}
	}
	return threshold.New(entries...)
}

// Sleeping reports whether the pet sleeps at the given hour.
func (r *Rules) Sleeping(hour int) bool {
	from, until := r.Env.SleepFrom, r.Env.SleepUntil
	if from == until {
		return false
	}
	if from < until {
		return hour >= from && hour < until
	}
	return hour >= from || hour < until
}
