// Package config provides YAML-based simulation tuning and environment
// driven runtime settings for pocketpet.
package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning contains every knob of the simulation. Chances are written as
// "chance per period" and scaled to each check interval when compiled.
type Tuning struct {
	Intervals   Intervals     `yaml:"intervals"`
	Rates       Rates         `yaml:"rates"`
	Environment Environment   `yaml:"environment"`
	Death       DeathTuning   `yaml:"death"`
	Illness     CountTable    `yaml:"illness"`
	Poop        DurationTable `yaml:"poop"`
	Breed       DurationTable `yaml:"breed"`
	Suitor      SuitorTuning  `yaml:"suitor"`
	EggHatch    DurationTable `yaml:"egg_hatch"`
}

// Intervals is how often each gated subsystem rolls.
type Intervals struct {
	Death   time.Duration `yaml:"death"`
	Illness time.Duration `yaml:"illness"`
	Poop    time.Duration `yaml:"poop"`
	Breed   time.Duration `yaml:"breed"`
	Suitor  time.Duration `yaml:"suitor"`
	Egg     time.Duration `yaml:"egg"`
}

// Rates are continuous per-second drains.
type Rates struct {
	StomachDrainPerSecond float64 `yaml:"stomach_drain_per_second"`
	WeightLossPerSecond   float64 `yaml:"weight_loss_per_second"`
	SleepingHungerFactor  float64 `yaml:"sleeping_hunger_factor"`
	SleepingBoredomFactor float64 `yaml:"sleeping_boredom_factor"`
}

// Environment describes ambient conditions.
type Environment struct {
	ColdBelow  float32 `yaml:"cold_below"`
	SleepFrom  int     `yaml:"sleep_from"`
	SleepUntil int     `yaml:"sleep_until"`
}

// DeathTuning holds one table per death cause.
type DeathTuning struct {
	Lightning   Chance        `yaml:"lightning"`
	Starvation  DurationTable `yaml:"starvation"`
	OldAge      DurationTable `yaml:"old_age"`
	ToxicShock  CountTable    `yaml:"toxic_shock"`
	Illness     DurationTable `yaml:"illness"`
	Hypothermia DurationTable `yaml:"hypothermia"`
	Leaving     DurationTable `yaml:"leaving"`
}

// SuitorTuning covers suitor arrival and departure.
type SuitorTuning struct {
	Arrival DurationTable `yaml:"arrival"`
	Leave   Chance        `yaml:"leave"`
}

// Chance is a flat chance per period.
type Chance struct {
	Chance float64       `yaml:"chance"`
	Per    time.Duration `yaml:"per"`
}

// Bound is a table bound; "max" marks the open-ended final entry.
type Bound[T int | time.Duration] struct {
	Value T
	Max   bool
}

// UnmarshalYAML accepts either a value of T or the literal "max".
func (b *Bound[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Value == "max" {
		*b = Bound[T]{Max: true}
		return nil
	}
	*b = Bound[T]{}
	return node.Decode(&b.Value)
}

// TableEntry is one row of a chance table.
type TableEntry[T int | time.Duration] struct {
	Below  Bound[T] `yaml:"below"`
	Chance float64  `yaml:"chance"`
}

// Table is a chance table keyed by T, with chances expressed per Per.
type Table[T int | time.Duration] struct {
	Per     time.Duration   `yaml:"per"`
	Entries []TableEntry[T] `yaml:"entries"`
}

// DurationTable is keyed by elapsed time.
type DurationTable = Table[time.Duration]

// CountTable is keyed by a count (poops on the floor).
type CountTable = Table[int]

// Runtime holds settings read from the environment. Flags override it.
type Runtime struct {
	DBPath     string        `env:"POCKETPET_DB" envDefault:"~/.pocketpet/pocketpet.db"`
	Slot       string        `env:"POCKETPET_SLOT" envDefault:"default"`
	FPS        int           `env:"POCKETPET_FPS" envDefault:"30"`
	TimeScale  float64       `env:"POCKETPET_TIME_SCALE" envDefault:"1"`
	Speed      string        `env:"POCKETPET_SPEED"`
	CatchUpCap time.Duration `env:"POCKETPET_CATCHUP_CAP" envDefault:"168h"`
	TuningPath string        `env:"POCKETPET_TUNING"`
}
