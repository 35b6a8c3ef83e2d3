package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pet.yaml
var defaultTuningYAML []byte

const day = 24 * time.Hour

func dur(d time.Duration, chance float64) TableEntry[time.Duration] {
	return TableEntry[time.Duration]{Below: Bound[time.Duration]{Value: d}, Chance: chance}
}

func durMax(chance float64) TableEntry[time.Duration] {
	return TableEntry[time.Duration]{Below: Bound[time.Duration]{Max: true}, Chance: chance}
}

func count(n int, chance float64) TableEntry[int] {
	return TableEntry[int]{Below: Bound[int]{Value: n}, Chance: chance}
}

func countMax(chance float64) TableEntry[int] {
	return TableEntry[int]{Below: Bound[int]{Max: true}, Chance: chance}
}

// DefaultTuning returns the hardcoded tuning. It mirrors defaults/pet.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Intervals: Intervals{
			Death:   5 * time.Second,
			Illness: time.Minute,
			Poop:    time.Minute,
			Breed:   10 * time.Minute,
			Suitor:  time.Minute,
			Egg:     time.Minute,
		},
		Rates: Rates{
			StomachDrainPerSecond: 0.1,
			WeightLossPerSecond:   0.01,
			SleepingHungerFactor:  0.5,
			SleepingBoredomFactor: 0.25,
		},
		Environment: Environment{
			ColdBelow:  10,
			SleepFrom:  22,
			SleepUntil: 6,
		},
		Death: DeathTuning{
			Lightning: Chance{Chance: 0.0005, Per: day},
			Starvation: DurationTable{Per: time.Hour, Entries: []TableEntry[time.Duration]{
				dur(8*time.Hour, 0), dur(16*time.Hour, 0.025), dur(day, 0.05), durMax(0.1),
			}},
			OldAge: DurationTable{Per: day, Entries: []TableEntry[time.Duration]{
				dur(10*day, 0), dur(20*day, 0.05), dur(30*day, 0.2), durMax(0.5),
			}},
			ToxicShock: CountTable{Per: time.Hour, Entries: []TableEntry[int]{
				count(5, 0), countMax(0.05),
			}},
			Illness: DurationTable{Per: time.Hour, Entries: []TableEntry[time.Duration]{
				dur(day, 0), dur(2*day, 0.02), durMax(0.1),
			}},
			Hypothermia: DurationTable{Per: time.Hour, Entries: []TableEntry[time.Duration]{
				dur(2*time.Hour, 0), dur(6*time.Hour, 0.05), durMax(0.2),
			}},
			Leaving: DurationTable{Per: day, Entries: []TableEntry[time.Duration]{
				dur(3*day, 0), dur(7*day, 0.1), durMax(0.5),
			}},
		},
		Illness: CountTable{Per: time.Hour, Entries: []TableEntry[int]{
			count(1, 0.002), count(3, 0.02), count(5, 0.08), countMax(0.2),
		}},
		Poop: DurationTable{Per: time.Hour, Entries: []TableEntry[time.Duration]{
			dur(time.Hour, 0), dur(3*time.Hour, 0.5), durMax(2),
		}},
		Breed: DurationTable{Per: day, Entries: []TableEntry[time.Duration]{
			dur(day, 0), durMax(0.5),
		}},
		Suitor: SuitorTuning{
			Arrival: DurationTable{Per: time.Hour, Entries: []TableEntry[time.Duration]{
				dur(time.Hour, 0), dur(4*time.Hour, 0.2), durMax(1),
			}},
			Leave: Chance{Chance: 0.1, Per: time.Hour},
		},
		EggHatch: DurationTable{Per: time.Hour, Entries: []TableEntry[time.Duration]{
			dur(12*time.Hour, 0), dur(day, 0.2), durMax(1),
		}},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
