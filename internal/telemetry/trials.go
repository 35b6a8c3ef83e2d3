// Package telemetry runs seeded trials that compare live play with
// catch-up replay, summarizes them and writes them as CSV.
package telemetry

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/pocketpet/internal/config"
	"github.com/vovakirdan/pocketpet/internal/game"
	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/save"
	"github.com/vovakirdan/pocketpet/internal/sim"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

// Mode names how a trial advanced time.
type Mode string

const (
	ModeLive   Mode = "live"
	ModeReplay Mode = "replay"
)

// TrialConfig describes one harness run.
type TrialConfig struct {
	Trials    int                 // per mode
	Duration  time.Duration       // simulated time per trial
	Step      time.Duration       // live tick delta
	TimeScale float64             // live only; replay always runs at 1, 0 means 1
	Start     timestamp.Timestamp // trial i starts i seconds later, which also changes its seed
	Tuning    config.Tuning
}

// Trial is one run, as written to CSV.
type Trial struct {
	Index   int     `csv:"trial"`
	Mode    Mode    `csv:"mode"`
	Fired   bool    `csv:"fired"`
	Cause   string  `csv:"cause"`
	AgeSec  float64 `csv:"age_s"`
	Stomach float64 `csv:"stomach"`
	Poops   int     `csv:"poops"`
}

// LightningTuning is the default tuning with every death cause disabled except
// lightning, which fires with perHour chance per hour regardless of how
// the pet is doing.
func LightningTuning(perHour float64) config.Tuning {
	t := config.DefaultTuning()
	t.Death = config.DeathTuning{
		Lightning: config.Chance{Chance: perHour, Per: time.Hour},
	}
	return t
}

// Expected is the chance that lightning strikes at least once within d.
func Expected(rules *sim.Rules, d time.Duration) float64 {
	checks := float64(d / rules.Intervals.Death)
	return 1 - math.Pow(1-float64(rules.Lightning), checks)
}

// Run plays cfg.Trials live trials and as many replayed ones.
func Run(cfg TrialConfig) ([]Trial, error) {
	if cfg.Trials <= 0 {
		return nil, errors.New("telemetry: need at least one trial")
	}
	if cfg.Duration <= 0 || cfg.Step <= 0 {
		return nil, fmt.Errorf("telemetry: duration %v and step %v must be positive", cfg.Duration, cfg.Step)
	}
	if cfg.TimeScale < 0 || cfg.TimeScale > 0 && scaled(cfg) <= 0 {
		return nil, fmt.Errorf("telemetry: time scale %v leaves no simulated time per step", cfg.TimeScale)
	}
	rules, err := sim.Compile(cfg.Tuning)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	trials := make([]Trial, 0, 2*cfg.Trials)
	for i := range cfg.Trials {
		start := cfg.Start.Add(time.Duration(i) * time.Second)
		trials = append(trials,
			live(i, start, rules, cfg),
			replay(i, start, rules, cfg),
		)
	}
	return trials, nil
}

func live(i int, start timestamp.Timestamp, rules *sim.Rules, cfg TrialConfig) Trial {
	g := game.New(start, game.WithRules(rules), game.WithTimeScale(timeScale(cfg)))
	for elapsed := time.Duration(0); elapsed < cfg.Duration; elapsed += scaled(cfg) {
		g.Tick(cfg.Step)
	}
	return observe(i, ModeLive, g)
}

func timeScale(cfg TrialConfig) float64 {
	if cfg.TimeScale == 0 {
		return 1
	}
	return cfg.TimeScale
}

// scaled is the simulated time one live step covers.
func scaled(cfg TrialConfig) time.Duration {
	return sim.Step{Delta: cfg.Step, TimeScale: timeScale(cfg)}.Effective()
}

func replay(i int, start timestamp.Timestamp, rules *sim.Rules, cfg TrialConfig) Trial {
	g := game.New(start, game.WithRules(rules), game.WithCatchUpCap(0))
	snap := save.Generate(start, g.Context())
	g.LoadSave(start.Add(cfg.Duration), snap)
	return observe(i, ModeReplay, g)
}

func observe(i int, mode Mode, g *game.Game) Trial {
	ctx := g.Context()
	t := Trial{
		Index:   i,
		Mode:    mode,
		Fired:   ctx.Pet.Death == pet.DeathLightningStrike,
		AgeSec:  ctx.Pet.Age.Seconds(),
		Stomach: ctx.Pet.Stomach,
		Poops:   ctx.PoopCount(),
	}
	if !ctx.Pet.Alive() {
		t.Cause = ctx.Pet.Death.String()
	}
	return t
}
