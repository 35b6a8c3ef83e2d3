package sim

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/pocketpet/internal/config"
	"github.com/vovakirdan/pocketpet/internal/gamectx"
	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

const frame = 16 * time.Millisecond

// noon keeps the pet awake.
var noon = timestamp.MustNew(2025, time.January, 1, 12, 0, 0, 0)

func certain(per time.Duration) config.DurationTable {
	return config.DurationTable{Per: per, Entries: []config.TableEntry[time.Duration]{
		{Below: config.Bound[time.Duration]{Max: true}, Chance: 1e9},
	}}
}

// quietTuning never kills the pet and never rolls anything by default.
func quietTuning() config.Tuning {
	t := config.DefaultTuning()
	t.Death = config.DeathTuning{}
	t.Illness = config.CountTable{}
	t.Poop = config.DurationTable{}
	t.Breed = config.DurationTable{}
	t.Suitor.Arrival = config.DurationTable{}
	t.Suitor.Leave = config.Chance{}
	t.EggHatch = config.DurationTable{}
	return t
}

func run(ctx *gamectx.Context, rules *Rules, now timestamp.Timestamp, total time.Duration) timestamp.Timestamp {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		now = now.Add(frame)
		Tick(ctx, rules, Step{Now: now, Delta: frame, TimeScale: 1})
	}
	return now
}

func TestDueKeepsRemainder(t *testing.T) {
	var acc time.Duration

	if n := due(&acc, 3*time.Second, 5*time.Second); n != 0 {
		t.Fatalf("3s of 5s owes %d checks, expected 0", n)
	}
	if n := due(&acc, 3*time.Second, 5*time.Second); n != 1 {
		t.Fatalf("6s of 5s owes %d checks, expected 1", n)
	}
	if acc != time.Second {
		t.Errorf("remainder = %v, expected 1s", acc)
	}

	// A long delta owes every interval it spans.
	if n := due(&acc, time.Hour+time.Second, 5*time.Second); n != 720 {
		t.Errorf("an hour owes %d checks, expected 720", n)
	}
	if acc != 2*time.Second {
		t.Errorf("remainder = %v, expected 2s", acc)
	}
}

func TestScaledStepKeepsEveryCheck(t *testing.T) {
	tuning := quietTuning()
	tuning.Poop = certain(time.Hour)
	rules := MustCompile(tuning)

	tests := []struct {
		name  string
		delta time.Duration
		scale float64
	}{
		{"one long frame", 4 * time.Minute, 1},
		{"brisk", 4 * time.Second, 60},
		{"turbo", 100 * time.Millisecond, 2400},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := gamectx.New(noon)
			Tick(ctx, rules, Step{Now: noon, Delta: tc.delta, TimeScale: tc.scale})

			if ctx.Pet.Age != 4*time.Minute {
				t.Fatalf("Age = %v, expected 4m", ctx.Pet.Age)
			}
			if ctx.PoopCount() != 4 {
				t.Errorf("PoopCount() = %d, expected one per minute", ctx.PoopCount())
			}
		})
	}
}

func TestScaledExploreChecks(t *testing.T) {
	rules := MustCompile(quietTuning())
	ctx := gamectx.New(noon)
	ctx.Explore.Start(pet.LocationPark)

	// Ten minutes of outing in a single turbo frame.
	Tick(ctx, rules, Step{Now: noon, Delta: time.Second, TimeScale: 600})

	if ctx.Explore.Active {
		t.Fatal("outing should be finished")
	}
	if got := ctx.Explore.Last.Checks; got != 10 {
		t.Errorf("Checks = %d, expected 10", got)
	}
}

func TestSplitMatchesFrames(t *testing.T) {
	tuning := quietTuning()
	tuning.Poop = certain(time.Hour)
	rules := MustCompile(tuning)

	framed := gamectx.New(noon)
	run(framed, rules, noon, 3*time.Minute)

	whole := gamectx.New(noon)
	Tick(whole, rules, Step{Now: noon, Delta: 3 * time.Minute, TimeScale: 1})

	if framed.Pet.Age != whole.Pet.Age {
		t.Errorf("Age = %v and %v, expected equal", framed.Pet.Age, whole.Pet.Age)
	}
	if framed.PoopCount() != whole.PoopCount() {
		t.Errorf("PoopCount() = %d and %d, expected equal", framed.PoopCount(), whole.PoopCount())
	}
	if d := framed.Pet.Stomach - whole.Pet.Stomach; d > 1e-6 || d < -1e-6 {
		t.Errorf("Stomach = %v and %v, expected equal", framed.Pet.Stomach, whole.Pet.Stomach)
	}
}

func TestTickAgesAndDigests(t *testing.T) {
	rules := MustCompile(quietTuning())
	ctx := gamectx.New(noon)
	before := ctx.Pet

	run(ctx, rules, noon, time.Minute)

	if ctx.Pet.Age != before.Age+time.Minute {
		t.Errorf("Age = %v, expected %v", ctx.Pet.Age, before.Age+time.Minute)
	}
	drained := before.Stomach - ctx.Pet.Stomach
	if want := 6.0; drained < want-1e-6 || drained > want+1e-6 {
		t.Errorf("stomach drained %v, expected ~%v", drained, want)
	}
	if ctx.Pet.PoopUrge != time.Minute || ctx.Pet.Bored != time.Minute {
		t.Errorf("PoopUrge = %v, Bored = %v", ctx.Pet.PoopUrge, ctx.Pet.Bored)
	}
}

func TestSleepingSlowsHunger(t *testing.T) {
	rules := MustCompile(quietTuning())
	midnight := timestamp.MustNew(2025, time.January, 1, 0, 0, 0, 0)

	awake, asleep := gamectx.New(noon), gamectx.New(noon)
	run(awake, rules, noon, time.Minute)
	run(asleep, rules, midnight, time.Minute)

	awakeLoss := awake.Pet.Definition().StomachSize/2 - awake.Pet.Stomach
	asleepLoss := asleep.Pet.Definition().StomachSize/2 - asleep.Pet.Stomach
	if ratio := asleepLoss * 2 / awakeLoss; ratio < 0.999 || ratio > 1.001 {
		t.Errorf("sleeping loss %v should be half of %v", asleepLoss, awakeLoss)
	}
}

func TestTimeScale(t *testing.T) {
	rules := MustCompile(quietTuning())
	ctx := gamectx.New(noon)

	Tick(ctx, rules, Step{Now: noon, Delta: time.Second, TimeScale: 60})
	if ctx.Pet.Age != time.Minute {
		t.Errorf("Age = %v, expected 1m at 60x", ctx.Pet.Age)
	}

	Tick(ctx, rules, Step{Now: noon, Delta: time.Second, TimeScale: 0})
	if ctx.Pet.Age != time.Minute {
		t.Error("zero time scale should not advance")
	}
}

func TestStarvationDeath(t *testing.T) {
	tuning := quietTuning()
	tuning.Death.Starvation = config.DurationTable{Per: time.Hour, Entries: []config.TableEntry[time.Duration]{
		{Below: config.Bound[time.Duration]{Value: 8 * time.Hour}, Chance: 0},
		{Below: config.Bound[time.Duration]{Max: true}, Chance: 1e9},
	}}
	rules := MustCompile(tuning)

	ctx := gamectx.New(noon)
	ctx.Pet.Stomach = 0
	ctx.Pet.Starving = 7 * time.Hour

	now := run(ctx, rules, noon, 30*time.Minute)
	if !ctx.Pet.Alive() {
		t.Fatal("pet should survive below the 8h bound")
	}

	run(ctx, rules, now, 31*time.Minute)
	if ctx.Pet.Death != pet.DeathStarvation {
		t.Errorf("Death = %v, expected starvation", ctx.Pet.Death)
	}
	if ctx.Sound.Pull() != pet.SongDeath {
		t.Error("death should queue its song")
	}
}

func TestDeadPetIsFrozen(t *testing.T) {
	tuning := quietTuning()
	tuning.EggHatch = certain(time.Hour)
	rules := MustCompile(tuning)

	ctx := gamectx.New(noon)
	ctx.Pet.Death = pet.DeathOldAge
	ctx.Egg = &pet.Egg{UPID: 5}
	age := ctx.Pet.Age

	run(ctx, rules, noon, 2*time.Minute)

	if ctx.Pet.Age != age {
		t.Error("a dead pet should not age")
	}
	if !ctx.Egg.Ready {
		t.Error("the egg should keep simulating")
	}
}

func TestPoopCadence(t *testing.T) {
	tuning := quietTuning()
	tuning.Poop = certain(time.Hour)
	rules := MustCompile(tuning)

	ctx := gamectx.New(noon)
	now := run(ctx, rules, noon, time.Minute-frame)
	if ctx.PoopCount() != 0 {
		t.Fatal("no poop before the first check")
	}

	run(ctx, rules, now, 2*frame)
	if ctx.PoopCount() != 1 {
		t.Fatalf("PoopCount() = %d, expected 1 after the first check", ctx.PoopCount())
	}
	if ctx.Pet.PoopUrge > 2*frame {
		t.Errorf("PoopUrge = %v, expected reset", ctx.Pet.PoopUrge)
	}
}

func TestPoopFloorCap(t *testing.T) {
	tuning := quietTuning()
	tuning.Poop = certain(time.Hour)
	rules := MustCompile(tuning)

	ctx := gamectx.New(noon)
	run(ctx, rules, noon, 10*time.Minute)
	if ctx.PoopCount() != pet.MaxPoops {
		t.Errorf("PoopCount() = %d, expected %d", ctx.PoopCount(), pet.MaxPoops)
	}
}

func TestEvolutionFlag(t *testing.T) {
	rules := MustCompile(quietTuning())
	ctx := gamectx.New(noon)
	ctx.Pet.Age = pet.Lookup(pet.Blob).EvolveAt - frame/2

	run(ctx, rules, noon, frame)
	if !ctx.Pet.Evolving {
		t.Error("pet should be flagged for evolution")
	}
	if ctx.Pet.DefID != pet.Blob {
		t.Error("the engine flags evolution, the Evolve scene performs it")
	}
}

func TestBreedingAndSuitor(t *testing.T) {
	tuning := quietTuning()
	tuning.Breed = certain(24 * time.Hour)
	tuning.Suitor.Arrival = certain(time.Hour)
	rules := MustCompile(tuning)

	ctx := gamectx.New(noon)
	ctx.Pet.DefID = pet.Hound

	now := run(ctx, rules, noon, 10*time.Minute+frame)
	if !ctx.Pet.Receptive {
		t.Fatal("adult should become receptive after the breed check")
	}

	run(ctx, rules, now, time.Minute+frame)
	if !ctx.Suitor.Present {
		t.Fatal("a suitor should arrive")
	}
	if ctx.Suitor.Visitor.Name == "" || pet.Lookup(ctx.Suitor.Visitor.DefID).Stage != pet.Adult {
		t.Errorf("visitor = %+v", ctx.Suitor.Visitor)
	}
}

func TestSuitorLeavesAtNight(t *testing.T) {
	rules := MustCompile(quietTuning())
	ctx := gamectx.New(noon)
	ctx.Pet.DefID = pet.Hound
	ctx.Pet.Receptive = true
	ctx.Suitor.Present = true

	night := timestamp.MustNew(2025, time.January, 1, 23, 0, 0, 0)
	run(ctx, rules, night, frame)
	if ctx.Suitor.Present {
		t.Error("suitors leave when the pet sleeps")
	}
}

func TestExploreCompletes(t *testing.T) {
	rules := MustCompile(quietTuning())
	ctx := gamectx.New(noon)
	money := ctx.Money
	ctx.Explore.Start(pet.LocationPark)

	run(ctx, rules, noon, pet.LookupLocation(pet.LocationPark).Length+frame)

	if ctx.Explore.Active {
		t.Fatal("outing should be finished")
	}
	last := ctx.Explore.Last
	if last.Checks != 10 {
		t.Errorf("Checks = %d, expected 10", last.Checks)
	}
	if ctx.Money != money+last.Money {
		t.Errorf("Money = %d, expected %d", ctx.Money, money+last.Money)
	}
}

func TestIllnessOnset(t *testing.T) {
	tuning := quietTuning()
	tuning.Illness = config.CountTable{Per: time.Hour, Entries: []config.TableEntry[int]{
		{Below: config.Bound[int]{Value: 1}, Chance: 0},
		{Below: config.Bound[int]{Max: true}, Chance: 1e9},
	}}
	rules := MustCompile(tuning)

	clean := gamectx.New(noon)
	run(clean, rules, noon, 2*time.Minute)
	if clean.Pet.Ill {
		t.Error("a clean floor should not cause illness here")
	}

	dirty := gamectx.New(noon)
	dirty.AddPoop(noon)
	run(dirty, rules, noon, 2*time.Minute)
	if !dirty.Pet.Ill {
		t.Error("a dirty floor should cause illness")
	}
	if dirty.Pet.IllFor == 0 {
		t.Error("illness duration should accumulate")
	}
}

func TestTickDoesNotAllocate(t *testing.T) {
	rules := DefaultRules()
	ctx := gamectx.New(noon)
	ctx.Egg = &pet.Egg{UPID: 1}
	ctx.Explore.Start(pet.LocationPark)
	now := noon

	allocs := testing.AllocsPerRun(1000, func() {
		now = now.Add(frame)
		Tick(ctx, rules, Step{Now: now, Delta: frame, TimeScale: 1})
	})
	if allocs != 0 {
		t.Errorf("Tick() allocated %v times per call", allocs)
	}
}

func TestCompileErrors(t *testing.T) {
	bad := config.DefaultTuning()
	bad.Intervals.Poop = 0
	if _, err := Compile(bad); err == nil {
		t.Error("zero interval should fail")
	}

	bad = config.DefaultTuning()
	bad.Poop.Entries = []config.TableEntry[time.Duration]{
		{Below: config.Bound[time.Duration]{Max: true}, Chance: 1},
		{Below: config.Bound[time.Duration]{Value: time.Hour}, Chance: 1},
	}
	if _, err := Compile(bad); !errors.Is(err, errMaxNotLast) {
		t.Errorf("Compile() error = %v, expected errMaxNotLast", err)
	}
}

func TestCompileScalesChances(t *testing.T) {
	rules := DefaultRules()

	// 0.1 per hour checked every 5s.
	want := float32(0.1 * 5.0 / 3600.0)
	if got := rules.Starvation.Lookup(48 * time.Hour); got < want*0.999 || got > want*1.001 {
		t.Errorf("Starvation.Lookup(48h) = %v, expected %v", got, want)
	}
	if got := rules.Starvation.Lookup(7 * time.Hour); got != 0 {
		t.Errorf("Starvation.Lookup(7h) = %v, expected 0", got)
	}
}

func TestSleeping(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		hour int
		want bool
	}{
		{21, false}, {22, true}, {23, true}, {0, true}, {5, true}, {6, false}, {12, false},
	}
	for _, tt := range tests {
		if got := rules.Sleeping(tt.hour); got != tt.want {
			t.Errorf("Sleeping(%d) = %v, expected %v", tt.hour, got, tt.want)
		}
	}
}
