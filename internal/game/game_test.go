package game

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/pocketpet/internal/config"
	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/pet"
	"github.com/vovakirdan/pocketpet/internal/save"
	"github.com/vovakirdan/pocketpet/internal/scene"
	"github.com/vovakirdan/pocketpet/internal/sim"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

const frame = 16 * time.Millisecond

var start = timestamp.MustNew(2025, time.January, 1, 12, 0, 0, 0)

// quietRules never kill the pet and never roll random events.
func quietRules() *sim.Rules {
	t := config.DefaultTuning()
	t.Death = config.DeathTuning{}
	t.Illness = config.CountTable{}
	t.Poop = config.DurationTable{}
	t.Breed = config.DurationTable{}
	t.Suitor.Arrival = config.DurationTable{}
	t.Suitor.Leave = config.Chance{}
	t.EggHatch = config.DurationTable{}
	return sim.MustCompile(t)
}

func hold(g *Game, b core.Button) {
	var s core.ButtonStates
	s[b] = true
	g.UpdateInputStates(s)
	g.Tick(frame)
	g.UpdateInputStates(core.ButtonStates{})
	g.Tick(frame)
}

func idle(g *Game, n int) {
	for range n {
		g.Tick(frame)
	}
}

// script plays a fixed sequence of presses and waits on g.
func script(g *Game) {
	idle(g, 3)
	hold(g, core.ButtonRight)
	hold(g, core.ButtonMiddle) // CLEAN
	idle(g, 200)
	hold(g, core.ButtonMiddle) // FOOD
	hold(g, core.ButtonMiddle) // bread
	for range 2000 {
		g.Tick(frame)
		g.RefreshDisplay(frame)
	}
}

func encoded(t *testing.T, g *Game) []byte {
	t.Helper()
	snap, ok := g.GetSave(g.Time())
	if !ok {
		t.Fatal("GetSave() reported nothing to save")
	}
	data, err := save.Encode(snap)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestDeterminism(t *testing.T) {
	a := New(start)
	b := New(start)
	script(a)
	script(b)

	if !bytes.Equal(encoded(t, a), encoded(t, b)) {
		t.Error("identical runs produced different saves")
	}
	if !bytes.Equal(a.Context().RNG.State(), b.Context().RNG.State()) {
		t.Error("identical runs left the generator in different states")
	}
	if a.Display().String() != b.Display().String() {
		t.Error("identical runs rendered different frames")
	}
}

func TestInputStirsGenerator(t *testing.T) {
	a := New(start)
	b := New(start)
	idle(a, 10)
	idle(b, 5)
	b.UpdateInputStates(core.ButtonStates{core.ButtonRight: true})
	idle(b, 5)

	if bytes.Equal(a.Context().RNG.State(), b.Context().RNG.State()) {
		t.Error("holding a button should change the draw sequence")
	}
}

func TestBlank(t *testing.T) {
	t.Run("with clock", func(t *testing.T) {
		now := start
		g := Blank(&now)
		idle(g, 3)
		if g.ActiveScene() != scene.KindEnterText {
			t.Errorf("active = %v, expected the naming dialog", g.ActiveScene())
		}
	})
	t.Run("without clock", func(t *testing.T) {
		g := Blank(nil)
		if !g.Time().Equal(timestamp.Default()) {
			t.Errorf("Time() = %v, expected the default", g.Time())
		}
		idle(g, 3)
		if g.ActiveScene() != scene.KindEnterDate {
			t.Errorf("active = %v, expected the date dialog", g.ActiveScene())
		}
	})
}

func TestBlankNamesBaby(t *testing.T) {
	now := start
	g := Blank(&now, WithRules(quietRules()))
	idle(g, 3)
	hold(g, core.ButtonMiddle) // A
	hold(g, core.ButtonLeft)   // wraps to OK
	hold(g, core.ButtonMiddle)
	idle(g, 3)

	p := g.Context().Pet
	if g.ActiveScene() != scene.KindHome {
		t.Fatalf("active = %v, expected Home", g.ActiveScene())
	}
	if p.Name != "A" || p.Definition().Stage != pet.Baby {
		t.Errorf("pet = %s/%v, expected a baby named A", p.Name, p.DefID)
	}
}

func TestShouldSaveOnceHome(t *testing.T) {
	now := start
	g := Blank(&now)
	if _, ok := g.GetSave(start); ok {
		t.Error("nothing should be saved before the first tick")
	}
	idle(g, 3)
	if _, ok := g.GetSave(start); ok {
		t.Error("nothing should be saved while the pet is being named")
	}

	g = New(start)
	idle(g, 1)
	if _, ok := g.GetSave(start); !ok {
		t.Error("Home should allow saving")
	}
}

func TestIdleQuit(t *testing.T) {
	g := New(start, WithRules(quietRules()))
	idle(g, 1)
	hold(g, core.ButtonMiddle) // FOOD
	idle(g, 1)
	if g.ActiveScene() != scene.KindFoodSelect {
		t.Fatalf("active = %v, expected FoodSelect", g.ActiveScene())
	}

	for g.Idle() <= IdleQuitAfter {
		g.Tick(time.Second)
		if g.ActiveScene() != scene.KindFoodSelect {
			t.Fatalf("left FoodSelect after only %v", g.Idle())
		}
	}
	g.Tick(frame)
	g.Tick(frame)
	if g.ActiveScene() != scene.KindHome {
		t.Errorf("active = %v, expected Home after idling", g.ActiveScene())
	}
}

func TestIdleKeepsDialogs(t *testing.T) {
	g := New(start, WithRules(quietRules()))
	g.mgr.SetNext(scene.NewAlarmSet())
	idle(g, 3)
	if g.ActiveScene() != scene.KindEnterDate {
		t.Fatalf("active = %v, expected EnterDate", g.ActiveScene())
	}
	for range 400 {
		g.Tick(time.Second)
	}
	if g.ActiveScene() != scene.KindEnterDate {
		t.Errorf("active = %v, dialogs must not quit on idle", g.ActiveScene())
	}
}

func TestLowPower(t *testing.T) {
	g := New(start)
	idle(g, 1)
	if g.LowPower() {
		t.Error("a fresh game should not be in low power")
	}
	for g.Idle() <= LowPowerAfter {
		g.Tick(time.Second)
	}
	if !g.LowPower() {
		t.Error("idle Home should allow low power")
	}

	g.Context().Alarm.Set(timestamp.AllWeekdays, g.Time().Clock())
	g.Tick(frame)
	if g.LowPower() {
		t.Error("a ringing alarm should keep full power")
	}
}

func TestAlarmRings(t *testing.T) {
	g := New(start)
	g.Context().Alarm.Set(timestamp.AllWeekdays, timestamp.Clock{Hour: 12, Minute: 1})
	for range 4 {
		g.Tick(30 * time.Second)
	}
	if song := g.PullSong(); song != pet.SongAlarm {
		t.Errorf("PullSong() = %v, expected the alarm", song)
	}
	idle(g, 2)
	if g.ActiveScene() != scene.KindAlarmRing {
		t.Fatalf("active = %v, expected AlarmRing", g.ActiveScene())
	}
	hold(g, core.ButtonLeft)
	idle(g, 1)
	if g.ActiveScene() != scene.KindHome || g.Context().Alarm.Ringing {
		t.Error("a press should silence the alarm")
	}
}

func TestClockOverride(t *testing.T) {
	g := New(start)
	target := timestamp.MustNew(2030, time.June, 1, 8, 0, 0, 0)
	g.Context().SetTimestamp = &target
	g.Tick(frame)

	if !g.Time().Equal(target) {
		t.Errorf("Time() = %v, expected %v", g.Time(), target)
	}
	if g.Context().SetTimestamp != nil {
		t.Error("the override should be consumed")
	}
	g.Tick(frame)
	if !g.Time().Equal(target.Add(frame)) {
		t.Errorf("Time() = %v, expected the clock to continue from the override", g.Time())
	}
}

func TestTimeScale(t *testing.T) {
	g := New(start, WithRules(quietRules()), WithTimeScale(60))
	idle(g, 1)
	age := g.Context().Pet.Age
	g.Tick(time.Second)
	if got := g.Context().Pet.Age - age; got != time.Minute {
		t.Errorf("aged %v in one scaled second, expected 1m", got)
	}
	if !g.Time().Equal(start.Add(frame + time.Second)) {
		t.Errorf("Time() = %v, the clock itself must not be scaled", g.Time())
	}
}

func TestLoadSaveReplays(t *testing.T) {
	src := New(start, WithRules(quietRules()))
	idle(src, 1)
	snap, ok := src.GetSave(src.Time())
	if !ok {
		t.Fatal("expected a save")
	}

	g := New(start, WithRules(quietRules()))
	later := snap.Timestamp.Add(time.Hour + 10*time.Millisecond)
	rep := g.LoadSave(later, snap)

	if rep.Steps != int64(time.Hour/CatchUpStep) || rep.Simulated != time.Hour || rep.Capped {
		t.Errorf("report = %+v, expected one uncapped hour", rep)
	}
	if rep.Elapsed != time.Hour+10*time.Millisecond {
		t.Errorf("Elapsed = %v", rep.Elapsed)
	}
	if got := g.Context().Pet.Age - snap.Pet.Age; got != time.Hour {
		t.Errorf("pet aged %v, expected 1h", got)
	}
	if !g.Time().Equal(later) {
		t.Errorf("Time() = %v, expected %v", g.Time(), later)
	}
	g.Tick(frame)
	if g.ActiveScene() != scene.KindHome {
		t.Errorf("active = %v, expected Home", g.ActiveScene())
	}
}

func TestLoadSaveRewoundClock(t *testing.T) {
	src := New(start, WithRules(quietRules()))
	idle(src, 1)
	snap, _ := src.GetSave(src.Time())

	tests := []struct {
		name    string
		now     timestamp.Timestamp
		rewound bool
	}{
		{"clock set back", snap.Timestamp.Add(-time.Hour), true},
		{"no time passed", snap.Timestamp, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(start, WithRules(quietRules()))
			rep := g.LoadSave(tc.now, snap)
			if rep.Rewound != tc.rewound {
				t.Errorf("Rewound = %v, expected %v", rep.Rewound, tc.rewound)
			}
			if rep.Elapsed != 0 || rep.Steps != 0 {
				t.Errorf("report = %+v, expected nothing replayed", rep)
			}
			if g.Context().Pet.Age != snap.Pet.Age {
				t.Errorf("pet aged %v", g.Context().Pet.Age-snap.Pet.Age)
			}
		})
	}
}

func TestLoadSaveCap(t *testing.T) {
	tests := []struct {
		name   string
		away   time.Duration
		limit  time.Duration
		want   time.Duration
		capped bool
	}{
		{"under cap", 30 * time.Minute, time.Hour, 30 * time.Minute, false},
		{"over cap", 30 * 24 * time.Hour, time.Hour, time.Hour, true},
		{"clock went back", -time.Hour, time.Hour, 0, false},
		{"uncapped", 3 * time.Hour, 0, 3 * time.Hour, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := save.Generate(start, New(start).Context())
			g := New(start, WithRules(quietRules()), WithCatchUpCap(tt.limit))
			rep := g.LoadSave(start.Add(tt.away), snap)
			if rep.Simulated != tt.want || rep.Capped != tt.capped {
				t.Errorf("report = %+v, expected %v capped=%v", rep, tt.want, tt.capped)
			}
		})
	}
}

func TestDefaultCapIsAWeek(t *testing.T) {
	if DefaultCatchUpCap != 7*24*time.Hour {
		t.Errorf("DefaultCatchUpCap = %v", DefaultCatchUpCap)
	}
}

func TestReplayMatchesLiveBody(t *testing.T) {
	rules := quietRules()
	live := New(start, WithRules(rules))
	idle(live, 1)
	snap, _ := live.GetSave(live.Time())

	replayed := New(start, WithRules(rules))
	replayed.LoadSave(snap.Timestamp.Add(2*time.Hour), snap)
	idle(live, int(2*time.Hour/frame))

	a, b := live.Context().Pet, replayed.Context().Pet
	if a.Age != b.Age {
		t.Errorf("Age live=%v replay=%v", a.Age, b.Age)
	}
	if math.Abs(a.Stomach-b.Stomach) > 1e-6 {
		t.Errorf("Stomach live=%v replay=%v", a.Stomach, b.Stomach)
	}
}

func TestReplayDeathReported(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Death.Lightning = config.Chance{Chance: 1e9, Per: time.Hour}
	g := New(start, WithRules(sim.MustCompile(tuning)))
	snap := save.Generate(start, g.Context())

	rep := g.LoadSave(start.Add(time.Minute), snap)
	if rep.Death != pet.DeathLightningStrike {
		t.Errorf("Death = %v, expected lightning", rep.Death)
	}
	g.Tick(frame)
	g.Tick(frame)
	if g.ActiveScene() != scene.KindDeath {
		t.Errorf("active = %v, expected Death", g.ActiveScene())
	}
}

func TestEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("simulates three days in 16ms steps")
	}
	now := start
	g := Blank(&now, WithRules(quietRules()))
	idle(g, 3)
	hold(g, core.ButtonMiddle)
	hold(g, core.ButtonLeft)
	hold(g, core.ButtonMiddle)

	for range int((72*time.Hour + time.Minute) / frame) {
		g.Tick(frame)
	}

	p := g.Context().Pet
	if !p.Alive() {
		t.Fatalf("pet died of %v", p.Death)
	}
	if p.Definition().Stage != pet.Adult {
		t.Errorf("stage = %v after three days, expected Adult", p.Definition().Stage)
	}
	if p.Age < 72*time.Hour {
		t.Errorf("Age = %v, expected at least 72h", p.Age)
	}
	if g.ActiveScene() != scene.KindHome {
		t.Errorf("active = %v, expected Home", g.ActiveScene())
	}

	snap, ok := g.GetSave(g.Time())
	if !ok {
		t.Fatal("expected a save")
	}
	data, err := save.Encode(snap)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := save.Decode(data); err != nil {
		t.Errorf("Decode() error: %v", err)
	}
}

func TestEndToEndCatchUp(t *testing.T) {
	if testing.Short() {
		t.Skip("replays three days in 16ms steps")
	}
	tuning := config.DefaultTuning()
	tuning.Death = config.DeathTuning{}
	rules := sim.MustCompile(tuning)

	midnight := timestamp.MustNew(2025, time.January, 1, 0, 0, 0, 0)
	now := midnight
	g := Blank(&now, WithRules(rules))
	if _, ok := g.GetSave(midnight); ok {
		t.Fatal("nothing should be saved before Home")
	}
	idle(g, 3)
	hold(g, core.ButtonMiddle)
	hold(g, core.ButtonLeft)
	hold(g, core.ButtonMiddle)
	idle(g, 5)
	if g.ActiveScene() != scene.KindHome {
		t.Fatalf("active = %v, expected Home after naming", g.ActiveScene())
	}

	snap, ok := g.GetSave(g.Time())
	if !ok {
		t.Fatal("expected a save once Home")
	}
	data, err := save.Encode(snap)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := save.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	resumed := New(midnight, WithRules(rules))
	rep := resumed.LoadSave(decoded.Timestamp.Add(72*time.Hour), decoded)
	if rep.Capped || rep.Simulated != 72*time.Hour {
		t.Errorf("report = %+v, expected 72h uncapped", rep)
	}

	before, after := decoded.Pet, resumed.Context().Pet
	if got := after.Age - before.Age; got != 72*time.Hour {
		t.Errorf("pet aged %v, expected 72h", got)
	}
	poopsBefore := 0
	for _, p := range decoded.Poops {
		if p.Present {
			poopsBefore++
		}
	}
	if after.Stomach >= before.Stomach && resumed.Context().PoopCount() <= poopsBefore {
		t.Errorf("stomach %v -> %v with no new poop, expected three days to show", before.Stomach, after.Stomach)
	}
}
