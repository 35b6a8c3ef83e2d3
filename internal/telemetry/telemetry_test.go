package telemetry

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pocketpet/internal/config"
	"github.com/vovakirdan/pocketpet/internal/sim"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

var noon = timestamp.MustNew(2025, time.January, 1, 12, 0, 0, 0)

func TestCatchUpEquivalence(t *testing.T) {
	if testing.Short() {
		t.Skip("simulates many hours of play")
	}

	// Live trials tick at the shell's frame rate, replay at its own step.
	tests := []struct {
		name      string
		step      time.Duration
		timeScale float64
	}{
		{"realtime", time.Second / 30, 1},
		{"brisk", 100 * time.Millisecond, 60},
		{"turbo", 100 * time.Millisecond, 600},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := TrialConfig{
				Trials:    120,
				Duration:  10 * time.Minute,
				Step:      tc.step,
				TimeScale: tc.timeScale,
				Start:     noon,
				Tuning:    LightningTuning(3),
			}
			trials, err := Run(cfg)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if len(trials) != 2*cfg.Trials {
				t.Fatalf("got %d trials, expected %d", len(trials), 2*cfg.Trials)
			}

			sums := Summarize(trials)
			if len(sums) != 2 {
				t.Fatalf("got %d summaries, expected live and replay", len(sums))
			}
			liveSum, replaySum := sums[0], sums[1]
			expected := Expected(sim.MustCompile(cfg.Tuning), cfg.Duration)

			t.Logf("expected %.3f live %.3f±%.3f replay %.3f±%.3f",
				expected, liveSum.Rate, liveSum.StdErr, replaySum.Rate, replaySum.StdErr)

			if !Equivalent(liveSum, replaySum, 4, 0.02) {
				t.Errorf("live rate %.3f and replay rate %.3f are not equivalent", liveSum.Rate, replaySum.Rate)
			}
			for _, s := range sums {
				if !Near(s, expected, 4, 0.02) {
					t.Errorf("%s rate %.3f, expected about %.3f", s.Mode, s.Rate, expected)
				}
			}
		})
	}
}

func TestRunScaledAgesLikeReplay(t *testing.T) {
	trials, err := Run(TrialConfig{
		Trials:    2,
		Duration:  10 * time.Minute,
		Step:      100 * time.Millisecond,
		TimeScale: 600,
		Start:     noon,
		Tuning:    LightningTuning(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, tr := range trials {
		if math.Abs(tr.AgeSec-600) > 1e-9 {
			t.Errorf("trial %d/%s aged %vs, expected 600s", tr.Index, tr.Mode, tr.AgeSec)
		}
	}
}

func TestRunAgesLikeLive(t *testing.T) {
	trials, err := Run(TrialConfig{
		Trials:   2,
		Duration: time.Minute,
		Step:     16 * time.Millisecond,
		Start:    noon,
		Tuning:   LightningTuning(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, tr := range trials {
		if tr.Fired || tr.Cause != "" {
			t.Errorf("trial %d/%s died with lightning disabled", tr.Index, tr.Mode)
		}
		if math.Abs(tr.AgeSec-60) > 1e-9 {
			t.Errorf("trial %d/%s aged %.3fs, expected 60s", tr.Index, tr.Mode, tr.AgeSec)
		}
	}
}

func TestRunValidates(t *testing.T) {
	bad := config.DefaultTuning()
	bad.Intervals.Death = 0

	tests := []struct {
		name string
		cfg  TrialConfig
	}{
		{"no trials", TrialConfig{Duration: time.Minute, Step: time.Second, Tuning: config.DefaultTuning()}},
		{"no duration", TrialConfig{Trials: 1, Step: time.Second, Tuning: config.DefaultTuning()}},
		{"no step", TrialConfig{Trials: 1, Duration: time.Minute, Tuning: config.DefaultTuning()}},
		{"bad tuning", TrialConfig{Trials: 1, Duration: time.Minute, Step: time.Second, Tuning: bad}},
		{"negative time scale", TrialConfig{Trials: 1, Duration: time.Minute, Step: time.Second, TimeScale: -1, Tuning: config.DefaultTuning()}},
		{"vanishing time scale", TrialConfig{Trials: 1, Duration: time.Minute, Step: time.Nanosecond, TimeScale: 0.1, Tuning: config.DefaultTuning()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Run(tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExpected(t *testing.T) {
	tests := []struct {
		name    string
		perHour float64
		d       time.Duration
		want    float64
	}{
		{"never", 0, time.Hour, 0},
		{"certain", 1e9, time.Minute, 1},
		// 0.5/h over 5s checks: p = 1/1440 per check, 720 checks.
		{"half per hour", 0.5, time.Hour, 1 - math.Pow(1-1.0/1440, 720)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expected(sim.MustCompile(LightningTuning(tt.perHour)), tt.d)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Expected() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	trials := []Trial{
		{Index: 0, Mode: ModeLive, Fired: true, AgeSec: 10},
		{Index: 0, Mode: ModeReplay, Fired: true, AgeSec: 20},
		{Index: 1, Mode: ModeLive, Fired: false, AgeSec: 30},
		{Index: 1, Mode: ModeReplay, Fired: true, AgeSec: 40},
		{Index: 2, Mode: ModeLive, Fired: true, AgeSec: 50},
		{Index: 3, Mode: ModeLive, Fired: false, AgeSec: 70},
	}
	sums := Summarize(trials)
	if len(sums) != 2 {
		t.Fatalf("got %d summaries", len(sums))
	}

	live := sums[0]
	if live.Mode != ModeLive || live.N != 4 || live.Rate != 0.5 || live.MeanAge != 40 {
		t.Errorf("live summary = %+v", live)
	}
	wantStd := math.Sqrt(1.0 / 3)
	if math.Abs(live.StdDev-wantStd) > 1e-9 || math.Abs(live.StdErr-wantStd/2) > 1e-9 {
		t.Errorf("live spread = %v/%v, expected %v/%v", live.StdDev, live.StdErr, wantStd, wantStd/2)
	}

	replay := sums[1]
	if replay.Rate != 1 || replay.StdDev != 0 || replay.StdErr != 0 {
		t.Errorf("replay summary = %+v", replay)
	}

	if !Equivalent(live, replay, 2, 0) {
		t.Error("0.5±0.29 and 1±0 should be within two standard errors")
	}
	if Equivalent(live, replay, 1, 0) {
		t.Error("0.5±0.29 and 1±0 should not be within one standard error")
	}
}

func TestNearWithoutSpread(t *testing.T) {
	s := Summary{N: 100, Rate: 0}
	if !Near(s, 0.01, 3, 0) {
		t.Error("no hits in 100 trials is consistent with 1%")
	}
	if Near(s, 0.5, 3, 0) {
		t.Error("no hits in 100 trials is not consistent with 50%")
	}
}

func TestWriteReadTrials(t *testing.T) {
	trials := []Trial{
		{Index: 0, Mode: ModeLive, Fired: true, Cause: "Lightning", AgeSec: 12.5, Stomach: 100, Poops: 1},
		{Index: 0, Mode: ModeReplay, AgeSec: 600, Stomach: 40.25},
	}
	var buf bytes.Buffer
	if err := WriteTrials(&buf, trials); err != nil {
		t.Fatalf("WriteTrials() error: %v", err)
	}

	header, _, _ := strings.Cut(buf.String(), "\n")
	if header != "trial,mode,fired,cause,age_s,stomach,poops" {
		t.Errorf("header = %q", header)
	}

	got, err := ReadTrials(&buf)
	if err != nil {
		t.Fatalf("ReadTrials() error: %v", err)
	}
	if len(got) != len(trials) {
		t.Fatalf("read %d trials, expected %d", len(got), len(trials))
	}
	for i := range trials {
		if got[i] != trials[i] {
			t.Errorf("trial %d = %+v, expected %+v", i, got[i], trials[i])
		}
	}
}
