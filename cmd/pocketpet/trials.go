package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpet/internal/sim"
	"github.com/vovakirdan/pocketpet/internal/telemetry"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

var (
	flagTrials        int
	flagTrialDuration time.Duration
	flagPerHour       float64
	flagCSV           string
)

var trialsCmd = &cobra.Command{
	Use:   "trials",
	Short: "Compare live play with catch-up replay",
	Long: `Run seeded pets twice, once ticked frame by frame as in live play and
once restored from a save and caught up in one go, and compare how often
a flat-chance event fires in each. Both rates should match each other
and the analytic expectation. Live pets run at --speed or --time-scale.

Examples:
  pocketpet trials
  pocketpet trials --trials 500 --duration 30m
  pocketpet trials --speed turbo --fps 10
  pocketpet trials --csv trials.csv`,
	Args: cobra.NoArgs,
	RunE: runTrials,
}

func init() {
	trialsCmd.Flags().IntVar(&flagTrials, "trials", 200, "Trials per mode")
	trialsCmd.Flags().DurationVar(&flagTrialDuration, "duration", 10*time.Minute, "Simulated time per trial")
	trialsCmd.Flags().Float64Var(&flagPerHour, "per-hour", 3, "Chance per hour of a lightning strike")
	trialsCmd.Flags().StringVar(&flagCSV, "csv", "", "Write every trial as CSV to this file (- for stdout)")
}

func runTrials(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	cfg := telemetry.TrialConfig{
		Trials:    flagTrials,
		Duration:  flagTrialDuration,
		Step:      time.Second / time.Duration(max(s.FPS, 1)),
		TimeScale: s.TimeScale,
		Start:     timestamp.FromTime(time.Now()),
		Tuning:    telemetry.LightningTuning(flagPerHour),
	}

	s.Logger.Info("running trials", "trials", cfg.Trials, "duration", cfg.Duration, "step", cfg.Step, "time_scale", cfg.TimeScale)
	began := time.Now()
	trials, err := telemetry.Run(cfg)
	if err != nil {
		return err
	}
	s.Logger.Info("trials done", "took", time.Since(began).Round(time.Millisecond))

	if flagCSV != "" {
		if err := writeTrialsCSV(flagCSV, trials); err != nil {
			return err
		}
		if flagCSV == "-" {
			return nil
		}
	}

	expected := telemetry.Expected(sim.MustCompile(cfg.Tuning), cfg.Duration)
	sums := telemetry.Summarize(trials)

	rows := make([]table.Row, 0, len(sums))
	for _, sum := range sums {
		rows = append(rows, table.Row{
			string(sum.Mode),
			strconv.Itoa(sum.N),
			fmt.Sprintf("%.4f", sum.Rate),
			fmt.Sprintf("%.4f", sum.StdErr),
			fmt.Sprintf("%.1f", sum.MeanAge),
		})
	}
	printTable([]table.Column{
		{Title: "Mode", Width: 8},
		{Title: "N", Width: 6},
		{Title: "Rate", Width: 8},
		{Title: "StdErr", Width: 8},
		{Title: "Age (s)", Width: 10},
	}, rows)
	fmt.Printf("\nExpected rate: %.4f\n", expected)

	if len(sums) == 2 {
		verdict := "equivalent"
		if !telemetry.Equivalent(sums[0], sums[1], 3, 0.01) {
			verdict = "NOT equivalent"
		}
		fmt.Printf("Live and replay are %s within 3 standard errors.\n", verdict)
	}
	return nil
}

func writeTrialsCSV(path string, trials []telemetry.Trial) error {
	if path == "-" {
		return telemetry.WriteTrials(os.Stdout, trials)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := telemetry.WriteTrials(f, trials); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
