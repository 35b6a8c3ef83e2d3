// pocketpet is a virtual pet that lives in your terminal.
//
// Usage:
//
//	pocketpet play               - Play the pet in the current slot
//	pocketpet serve              - Start SSH server, one pet per user
//	pocketpet species            - List species
//	pocketpet inspect <slot>     - Dump a save as YAML
//	pocketpet records <slot>     - Show past pets of a slot
//	pocketpet replays <slot>     - Show recent catch-ups of a slot
//	pocketpet trials             - Compare live play with catch-up replay
//	pocketpet reset <slot>       - Delete a save
//
// Global flags override the POCKETPET_* environment:
//
//	--db <path>          - Save database (default: ~/.pocketpet/pocketpet.db)
//	--slot <name>        - Save slot (default: default)
//	--fps <rate>         - Tick rate
//	--speed <preset>     - realtime, brisk or turbo
//	--time-scale <f>     - Simulation time scale, overrides --speed
//	--catchup-cap <d>    - Longest absence replayed on load (0 = no limit)
//	--tuning <path>      - Simulation tuning YAML
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpet/internal/config"
	"github.com/vovakirdan/pocketpet/internal/game"
	"github.com/vovakirdan/pocketpet/internal/sim"
)

var (
	// Global flags
	flagDBPath     string
	flagSlot       string
	flagFPS        int
	flagSpeed      string
	flagTimeScale  float64
	flagCatchUpCap time.Duration
	flagTuning     string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pocketpet",
	Short: "pocketpet - a virtual pet in your terminal",
	Long: `pocketpet is a three-button virtual pet. It eats, plays, gets sick,
grows up, breeds and dies, and it keeps living while you are away:
the time since the last save is replayed when you come back.

Examples:
  pocketpet play
  pocketpet play --slot work --speed brisk
  pocketpet serve --ssh :2222
  pocketpet records default`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save database")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", "", "Save slot")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: "+strings.Join(config.ValidPresets(), ", "))
	rootCmd.PersistentFlags().Float64Var(&flagTimeScale, "time-scale", 0, "Simulation time scale (overrides --speed)")
	rootCmd.PersistentFlags().DurationVar(&flagCatchUpCap, "catchup-cap", 0, "Longest absence replayed on load, 0 for no limit")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to simulation tuning YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(speciesCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(trialsCmd)
	rootCmd.AddCommand(resetCmd)
}

// settings is the runtime environment with the flags applied.
type settings struct {
	config.Runtime
	Rules  *sim.Rules
	Logger *log.Logger
}

// loadSettings reads the environment, lets explicitly set flags win and
// compiles the tuning.
func loadSettings(cmd *cobra.Command) (settings, error) {
	rt, err := config.LoadRuntime()
	if err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		rt.DBPath = flagDBPath
	}
	if flags.Changed("slot") {
		rt.Slot = flagSlot
	}
	if flags.Changed("fps") {
		rt.FPS = flagFPS
	}
	if flags.Changed("speed") {
		rt.Speed = flagSpeed
	}
	if flags.Changed("catchup-cap") {
		rt.CatchUpCap = flagCatchUpCap
	}
	if flags.Changed("tuning") {
		rt.TuningPath = flagTuning
	}

	// A preset sets the scale unless one was given explicitly.
	if rt.Speed != "" {
		preset, err := config.ParseSpeedPreset(rt.Speed)
		if err != nil {
			return settings{}, err
		}
		rt.TimeScale = preset.TimeScale()
	}
	if flags.Changed("time-scale") {
		rt.TimeScale = flagTimeScale
	}

	tuning, err := config.LoadTuning(rt.TuningPath)
	if err != nil {
		return settings{}, err
	}
	rules, err := sim.Compile(tuning)
	if err != nil {
		return settings{}, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pocketpet",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	return settings{Runtime: rt, Rules: rules, Logger: logger}, nil
}

// gameOptions turns settings into options for every new game.
func (s settings) gameOptions() []game.Option {
	return []game.Option{
		game.WithRules(s.Rules),
		game.WithCatchUpCap(s.CatchUpCap),
		game.WithTimeScale(s.TimeScale),
	}
}

// slotArg returns the slot named on the command line, or the configured one.
func (s settings) slotArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return s.Slot
}
