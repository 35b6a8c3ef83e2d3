package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/platform/tui"
	"github.com/vovakirdan/pocketpet/internal/storage"
	"github.com/vovakirdan/pocketpet/internal/timestamp"
)

var flagNoSave bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the pet in the current slot",
	Long: `Open the save slot, replay the time you were away and start playing.
A slot without a save, or with one that cannot be read, hatches a new pet.

Controls:
  ←/a          - Left button
  Enter/Space  - Middle button
  →/d          - Right button
  ?            - Toggle help
  Q/Ctrl+C     - Save and quit

Examples:
  pocketpet play
  pocketpet play --slot second
  pocketpet play --speed turbo --no-save`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not write the slot back")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// The frame needs the whole framebuffer plus a status and help line.
	screen := core.NewScreen(core.DisplayWidth, core.DisplayHeight)
	needW, needH := tui.FrameSize(screen)
	needH += 2
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		s.Logger.Warn("terminal is smaller than the pet screen", "size", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", needW, needH))
	}

	store, err := storage.Open(s.DBPath)
	if err != nil {
		return fmt.Errorf("opening save database: %w", err)
	}
	defer store.Close()

	now := timestamp.FromTime(time.Now())
	g := tui.OpenGame(store, s.Slot, now, s.Logger, s.gameOptions()...)

	opts := tui.Options{
		Slot:   s.Slot,
		Store:  store,
		FPS:    s.FPS,
		Bell:   os.Stdout,
		Logger: s.Logger,
	}
	if flagNoSave {
		opts.Store = nil
	}
	return tui.Run(g, opts)
}
