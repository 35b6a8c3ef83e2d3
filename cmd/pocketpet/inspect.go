package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pocketpet/internal/save"
	"github.com/vovakirdan/pocketpet/internal/storage"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [slot]",
	Short: "Dump a save as YAML",
	Long: `Decode the save in a slot and print it as YAML. Nothing is replayed:
the pet is shown as it was when it was saved.

Examples:
  pocketpet inspect
  pocketpet inspect alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	slot := s.slotArg(args)

	store, err := storage.Open(s.DBPath)
	if err != nil {
		return fmt.Errorf("opening save database: %w", err)
	}
	defer store.Close()

	data, err := store.GetSave(slot)
	if err != nil {
		return fmt.Errorf("slot %s: %w", slot, err)
	}
	snap, err := save.Decode(data)
	if err != nil {
		return fmt.Errorf("slot %s: %w", slot, err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(snap)
}
