package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpet/internal/storage"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset <slot>",
	Short: "Delete a save and its catch-up history",
	Long: `Delete the save in a slot. The next game in that slot hatches a new pet.

Examples:
  pocketpet reset default --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Confirm deletion")
}

func runReset(cmd *cobra.Command, args []string) error {
	slot := args[0]
	if !flagYes {
		return errors.New("refusing to delete without --yes")
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	store, err := storage.Open(s.DBPath)
	if err != nil {
		return fmt.Errorf("opening save database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteSave(slot); err != nil {
		return err
	}
	s.Logger.Info("slot reset", "slot", slot)
	return nil
}
