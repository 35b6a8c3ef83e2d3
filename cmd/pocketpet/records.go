package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpet/internal/save"
	"github.com/vovakirdan/pocketpet/internal/storage"
)

var flagReplayLimit int

var recordsCmd = &cobra.Command{
	Use:   "records [slot]",
	Short: "Show the past pets of a slot",
	Long: `List the pets that lived in a slot, newest first.

Examples:
  pocketpet records
  pocketpet records alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

var replaysCmd = &cobra.Command{
	Use:   "replays [slot]",
	Short: "Show recent catch-ups of a slot",
	Long: `List how much absent time was replayed each time the slot was opened.

Examples:
  pocketpet replays
  pocketpet replays alice --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of catch-ups to show")
}

func runRecords(cmd *cobra.Command, args []string) error {
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

	records := snap.Records.List()
	if len(records) == 0 {
		fmt.Printf("No past pets in %s yet. %s is the first.\n", slot, snap.Pet.Name)
		return nil
	}

	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			strconv.Itoa(snap.Records.Total - i),
			r.Name,
			r.DefID.String(),
			r.Born.String(),
			r.Died.String(),
			r.Cause.String(),
		}
	}
	fmt.Printf("Past pets - %s\n\n", slot)
	printTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 12},
		{Title: "Species", Width: 8},
		{Title: "Born", Width: 10},
		{Title: "Died", Width: 10},
		{Title: "Cause", Width: 12},
	}, rows)
	return nil
}

func runReplays(cmd *cobra.Command, args []string) error {
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

	replays, err := store.RecentReplays(slot, flagReplayLimit)
	if err != nil {
		return err
	}
	if len(replays) == 0 {
		fmt.Printf("No catch-ups recorded for %s.\n", slot)
		return nil
	}

	rows := make([]table.Row, len(replays))
	for i, r := range replays {
		capped := ""
		if r.Capped {
			capped = "yes"
		}
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			r.Elapsed.Round(time.Second).String(),
			r.Simulated.Round(time.Second).String(),
			strconv.FormatInt(r.Steps, 10),
			capped,
			r.Death,
		}
	}
	fmt.Printf("Catch-ups - %s\n\n", slot)
	printTable([]table.Column{
		{Title: "When", Width: 12},
		{Title: "Away", Width: 14},
		{Title: "Replayed", Width: 14},
		{Title: "Steps", Width: 10},
		{Title: "Capped", Width: 6},
		{Title: "Died", Width: 12},
	}, rows)
	return nil
}

// printTable renders a static table to stdout.
func printTable(columns []table.Column, rows []table.Row) {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is focused when printing
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	fmt.Println(t.View())
}
