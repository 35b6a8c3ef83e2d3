package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocketpet/internal/pet"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List every species",
	Long:  `Shows every species with its life stage and what it grows into.`,
	Args:  cobra.NoArgs,
	Run:   runSpecies,
}

func runSpecies(_ *cobra.Command, _ []string) {
	defs := pet.Definitions()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, d := range defs {
		maxNameLen = max(maxNameLen, len(d.Name))
	}

	fmt.Printf("  %-*s  %-6s  %-9s  %s\n", maxNameLen, "Name", "Stage", "Evolves", "Into")
	fmt.Printf("  %-*s  %-6s  %-9s  %s\n", maxNameLen, "----", "-----", "-------", "----")

	for _, d := range defs {
		evolves, into := "-", "-"
		if d.EvolvesInto != pet.NoEvolution {
			evolves = d.EvolveAt.String()
			into = d.EvolvesInto.String()
		}
		fmt.Printf("  %-*s  %-6s  %-9s  %s\n", maxNameLen, d.Name, d.Stage, evolves, into)
	}
}
