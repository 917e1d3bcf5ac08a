package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kunstkammer/dadaspiel/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List saved profiles",
	Long:  `Show every saved profile with its character, best score and progress.`,
	Run:   runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) {
	dir, err := dataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := profile.Open(dir, log.New(io.Discard))
	profiles := store.All()

	if len(profiles) == 0 {
		fmt.Println("No profiles yet.")
		fmt.Println()
		fmt.Println("Run 'dadaspiel play' to create one.")
		return
	}

	fmt.Printf("  %-16s  %-9s  %-7s  %s\n", "Name", "Character", "Best", "Notes")
	fmt.Printf("  %-16s  %-9s  %-7s  %s\n", "----", "---------", "----", "-----")

	for _, p := range profiles {
		var notes []string
		if p.GameCompleted {
			notes = append(notes, "completed")
		}
		if p.HasDadaToken {
			notes = append(notes, "dada token")
		}
		note := ""
		for i, n := range notes {
			if i > 0 {
				note += ", "
			}
			note += n
		}
		fmt.Printf("  %-16s  %-9s  %-7d  %s\n", p.Name, p.Character.Info().Name, p.HighScore, note)
	}
}
