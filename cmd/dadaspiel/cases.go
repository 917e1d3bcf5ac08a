package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kunstkammer/dadaspiel/internal/content"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List cases and characters",
	Long: `Show the full case library, which minigames each case contains, and
which characters can see each case today. Some content is date-gated, so
the availability column changes with the calendar.`,
	Run: runCases,
}

func runCases(cmd *cobra.Command, args []string) {
	library, err := content.Load(flagCasesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cases: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()

	fmt.Println("Cases:")
	fmt.Println()
	for _, c := range library.Cases {
		fmt.Printf("  Case %d: %s\n", c.ID, c.Title)
		for _, mg := range c.Minigames {
			tag := ""
			if library.IsBonusMinigame(mg.ID) {
				tag = "  (bonus)"
			}
			fmt.Printf("    %-12s %s%s\n", mg.ID, mg.Name, tag)
		}
		var sees []string
		for _, info := range content.Characters {
			for _, vc := range content.FilterCases(library, info.ID, now, false) {
				if vc.ID == c.ID {
					sees = append(sees, info.Name)
					break
				}
			}
		}
		fmt.Printf("    visible today to: %s\n", strings.Join(sees, ", "))
		fmt.Println()
	}

	fmt.Println("Characters:")
	fmt.Println()
	for _, info := range content.Characters {
		fmt.Printf("  %-8s %-26s %s\n", info.Name, info.Ability, info.Tagline)
	}
}
