// dadaspiel is a terminal arcade of absurdist minigames.
//
// Usage:
//
//	dadaspiel play              - Start the game
//	dadaspiel cases             - List cases and characters
//	dadaspiel profiles          - List saved profiles
//	dadaspiel scores            - Show the best recorded runs
//	dadaspiel serve             - Start SSH server for remote play
//
// Global flags:
//
//	--data <dir>    - Data directory (default: ~/.dadaspiel)
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--cases <path>  - Path to a custom case definitions YAML
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	// Import minigames to register them
	_ "github.com/kunstkammer/dadaspiel/internal/games/cabaret"
	_ "github.com/kunstkammer/dadaspiel/internal/games/metronome"
	_ "github.com/kunstkammer/dadaspiel/internal/games/seance"
	_ "github.com/kunstkammer/dadaspiel/internal/games/soupe"
	_ "github.com/kunstkammer/dadaspiel/internal/games/typo"
)

var (
	// Global flags
	flagData      string
	flagFPS       int
	flagSeed      int64
	flagCasesPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dadaspiel",
	Short: "DadaSpiel - an absurdist arcade in your terminal",
	Long: `DadaSpiel is a terminal arcade of absurdist minigames, grouped into
cases and investigated by one of three characters.

Available commands:
  play     - Start the game
  cases    - List the cases and the characters that can see them
  profiles - List saved profiles
  scores   - View the best recorded runs
  serve    - Start SSH server for remote play

Examples:
  dadaspiel play
  dadaspiel play --character kiki
  dadaspiel scores
  dadaspiel serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "~/.dadaspiel", "Data directory for profiles and run history")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagCasesPath, "cases", "", "Path to custom case definitions YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// dataDir resolves the --data flag, expanding a leading tilde.
func dataDir() (string, error) {
	dir := flagData
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create data directory: %w", err)
	}
	return dir, nil
}
