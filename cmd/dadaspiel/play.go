package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kunstkammer/dadaspiel/internal/audio"
	"github.com/kunstkammer/dadaspiel/internal/content"
	"github.com/kunstkammer/dadaspiel/internal/core"
	"github.com/kunstkammer/dadaspiel/internal/platform/tui"
	"github.com/kunstkammer/dadaspiel/internal/profile"
	"github.com/kunstkammer/dadaspiel/internal/session"
	"github.com/kunstkammer/dadaspiel/internal/storage"
)

var (
	flagMute      bool
	flagDebug     bool
	flagAllCases  bool
	flagCharacter string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the arcade: pick a profile, open a case, survive its minigames.

Controls:
  Arrows       - Move / choose
  Space/Enter  - Confirm / act
  1, 2         - Character abilities (where the character allows)
  Esc          - Back / log out
  Q/Ctrl+C     - Quit

Examples:
  dadaspiel play
  dadaspiel play --mute
  dadaspiel play --all-cases --character cravan`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay and enable debug keys")
	playCmd.Flags().BoolVar(&flagAllCases, "all-cases", false, "Bypass the date-based case filter")
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Act as this character regardless of profile (arp, cravan, kiki)")
}

func runPlay(cmd *cobra.Command, args []string) {
	library, err := content.Load(flagCasesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading cases: %v\n", err)
		os.Exit(1)
	}

	dir, err := dataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Log output would fight the rendered frame for the terminal, so it
	// goes to a ring shown by the debug overlay, or nowhere.
	ring := tui.NewRing(50)
	var logOut io.Writer = io.Discard
	if flagDebug {
		logOut = ring
	}
	logger := log.New(logOut)

	profiles := profile.Open(dir, logger)

	runs, err := storage.Open(filepath.Join(dir, "runs.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without run history
		runs = nil
	}

	var sounds audio.Player = audio.NewBell(os.Stdout)
	if flagMute {
		sounds = audio.Null{}
	}

	var rng *rand.Rand
	if flagSeed != 0 {
		rng = rand.New(rand.NewSource(flagSeed))
	}

	var runRecorder session.RunRecorder
	if runs != nil {
		runRecorder = runs
	}
	sess := session.New(session.Options{
		Profiles: profiles,
		Library:  library,
		Sounds:   sounds,
		Runs:     runRecorder,
		Logger:   logger,
		Rng:      rng,
		DebugAll: flagAllCases,
	})
	if flagCharacter != "" {
		sess.SetDebugCharacter(content.CharacterID(flagCharacter))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height - 1,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(sess, runs, logger, ring, cfg, flagDebug)

	if runs != nil {
		runs.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
