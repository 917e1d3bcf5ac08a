// Package typo implements "La Machine à Écrire": a manifesto word appears
// and the player must type it letter by letter before the ribbon dries.
// Inverted rules demand the word typed backwards.
package typo

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/kunstkammer/dadaspiel/internal/core"
	"github.com/kunstkammer/dadaspiel/internal/registry"
)

// Tuning constants.
const (
	TimeLimit = 20.0
)

// words is the manifesto vocabulary a round draws from.
var words = []string{
	"umbrella",
	"gadji",
	"beri",
	"bimba",
	"velodrome",
	"antipyrine",
	"phantom",
	"admiral",
	"lacquer",
	"typewriter",
}

// Game implements the typewriter round logic.
type Game struct {
	config core.RuntimeConfig
	mods   core.Modifiers

	word     string // The word as it must be typed
	shown    string // The word as displayed
	typed    int    // Correct letters entered so far
	elapsed  float64
	outcome  core.Outcome
	reported bool
	jammed   float64 // Seconds of mistake feedback left to show
}

// New creates a new round instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return "typo"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "La Machine à Écrire"
}

// Reset initializes or restarts the round.
func (g *Game) Reset(cfg core.RuntimeConfig, mods core.Modifiers) {
	g.config = cfg
	g.mods = mods

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.shown = words[rng.Intn(len(words))]
	g.word = g.shown
	if mods.Inverted {
		g.word = reverse(g.shown)
	}

	g.typed = 0
	g.elapsed = 0
	g.outcome = core.OutcomeNone
	g.reported = false
	g.jammed = 0
}

// Step advances the simulation by the elapsed wall-clock time dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.outcome != core.OutcomeNone {
		return g.result()
	}

	sec := dt.Seconds()
	if g.mods.SlowMo {
		sec /= 2
	}
	g.elapsed += sec
	if g.jammed > 0 {
		g.jammed -= sec
	}

	if g.elapsed >= TimeLimit {
		g.outcome = core.OutcomeLost
		return g.result()
	}

	for _, r := range in.Runes {
		g.press(r)
		if g.outcome != core.OutcomeNone {
			break
		}
	}

	return g.result()
}

// press resolves one keystroke against the expected letter.
func (g *Game) press(r rune) {
	want := rune(g.word[g.typed])
	if unify(r) != unify(want) {
		g.jammed = 0.4
		if g.mods.Forgive != nil && g.mods.Forgive() {
			return
		}
		g.outcome = core.OutcomeLost
		return
	}
	g.typed++
	if g.typed >= len(g.word) {
		g.outcome = core.OutcomeWon
	}
}

// unify folds case so the round does not care about shift.
func unify(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// reverse returns the word spelled backwards.
func reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

// result reports the outcome exactly once.
func (g *Game) result() core.StepResult {
	if g.outcome == core.OutcomeNone || g.reported {
		return core.StepResult{}
	}
	g.reported = true
	return core.StepResult{Outcome: g.outcome}
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	midY := dst.Height() / 2

	// The word on the page, typed part lit.
	startX := (dst.Width() - len(g.word)) / 2
	for i, r := range g.word {
		color := core.ColorGray
		if i < g.typed {
			color = core.ColorGreen
		} else if i == g.typed {
			color = core.ColorBrightYellow
		}
		dst.SetColored(startX+i, midY, r, color)
	}

	// Carriage marker under the next letter.
	dst.SetColored(startX+g.typed, midY+1, '^', core.ColorCyan)

	if g.mods.Inverted {
		dst.DrawTextCentered(midY-3, fmt.Sprintf("the page says %q, the machine disagrees", g.shown))
		dst.DrawTextColored(2, 1, "type it backwards", core.ColorMagenta)
	} else {
		dst.DrawTextCentered(midY-3, fmt.Sprintf("type %q", g.shown))
	}

	if g.jammed > 0 {
		dst.DrawTextColored(startX, midY+3, strings.Repeat("*", len(g.word))+" JAM", core.ColorRed)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" %.0fs of ribbon left ", TimeLimit-g.elapsed))
}

func init() {
	registry.Register("typo", func() registry.Minigame {
		return New()
	})
}
