// Package soupe implements "Soupe de Lettres": letters rain into a bowl of
// alphabet soup and the player must fish out D-A-D-A, in order, before the
// soup goes cold.
package soupe

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kunstkammer/dadaspiel/internal/core"
	"github.com/kunstkammer/dadaspiel/internal/registry"
)

// Tuning constants, in cells and seconds.
const (
	BowlWidth     = 7
	BowlSpeed     = 28.0 // Horizontal bowl speed, cells per second
	FallSpeed     = 6.0  // Letter fall speed, cells per second
	SpawnInterval = 0.9  // Seconds between letter spawns
	TimeLimit     = 45.0 // Seconds before the soup goes cold
	TargetWord    = "DADA"
)

// Visual characters for rendering.
const (
	BowlEdgeChar = '\\'
	BowlChar     = '_'
	SurfaceChar  = '~'
)

// junkLetters is the pool the non-target letters are drawn from.
var junkLetters = []rune("BCEFGHKLMNOPRSTUVWZ")

// letter is one falling glyph.
type letter struct {
	r rune
	x int
	y float64
}

// Game implements the Soupe de Lettres round logic.
type Game struct {
	config core.RuntimeConfig
	mods   core.Modifiers
	rng    *rand.Rand

	bowlX      float64
	letters    []letter
	caught     int     // Letters of the target collected so far
	junkCaught int     // Inverted mode: junk letters collected so far
	elapsed    float64 // Seconds since reset
	spawnIn    float64 // Seconds until the next spawn
	outcome    core.Outcome
	reported   bool
}

// New creates a new round instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return "soupe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Soupe de Lettres"
}

// Reset initializes or restarts the round.
func (g *Game) Reset(cfg core.RuntimeConfig, mods core.Modifiers) {
	g.config = cfg
	g.mods = mods
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.bowlX = float64(cfg.ScreenW-BowlWidth) / 2
	g.letters = g.letters[:0]
	g.caught = 0
	g.junkCaught = 0
	g.elapsed = 0
	g.spawnIn = SpawnInterval
	g.outcome = core.OutcomeNone
	g.reported = false
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

	if g.elapsed >= TimeLimit {
		g.outcome = core.OutcomeLost
		return g.result()
	}

	// Move the bowl. Input is not slowed: the player keeps full control
	// while the soup crawls.
	move := BowlSpeed * dt.Seconds()
	if in.Has(core.ActionLeft) {
		g.bowlX -= move
	}
	if in.Has(core.ActionRight) {
		g.bowlX += move
	}
	g.bowlX = core.ClampF(g.bowlX, 0, float64(g.config.ScreenW-BowlWidth))

	// Spawn letters.
	g.spawnIn -= sec
	for g.spawnIn <= 0 {
		g.spawnIn += SpawnInterval
		g.spawn()
	}

	// Fall and catch.
	bowlY := g.bowlY()
	kept := g.letters[:0]
	for _, l := range g.letters {
		l.y += FallSpeed * sec
		if int(l.y) >= bowlY {
			if l.x >= int(g.bowlX) && l.x < int(g.bowlX)+BowlWidth {
				g.catchLetter(l.r)
				if g.outcome != core.OutcomeNone {
					return g.result()
				}
			}
			continue // Missed letters sink into the soup
		}
		kept = append(kept, l)
	}
	g.letters = kept

	return g.result()
}

// spawn drops a new letter from the top. Roughly every other letter is the
// one the word needs next, so the round stays winnable either way around.
func (g *Game) spawn() {
	var r rune
	if g.rng.Intn(2) == 0 {
		r = rune(TargetWord[g.caught%len(TargetWord)])
	} else {
		r = junkLetters[g.rng.Intn(len(junkLetters))]
	}
	g.letters = append(g.letters, letter{
		r: r,
		x: g.rng.Intn(g.config.ScreenW),
		y: 1,
	})
}

// catchLetter resolves a letter landing in the bowl. Normally the next
// letter of the word advances progress and anything else is a mistake;
// inverted, the word letters are the hazards and junk feeds the bowl.
func (g *Game) catchLetter(r rune) {
	wanted := rune(TargetWord[g.caught%len(TargetWord)])
	isWordLetter := r == 'D' || r == 'A'

	if g.mods.Inverted {
		if isWordLetter {
			g.mistake()
			return
		}
		g.junkCaught++
		if g.junkCaught >= len(TargetWord) {
			g.outcome = core.OutcomeWon
		}
		return
	}

	if r != wanted {
		g.mistake()
		return
	}
	g.caught++
	if g.caught >= len(TargetWord) {
		g.outcome = core.OutcomeWon
	}
}

// mistake ends the round unless the forgiveness hook absorbs it.
func (g *Game) mistake() {
	if g.mods.Forgive != nil && g.mods.Forgive() {
		return
	}
	g.outcome = core.OutcomeLost
}

// bowlY returns the row the bowl rim sits on.
func (g *Game) bowlY() int {
	return g.config.ScreenH - 3
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

	// Soup surface.
	surfaceY := dst.Height() - 2
	dst.DrawHLine(0, surfaceY, dst.Width(), SurfaceChar)

	// Falling letters. Word letters glow, junk stays gray.
	for _, l := range g.letters {
		color := core.ColorGray
		if l.r == 'D' || l.r == 'A' {
			color = core.ColorBrightYellow
		}
		dst.SetColored(l.x, int(l.y), l.r, color)
	}

	// The bowl.
	bowlX, bowlY := int(g.bowlX), g.bowlY()
	dst.Set(bowlX, bowlY, BowlEdgeChar)
	for x := 1; x < BowlWidth-1; x++ {
		dst.Set(bowlX+x, bowlY, BowlChar)
	}
	dst.Set(bowlX+BowlWidth-1, bowlY, '/')

	// HUD: collected letters and the clock.
	progress := TargetWord[:g.caught%len(TargetWord)]
	if g.caught >= len(TargetWord) {
		progress = TargetWord
	}
	if g.mods.Inverted {
		progress = fmt.Sprintf("junk %d/%d", g.junkCaught, len(TargetWord))
	}
	dst.DrawText(2, 0, fmt.Sprintf(" %s  |  %.0fs ", progress, TimeLimit-g.elapsed))
	if g.mods.Inverted {
		dst.DrawTextColored(2, 1, "the word is poison today", core.ColorMagenta)
	}
}

func init() {
	registry.Register("soupe", func() registry.Minigame {
		return New()
	})
}
