// Package metronome implements "Le Métronome Déréglé": a pendulum sweeps
// across a bar and the player must strike while it crosses the marked
// window. Four clean strikes win the round.
package metronome

import (
	"fmt"
	"math"
	"time"

	"github.com/kunstkammer/dadaspiel/internal/core"
	"github.com/kunstkammer/dadaspiel/internal/registry"
)

// Tuning constants.
const (
	HitsToWin   = 4
	WindowFrac  = 0.18 // Width of the strike window as a fraction of the bar
	SweepPeriod = 2.2  // Seconds for a full left-right-left sweep
	SpeedupFrac = 0.85 // Period multiplier after every clean strike
	TimeLimit   = 40.0
)

// Visual characters for rendering.
const (
	BarChar    = '─'
	WindowChar = '═'
	NeedleChar = '▼'
)

// Game implements the metronome round logic.
type Game struct {
	config core.RuntimeConfig
	mods   core.Modifiers

	phase    float64 // Sweep phase in [0, 1), wraps per period
	period   float64 // Current sweep period in seconds
	hits     int
	elapsed  float64
	outcome  core.Outcome
	reported bool
	flash    float64 // Seconds of strike feedback left to show
	flashOK  bool
}

// New creates a new round instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return "metronome"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Le Métronome Déréglé"
}

// Reset initializes or restarts the round.
func (g *Game) Reset(cfg core.RuntimeConfig, mods core.Modifiers) {
	g.config = cfg
	g.mods = mods
	g.phase = 0
	g.period = SweepPeriod
	g.hits = 0
	g.elapsed = 0
	g.outcome = core.OutcomeNone
	g.reported = false
	g.flash = 0
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
	g.phase = math.Mod(g.phase+sec/g.period, 1)
	if g.flash > 0 {
		g.flash -= sec
	}

	if g.elapsed >= TimeLimit {
		g.outcome = core.OutcomeLost
		return g.result()
	}

	if in.Has(core.ActionHit) {
		g.strike()
	}

	return g.result()
}

// strike resolves one strike against the window. Inverted rules demand the
// strike land OUTSIDE the window: the beat must be missed on purpose.
func (g *Game) strike() {
	inWindow := math.Abs(g.needlePos()-0.5) <= WindowFrac/2
	clean := inWindow != g.mods.Inverted

	g.flash = 0.3
	g.flashOK = clean

	if !clean {
		if g.mods.Forgive != nil && g.mods.Forgive() {
			return
		}
		g.outcome = core.OutcomeLost
		return
	}

	g.hits++
	g.period *= SpeedupFrac
	if g.hits >= HitsToWin {
		g.outcome = core.OutcomeWon
	}
}

// needlePos returns the needle position along the bar in [0, 1]: a
// triangle wave over the sweep phase.
func (g *Game) needlePos() float64 {
	if g.phase < 0.5 {
		return g.phase * 2
	}
	return 2 - g.phase*2
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

	barY := dst.Height() / 2
	barW := dst.Width() - 8
	barX := 4

	dst.DrawHLine(barX, barY, barW, BarChar)

	// The strike window, centered on the bar.
	winW := int(float64(barW) * WindowFrac)
	if winW < 1 {
		winW = 1
	}
	winX := barX + (barW-winW)/2
	winColor := core.ColorGreen
	if g.mods.Inverted {
		winColor = core.ColorRed
	}
	for x := 0; x < winW; x++ {
		dst.SetColored(winX+x, barY, WindowChar, winColor)
	}

	// The needle.
	needleX := barX + int(g.needlePos()*float64(barW-1))
	dst.SetColored(needleX, barY-1, NeedleChar, core.ColorBrightYellow)

	// Strike feedback.
	if g.flash > 0 {
		if g.flashOK {
			dst.DrawTextColored(barX, barY+2, "TAK", core.ColorGreen)
		} else {
			dst.DrawTextColored(barX, barY+2, "TOK?", core.ColorRed)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" beats %d/%d  |  %.0fs ", g.hits, HitsToWin, TimeLimit-g.elapsed))
	if g.mods.Inverted {
		dst.DrawTextColored(2, 1, "strike only where the beat is not", core.ColorMagenta)
	}
}

func init() {
	registry.Register("metronome", func() registry.Minigame {
		return New()
	})
}
