// Package cabaret implements the bonus round "Soirée au Cabaret Voltaire":
// the player keeps the room's applause up through the whole performance by
// clapping against a steadily rising expectation.
package cabaret

import (
	"fmt"
	"time"

	"github.com/kunstkammer/dadaspiel/internal/core"
	"github.com/kunstkammer/dadaspiel/internal/registry"
)

// Tuning constants.
const (
	Duration   = 15.0 // Length of the performance in seconds
	ClapBoost  = 0.09 // Meter gain per clap
	MeterDecay = 0.16 // Meter loss per second
	StartLevel = 0.5

	// The expectation climbs from FloorStart to FloorEnd across the
	// performance; the meter must stay above it (or below, inverted).
	FloorStart = 0.15
	FloorEnd   = 0.55

	GraceTime = 1.2 // Seconds the meter may sit on the wrong side
)

// Game implements the cabaret bonus round logic.
type Game struct {
	config core.RuntimeConfig
	mods   core.Modifiers

	meter    float64 // Applause level in [0, 1]
	elapsed  float64
	grace    float64 // Seconds spent on the wrong side of the floor
	outcome  core.Outcome
	reported bool
}

// New creates a new round instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return "cabaret"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Soirée au Cabaret Voltaire"
}

// Reset initializes or restarts the round.
func (g *Game) Reset(cfg core.RuntimeConfig, mods core.Modifiers) {
	g.config = cfg
	g.mods = mods
	g.meter = StartLevel
	if mods.Inverted {
		// The inverted room opens quiet; any applause is already too much.
		g.meter = 0.05
	}
	g.elapsed = 0
	g.grace = 0
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

	if in.Has(core.ActionHit) {
		g.meter += ClapBoost
	}
	g.meter -= MeterDecay * sec
	g.meter = core.ClampF(g.meter, 0, 1)

	// On the wrong side of the expectation, the grace clock runs;
	// the round fails when it runs out. Inverted, the room demands
	// silence and clapping is what betrays you.
	failing := g.meter < g.floor()
	if g.mods.Inverted {
		failing = g.meter > g.floor()
	}
	if failing {
		g.grace += sec
		if g.grace >= GraceTime {
			if g.mods.Forgive != nil && g.mods.Forgive() {
				g.grace = 0
			} else {
				g.outcome = core.OutcomeLost
				return g.result()
			}
		}
	} else {
		g.grace = 0
	}

	if g.elapsed >= Duration {
		g.outcome = core.OutcomeWon
	}

	return g.result()
}

// floor returns the current expectation level, rising over the performance.
func (g *Game) floor() float64 {
	t := core.ClampF(g.elapsed/Duration, 0, 1)
	return FloorStart + (FloorEnd-FloorStart)*t
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

	// The applause meter, a vertical bar stage left.
	meterH := dst.Height() - 6
	meterX := 6
	meterTop := 3
	filled := int(g.meter * float64(meterH))
	floorRow := meterTop + meterH - 1 - int(g.floor()*float64(meterH))
	for i := 0; i < meterH; i++ {
		y := meterTop + meterH - 1 - i
		ch := '·'
		color := core.ColorGray
		if i < filled {
			ch = '█'
			color = core.ColorBrightYellow
			if g.grace > 0 {
				color = core.ColorRed
			}
		}
		dst.SetColored(meterX, y, ch, color)
	}
	dst.SetColored(meterX+2, floorRow, '◄', core.ColorCyan)
	dst.DrawText(meterX+4, floorRow, "the room expects")

	dst.DrawTextCentered(1, fmt.Sprintf("%.0fs of performance left", Duration-g.elapsed))
	if g.mods.Inverted {
		dst.DrawTextColored(meterX, dst.Height()-2, "tonight the room demands silence", core.ColorMagenta)
	} else {
		dst.DrawText(meterX, dst.Height()-2, "clap! (space)")
	}
}

func init() {
	registry.Register("cabaret", func() registry.Minigame {
		return New()
	})
}
