// Package seance implements "La Séance": the table knocks out a sequence
// of directions and the player must knock it back from memory. Each round
// the spirits grow more talkative. Inverted rules demand every answer
// mirrored.
package seance

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kunstkammer/dadaspiel/internal/core"
	"github.com/kunstkammer/dadaspiel/internal/registry"
)

// Tuning constants.
const (
	Rounds      = 3
	FirstLength = 3   // Sequence length in round one, +1 per round
	ShowBeat    = 0.7 // Seconds each knock is shown
	RestBeat    = 0.2 // Gap between shown knocks
	AnswerLimit = 6.0 // Seconds to answer each round
)

// phase is the round's current mode.
type phase int

const (
	phaseShowing phase = iota
	phaseAnswering
)

// arrows maps a direction to its table knock.
var arrows = map[core.Action]rune{
	core.ActionUp:    '↑',
	core.ActionDown:  '↓',
	core.ActionLeft:  '←',
	core.ActionRight: '→',
}

// directions is the draw pool, in a fixed order for determinism.
var directions = []core.Action{
	core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
}

// opposite mirrors a direction for inverted rules.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Game implements the séance round logic.
type Game struct {
	config core.RuntimeConfig
	mods   core.Modifiers
	rng    *rand.Rand

	round    int // 0-based round number
	sequence []core.Action
	answered int // Knocks answered correctly this round
	phase    phase
	beat     float64 // Seconds into the current shown knock
	showing  int     // Index of the knock being shown
	timer    float64 // Answer-phase countdown
	outcome  core.Outcome
	reported bool
}

// New creates a new round instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return "seance"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "La Séance"
}

// Reset initializes or restarts the round.
func (g *Game) Reset(cfg core.RuntimeConfig, mods core.Modifiers) {
	g.config = cfg
	g.mods = mods
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.round = 0
	g.outcome = core.OutcomeNone
	g.reported = false
	g.startRound()
}

// startRound deals a fresh sequence and enters the showing phase.
func (g *Game) startRound() {
	length := FirstLength + g.round
	g.sequence = g.sequence[:0]
	for i := 0; i < length; i++ {
		g.sequence = append(g.sequence, directions[g.rng.Intn(len(directions))])
	}
	g.answered = 0
	g.phase = phaseShowing
	g.beat = 0
	g.showing = 0
	g.timer = AnswerLimit
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

	switch g.phase {
	case phaseShowing:
		g.beat += sec
		if g.beat >= ShowBeat+RestBeat {
			g.beat = 0
			g.showing++
			if g.showing >= len(g.sequence) {
				g.phase = phaseAnswering
			}
		}

	case phaseAnswering:
		g.timer -= sec
		if g.timer <= 0 {
			g.outcome = core.OutcomeLost
			return g.result()
		}
		for _, dir := range directions {
			if in.Has(dir) {
				g.knock(dir)
				break
			}
		}
	}

	return g.result()
}

// knock resolves one answered direction. Inverted, the expected answer is
// the mirror of what the table knocked.
func (g *Game) knock(dir core.Action) {
	want := g.sequence[g.answered]
	if g.mods.Inverted {
		want = opposite[want]
	}

	if dir != want {
		if g.mods.Forgive != nil && g.mods.Forgive() {
			return
		}
		g.outcome = core.OutcomeLost
		return
	}

	g.answered++
	if g.answered < len(g.sequence) {
		return
	}

	g.round++
	if g.round >= Rounds {
		g.outcome = core.OutcomeWon
		return
	}
	g.startRound()
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
	dst.DrawTextCentered(1, fmt.Sprintf("round %d of %d", g.round+1, Rounds))

	switch g.phase {
	case phaseShowing:
		dst.DrawTextCentered(midY-2, "the table speaks...")
		if g.showing < len(g.sequence) && g.beat <= ShowBeat {
			dst.SetColored(dst.Width()/2, midY, arrows[g.sequence[g.showing]], core.ColorBrightMagenta)
		}

	case phaseAnswering:
		dst.DrawTextCentered(midY-2, "knock it back")
		startX := (dst.Width() - len(g.sequence)*2) / 2
		for i := range g.sequence {
			ch := '·'
			color := core.ColorGray
			if i < g.answered {
				ch = arrows[g.sequence[i]]
				color = core.ColorGreen
			}
			dst.SetColored(startX+i*2, midY, ch, color)
		}
		dst.DrawTextCentered(midY+3, fmt.Sprintf("%.0fs before the spirits leave", g.timer))
	}

	if g.mods.Inverted {
		dst.DrawTextColored(2, dst.Height()-2, "answer every knock with its mirror", core.ColorMagenta)
	}
}

func init() {
	registry.Register("seance", func() registry.Minigame {
		return New()
	})
}
