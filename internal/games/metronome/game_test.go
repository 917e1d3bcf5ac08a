package metronome

import (
	"testing"
	"time"

	"github.com/kunstkammer/dadaspiel/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     1,
	}
}

// strikeAt parks the needle at the given phase and strikes. A zero dt keeps
// the needle where the test put it.
func strikeAt(g *Game, phase float64) core.StepResult {
	g.phase = phase
	in := core.NewInputFrame()
	in.Set(core.ActionHit)
	return g.Step(in, 0)
}

func TestNeedleSweep(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	cases := []struct {
		phase float64
		pos   float64
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
	}
	for _, c := range cases {
		g.phase = c.phase
		if got := g.needlePos(); got != c.pos {
			t.Errorf("needlePos(phase=%v) = %v, expected %v", c.phase, got, c.pos)
		}
	}
}

func TestCleanStrikesWin(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	var result core.StepResult
	for i := 0; i < HitsToWin; i++ {
		result = strikeAt(g, 0.25) // dead center
	}

	if result.Outcome != core.OutcomeWon {
		t.Errorf("outcome = %v, expected a win after %d strikes", result.Outcome, HitsToWin)
	}
}

func TestEachStrikeSpeedsTheSweep(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	before := g.period
	strikeAt(g, 0.25)
	if g.period >= before {
		t.Errorf("period = %v, expected faster than %v", g.period, before)
	}
}

func TestMissedStrikeLoses(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	result := strikeAt(g, 0) // far left, outside the window
	if result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, expected a loss", result.Outcome)
	}
}

func TestForgivenessAbsorbsOneMiss(t *testing.T) {
	forgiven := 0
	g := New()
	g.Reset(testConfig(), core.Modifiers{
		Forgive: func() bool {
			forgiven++
			return forgiven == 1
		},
	})

	if result := strikeAt(g, 0); result.Outcome != core.OutcomeNone {
		t.Fatalf("outcome = %v, the first miss should be forgiven", result.Outcome)
	}
	if result := strikeAt(g, 0); result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, the second miss should end the round", result.Outcome)
	}
}

func TestInvertedRules(t *testing.T) {
	// Inverted, the window is the one place a strike must not land.
	g := New()
	g.Reset(testConfig(), core.Modifiers{Inverted: true})

	if result := strikeAt(g, 0.25); result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, a centered strike should lose inverted", result.Outcome)
	}

	g.Reset(testConfig(), core.Modifiers{Inverted: true})
	var result core.StepResult
	for i := 0; i < HitsToWin; i++ {
		result = strikeAt(g, 0)
	}
	if result.Outcome != core.OutcomeWon {
		t.Errorf("outcome = %v, off-beat strikes should win inverted", result.Outcome)
	}
}

func TestTimeLimit(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	result := g.Step(core.NewInputFrame(), time.Duration(TimeLimit+1)*time.Second)
	if result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, running out the clock should lose", result.Outcome)
	}
}

func TestOutcomeReportedOnce(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	first := strikeAt(g, 0)
	second := g.Step(core.NewInputFrame(), 16*time.Millisecond)

	if first.Outcome != core.OutcomeLost {
		t.Fatalf("first outcome = %v, expected a loss", first.Outcome)
	}
	if second.Outcome != core.OutcomeNone {
		t.Errorf("second outcome = %v, the outcome must be reported once", second.Outcome)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	barY := screen.Height() / 2
	if screen.Get(4, barY) != BarChar {
		t.Errorf("bar missing, got %q", screen.Get(4, barY))
	}
}
