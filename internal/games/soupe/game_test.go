package soupe

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
		Seed:     12345,
	}
}

// dropInBowl plants a letter one step above the bowl rim, inside the bowl.
func dropInBowl(g *Game, r rune) {
	g.letters = append(g.letters, letter{
		r: r,
		x: int(g.bowlX) + 1,
		y: float64(g.bowlY()) - 0.1,
	})
}

func step(g *Game, dt time.Duration) core.StepResult {
	return g.Step(core.NewInputFrame(), dt)
}

func TestReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	for i := 0; i < 100; i++ {
		step(g, 50*time.Millisecond)
	}

	g.Reset(testConfig(), core.Modifiers{})
	if g.caught != 0 || g.elapsed != 0 || len(g.letters) != 0 {
		t.Error("Reset should clear round state")
	}
	if g.outcome != core.OutcomeNone {
		t.Errorf("Reset should clear outcome, got %v", g.outcome)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (int, int) {
		g := New()
		g.Reset(testConfig(), core.Modifiers{})
		for i := 0; i < 300; i++ {
			step(g, 33*time.Millisecond)
		}
		return len(g.letters), g.caught
	}

	l1, c1 := run()
	l2, c2 := run()
	if l1 != l2 || c1 != c2 {
		t.Errorf("same seed diverged: (%d,%d) vs (%d,%d)", l1, c1, l2, c2)
	}
}

func TestCatchingTheWordWins(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	var result core.StepResult
	for _, r := range TargetWord {
		g.letters = g.letters[:0]
		dropInBowl(g, r)
		result = step(g, 50*time.Millisecond)
	}

	if result.Outcome != core.OutcomeWon {
		t.Errorf("outcome = %v, expected a win after D-A-D-A", result.Outcome)
	}
	if g.caught != len(TargetWord) {
		t.Errorf("caught = %d, expected %d", g.caught, len(TargetWord))
	}
}

func TestWrongLetterLoses(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	dropInBowl(g, 'Z')
	result := step(g, 50*time.Millisecond)

	if result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, expected a loss on a junk letter", result.Outcome)
	}
}

func TestOutOfOrderWordLetterLoses(t *testing.T) {
	// The word starts with D; an A first is still a mistake.
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	dropInBowl(g, 'A')
	result := step(g, 50*time.Millisecond)

	if result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, the order matters", result.Outcome)
	}
}

func TestForgivenessAbsorbsOneMistake(t *testing.T) {
	forgiven := 0
	g := New()
	g.Reset(testConfig(), core.Modifiers{
		Forgive: func() bool {
			forgiven++
			return forgiven == 1
		},
	})

	dropInBowl(g, 'Z')
	result := step(g, 50*time.Millisecond)
	if result.Outcome != core.OutcomeNone {
		t.Fatalf("outcome = %v, the first mistake should be forgiven", result.Outcome)
	}

	dropInBowl(g, 'Z')
	result = step(g, 50*time.Millisecond)
	if result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, the second mistake should end the round", result.Outcome)
	}
}

func TestInvertedRules(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{Inverted: true})

	// Junk letters feed the bowl now.
	var result core.StepResult
	for i := 0; i < len(TargetWord); i++ {
		g.letters = g.letters[:0]
		dropInBowl(g, 'Z')
		result = step(g, 50*time.Millisecond)
	}
	if result.Outcome != core.OutcomeWon {
		t.Errorf("outcome = %v, junk should win inverted", result.Outcome)
	}

	// And the word is poison.
	g.Reset(testConfig(), core.Modifiers{Inverted: true})
	dropInBowl(g, 'D')
	result = step(g, 50*time.Millisecond)
	if result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, a word letter should lose inverted", result.Outcome)
	}
}

func TestTimeLimit(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	result := step(g, time.Duration(TimeLimit+1)*time.Second)
	if result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, cold soup should lose", result.Outcome)
	}
}

func TestSlowMoHalvesTime(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{SlowMo: true})

	step(g, 2*time.Second)
	if g.elapsed != 1.0 {
		t.Errorf("elapsed = %f, slow motion should halve it", g.elapsed)
	}
}

func TestOutcomeReportedOnce(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	dropInBowl(g, 'Z')
	first := step(g, 50*time.Millisecond)
	second := step(g, 50*time.Millisecond)

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
	step(g, time.Second)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	surfaceY := screen.Height() - 2
	if screen.Get(0, surfaceY) != SurfaceChar {
		t.Errorf("soup surface missing, got %q", screen.Get(0, surfaceY))
	}
}
