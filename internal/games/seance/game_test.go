package seance

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
		Seed:     99,
	}
}

// watchSequence runs the showing phase out.
func watchSequence(g *Game) {
	for g.phase == phaseShowing {
		g.Step(core.NewInputFrame(), 100*time.Millisecond)
	}
}

// answer feeds one direction in its own frame.
func answer(g *Game, dir core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(dir)
	return g.Step(in, 16*time.Millisecond)
}

func TestSequenceIsSeedStable(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(), core.Modifiers{})
	g2 := New()
	g2.Reset(testConfig(), core.Modifiers{})

	if len(g1.sequence) != len(g2.sequence) {
		t.Fatal("same seed dealt different lengths")
	}
	for i := range g1.sequence {
		if g1.sequence[i] != g2.sequence[i] {
			t.Fatalf("same seed dealt different sequences at %d", i)
		}
	}
}

func TestRoundsGrow(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})
	if len(g.sequence) != FirstLength {
		t.Errorf("round one length = %d, expected %d", len(g.sequence), FirstLength)
	}

	g.round = 1
	g.startRound()
	if len(g.sequence) != FirstLength+1 {
		t.Errorf("round two length = %d, expected %d", len(g.sequence), FirstLength+1)
	}
}

func TestEchoingEveryRoundWins(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	var result core.StepResult
	for round := 0; round < Rounds; round++ {
		watchSequence(g)
		seq := append([]core.Action(nil), g.sequence...)
		for _, dir := range seq {
			result = answer(g, dir)
		}
	}

	if result.Outcome != core.OutcomeWon {
		t.Errorf("outcome = %v, expected a win after %d rounds", result.Outcome, Rounds)
	}
}

func TestWrongKnockLoses(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})
	watchSequence(g)

	wrong := opposite[g.sequence[0]]
	if result := answer(g, wrong); result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, expected a loss", result.Outcome)
	}
}

func TestAnswersIgnoredWhileShowing(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})

	answer(g, opposite[g.sequence[0]])
	if g.outcome != core.OutcomeNone {
		t.Error("knocks during the showing phase must not count")
	}
}

func TestForgivenessAbsorbsOneKnock(t *testing.T) {
	forgiven := 0
	g := New()
	g.Reset(testConfig(), core.Modifiers{
		Forgive: func() bool {
			forgiven++
			return forgiven == 1
		},
	})
	watchSequence(g)

	wrong := opposite[g.sequence[0]]
	if result := answer(g, wrong); result.Outcome != core.OutcomeNone {
		t.Fatalf("outcome = %v, the first wrong knock should be forgiven", result.Outcome)
	}
	if result := answer(g, g.sequence[0]); result.Outcome != core.OutcomeNone {
		t.Errorf("outcome = %v, the round should continue", result.Outcome)
	}
	if g.answered != 1 {
		t.Errorf("answered = %d, the correct knock should count", g.answered)
	}
}

func TestInvertedWantsTheMirror(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{Inverted: true})
	watchSequence(g)

	// The knocked direction itself is now wrong.
	if result := answer(g, g.sequence[0]); result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, the plain echo should lose inverted", result.Outcome)
	}

	// Mirrored answers carry the whole round.
	g.Reset(testConfig(), core.Modifiers{Inverted: true})
	var result core.StepResult
	for round := 0; round < Rounds; round++ {
		watchSequence(g)
		seq := append([]core.Action(nil), g.sequence...)
		for _, dir := range seq {
			result = answer(g, opposite[dir])
		}
	}
	if result.Outcome != core.OutcomeWon {
		t.Errorf("outcome = %v, mirrored answers should win", result.Outcome)
	}
}

func TestAnswerTimeout(t *testing.T) {
	g := New()
	g.Reset(testConfig(), core.Modifiers{})
	watchSequence(g)

	result := g.Step(core.NewInputFrame(), time.Duration(AnswerLimit+1)*time.Second)
	if result.Outcome != core.OutcomeLost {
		t.Errorf("outcome = %v, silence should lose", result.Outcome)
	}
}
