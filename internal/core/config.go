package core

// RuntimeConfig contains configuration passed to minigames at initialization.
// Minigames use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome is the result a minigame reports for the current playthrough.
// A minigame reports at most one non-None outcome per playthrough; once it
// has reported Won or Lost the platform stops stepping it.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Modifiers carries the session-supplied twists for one minigame round.
type Modifiers struct {
	// SlowMo scales the passage of game time down to half speed.
	SlowMo bool

	// Inverted flips the minigame's rules (targets become hazards, the
	// beat window becomes forbidden, and so on). Each minigame documents
	// its own inversion.
	Inverted bool

	// Forgive, when non-nil, is consulted on a qualifying mistake. It
	// returns true if the mistake is forgiven, in which case the minigame
	// skips its normal penalty. The session grants at most one
	// forgiveness per minigame instance.
	Forgive func() bool
}

// StepResult is returned by a minigame after each simulation tick.
type StepResult struct {
	Outcome Outcome
}
