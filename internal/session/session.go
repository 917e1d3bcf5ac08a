// Package session implements the play-session state machine: lives, score,
// case progression, character abilities, glitch outcomes, and the screen
// transitions between them.
//
// The session is an explicitly-owned container: it is constructed once per
// running program (or per SSH connection) with its dependencies injected,
// and the platform layer drives it through method calls plus a per-frame
// Tick that drains delayed transitions. Invalid transition requests are
// silent no-ops by design; each is logged at debug level so the in-app
// event ring can surface them.
package session

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kunstkammer/dadaspiel/internal/audio"
	"github.com/kunstkammer/dadaspiel/internal/content"
	"github.com/kunstkammer/dadaspiel/internal/core"
	"github.com/kunstkammer/dadaspiel/internal/profile"
)

// Screen identifies what the navigation layer should be showing.
type Screen int

const (
	ScreenProfileSelect Screen = iota
	ScreenCaseSelect
	ScreenMinigameIntro
	ScreenMinigamePlay
	ScreenGlitchWin
	ScreenCaseOutro
	ScreenFinalEnding
	ScreenGameOver
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenProfileSelect:
		return "profile-select"
	case ScreenCaseSelect:
		return "case-select"
	case ScreenMinigameIntro:
		return "minigame-intro"
	case ScreenMinigamePlay:
		return "minigame-play"
	case ScreenGlitchWin:
		return "glitch-win"
	case ScreenCaseOutro:
		return "case-outro"
	case ScreenFinalEnding:
		return "final-ending"
	case ScreenGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Gameplay constants. All score awards are fixed integers, not formulas.
const (
	StartingLives    = 3
	MinigameAward    = 250
	CaseBonus        = 1000
	AbsurdEdgeBonus  = 2000
	ForgivenessAward = 50

	// InversionChance is the hard-mode character's odds of an
	// inverted-rules case.
	InversionChance = 0.10

	// GlitchWinChance is the glitch character's odds of a loss being
	// reinterpreted as a cosmetic win.
	GlitchWinChance = 0.50

	SlowMoDuration = 3 * time.Second

	// RetryDelay is the pause after a non-fatal loss before returning to
	// the minigame intro, long enough for the lose animation.
	RetryDelay = 1200 * time.Millisecond

	// LogoutDelay is the pause after the final life is lost before the
	// forced logout.
	LogoutDelay = 2500 * time.Millisecond
)

// RunRecorder receives one record per finished session. Implementations are
// best-effort; errors are logged and ignored.
type RunRecorder interface {
	RecordRun(profileID, name string, character content.CharacterID, score, casesCompleted int) error
}

// Options carries the session's injected dependencies.
type Options struct {
	Profiles *profile.Store
	Library  content.Library
	Sounds   audio.Player
	Runs     RunRecorder // optional
	Logger   *log.Logger // optional
	Rng      *rand.Rand  // optional; time-seeded when nil
	Now      func() time.Time
	DebugAll bool // bypass the date-based case filter
}

// Session is the per-play-session state machine.
type Session struct {
	profiles *profile.Store
	library  content.Library
	sounds   audio.Player
	runs     RunRecorder
	logger   *log.Logger
	rng      *rand.Rand
	now      func() time.Time
	debugAll bool

	screen        Screen
	debugOverride content.CharacterID

	currentCase   *content.Case
	minigameIndex int

	lives          int
	score          int
	caseStartScore int

	abilityUsedInCase       bool
	abilityUsedInSession    bool
	absurdEdgeUsedInSession bool
	mistakeForgiven         bool

	caseInverted    bool
	inverted        bool
	slowMo          bool
	absurdEdgeRound bool
	glitchWin       bool
	forcedOutro     string

	// transitioning is the re-entrancy guard: while true, win/lose
	// handling is armed-off until the pending screen change lands. It is
	// part of the same state struct as everything it guards, so there is
	// no window between checking and setting it.
	transitioning bool

	epoch   uint64
	pending []event
}

// New creates a session showing the profile selection screen.
func New(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sounds == nil {
		opts.Sounds = audio.Null{}
	}
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Profiles == nil {
		opts.Profiles = profile.Open(os.TempDir(), opts.Logger)
	}

	s := &Session{
		profiles: opts.Profiles,
		library:  opts.Library,
		sounds:   opts.Sounds,
		runs:     opts.Runs,
		logger:   opts.Logger,
		rng:      opts.Rng,
		now:      opts.Now,
		debugAll: opts.DebugAll,
		screen:   ScreenProfileSelect,
	}
	s.resetSessionState()
	return s
}

// Screen returns the screen the navigation layer should show.
func (s *Session) Screen() Screen { return s.screen }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Score returns the running session score. Never negative.
func (s *Session) Score() int { return s.score }

// Transitioning reports whether an outcome resolution is pending; the
// platform shows the lose animation while this is set on the play screen.
func (s *Session) Transitioning() bool { return s.transitioning }

// GlitchWinPending reports whether a glitch-win presentation is waiting for
// ProceedAfterGlitchWin.
func (s *Session) GlitchWinPending() bool { return s.glitchWin }

// ForcedOutro returns the override outro text set by Fourth Wall, or "".
func (s *Session) ForcedOutro() string { return s.forcedOutro }

// AbsurdEdgeArmed reports whether the upcoming round is the inverted bonus
// round.
func (s *Session) AbsurdEdgeArmed() bool { return s.absurdEdgeRound }

// Profiles exposes the underlying profile store for the selection screens.
func (s *Session) Profiles() *profile.Store { return s.profiles }

// Library exposes the unfiltered content library.
func (s *Session) Library() content.Library { return s.library }

// Character resolves the effective character: the debug override when set,
// else the active profile's character, else empty.
func (s *Session) Character() content.CharacterID {
	if s.debugOverride != "" {
		return s.debugOverride
	}
	if p := s.profiles.Active(); p != nil {
		return p.Character
	}
	return ""
}

// SetDebugCharacter overrides the character resolution. Empty clears it.
func (s *Session) SetDebugCharacter(ch content.CharacterID) {
	if ch != "" && !ch.Valid() {
		s.logger.Debug("session: debug character override ignored", "character", ch)
		return
	}
	s.debugOverride = ch
}

// Cases returns the case list visible to the current character today.
// Recomputed on every call; the filter is never cached.
func (s *Session) Cases() []content.Case {
	return content.FilterCases(s.library, s.Character(), s.now(), s.debugAll)
}

// CurrentCase returns the case being played, or nil.
func (s *Session) CurrentCase() *content.Case { return s.currentCase }

// MinigameIndex returns the index of the current minigame within its case.
func (s *Session) MinigameIndex() int { return s.minigameIndex }

// CurrentMinigame returns the descriptor of the minigame being played, or
// nil when not inside a case.
func (s *Session) CurrentMinigame() *content.MinigameRef {
	if s.currentCase == nil || s.minigameIndex < 0 || s.minigameIndex >= len(s.currentCase.Minigames) {
		return nil
	}
	return &s.currentCase.Minigames[s.minigameIndex]
}

// Modifiers returns the modifier set to hand the active minigame. The
// forgiveness hook routes into ForgiveMistake.
func (s *Session) Modifiers() core.Modifiers {
	return core.Modifiers{
		SlowMo:   s.slowMo,
		Inverted: s.inverted,
		Forgive:  s.ForgiveMistake,
	}
}

// setScreen performs the actual screen change. Landing a screen change is
// what clears the re-entrancy guard, and (re)entering the minigame intro is
// what re-arms the per-minigame mistake forgiveness.
func (s *Session) setScreen(next Screen) {
	s.screen = next
	s.transitioning = false
	if next == ScreenMinigameIntro {
		s.mistakeForgiven = false
	}
}

// resetSessionState clears everything scoped to one session. Pending events
// from the previous session become stale via the epoch bump.
func (s *Session) resetSessionState() {
	s.currentCase = nil
	s.minigameIndex = 0
	s.lives = StartingLives
	s.score = 0
	s.caseStartScore = 0
	s.abilityUsedInCase = false
	s.abilityUsedInSession = false
	s.absurdEdgeUsedInSession = false
	s.mistakeForgiven = false
	s.caseInverted = false
	s.inverted = false
	s.slowMo = false
	s.absurdEdgeRound = false
	s.glitchWin = false
	s.forcedOutro = ""
	s.transitioning = false
	s.epoch++
	s.pending = s.pending[:0]
}
