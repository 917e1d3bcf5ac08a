package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/kunstkammer/dadaspiel/internal/clock"
	"github.com/kunstkammer/dadaspiel/internal/content"
	"github.com/kunstkammer/dadaspiel/internal/core"
	"github.com/kunstkammer/dadaspiel/internal/profile"
	"github.com/kunstkammer/dadaspiel/internal/registry"
	"github.com/kunstkammer/dadaspiel/internal/session"
	"github.com/kunstkammer/dadaspiel/internal/storage"
)

// profileMode is the sub-state of the profile selection screen.
type profileMode int

const (
	modeBrowsing profileMode = iota
	modeNaming
	modePickingCharacter
	modeConfirmingDelete
)

// Model is the Bubble Tea model driving the whole game. The session owns
// the rules; this model owns the terminal: input mapping, the frame clock
// of the active round, and which view to draw.
type Model struct {
	sess   *session.Session
	runs   *storage.Store // optional, for clearing deleted profiles' runs
	logger *log.Logger
	ring   *Ring
	keys   *KeyMapper

	config core.RuntimeConfig
	screen *core.Screen
	input  core.InputFrame
	clock  *clock.Clock

	// The active round. resetMods remembers the modifiers the round was
	// reset with, so mid-round slow motion can be applied to the clock
	// without double-scaling.
	game      registry.Minigame
	resetMods core.Modifiers

	profMode   profileMode
	profCursor int
	nameInput  textinput.Model
	charCursor int
	caseCursor int

	width    int
	height   int
	debug    bool
	quitting bool
}

// NewModel creates the game model around a prepared session.
func NewModel(sess *session.Session, runs *storage.Store, logger *log.Logger, ring *Ring, cfg core.RuntimeConfig, debug bool) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "name"
	ti.CharLimit = profile.MaxNameLength
	ti.Width = profile.MaxNameLength + 2

	return Model{
		sess:      sess,
		runs:      runs,
		logger:    logger,
		ring:      ring,
		keys:      NewKeyMapper(),
		config:    cfg,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		input:     core.NewInputFrame(),
		clock:     &clock.Clock{},
		nameInput: ti,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		debug:     debug,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - 1 // Reserve the status line
	if m.config.ScreenH < 4 {
		m.config.ScreenH = 4
	}
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// A round in flight restarts at the new size.
	if m.game != nil {
		m.game.Reset(m.config, m.resetMods)
	}

	return m, nil
}

// handleTick runs one frame: drain the session's delayed transitions, keep
// the round instance in sync with the screen, and step the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.sess.Tick(now)
	m.syncRound(now)

	if m.game != nil && m.sess.Screen() == session.ScreenMinigamePlay && !m.sess.Transitioning() {
		if dt, ok := m.clock.Tick(now); ok {
			// Slow motion granted after the round started scales the
			// clock; a round reset under slow motion already scales
			// itself.
			if m.sess.Modifiers().SlowMo && !m.resetMods.SlowMo {
				dt /= 2
			}
			result := m.game.Step(m.input, dt)
			switch result.Outcome {
			case core.OutcomeWon:
				m.sess.WinMinigame()
			case core.OutcomeLost:
				m.sess.LoseMinigame()
			}
		}
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// syncRound creates the minigame instance when play begins and drops it
// when the session moves elsewhere. The frame clock only runs while a
// round instance exists.
func (m *Model) syncRound(now time.Time) {
	inPlay := m.sess.Screen() == session.ScreenMinigamePlay

	if inPlay && m.game == nil {
		ref := m.sess.CurrentMinigame()
		if ref == nil {
			return
		}
		game, err := registry.Create(ref.ID)
		if err != nil {
			m.logger.Error("tui: cannot create minigame", "id", ref.ID, "error", err)
			return
		}
		m.resetMods = m.sess.Modifiers()
		game.Reset(m.config, m.resetMods)
		m.game = game
		m.clock.SetEnabled(true)
		m.clock.Tick(now) // prime: the first played frame gets a zero delta
		return
	}

	if !inPlay && m.game != nil {
		m.game = nil
		m.clock.SetEnabled(false)
	}
}

// handleKey routes keyboard input by the session's screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.sess.Screen() {
	case session.ScreenProfileSelect:
		return m.handleProfileKey(msg)
	case session.ScreenCaseSelect:
		return m.handleCaseKey(msg)
	case session.ScreenMinigameIntro:
		return m.handleIntroKey(msg)
	case session.ScreenMinigamePlay:
		return m.handlePlayKey(msg)
	case session.ScreenGlitchWin:
		if m.keys.MapKeyToMenuAction(msg) == MenuActionSelect {
			m.sess.ProceedAfterGlitchWin()
		}
	case session.ScreenCaseOutro:
		if m.keys.MapKeyToMenuAction(msg) == MenuActionSelect {
			m.sess.FinishCaseOutro()
		}
	case session.ScreenFinalEnding:
		if m.keys.MapKeyToMenuAction(msg) == MenuActionSelect {
			m.sess.FinishFinalEnding()
		}
	case session.ScreenGameOver:
		// The forced logout arrives on its own clock.
	}

	return m, nil
}

// handleProfileKey processes input on the profile selection screen.
func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.profMode {
	case modeNaming:
		switch msg.String() {
		case "enter":
			if m.nameInput.Value() != "" {
				m.profMode = modePickingCharacter
				m.charCursor = 0
			}
		case "esc":
			m.profMode = modeBrowsing
			m.nameInput.Blur()
		default:
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
		return m, nil

	case modePickingCharacter:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionLeft, MenuActionUp:
			if m.charCursor > 0 {
				m.charCursor--
			}
		case MenuActionRight, MenuActionDown:
			if m.charCursor < len(content.Characters)-1 {
				m.charCursor++
			}
		case MenuActionSelect:
			m.sess.CreateProfile(m.nameInput.Value(), content.Characters[m.charCursor].ID)
			m.profMode = modeBrowsing
			m.nameInput.SetValue("")
			m.nameInput.Blur()
		case MenuActionBack:
			m.profMode = modeNaming
		}
		return m, nil

	case modeConfirmingDelete:
		switch msg.String() {
		case "y", "enter":
			if p := m.sess.Profiles().PendingDelete(); p != nil && m.runs != nil {
				if err := m.runs.ClearRuns(p.ID); err != nil {
					m.logger.Warn("tui: cannot clear runs of deleted profile", "error", err)
				}
			}
			m.sess.Profiles().ConfirmDelete()
			m.profMode = modeBrowsing
			m.profCursor = 0
		default:
			m.sess.Profiles().CancelDelete()
			m.profMode = modeBrowsing
		}
		return m, nil
	}

	// Browsing: the profile list plus a trailing "new profile" slot.
	profiles := m.sess.Profiles().All()
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.profCursor > 0 {
			m.profCursor--
		}

	case MenuActionDown:
		if m.profCursor < len(profiles) {
			m.profCursor++
		}

	case MenuActionSelect:
		if m.profCursor < len(profiles) {
			m.sess.SelectProfile(profiles[m.profCursor].ID)
		} else {
			m.profMode = modeNaming
			m.nameInput.Focus()
		}

	case MenuActionDelete:
		if m.profCursor < len(profiles) {
			m.sess.Profiles().StageDelete(profiles[m.profCursor].ID)
			m.profMode = modeConfirmingDelete
		}
	}

	return m, nil
}

// handleCaseKey processes input on the case selection screen.
func (m Model) handleCaseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cases := m.sess.Cases()
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.sess.Logout()
		m.profCursor = 0

	case MenuActionUp:
		if m.caseCursor > 0 {
			m.caseCursor--
		}

	case MenuActionDown:
		if m.caseCursor < len(cases)-1 {
			m.caseCursor++
		}

	case MenuActionSelect:
		if m.caseCursor < len(cases) {
			m.sess.StartCase(cases[m.caseCursor].ID)
		}
	}

	return m, nil
}

// handleIntroKey processes input on the minigame intro screen. Number keys
// trigger abilities; the guards inside the session decide whether the
// active character may use them here.
func (m Model) handleIntroKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		m.sess.StartMinigame()
	case "1":
		m.sess.UseFourthWall()
	case "2":
		m.sess.UseAbsurdEdge()
	}
	return m, nil
}

// handlePlayKey processes input during a round.
func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.sess.UseArtistsInsight()
		m.sess.UseFourthWall()
		return m, nil
	case "ctrl+k":
		if m.debug {
			m.sess.KillPlayer()
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// Run starts the Bubble Tea program around a prepared session.
func Run(sess *session.Session, runs *storage.Store, logger *log.Logger, ring *Ring, cfg core.RuntimeConfig, debug bool) error {
	model := NewModel(sess, runs, logger, ring, cfg, debug)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
