package session

import (
	"github.com/kunstkammer/dadaspiel/internal/audio"
	"github.com/kunstkammer/dadaspiel/internal/content"
	"github.com/kunstkammer/dadaspiel/internal/profile"
)

// CreateProfile creates and activates a new profile, then starts a fresh
// session on the case selection screen.
func (s *Session) CreateProfile(name string, character content.CharacterID) {
	p := s.profiles.Create(name, character)
	if p == nil {
		s.logger.Debug("session: profile creation rejected", "name", name, "character", character)
		return
	}
	s.logger.Info("session: profile created", "name", p.Name, "character", p.Character, "dadaToken", p.HasDadaToken)
	s.resetSessionState()
	s.setScreen(ScreenCaseSelect)
}

// SelectProfile activates an existing profile and starts a fresh session.
// Unknown ids are ignored.
func (s *Session) SelectProfile(id string) {
	if s.profiles.Select(id) == nil {
		return
	}
	s.resetSessionState()
	s.setScreen(ScreenCaseSelect)
}

// StartCase enters a case from the selection screen. The case must exist in
// the currently filtered list and a profile must be active; anything else is
// a no-op. Saved progress resumes the case mid-way, and a fully cleared case
// restarts from its first minigame for a replay.
func (s *Session) StartCase(caseID int) {
	if s.transitioning {
		s.logger.Debug("session: StartCase while transitioning ignored")
		return
	}
	p := s.profiles.Active()
	if p == nil {
		s.logger.Debug("session: StartCase with no active profile ignored")
		return
	}

	var found *content.Case
	for _, c := range s.Cases() {
		if c.ID == caseID {
			c := c
			found = &c
			break
		}
	}
	if found == nil {
		s.logger.Debug("session: StartCase for unavailable case ignored", "case", caseID)
		return
	}

	s.currentCase = found
	s.caseStartScore = s.score
	s.abilityUsedInCase = false
	s.absurdEdgeRound = false
	s.forcedOutro = ""

	// Hard mode: a roll at every case start may invert the whole case.
	s.caseInverted = s.Character() == content.HardCharacter && s.rng.Float64() < InversionChance
	s.inverted = s.caseInverted

	resume := p.Cleared(found.ID)
	if resume >= len(found.Minigames) {
		resume = 0 // replay of a completed case
	}
	s.minigameIndex = resume

	s.logger.Info("session: case started", "case", found.ID, "title", found.Title, "resumeAt", resume, "inverted", s.inverted)
	s.setScreen(ScreenMinigameIntro)
}

// StartMinigame moves from the intro screen into play and cues the case's
// music.
func (s *Session) StartMinigame() {
	if s.screen != ScreenMinigameIntro || s.CurrentMinigame() == nil {
		s.logger.Debug("session: StartMinigame outside intro ignored", "screen", s.screen)
		return
	}
	s.sounds.StartMusic(s.caseTrack())
	s.setScreen(ScreenMinigamePlay)
}

// caseTrack maps the current case to its backing track.
func (s *Session) caseTrack() audio.Track {
	if s.currentCase == nil {
		return audio.TrackNone
	}
	switch s.currentCase.ID {
	case 1:
		return audio.TrackCabaret
	case 2:
		return audio.TrackManifesto
	default:
		return audio.TrackNone
	}
}

// WinMinigame resolves the current minigame as won. A second call before
// the pending transition lands is a no-op.
func (s *Session) WinMinigame() {
	if s.transitioning || s.screen != ScreenMinigamePlay {
		s.logger.Debug("session: WinMinigame ignored", "screen", s.screen, "transitioning", s.transitioning)
		return
	}

	s.sounds.StopMusic()
	s.sounds.Play(audio.SoundWin)

	if s.absurdEdgeRound {
		s.score += AbsurdEdgeBonus
		s.absurdEdgeRound = false
		s.logger.Info("session: absurd edge bonus banked", "bonus", AbsurdEdgeBonus)
	}

	s.advance(false)
}

// LoseMinigame resolves the current minigame as lost. Guarded the same way
// as WinMinigame. Bonus minigames are exempt from punishment; the glitch
// character has a chance of a cosmetic win; otherwise a life is lost and
// either a retry or the end of the session is scheduled.
func (s *Session) LoseMinigame() {
	if s.transitioning || s.screen != ScreenMinigamePlay {
		s.logger.Debug("session: LoseMinigame ignored", "screen", s.screen, "transitioning", s.transitioning)
		return
	}

	s.sounds.StopMusic()

	if mg := s.CurrentMinigame(); mg != nil && s.library.IsBonusMinigame(mg.ID) {
		// The bonus round never punishes: proceed as won, without score.
		s.logger.Debug("session: bonus minigame loss forgiven", "minigame", mg.ID)
		s.sounds.Play(audio.SoundWin)
		s.advance(true)
		return
	}

	if s.Character() == content.GlitchCharacter && s.rng.Float64() < GlitchWinChance {
		// Presentation-only win: no score, no life lost. The pending flag
		// is consumed by ProceedAfterGlitchWin.
		s.logger.Info("session: loss glitched into a win")
		s.glitchWin = true
		s.sounds.Play(audio.SoundGlitch)
		s.setScreen(ScreenGlitchWin)
		return
	}

	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.sounds.Play(audio.SoundDeath)
		s.screen = ScreenGameOver
		s.transitioning = true
		s.schedule(LogoutDelay, eventLogout)
		return
	}

	s.sounds.Play(audio.SoundLose)
	// Stay on the play screen for the lose animation; the retry event
	// returns to the intro of the same minigame.
	s.transitioning = true
	s.schedule(RetryDelay, eventRetry)
}

// ProceedAfterGlitchWin consumes a pending glitch win and advances without
// score. No-op when no glitch win is pending.
func (s *Session) ProceedAfterGlitchWin() {
	if !s.glitchWin || s.screen != ScreenGlitchWin {
		s.logger.Debug("session: ProceedAfterGlitchWin without pending glitch ignored")
		return
	}
	s.glitchWin = false
	s.advance(true)
}

// advance is the shared progression step after a win or forced skip. It
// decides scoring from values already known to this transition, persists the
// progress high-water mark, and routes to the next screen.
func (s *Session) advance(noScore bool) {
	c := s.currentCase
	p := s.profiles.Active()
	if c == nil || p == nil {
		s.logger.Debug("session: advance outside a case ignored")
		return
	}

	lastInCase := s.minigameIndex == len(c.Minigames)-1
	if !noScore {
		s.score += MinigameAward
		if lastInCase {
			s.score += CaseBonus
		}
	}

	s.profiles.RecordProgress(p.ID, c.ID, s.minigameIndex+1)

	// Absurd edge inversion applies to a single round; the case's own
	// inversion roll survives until the case ends.
	s.inverted = s.caseInverted

	if s.allCasesComplete(p) {
		if !p.GameCompleted {
			s.profiles.MarkCompleted(p.ID)
			s.logger.Info("session: game completed", "profile", p.Name)
		}
		s.setScreen(ScreenFinalEnding)
		return
	}

	if lastInCase {
		s.setScreen(ScreenCaseOutro)
		return
	}

	s.minigameIndex++
	s.setScreen(ScreenMinigameIntro)
}

// allCasesComplete checks the profile's progress against every case in the
// currently filtered list.
func (s *Session) allCasesComplete(p *profile.Profile) bool {
	for _, c := range s.Cases() {
		if p.Cleared(c.ID) < len(c.Minigames) {
			return false
		}
	}
	return true
}

// FinishCaseOutro leaves the outro screen back to case selection.
func (s *Session) FinishCaseOutro() {
	if s.screen != ScreenCaseOutro {
		return
	}
	s.currentCase = nil
	s.minigameIndex = 0
	s.forcedOutro = ""
	s.setScreen(ScreenCaseSelect)
}

// FinishFinalEnding leaves the ending screen back to case selection.
func (s *Session) FinishFinalEnding() {
	if s.screen != ScreenFinalEnding {
		return
	}
	s.currentCase = nil
	s.minigameIndex = 0
	s.setScreen(ScreenCaseSelect)
}

// KillPlayer is the instant-death transition: lives drop to zero directly
// and the forced logout is scheduled, bypassing the normal loss path.
func (s *Session) KillPlayer() {
	if s.transitioning {
		return
	}
	s.logger.Info("session: player killed outright")
	s.lives = 0
	s.sounds.StopMusic()
	s.sounds.Play(audio.SoundDeath)
	s.screen = ScreenGameOver
	s.transitioning = true
	s.schedule(LogoutDelay, eventLogout)
}

// Logout flushes the session score into the profile's high score, records
// the run, and returns to profile selection. The epoch bump orphans any
// still-pending delayed transitions.
func (s *Session) Logout() {
	if p := s.profiles.Active(); p != nil {
		s.profiles.RecordHighScore(p.ID, s.score)

		if s.runs != nil {
			completed := 0
			for _, c := range s.Cases() {
				if p.Cleared(c.ID) >= len(c.Minigames) {
					completed++
				}
			}
			if err := s.runs.RecordRun(p.ID, p.Name, p.Character, s.score, completed); err != nil {
				s.logger.Warn("session: could not record run", "error", err)
			}
		}
		s.logger.Info("session: logged out", "profile", p.Name, "score", s.score)
	}

	s.sounds.StopMusic()
	s.profiles.Deselect()
	s.resetSessionState()
	s.setScreen(ScreenProfileSelect)
}

// JumpToMinigame is the debug shortcut: it enters the named minigame
// directly, bypassing case selection and progress gating. The unfiltered
// library is searched so date-hidden minigames are reachable too.
func (s *Session) JumpToMinigame(minigameID string) {
	c, idx, ok := s.library.FindMinigame(minigameID)
	if !ok {
		s.logger.Debug("session: jump to unknown minigame ignored", "minigame", minigameID)
		return
	}
	s.currentCase = &c
	s.minigameIndex = idx
	s.caseStartScore = s.score
	s.logger.Info("session: debug jump", "minigame", minigameID, "case", c.ID)
	s.setScreen(ScreenMinigameIntro)
}
