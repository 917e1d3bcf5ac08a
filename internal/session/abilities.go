package session

import (
	"github.com/kunstkammer/dadaspiel/internal/audio"
	"github.com/kunstkammer/dadaspiel/internal/content"
)

// UseArtistsInsight activates Arp's ability: the world runs at half speed
// for a fixed duration. Usable once per case, only during play.
func (s *Session) UseArtistsInsight() {
	if s.Character() != content.CharacterArp {
		s.logger.Debug("session: Artist's Insight needs Arp")
		return
	}
	if s.screen != ScreenMinigamePlay || s.abilityUsedInCase {
		s.logger.Debug("session: Artist's Insight unavailable", "screen", s.screen, "used", s.abilityUsedInCase)
		return
	}

	s.abilityUsedInCase = true
	s.slowMo = true
	s.sounds.Play(audio.SoundAbility)
	s.schedule(SlowMoDuration, eventSlowMoOff)
	s.logger.Info("session: Artist's Insight activated", "duration", SlowMoDuration)
}

// UseFourthWall activates Cravan's session ability: the case is forfeited
// outright. The score falls back to its value at case start and the case is
// advanced as if skipped, worth nothing. Usable once per session.
func (s *Session) UseFourthWall() {
	if s.Character() != content.CharacterCravan {
		s.logger.Debug("session: Fourth Wall needs Cravan")
		return
	}
	if s.currentCase == nil || s.abilityUsedInSession || s.transitioning {
		s.logger.Debug("session: Fourth Wall unavailable")
		return
	}

	s.abilityUsedInSession = true
	s.score = s.caseStartScore
	s.forcedOutro = "Cravan looks straight at you, shrugs, and walks out of the case."
	s.sounds.StopMusic()
	s.sounds.Play(audio.SoundAbility)
	s.logger.Info("session: Fourth Wall activated, case forfeited")
	s.advance(true)
}

// ForgiveMistake is Kiki's ability, consulted by the active minigame on a
// qualifying mistake. The first mistake of each minigame instance is
// forgiven and rewarded; every later one in the same instance is not. The
// flag re-arms when the minigame intro is (re)entered.
func (s *Session) ForgiveMistake() bool {
	if s.Character() != content.CharacterKiki || s.screen != ScreenMinigamePlay {
		return false
	}
	if s.mistakeForgiven {
		return false
	}
	s.mistakeForgiven = true
	s.score += ForgivenessAward
	s.sounds.Play(audio.SoundAbility)
	s.logger.Debug("session: conceptual mistake forgiven", "award", ForgivenessAward)
	return true
}

// UseAbsurdEdge arms Cravan's token-gated bonus: the upcoming minigame
// becomes an inverted-rules round worth a flat bonus on a win. Usable once
// per session, only from the minigame intro, and only with the Dada Token.
func (s *Session) UseAbsurdEdge() {
	if s.Character() != content.CharacterCravan {
		s.logger.Debug("session: Absurd Edge needs Cravan")
		return
	}
	p := s.profiles.Active()
	if p == nil || !p.HasDadaToken {
		s.logger.Debug("session: Absurd Edge needs the Dada Token")
		return
	}
	if s.screen != ScreenMinigameIntro || s.absurdEdgeUsedInSession {
		s.logger.Debug("session: Absurd Edge unavailable", "screen", s.screen, "used", s.absurdEdgeUsedInSession)
		return
	}

	s.absurdEdgeUsedInSession = true
	s.absurdEdgeRound = true
	s.inverted = true
	s.sounds.Play(audio.SoundAbility)
	s.logger.Info("session: Absurd Edge armed", "bonus", AbsurdEdgeBonus)
}
