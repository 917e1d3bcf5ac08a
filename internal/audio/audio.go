// Package audio provides the sound facade consumed by the session and the
// minigames. Effects are fire-and-forget and safe to call while muted.
package audio

// Kind names a sound effect from the closed set the game uses.
type Kind int

const (
	SoundClick Kind = iota
	SoundWin
	SoundLose
	SoundGlitch
	SoundAbility
	SoundDeath
)

// String returns a human-readable name for the effect.
func (k Kind) String() string {
	switch k {
	case SoundClick:
		return "click"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	case SoundGlitch:
		return "glitch"
	case SoundAbility:
		return "ability"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Track names a background music loop.
type Track int

const (
	TrackNone Track = iota
	TrackCabaret
	TrackManifesto
)

// Player is the sound facade. Implementations must be no-ops while muted,
// and StartMusic must stop any already-playing track first: there is exactly
// one music resource.
type Player interface {
	Play(Kind)
	StartMusic(Track)
	StopMusic()
	SetMuted(bool)
}
