package audio

import (
	"io"
	"time"
)

// Bell is a terminal-bell Player. The terminal offers a single note, so
// every effect degrades to a rate-limited BEL and music is tracked only so
// the single-track invariant holds for callers that query it.
type Bell struct {
	out     io.Writer
	muted   bool
	track   Track
	lastHit time.Time
	now     func() time.Time
}

// minBellGap keeps a noisy minigame from flooding the terminal with BELs.
const minBellGap = 150 * time.Millisecond

// NewBell creates a Player that rings the terminal bell on out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out, now: time.Now}
}

// Play rings the bell for the effect, rate limited, silent while muted.
func (b *Bell) Play(Kind) {
	if b.muted || b.out == nil {
		return
	}
	now := b.now()
	if now.Sub(b.lastHit) < minBellGap {
		return
	}
	b.lastHit = now
	io.WriteString(b.out, "\a") //nolint:errcheck // best-effort beep
}

// StartMusic replaces the current track. The bell cannot hold a note, so
// this only records which track is nominally playing.
func (b *Bell) StartMusic(t Track) {
	b.track = t
}

// StopMusic stops the nominal track.
func (b *Bell) StopMusic() {
	b.track = TrackNone
}

// SetMuted toggles global mute.
func (b *Bell) SetMuted(muted bool) {
	b.muted = muted
}

// Null is a Player that does nothing. Used when audio initialization fails
// or for headless runs.
type Null struct{}

func (Null) Play(Kind)         {}
func (Null) StartMusic(Track)  {}
func (Null) StopMusic()        {}
func (Null) SetMuted(bool)     {}

// Recorder is a Player for tests: it remembers every call in order.
type Recorder struct {
	Played  []Kind
	Started []Track
	Stops   int
	Muted   bool
}

func (r *Recorder) Play(k Kind)        { r.Played = append(r.Played, k) }
func (r *Recorder) StartMusic(t Track) { r.Started = append(r.Started, t) }
func (r *Recorder) StopMusic()         { r.Stops++ }
func (r *Recorder) SetMuted(m bool)    { r.Muted = m }

// Last returns the most recently played effect, or -1 when none played.
func (r *Recorder) Last() Kind {
	if len(r.Played) == 0 {
		return Kind(-1)
	}
	return r.Played[len(r.Played)-1]
}
