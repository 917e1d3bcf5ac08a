package session

import "time"

// eventKind names a delayed transition.
type eventKind int

const (
	eventRetry eventKind = iota
	eventLogout
	eventSlowMoOff
)

// event is one queued delayed transition. Delays are never awaited: they sit
// on this queue until the per-frame Tick drains them, instead of living in
// timer callbacks that capture stale state. The epoch stamps which session
// the event belongs to; a logout or profile switch bumps the epoch and
// orphans everything scheduled before it.
type event struct {
	due   time.Time
	epoch uint64
	kind  eventKind
}

// schedule queues a delayed transition against the current session epoch.
func (s *Session) schedule(delay time.Duration, kind eventKind) {
	s.pending = append(s.pending, event{
		due:   s.now().Add(delay),
		epoch: s.epoch,
		kind:  kind,
	})
}

// Tick drains due events. The platform calls this once per frame.
func (s *Session) Tick(now time.Time) {
	if len(s.pending) == 0 {
		return
	}

	remaining := s.pending[:0]
	var due []event
	for _, ev := range s.pending {
		if ev.epoch != s.epoch {
			continue // stale: scheduled by a torn-down session
		}
		if ev.due.After(now) {
			remaining = append(remaining, ev)
			continue
		}
		due = append(due, ev)
	}
	s.pending = remaining

	for _, ev := range due {
		if ev.epoch != s.epoch {
			// An earlier event in this batch tore the session down.
			continue
		}
		s.handleEvent(ev.kind)
	}
}

func (s *Session) handleEvent(kind eventKind) {
	switch kind {
	case eventRetry:
		// Return to the intro of the same minigame for another attempt.
		s.logger.Debug("session: retry delay elapsed")
		s.setScreen(ScreenMinigameIntro)
	case eventLogout:
		s.logger.Debug("session: lives depleted, forcing logout")
		s.Logout()
	case eventSlowMoOff:
		s.slowMo = false
	}
}
