// Package clock provides the frame clock used by minigames and HUD
// components: a per-owner, resettable source of elapsed-time deltas.
//
// The platform layer drives a Clock from its tick loop; the clock only does
// the delta bookkeeping. Each consumer owns exactly one Clock and no state
// is shared between instances.
package clock

import "time"

// Clock produces wall-clock deltas between consecutive ticks while enabled.
//
// The zero value is a disabled clock. Enabling a disabled clock forgets the
// previous timestamp, so the first tick after (re)enabling reports a zero
// delta instead of a large stale one.
type Clock struct {
	enabled bool
	primed  bool
	last    time.Time
}

// SetEnabled starts or stops the clock. Disabling drops the stored
// timestamp; no further ticks are reported until re-enabled.
func (c *Clock) SetEnabled(on bool) {
	c.enabled = on
	if !on {
		c.primed = false
	}
}

// Enabled reports whether the clock is currently running.
func (c *Clock) Enabled() bool {
	return c.enabled
}

// Tick records a tick at the given instant and returns the elapsed time
// since the previous tick. The second return value is false while the clock
// is disabled; such calls have no effect. The first tick after enabling
// returns a zero delta.
func (c *Clock) Tick(now time.Time) (time.Duration, bool) {
	if !c.enabled {
		return 0, false
	}
	if !c.primed {
		c.primed = true
		c.last = now
		return 0, true
	}
	dt := now.Sub(c.last)
	if dt < 0 {
		dt = 0
	}
	c.last = now
	return dt, true
}
