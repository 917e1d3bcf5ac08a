package clock

import (
	"testing"
	"time"
)

func TestDisabledClockNeverTicks(t *testing.T) {
	var c Clock

	if _, ok := c.Tick(time.Now()); ok {
		t.Error("zero-value clock should be disabled")
	}

	c.SetEnabled(true)
	c.SetEnabled(false)
	if _, ok := c.Tick(time.Now()); ok {
		t.Error("disabled clock should not tick")
	}
}

func TestFirstTickReportsZeroDelta(t *testing.T) {
	var c Clock
	c.SetEnabled(true)

	dt, ok := c.Tick(time.Unix(100, 0))
	if !ok {
		t.Fatal("enabled clock should tick")
	}
	if dt != 0 {
		t.Errorf("first tick delta = %v, expected 0", dt)
	}
}

func TestDeltaBetweenTicks(t *testing.T) {
	var c Clock
	c.SetEnabled(true)

	base := time.Unix(100, 0)
	c.Tick(base)

	dt, _ := c.Tick(base.Add(16 * time.Millisecond))
	if dt != 16*time.Millisecond {
		t.Errorf("delta = %v, expected 16ms", dt)
	}

	dt, _ = c.Tick(base.Add(50 * time.Millisecond))
	if dt != 34*time.Millisecond {
		t.Errorf("delta = %v, expected 34ms", dt)
	}
}

func TestReenableResetsDelta(t *testing.T) {
	var c Clock
	c.SetEnabled(true)

	base := time.Unix(100, 0)
	c.Tick(base)
	c.Tick(base.Add(10 * time.Millisecond))

	// Pause, then resume much later. The resumed tick must not report the
	// whole pause as a delta.
	c.SetEnabled(false)
	c.SetEnabled(true)

	dt, ok := c.Tick(base.Add(10 * time.Second))
	if !ok {
		t.Fatal("re-enabled clock should tick")
	}
	if dt != 0 {
		t.Errorf("first tick after re-enable = %v, expected 0", dt)
	}
}

func TestBackwardsTimeClampsToZero(t *testing.T) {
	var c Clock
	c.SetEnabled(true)

	base := time.Unix(100, 0)
	c.Tick(base)

	dt, _ := c.Tick(base.Add(-time.Second))
	if dt != 0 {
		t.Errorf("backwards tick delta = %v, expected 0", dt)
	}
}

func TestIndependentInstances(t *testing.T) {
	var a, b Clock
	a.SetEnabled(true)

	base := time.Unix(100, 0)
	a.Tick(base)
	a.Tick(base.Add(20 * time.Millisecond))

	if _, ok := b.Tick(base); ok {
		t.Error("clock b should be independent of clock a")
	}
}
