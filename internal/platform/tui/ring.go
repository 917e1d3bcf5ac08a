package tui

import (
	"strings"
	"sync"
)

// Ring is a fixed-size ring of log lines. It is handed to the logger as an
// io.Writer so the debug overlay can show recent events without letting log
// output fight the rendered frame for the terminal.
type Ring struct {
	mu    sync.Mutex
	lines []string
	max   int
}

// NewRing creates a ring holding at most max lines.
func NewRing(max int) *Ring {
	if max <= 0 {
		max = 50
	}
	return &Ring{max: max}
}

// Write implements io.Writer. Each write is split on newlines.
func (r *Ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		r.lines = append(r.lines, line)
		if len(r.lines) > r.max {
			r.lines = r.lines[len(r.lines)-r.max:]
		}
	}
	return len(p), nil
}

// Tail returns the most recent n lines, oldest first.
func (r *Ring) Tail(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > len(r.lines) {
		n = len(r.lines)
	}
	out := make([]string, n)
	copy(out, r.lines[len(r.lines)-n:])
	return out
}
