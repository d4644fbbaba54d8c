// Package frame drives the per-frame callback. It converts wall-clock
// timestamps to elapsed seconds, clamping long gaps so physics does not jump
// after the terminal was suspended.
package frame

import "time"

const (
	// MaxGap is the longest real gap passed through unchanged.
	MaxGap = 999 * time.Millisecond

	// Fallback is the elapsed time reported for the first frame and for any
	// gap longer than MaxGap.
	Fallback = 1.0 / 60.0
)

// Timer remembers the previous frame timestamp.
type Timer struct {
	last time.Time
}

// Tick records now and returns the seconds elapsed since the previous tick.
// The first tick, gaps above MaxGap and clock steps backwards all report
// Fallback.
func (t *Timer) Tick(now time.Time) float64 {
	prev := t.last
	t.last = now
	if prev.IsZero() {
		return Fallback
	}
	gap := now.Sub(prev)
	if gap > MaxGap || gap < 0 {
		return Fallback
	}
	return gap.Seconds()
}

// Reset forgets the previous timestamp.
func (t *Timer) Reset() {
	t.last = time.Time{}
}
