// Package input turns discrete key and touch events into per-frame
// core.InputFrame values.
//
// Direction keys act while held: every frame between their down and up edge
// carries the matching action. SPACE and ESC act on release. Terminals do not
// report key releases, so a held key is released automatically when no repeat
// arrived within the hold timeout.
package input

import (
	"time"

	"github.com/vovakirdan/chromaball/internal/core"
)

// Key is one of the keys the game listens to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEsc
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "UP"
	case KeyDown:
		return "DOWN"
	case KeyLeft:
		return "LEFT"
	case KeyRight:
		return "RIGHT"
	case KeySpace:
		return "SPACE"
	case KeyEsc:
		return "ESC"
	default:
		return "UNKNOWN"
	}
}

const (
	// DefaultHoldTimeout covers the gap between terminal key repeats.
	DefaultHoldTimeout = 150 * time.Millisecond

	// DoubleTapWindow is the longest gap between two touch ends that still
	// counts as a double tap.
	DoubleTapWindow = 500 * time.Millisecond
)

// holdActions maps keys that act while held.
var holdActions = map[Key]core.Action{
	KeyUp:    core.ActionUp,
	KeyDown:  core.ActionDown,
	KeyLeft:  core.ActionLeft,
	KeyRight: core.ActionRight,
}

// releaseActions maps keys that act on their up edge.
var releaseActions = map[Key]core.Action{
	KeySpace: core.ActionChangeColor,
	KeyEsc:   core.ActionReset,
}

// Controller accumulates input between frames.
type Controller struct {
	held        map[Key]time.Time // key -> last down (or repeat) time
	pending     core.InputFrame
	lastTouch   time.Time
	holdTimeout time.Duration
}

// NewController creates a controller with the default hold timeout.
func NewController() *Controller {
	return NewControllerWithTimeout(DefaultHoldTimeout)
}

// NewControllerWithTimeout creates a controller whose held keys are released
// after timeout without a repeat. A non-positive timeout disables expiry.
func NewControllerWithTimeout(timeout time.Duration) *Controller {
	return &Controller{
		held:        make(map[Key]time.Time),
		pending:     core.NewInputFrame(),
		holdTimeout: timeout,
	}
}

// KeyDown records a down edge or a key repeat.
func (c *Controller) KeyDown(k Key, now time.Time) {
	c.held[k] = now
}

// KeyUp records an up edge. Releasing a key that is not held does nothing.
func (c *Controller) KeyUp(k Key, now time.Time) {
	if _, ok := c.held[k]; !ok {
		return
	}
	delete(c.held, k)
	if a, ok := releaseActions[k]; ok {
		c.pending.Set(a)
	}
}

// Tap records a full press and release.
func (c *Controller) Tap(k Key, now time.Time) {
	c.KeyDown(k, now)
	c.KeyUp(k, now)
}

// Held reports whether k is currently down.
func (c *Controller) Held(k Key) bool {
	_, ok := c.held[k]
	return ok
}

// Expire releases keys that have not repeated within the hold timeout.
func (c *Controller) Expire(now time.Time) {
	if c.holdTimeout <= 0 {
		return
	}
	for k, last := range c.held {
		if now.Sub(last) > c.holdTimeout {
			c.KeyUp(k, now)
		}
	}
}

// Trigger queues a one-shot action that has no key mapping here (pause, quit).
func (c *Controller) Trigger(a core.Action) {
	c.pending.Set(a)
}

// TouchMove records the latest touch or mouse position in raster pixels.
func (c *Controller) TouchMove(p core.Vec) {
	c.pending.SetPointer(p)
}

// TouchEnd handles a touch release. Two releases less than DoubleTapWindow
// apart trigger the same action as SPACE.
func (c *Controller) TouchEnd(now time.Time) {
	if !c.lastTouch.IsZero() {
		delay := now.Sub(c.lastTouch)
		if delay > 0 && delay < DoubleTapWindow {
			c.pending.Set(core.ActionChangeColor)
			c.lastTouch = time.Time{}
			return
		}
	}
	c.lastTouch = now
}

// Frame expires stale keys and returns the input for the next tick: held
// direction actions plus every edge since the previous call.
func (c *Controller) Frame(now time.Time) core.InputFrame {
	c.Expire(now)

	frame := c.pending.Clone()
	for k := range c.held {
		if a, ok := holdActions[k]; ok {
			frame.Set(a)
		}
	}
	c.pending.Clear()
	return frame
}

// Reset drops all held keys and pending input.
func (c *Controller) Reset() {
	clear(c.held)
	c.pending.Clear()
	c.lastTouch = time.Time{}
}
