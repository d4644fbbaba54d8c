package frame

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Ticker delivers frame timestamps. *time.Ticker is adapted by NewTicker;
// tests feed a channel directly.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

func (tt timeTicker) C() <-chan time.Time { return tt.t.C }
func (tt timeTicker) Stop()               { tt.t.Stop() }

// NewTicker returns a Ticker firing fps times per second.
// Non-positive rates fall back to 60.
func NewTicker(fps int) Ticker {
	if fps <= 0 {
		fps = 60
	}
	return timeTicker{t: time.NewTicker(time.Second / time.Duration(fps))}
}

// Loop calls a frame function once per tick from a single goroutine. The next
// call only starts after the previous one returned.
type Loop struct {
	ticker  Ticker
	timer   Timer
	running atomic.Bool
	frames  atomic.Int64
	stop    chan struct{}
	once    sync.Once
}

// NewLoop creates a loop driven by ticker.
func NewLoop(ticker Ticker) *Loop {
	return &Loop{
		ticker: ticker,
		stop:   make(chan struct{}),
	}
}

// Run blocks, calling fn with the clamped elapsed seconds for every tick,
// until ctx is done or Stop is called. It returns ctx.Err() on cancellation
// and nil after Stop. A Loop runs at most once.
func (l *Loop) Run(ctx context.Context, fn func(elapsed float64)) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer l.running.Store(false)
	defer l.ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case now := <-l.ticker.C():
			// Stop may race with a pending tick; it wins.
			select {
			case <-l.stop:
				return nil
			default:
			}
			l.Step(now, fn)
		}
	}
}

// Step runs a single frame at the given time. Tests use it to drive the
// loop deterministically without a ticker.
func (l *Loop) Step(now time.Time, fn func(elapsed float64)) {
	fn(l.timer.Tick(now))
	l.frames.Add(1)
}

// Stop ends Run. Calling it more than once is safe.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// Running reports whether Run is currently active.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Frames returns how many frames have been delivered.
func (l *Loop) Frames() int64 {
	return l.frames.Load()
}
