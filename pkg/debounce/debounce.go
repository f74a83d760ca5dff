package debounce

import (
	"sync"
	"time"
)

// Timer is the handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(d *Debouncer) {
		if c != nil {
			d.clock = c
		}
	}
}

// Debouncer runs the most recent triggered callback once the window passes without
// another trigger. Safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	clock   Clock
	timer   Timer
	pending func()
	seq     uint64
	stopped bool
}

// New creates a Debouncer with the given quiescence window.
func New(window time.Duration, opts ...Option) *Debouncer {
	d := &Debouncer{
		window: window,
		clock:  realClock{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Window returns the quiescence window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Trigger replaces the pending callback with fn and restarts the window.
// It returns false if the debouncer has been stopped.
func (d *Debouncer) Trigger(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}

	d.resetLocked()
	d.pending = fn
	seq := d.seq
	d.timer = d.clock.AfterFunc(d.window, func() { d.fire(seq) })
	return true
}

// Flush runs the pending callback now, in the caller's goroutine.
// It returns false if nothing was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.resetLocked()
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Cancel drops the pending callback. It returns true if one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	had := d.pending != nil
	d.resetLocked()
	return had
}

// Stop cancels the pending callback and makes later triggers no-ops.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.resetLocked()
	d.stopped = true
}

// Pending reports whether a callback is waiting for the window to pass.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// resetLocked stops the timer and invalidates any callback already in flight.
func (d *Debouncer) resetLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.seq++
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	// A timer that fired while Trigger, Cancel or Stop held the lock is stale.
	if d.stopped || seq != d.seq || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}
