// Package debounce delays an action until its input has been quiet for a fixed window.
//
// A Debouncer holds at most one pending callback. Every Trigger replaces the pending
// callback and restarts the window, so only the last callback within a burst runs:
//
//	d := debounce.New(500 * time.Millisecond)
//	defer d.Stop()
//
//	for _, q := range keystrokes {
//		d.Trigger(func() { search(q) })
//	}
//
// Stop cancels the pending callback and rejects later triggers; owners must call it on
// teardown. Cancel drops the pending callback but keeps the debouncer usable, and Flush
// runs it immediately.
//
// The clock is injectable. ManualClock fires timers synchronously from Advance, which keeps
// tests deterministic:
//
//	clock := debounce.NewManualClock()
//	d := debounce.New(500*time.Millisecond, debounce.WithClock(clock))
//	d.Trigger(fn)
//	clock.Advance(500 * time.Millisecond) // fn has run when Advance returns
package debounce
