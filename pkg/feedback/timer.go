// Package feedback provides the cancelable timers behind transient UI
// messages: a success flash that clears itself, or a latch that fires once
// after a delay. Every value is safe for use from timer goroutines and must
// be stopped when its owning view is torn down.
package feedback

import (
	"sync"
	"time"
)

// Timer is a one-shot, re-armable timer. Re-arming or cancelling guarantees
// that a previously scheduled callback will not run, even if its underlying
// time.Timer already fired and is waiting for the lock.
type Timer struct {
	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool
}

// Schedule arms the timer, replacing any pending callback.
func (t *Timer) Schedule(delay time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.stopLocked()
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		if t.closed || gen != t.gen {
			t.mu.Unlock()
			return
		}
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending callback. It reports whether one was pending.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.timer != nil
	t.stopLocked()
	t.gen++
	return pending
}

// Pending reports whether a callback is armed.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Close cancels the timer permanently; later Schedule calls are ignored.
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.gen++
	t.closed = true
}

func (t *Timer) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
