package feedback

import (
	"sync"
	"time"
)

// Flash is a message that dismisses itself after a fixed delay.
type Flash struct {
	delay time.Duration
	timer Timer

	mu      sync.Mutex
	message string
	closed  bool
}

func NewFlash(delay time.Duration) *Flash {
	return &Flash{delay: delay}
}

// Show replaces the current message and restarts the dismiss countdown.
// A closed flash ignores it.
func (f *Flash) Show(message string) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.message = message
	f.mu.Unlock()
	f.timer.Schedule(f.delay, f.clear)
}

func (f *Flash) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Dismiss clears the message immediately.
func (f *Flash) Dismiss() {
	f.timer.Cancel()
	f.clear()
}

// Close stops the countdown for good. The last message is left as is and
// later Show calls are dropped.
func (f *Flash) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.timer.Close()
}

func (f *Flash) clear() {
	f.mu.Lock()
	f.message = ""
	f.mu.Unlock()
}

// Latch flips to fired once its delay elapses after Arm.
type Latch struct {
	delay time.Duration
	timer Timer

	mu    sync.Mutex
	fired bool
}

func NewLatch(delay time.Duration) *Latch {
	return &Latch{delay: delay}
}

func (l *Latch) Arm() {
	l.mu.Lock()
	l.fired = false
	l.mu.Unlock()
	l.timer.Schedule(l.delay, func() {
		l.mu.Lock()
		l.fired = true
		l.mu.Unlock()
	})
}

func (l *Latch) Fired() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fired
}

func (l *Latch) Armed() bool {
	return l.timer.Pending()
}

// Reset cancels a pending countdown and clears the fired flag.
func (l *Latch) Reset() {
	l.timer.Cancel()
	l.mu.Lock()
	l.fired = false
	l.mu.Unlock()
}

func (l *Latch) Close() {
	l.timer.Close()
}
