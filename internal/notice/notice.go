// Package notice implements the message area shown after a signup or
// removal attempt.
//
// The area is either hidden or visible with a text and a kind. Every Show
// arms a fresh hide timer; earlier timers are left running, which is safe
// because hiding is idempotent.
package notice

import (
	"sync"
	"time"
)

// DefaultDelay is how long a message stays visible.
const DefaultDelay = 5 * time.Second

// Kind styles a visible message.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// KindFor maps an outcome flag to a message kind.
func KindFor(ok bool) Kind {
	if ok {
		return Success
	}
	return Error
}

// State is a snapshot of the area.
type State struct {
	Visible bool
	Text    string
	Kind    Kind
	ShownAt time.Time
}

// Remaining returns how long a visible message has left before its own
// timer hides it.
func (s State) Remaining(now time.Time, delay time.Duration) time.Duration {
	if !s.Visible {
		return 0
	}
	left := delay - now.Sub(s.ShownAt)
	if left < 0 {
		return 0
	}
	return left
}

// Scheduler runs f after d.
type Scheduler func(d time.Duration, f func())

// Option configures an Area.
type Option func(*Area)

// WithScheduler replaces time.AfterFunc.
func WithScheduler(s Scheduler) Option {
	return func(a *Area) { a.schedule = s }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Area) { a.now = now }
}

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(a *Area) { a.delay = d }
}

// Area is one visitor's message area. It is safe for concurrent use.
type Area struct {
	mu       sync.Mutex
	state    State
	delay    time.Duration
	schedule Scheduler
	now      func() time.Time
}

// New returns a hidden Area.
func New(opts ...Option) *Area {
	a := &Area{
		delay: DefaultDelay,
		schedule: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Show makes the area visible with text, replacing any current message,
// and arms a hide timer.
func (a *Area) Show(kind Kind, text string) {
	a.mu.Lock()
	a.state = State{Visible: true, Text: text, Kind: kind, ShownAt: a.now()}
	a.mu.Unlock()

	a.schedule(a.delay, a.hide)
}

// State returns the current snapshot.
func (a *Area) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Delay returns the visibility delay.
func (a *Area) Delay() time.Duration {
	return a.delay
}

func (a *Area) hide() {
	a.mu.Lock()
	a.state.Visible = false
	a.mu.Unlock()
}
