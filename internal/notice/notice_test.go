package notice

import (
	"sync"
	"testing"
	"time"
)

type manualScheduler struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (m *manualScheduler) schedule(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, f)
	m.delays = append(m.delays, d)
}

func (m *manualScheduler) fireNext() {
	m.mu.Lock()
	f := m.pending[0]
	m.pending = m.pending[1:]
	m.mu.Unlock()
	f()
}

func TestAreaStartsHidden(t *testing.T) {
	t.Parallel()

	if New().State().Visible {
		t.Fatal("new area is visible")
	}
}

func TestShowArmsFixedDelay(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	a := New(WithScheduler(sched.schedule))
	a.Show(Success, "Signed up")

	st := a.State()
	if !st.Visible || st.Text != "Signed up" || st.Kind != Success {
		t.Fatalf("state = %+v, want visible success", st)
	}
	if len(sched.delays) != 1 || sched.delays[0] != DefaultDelay {
		t.Fatalf("delays = %v, want [%v]", sched.delays, DefaultDelay)
	}

	sched.fireNext()
	if a.State().Visible {
		t.Fatal("area still visible after timer fired")
	}
}

func TestShowOverwritesAndTimersDoNotCancel(t *testing.T) {
	t.Parallel()

	sched := &manualScheduler{}
	a := New(WithScheduler(sched.schedule))
	a.Show(Success, "first")
	a.Show(Error, "second")

	st := a.State()
	if st.Text != "second" || st.Kind != Error {
		t.Fatalf("state = %+v, want second/error", st)
	}
	if len(sched.pending) != 2 {
		t.Fatalf("pending timers = %d, want 2", len(sched.pending))
	}

	sched.fireNext()
	sched.fireNext()
	if a.State().Visible {
		t.Fatal("area visible after all timers fired")
	}
	// Hiding twice is harmless.
	a.hide()
	if a.State().Visible {
		t.Fatal("area visible after extra hide")
	}
}

func TestAreaHidesWithRealTimer(t *testing.T) {
	t.Parallel()

	a := New(WithDelay(10 * time.Millisecond))
	for i := 0; i < 3; i++ {
		a.Show(Error, "oops")
	}

	deadline := time.Now().Add(2 * time.Second)
	for a.State().Visible {
		if time.Now().After(deadline) {
			t.Fatal("area never hid")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	a := New(WithScheduler(func(time.Duration, func()) {}), WithClock(func() time.Time { return base }))
	a.Show(Success, "ok")
	st := a.State()

	if got := st.Remaining(base.Add(2*time.Second), DefaultDelay); got != 3*time.Second {
		t.Fatalf("Remaining() = %v, want 3s", got)
	}
	if got := st.Remaining(base.Add(9*time.Second), DefaultDelay); got != 0 {
		t.Fatalf("Remaining() = %v, want 0", got)
	}
	if got := (State{}).Remaining(base, DefaultDelay); got != 0 {
		t.Fatalf("Remaining() on hidden = %v, want 0", got)
	}
}

func TestKindFor(t *testing.T) {
	t.Parallel()

	if KindFor(true) != Success || KindFor(false) != Error {
		t.Fatalf("KindFor mapping wrong: %q %q", KindFor(true), KindFor(false))
	}
}
