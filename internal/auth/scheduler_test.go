package auth

import (
	"sync"
	"testing"
	"time"

	"ptladmin/cli/internal/logging"
)

// manualTimers is a TimerFactory that never fires on its own; tests fire
// the pending task explicitly and can count outstanding timers.
type manualTimers struct {
	mu      sync.Mutex
	pending []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (f *manualTimers) New(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &manualTimer{delay: d, fn: fn}
	f.pending = append(f.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// active returns the timers that have been created and not stopped.
func (f *manualTimers) active() []*manualTimer {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*manualTimer
	for _, t := range f.pending {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

// fire runs the most recent active timer's task.
func (f *manualTimers) fire(t *testing.T) {
	t.Helper()
	act := f.active()
	if len(act) == 0 {
		t.Fatal("no active timer to fire")
	}
	tm := act[len(act)-1]
	tm.stopped = true
	tm.fn()
}

func TestRenewalDelay(t *testing.T) {
	tests := []struct {
		name      string
		expiresIn int64
		want      time.Duration
	}{
		{
			name:      "long-lived token renews five minutes early",
			expiresIn: 3600,
			want:      3300 * time.Second,
		},
		{
			name:      "short-lived token renews at the midpoint",
			expiresIn: 120,
			want:      60 * time.Second,
		},
		{
			name:      "boundary at ten minutes uses midpoint",
			expiresIn: 600,
			want:      300 * time.Second,
		},
		{
			name:      "just over ten minutes subtracts five",
			expiresIn: 601,
			want:      301 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenewalDelay(tt.expiresIn); got != tt.want {
				t.Errorf("RenewalDelay(%d) = %v, want %v", tt.expiresIn, got, tt.want)
			}
		})
	}
}

func TestSchedulerArmSupersedes(t *testing.T) {
	timers := &manualTimers{}
	s := newScheduler(timers.New, func() {}, logging.Discard())

	s.Arm(3600)
	s.Arm(3600)

	if got := len(timers.active()); got != 1 {
		t.Errorf("active timers after double arm = %d, want 1", got)
	}
	if !s.Armed() {
		t.Error("scheduler should be armed")
	}
}

func TestSchedulerCancelIdempotent(t *testing.T) {
	timers := &manualTimers{}
	s := newScheduler(timers.New, func() {}, logging.Discard())

	// Cancel when idle must not panic.
	s.Cancel()

	s.Arm(120)
	s.Cancel()
	s.Cancel()

	if s.Armed() {
		t.Error("scheduler should be idle after cancel")
	}
	if got := len(timers.active()); got != 0 {
		t.Errorf("active timers after cancel = %d, want 0", got)
	}
}

func TestSchedulerFireTransitionsToIdle(t *testing.T) {
	timers := &manualTimers{}
	fired := 0
	s := newScheduler(timers.New, func() { fired++ }, logging.Discard())

	s.Arm(120)
	timers.fire(t)

	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if s.Armed() {
		t.Error("scheduler should be idle after firing")
	}
}
