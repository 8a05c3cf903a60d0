// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Timer is a cancellable handle over a deferred task.
type Timer interface {
	Stop() bool
}

// TimerFactory schedules fn to run once after d. The default factory is
// time.AfterFunc; tests substitute a manual one.
type TimerFactory func(d time.Duration, fn func()) Timer

func afterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// RenewalDelay computes how long to wait before proactively renewing a
// token that lives for expiresIn seconds: five minutes before expiry, or
// the midpoint for tokens shorter than ten minutes.
func RenewalDelay(expiresIn int64) time.Duration {
	d := time.Duration(expiresIn) * time.Second
	if expiresIn > 600 {
		return d - 5*time.Minute
	}
	return d / 2
}

// scheduler owns the single auto-refresh timer. It is either idle (no
// timer) or armed (exactly one pending timer); arming always supersedes
// the previous timer, never stacks.
type scheduler struct {
	mu       sync.Mutex
	newTimer TimerFactory
	timer    Timer
	fire     func()
	log      zerolog.Logger
}

func newScheduler(f TimerFactory, fire func(), log zerolog.Logger) *scheduler {
	return &scheduler{newTimer: f, fire: fire, log: log}
}

// Arm schedules the refresh for a token living expiresIn seconds,
// cancelling any pending timer first.
func (s *scheduler) Arm(expiresIn int64) {
	delay := RenewalDelay(expiresIn)

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.newTimer(delay, s.onFire)
	s.mu.Unlock()

	s.log.Debug().Dur("delay", delay).Msg("token refresh scheduled")
}

// Cancel discards any pending timer. Safe to call when already idle.
func (s *scheduler) Cancel() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
}

// Armed reports whether a timer is pending.
func (s *scheduler) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

func (s *scheduler) onFire() {
	s.mu.Lock()
	s.timer = nil
	s.mu.Unlock()
	s.fire()
}
