// Package auth manages the session/token lifecycle for the ptladmin CLI.
// It tracks an access token and refresh token, persists them through
// internal/credstore, decodes the bearer token payload to recover user
// identity, computes expiry and arms a background timer to proactively renew
// the token before it lapses, retrying once through the refresh endpoint and
// cascading to logout on failure.
//
// Note on token decoding: the bearer payload is decoded WITHOUT signature
// verification, purely to recover display claims (id, email, role). No
// verification key exists on the client side and nothing security-relevant
// is derived from the claims; the backend remains the authority on every
// request.
package auth

import "sync"

// User is the identity record displayed across the CLI.
// It is owned by the session state and replaced wholesale on every
// transition, never mutated in place.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// AuthState is the single source of truth for authentication.
// IsAuthenticated is true iff Token was last set by a successful login,
// refresh or restore-from-storage; User is nil whenever it is false.
type AuthState struct {
	IsAuthenticated bool
	User            *User
	Token           string
	IsLoading       bool
}

// stateCell is the observable holder behind the manager's snapshots.
// Listeners fire after each transition with a copy of the new state.
type stateCell struct {
	mu        sync.RWMutex
	cur       AuthState
	listeners []func(AuthState)
}

// Snapshot returns a copy of the current state. The User pointer is
// duplicated so callers cannot mutate the cell's record.
func (c *stateCell) Snapshot() AuthState {
	c.mu.RLock()
	s := c.cur
	c.mu.RUnlock()
	return copyState(s)
}

// OnChange registers a listener invoked on every state transition.
func (c *stateCell) OnChange(fn func(AuthState)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// set replaces the state and notifies listeners outside the lock.
func (c *stateCell) set(next AuthState) {
	c.mu.Lock()
	c.cur = next
	ls := make([]func(AuthState), len(c.listeners))
	copy(ls, c.listeners)
	c.mu.Unlock()

	for _, fn := range ls {
		fn(copyState(next))
	}
}

func copyState(s AuthState) AuthState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
