// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"ptladmin/cli/internal/backend"
	"ptladmin/cli/internal/credstore"
	"ptladmin/cli/internal/logging"
)

// LoginPath is where the navigator is sent when the session ends.
const LoginPath = "/login"

// nearExpiryWindow is how close to expiry a token may get before
// CheckAndRefreshToken renews it proactively.
const nearExpiryWindow = 5 * time.Minute

var (
	// ErrNoRefreshToken is returned by RefreshToken when no refresh token
	// is persisted; no network call is made in that case.
	ErrNoRefreshToken = errors.New("No refresh token available")
	// ErrNotAuthenticated is returned by CheckAndRefreshToken when the
	// session is not authenticated.
	ErrNotAuthenticated = errors.New("User not authenticated")
)

// API is the slice of the backend the session manager depends on.
// backend.HTTP satisfies it; tests provide fakes.
type API interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*backend.LoginResponse, error)
	Me(ctx context.Context) (*backend.Account, error)
}

// Navigator redirects the user after session transitions. The CLI
// implementation prints a re-login hint; tests record the path.
type Navigator interface {
	GoTo(path string)
}

// Credentials are the inputs to Login. RememberMe is forwarded to the
// backend; local persistence does not branch on it.
type Credentials struct {
	Email      string
	Password   string
	RememberMe bool
}

// Manager centralizes the session lifecycle: login, logout, refresh,
// validation and the proactive renewal timer. Construct it explicitly with
// NewManager and pass the instance around; there is no package singleton.
type Manager struct {
	api   API
	store credstore.Store
	nav   Navigator
	state *stateCell
	sched *scheduler
	now   func() time.Time
	log   zerolog.Logger

	// refreshMu serializes refreshes so a scheduled auto-refresh and a
	// manual call cannot interleave their persist/update sequences.
	refreshMu sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock substitutes the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithTimerFactory substitutes how the renewal timer is scheduled.
func WithTimerFactory(f TimerFactory) Option {
	return func(m *Manager) { m.sched.newTimer = f }
}

// WithLogger attaches a diagnostics logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = log
		m.sched.log = log
	}
}

// NewManager builds a session manager over the given backend API,
// credential store and navigator.
func NewManager(api API, store credstore.Store, nav Navigator, opts ...Option) *Manager {
	m := &Manager{
		api:   api,
		store: store,
		nav:   nav,
		state: &stateCell{},
		now:   time.Now,
		log:   logging.Discard(),
	}
	m.sched = newScheduler(afterFunc, m.autoRefresh, m.log)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize restores the session from the credential store. Called once
// at startup, before any other operation.
//
// Missing token or user leaves the manager unauthenticated. A corrupt user
// payload clears all persisted credentials. A stored expiry in the past
// triggers one refresh attempt, clearing credentials if it fails. A future
// expiry restores the session and arms the renewal timer for the remaining
// lifetime; no recorded expiry restores the session without a timer.
func (m *Manager) Initialize(ctx context.Context) {
	token, _ := m.store.Get(credstore.KeyToken)
	userRaw, _ := m.store.Get(credstore.KeyUser)
	if token == "" || userRaw == "" {
		return
	}

	var user User
	if err := json.Unmarshal([]byte(userRaw), &user); err != nil {
		m.log.Error().Err(err).Msg("stored user profile is corrupt, clearing credentials")
		m.clearAuthData()
		return
	}

	if expiryRaw, _ := m.store.Get(credstore.KeyTokenExpiry); expiryRaw != "" {
		if expiry, err := strconv.ParseInt(expiryRaw, 10, 64); err == nil {
			now := m.now().UnixMilli()
			if now >= expiry {
				m.log.Debug().Msg("token expired on initialization, attempting refresh")
				if _, rerr := m.RefreshToken(ctx); rerr != nil {
					m.clearAuthData()
				}
				return
			}
			m.sched.Arm((expiry - now) / 1000)
		}
	}

	m.state.set(AuthState{IsAuthenticated: true, User: &user, Token: token})
}

// Login authenticates against the backend. On success the normalized
// result is persisted, the session becomes authenticated and the renewal
// timer is armed for the returned lifetime. On failure the typed API error
// is returned and the session stays unauthenticated; there is no retry.
func (m *Manager) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	m.setLoading(true)

	resp, err := m.api.Login(ctx, backend.LoginRequest{
		Email:      creds.Email,
		Password:   creds.Password,
		RememberMe: creds.RememberMe,
	})
	if err != nil {
		m.setLoading(false)
		return nil, err
	}

	res := normalizeLogin(resp, m.state.Snapshot().User)
	m.handleLoginSuccess(res)
	return res, nil
}

// Logout tears the session down locally: clears the persisted values,
// cancels the renewal timer, resets state and redirects to the login
// screen. It never calls the backend and cannot fail.
func (m *Manager) Logout() error {
	m.log.Debug().Msg("logging out")
	m.clearAuthData()
	m.nav.GoTo(LoginPath)
	return nil
}

// RefreshToken renews the token pair using the persisted refresh token.
// With no refresh token it fails immediately without a network call. On
// success the result is persisted, identity fields absent from the bare
// refresh response are preserved, and the timer is rearmed. On failure all
// credentials are cleared, the session resets, the navigator is sent to
// the login screen and the typed error propagates.
func (m *Manager) RefreshToken(ctx context.Context) (*LoginResult, error) {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	refreshToken, err := m.store.Get(credstore.KeyRefreshToken)
	if err != nil || refreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	m.log.Debug().Msg("attempting to refresh token")
	resp, err := m.api.Refresh(ctx, refreshToken)
	if err != nil {
		m.log.Error().Str("reason", logging.Mask(err.Error())).Msg("token refresh failed")
		m.clearAuthData()
		m.nav.GoTo(LoginPath)
		return nil, err
	}

	res := normalizeLogin(resp, m.state.Snapshot().User)
	m.handleLoginSuccess(res)
	m.log.Debug().Msg("token refreshed")
	return res, nil
}

// RefreshSession implements backend.Session for the bearer round-tripper.
func (m *Manager) RefreshSession(ctx context.Context) error {
	_, err := m.RefreshToken(ctx)
	return err
}

// ValidateToken asks the backend who owns the current token. On success
// the returned user is merged into the session state; on failure all
// credentials are cleared and the typed error propagates.
func (m *Manager) ValidateToken(ctx context.Context) (*User, error) {
	acct, err := m.api.Me(ctx)
	if err != nil {
		m.clearAuthData()
		return nil, err
	}

	user := User{ID: acct.ID, Email: acct.Email, Name: acct.Name, Role: acct.Role, Avatar: acct.Avatar}
	s := m.state.Snapshot()
	s.User = &user
	s.IsAuthenticated = true
	m.state.set(s)
	return &user, nil
}

// CheckAndRefreshToken renews the token when it is within the near-expiry
// window (a missing or unreadable expiry counts as near). It returns true
// when the session is usable afterwards and fails when not authenticated
// or when the renewal itself fails.
func (m *Manager) CheckAndRefreshToken(ctx context.Context) (bool, error) {
	if !m.IsAuthenticated() {
		return false, ErrNotAuthenticated
	}
	if m.tokenNearExpiry() {
		m.log.Debug().Msg("token near expiry, refreshing")
		if _, err := m.RefreshToken(ctx); err != nil {
			return false, err
		}
	}
	return true, nil
}

// GetToken returns the current in-memory access token (not the persisted
// one), for attaching Authorization headers.
func (m *Manager) GetToken() string {
	return m.state.Snapshot().Token
}

// HasRole reports whether the current user holds the given role.
func (m *Manager) HasRole(role string) bool {
	u := m.state.Snapshot().User
	return u != nil && u.Role == role
}

// IsAuthenticated reports the current authentication flag.
func (m *Manager) IsAuthenticated() bool {
	return m.state.Snapshot().IsAuthenticated
}

// IsLoading reports whether a login or refresh call is in flight.
func (m *Manager) IsLoading() bool {
	return m.state.Snapshot().IsLoading
}

// CurrentUser returns a copy of the session's user, or nil.
func (m *Manager) CurrentUser() *User {
	return m.state.Snapshot().User
}

// Snapshot returns a copy of the full session state.
func (m *Manager) Snapshot() AuthState {
	return m.state.Snapshot()
}

// OnChange registers a listener invoked after every state transition.
func (m *Manager) OnChange(fn func(AuthState)) {
	m.state.OnChange(fn)
}

// handleLoginSuccess persists the normalized result, publishes the
// authenticated state and arms the renewal timer.
func (m *Manager) handleLoginSuccess(res *LoginResult) {
	expiry := m.now().UnixMilli() + res.ExpiresIn*1000

	m.persist(credstore.KeyToken, res.AccessToken)
	if b, err := json.Marshal(res.User); err == nil {
		m.persist(credstore.KeyUser, string(b))
	}
	m.persist(credstore.KeyTokenExpiry, strconv.FormatInt(expiry, 10))
	if res.RefreshToken != "" {
		m.persist(credstore.KeyRefreshToken, res.RefreshToken)
	}

	user := res.User
	m.state.set(AuthState{IsAuthenticated: true, User: &user, Token: res.AccessToken})
	m.sched.Arm(res.ExpiresIn)
}

// autoRefresh is the scheduler's fired task: refresh, and on failure log
// out (best-effort; logout cannot fail). A successful refresh rearms the
// timer inside RefreshToken.
func (m *Manager) autoRefresh() {
	m.log.Debug().Msg("auto-refreshing token")
	if _, err := m.RefreshToken(context.Background()); err != nil {
		m.log.Error().Str("reason", logging.Mask(err.Error())).Msg("auto-refresh failed")
		_ = m.Logout()
	}
}

// clearAuthData removes the four persisted values, cancels the timer and
// resets the session state.
func (m *Manager) clearAuthData() {
	for _, key := range credstore.SessionKeys {
		_ = m.store.Remove(key)
	}
	m.sched.Cancel()
	m.state.set(AuthState{})
}

func (m *Manager) tokenNearExpiry() bool {
	raw, err := m.store.Get(credstore.KeyTokenExpiry)
	if err != nil || raw == "" {
		return true
	}
	expiry, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return true
	}
	return time.Duration(expiry-m.now().UnixMilli())*time.Millisecond < nearExpiryWindow
}

func (m *Manager) persist(key, value string) {
	if err := m.store.Set(key, value); err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("failed to persist credential")
	}
}

func (m *Manager) setLoading(v bool) {
	s := m.state.Snapshot()
	s.IsLoading = v
	m.state.set(s)
}
