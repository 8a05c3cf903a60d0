package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// stubSession is a Session whose token can be swapped by RefreshSession.
type stubSession struct {
	mu         sync.Mutex
	token      string
	nextToken  string
	refreshErr error
	refreshes  int
}

func (s *stubSession) GetToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *stubSession) RefreshSession(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshes++
	if s.refreshErr != nil {
		return s.refreshErr
	}
	s.token = s.nextToken
	return nil
}

func TestAuthTransportAttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Account{ID: "1"})
	}))
	defer srv.Close()

	api := New(srv.URL)
	api.AttachSession(&stubSession{token: "tok-1"})

	if _, err := api.Me(context.Background()); err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestAuthTransportSkipsPublicPaths(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(LoginResponse{AccessToken: "tok", ExpiresIn: "3600"})
	}))
	defer srv.Close()

	api := New(srv.URL)
	api.AttachSession(&stubSession{token: "stale"})

	if _, err := api.Login(context.Background(), LoginRequest{Email: "a", Password: "b"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization on public path = %q, want none", gotAuth)
	}
}

func TestAuthTransportRefreshesAndRetriesOn401(t *testing.T) {
	var tokens []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		tokens = append(tokens, auth)
		if auth != "Bearer tok-new" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(Account{ID: "1", Role: "ADMIN"})
	}))
	defer srv.Close()

	sess := &stubSession{token: "tok-old", nextToken: "tok-new"}
	api := New(srv.URL)
	api.AttachSession(sess)

	acct, err := api.Me(context.Background())
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if acct.Role != "ADMIN" {
		t.Errorf("Role = %q", acct.Role)
	}
	if sess.refreshes != 1 {
		t.Errorf("refreshes = %d, want 1", sess.refreshes)
	}
	want := []string{"Bearer tok-old", "Bearer tok-new"}
	if len(tokens) != 2 || tokens[0] != want[0] || tokens[1] != want[1] {
		t.Errorf("tokens seen = %v, want %v", tokens, want)
	}
}

func TestAuthTransportGivesUpWhenRefreshFails(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := &stubSession{token: "tok-old", refreshErr: errors.New("refresh rejected")}
	api := New(srv.URL)
	api.AttachSession(sess)

	_, err := api.Me(context.Background())
	if err == nil {
		t.Fatal("expected the original 401 to surface")
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1 (no retry after failed refresh)", requests)
	}
	if sess.refreshes != 1 {
		t.Errorf("refreshes = %d, want exactly 1", sess.refreshes)
	}
}

func TestAuthTransportPassesThroughWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Account{})
	}))
	defer srv.Close()

	sess := &stubSession{}
	api := New(srv.URL)
	api.AttachSession(sess)

	if _, err := api.Me(context.Background()); err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none", gotAuth)
	}
	if sess.refreshes != 0 {
		t.Errorf("refreshes = %d, want 0", sess.refreshes)
	}
}
