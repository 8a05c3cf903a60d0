package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ptladmin/cli/internal/apierrors"
)

func TestLoginDecodesRawResponse(t *testing.T) {
	var gotBody LoginRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "tok",
			"refresh_token": "rtok",
			"token_type":    "Bearer",
			"expires_in":    "15m",
			"nome":          "Maria Souza",
			"perfil":        "OPERADOR",
		})
	}))
	defer srv.Close()

	api := New(srv.URL)
	resp, err := api.Login(context.Background(), LoginRequest{Email: "maria@ptl.local", Password: "pw", RememberMe: true})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if gotBody.Email != "maria@ptl.local" || !gotBody.RememberMe {
		t.Errorf("request body = %+v", gotBody)
	}
	// expires_in stays a raw string here; parsing happens downstream.
	if resp.ExpiresIn != "15m" {
		t.Errorf("ExpiresIn = %q, want raw %q", resp.ExpiresIn, "15m")
	}
	if resp.Nome != "Maria Souza" || resp.Perfil != "OPERADOR" {
		t.Errorf("identity fields = %q/%q", resp.Nome, resp.Perfil)
	}
}

func TestRefreshSendsRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/refresh" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["refresh_token"] != "rtok-1" {
			t.Errorf("refresh_token = %q", body["refresh_token"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-2",
			"token_type":   "Bearer",
			"expires_in":   "3600",
		})
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Refresh(context.Background(), "rtok-1")
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if resp.AccessToken != "tok-2" {
		t.Errorf("AccessToken = %q", resp.AccessToken)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   apierrors.Code
	}{
		{401, apierrors.InvalidCredentials},
		{403, apierrors.AccessDenied},
		{429, apierrors.TooManyRequests},
		{500, apierrors.ServerError},
		{418, apierrors.UnknownError},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
		}))
		_, err := New(srv.URL).Me(context.Background())
		srv.Close()
		if err == nil {
			t.Fatalf("status %d: expected error", tt.status)
		}
		if got := apierrors.CodeOf(err); got != tt.want {
			t.Errorf("status %d: code = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestUnknownStatusKeepsBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(422)
		json.NewEncoder(w).Encode(map[string]string{"message": "Matrícula já cadastrada."})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Me(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := apierrors.MessageOf(err); got != "Matrícula já cadastrada." {
		t.Errorf("message = %q", got)
	}
}

func TestTransportFailureIsServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(srv.URL).Me(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := apierrors.CodeOf(err); got != apierrors.ServerUnavailable {
		t.Errorf("code = %s, want %s", got, apierrors.ServerUnavailable)
	}
}

func TestAccessLogsQueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/logs/access" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(LogsResponse{})
	}))
	defer srv.Close()

	success := false
	_, err := New(srv.URL).AccessLogs(context.Background(), LogsFilters{
		Page:       2,
		Limit:      50,
		Method:     "POST",
		StatusCode: 500,
		Success:    &success,
		StartDate:  "2025-06-01",
	})
	if err != nil {
		t.Fatalf("AccessLogs() error = %v", err)
	}

	want := "limit=50&method=POST&page=2&startDate=2025-06-01&statusCode=500&success=false"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestAccessLogsOmitsZeroFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(LogsResponse{})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).AccessLogs(context.Background(), LogsFilters{}); err != nil {
		t.Fatalf("AccessLogs() error = %v", err)
	}
	if gotQuery != "" {
		t.Errorf("query = %q, want empty", gotQuery)
	}
}

func TestVersionDegradesToUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	v, err := New(srv.URL).Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if v != "unknown" {
		t.Errorf("version = %q, want unknown", v)
	}
}
