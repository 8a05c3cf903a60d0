package logging

import (
	"strings"
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		keep    string
		gone    string
	}{
		{
			name: "password pair",
			in:   "login failed: password=hunter2; retrying",
			keep: "password=***",
			gone: "hunter2",
		},
		{
			name: "bearer token",
			in:   "request rejected: Bearer abc123.def456",
			keep: "***",
			gone: "abc123.def456",
		},
		{
			name: "jwt in error body",
			in:   `refresh failed for eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.c2ln`,
			keep: "refresh failed for ***",
			gone: "eyJhbGciOiJIUzI1NiJ9",
		},
		{
			name: "json password field",
			in:   `body {"email":"a@b.c","password":"admin123"}`,
			keep: `"password":"***`,
			gone: "admin123",
		},
		{
			name: "env secret",
			in:   "ACCESS_TOKEN=topsecret",
			keep: "ACCESS_TOKEN=***",
			gone: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mask(tt.in)
			if !strings.Contains(got, tt.keep) {
				t.Errorf("Mask() = %q, want it to contain %q", got, tt.keep)
			}
			if tt.gone != "" && strings.Contains(got, tt.gone) {
				t.Errorf("Mask() = %q, still contains secret %q", got, tt.gone)
			}
		})
	}
}

func TestPresentError(t *testing.T) {
	if got := PresentError("refreshing session", nil); got != "" {
		t.Errorf("PresentError(nil) = %q, want empty", got)
	}
}
