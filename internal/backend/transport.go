// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Session supplies the in-memory bearer token and the refresh flow.
// It is implemented by the session manager; the interface lives here so
// the transport does not depend on internal/auth.
type Session interface {
	// GetToken returns the current in-memory access token, or "".
	GetToken() string
	// RefreshSession renews the token pair. A failed refresh tears the
	// session down on the manager's side before returning.
	RefreshSession(ctx context.Context) error
}

// publicPaths never carry a bearer header and are never retried after a
// refresh, which also breaks the refresh-on-401-of-refresh loop.
var publicPaths = []string{"/auth/login", "/auth/refresh"}

// AuthTransport decorates a RoundTripper with bearer attachment and a
// single refresh-and-retry on 401.
type AuthTransport struct {
	Base    http.RoundTripper
	Session Session
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.isPublic(req.URL.Path) || t.Session.GetToken() == "" {
		return t.Base.RoundTrip(req)
	}

	resp, err := t.Base.RoundTrip(t.withBearer(req))
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// Token rejected: one refresh, one retry. The request body (if any)
	// must be replayable; JSON requests built by this package always are.
	if req.GetBody == nil && req.Body != nil {
		return resp, nil
	}
	if rerr := t.Session.RefreshSession(req.Context()); rerr != nil {
		return resp, nil
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, berr := req.GetBody()
		if berr != nil {
			return nil, berr
		}
		retry.Body = body
	}
	return t.Base.RoundTrip(t.withBearer(retry))
}

// withBearer returns a clone of req carrying the current Authorization header.
func (t *AuthTransport) withBearer(req *http.Request) *http.Request {
	out := req.Clone(req.Context())
	out.Header.Set("Authorization", "Bearer "+t.Session.GetToken())
	return out
}

func (t *AuthTransport) isPublic(path string) bool {
	for _, p := range publicPaths {
		if strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}
