// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
)

// Login calls POST /auth/login with the user's credentials.
// The raw response keeps expires_in as a string and identity as loose
// nome/perfil fields; normalization is the session manager's job.
func (h *HTTP) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := h.doJSON(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh calls POST /auth/refresh to exchange the refresh token for a new
// token pair. The backend may rotate the refresh token or keep it the same;
// a bare refresh response often omits nome/perfil.
func (h *HTTP) Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var out LoginResponse
	if err := h.doJSON(ctx, http.MethodPost, "/auth/refresh", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me calls GET /auth/me. The bearer header is attached by the session
// round-tripper, so an unauthenticated client gets the 401 mapping.
func (h *HTTP) Me(ctx context.Context) (*Account, error) {
	var out Account
	if err := h.doJSON(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
