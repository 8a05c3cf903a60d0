// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"strconv"
	"strings"

	"ptladmin/cli/internal/backend"
)

// LoginResult is the normalized login/refresh response: expires_in parsed
// to seconds and identity resolved into a User record.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
	User         User
}

// defaultExpiresIn is assumed when the backend sends an unparsable or
// absent expires_in.
const defaultExpiresIn = 3600

// Identity fallbacks, used only when neither the token payload, the
// response fields nor the previous session carry a value.
const (
	fallbackID    = "unknown"
	fallbackEmail = "admin@ptl.local"
	fallbackName  = "Administrador Geral"
	fallbackRole  = "ADMIN"
)

// ParseExpiresIn converts the backend's expires_in string into seconds.
// Bare numbers are seconds; the m/h/d suffixes multiply by 60/3600/86400.
// Unparsable input yields the one-hour default.
func ParseExpiresIn(s string) int64 {
	s = strings.TrimSpace(s)
	mult := int64(1)
	switch {
	case strings.HasSuffix(s, "m"):
		mult, s = 60, strings.TrimSuffix(s, "m")
	case strings.HasSuffix(s, "h"):
		mult, s = 3600, strings.TrimSuffix(s, "h")
	case strings.HasSuffix(s, "d"):
		mult, s = 86400, strings.TrimSuffix(s, "d")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return defaultExpiresIn
	}
	return n * mult
}

// normalizeLogin resolves the raw response into a LoginResult.
//
// A bare refresh response may omit the display fields that only the
// original login response or the token payload carried, so identity is
// resolved most-specific first: token claim, then response field, then the
// previous session's user, then a fixed fallback. The avatar is only ever
// carried over from the previous user; the backend never supplies one.
func normalizeLogin(resp *backend.LoginResponse, prev *User) *LoginResult {
	claims := decodeClaims(resp.AccessToken)
	var cur User
	if prev != nil {
		cur = *prev
	}

	user := User{
		ID:     firstNonEmpty(claims.Subject, cur.ID, fallbackID),
		Email:  firstNonEmpty(claims.Email, cur.Email, fallbackEmail),
		Name:   firstNonEmpty(resp.Nome, cur.Name, fallbackName),
		Role:   firstNonEmpty(resp.Perfil, claims.Perfil, cur.Role, fallbackRole),
		Avatar: cur.Avatar,
	}

	return &LoginResult{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    ParseExpiresIn(resp.ExpiresIn),
		User:         user,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
