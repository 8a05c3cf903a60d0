// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the display claims embedded in the bearer token payload.
type Claims struct {
	Subject string
	Email   string
	Perfil  string
}

// decodeClaims recovers display claims from the token's payload segment.
// The signature is not verified (see the package doc); a malformed token
// yields empty claims rather than an error, so identity falls through to
// the response fields and fallbacks during normalization.
func decodeClaims(token string) Claims {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}
	}
	str := func(k string) string {
		s, _ := mc[k].(string)
		return s
	}
	return Claims{
		Subject: str("sub"),
		Email:   str("email"),
		Perfil:  str("perfil"),
	}
}
