// Package logging provides the CLI logger plus utilities for secure logging
// and error presentation. It includes functions for masking sensitive
// information in log messages and formatting errors for user-friendly display
// while protecting credentials and secrets.
//
// The package helps ensure that sensitive data like passwords, bearer tokens
// and refresh tokens are not accidentally exposed in logs or error messages
// shown to users.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password=|"password"\s*:\s*")([^\s;"]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reJWT      = regexp.MustCompile(`\beyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)
	reAPIKey   = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "*".
// JWT-shaped strings are masked wherever they appear, since access and
// refresh tokens routinely end up inside error text from the backend.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reJWT.ReplaceAllString(out, "***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	// Basic env-like pairs key=VALUE; mask common secret keys
	for _, k := range []string{"PTLADMIN_TOKEN", "ACCESS_TOKEN", "REFRESH_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
