// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

// New creates the backend API implementation for the given base URL.
// Call AttachSession afterwards to wire bearer attachment; the session
// manager itself is constructed with this client, so the two are bound
// in a second step.
func New(baseURL string) *HTTP {
	return newHTTP(baseURL)
}
