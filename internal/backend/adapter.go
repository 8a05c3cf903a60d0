// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the REST client for the PTL admin API.
// It defines the API contract for authentication, intern records and
// access-log reporting, together with the HTTP implementation. Errors are
// surfaced as internal/apierrors values at every call site.
package backend

import "context"

// API defines the backend operations the CLI depends on.
// Implementations may call the real REST endpoints or provide fakes for tests.
type API interface {
	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	// Refresh exchanges a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error)
	// Me returns the account owning the current bearer token. The token is
	// attached by the session round-tripper, not passed explicitly.
	Me(ctx context.Context) (*Account, error)

	// ListInternos returns all intern records.
	ListInternos(ctx context.Context) ([]Interno, error)
	// GetInterno returns one intern record by id.
	GetInterno(ctx context.Context, id string) (*Interno, error)
	// CreateInterno stores a new intern record and returns it with its id.
	CreateInterno(ctx context.Context, in Interno) (*Interno, error)
	// UpdateInterno replaces an existing intern record.
	UpdateInterno(ctx context.Context, id string, in Interno) (*Interno, error)
	// DeleteInterno removes an intern record.
	DeleteInterno(ctx context.Context, id string) error

	// AccessLogs returns a filtered page of the access-log report.
	AccessLogs(ctx context.Context, f LogsFilters) (*LogsResponse, error)

	// Version returns the backend version string when the endpoint exists.
	Version(ctx context.Context) (string, error)
}
