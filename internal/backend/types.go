// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe,omitempty"`
}

// LoginResponse is the raw body returned by /auth/login and /auth/refresh.
// expires_in is a string: bare seconds or a number with an m/h/d suffix.
// Identity comes as loose nome/perfil fields rather than a user object;
// normalization into a User happens in internal/auth.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    string `json:"expires_in"`
	Perfil       string `json:"perfil"`
	Nome         string `json:"nome"`
}

// Account is the user record returned by GET /auth/me.
type Account struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Interno is an intern record managed through /internos.
type Interno struct {
	ID        string `json:"id,omitempty"`
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	CPF       string `json:"cpf,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// AccessLog is one entry of the access-log report.
type AccessLog struct {
	ID           string `json:"_id"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	Nome         string `json:"nome"`
	Perfil       string `json:"perfil"`
	IP           string `json:"ip"`
	UserAgent    string `json:"userAgent"`
	Method       string `json:"method"`
	Path         string `json:"path"`
	StatusCode   int    `json:"statusCode"`
	ResponseTime int    `json:"responseTime"`
	Success      bool   `json:"success"`
	Timestamp    string `json:"timestamp"`
}

// Pagination describes the page window of a log listing.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// LogsResponse is the body of GET /logs/access.
type LogsResponse struct {
	Logs       []AccessLog    `json:"logs"`
	Pagination Pagination     `json:"pagination"`
	Filters    map[string]any `json:"filters,omitempty"`
}

// LogsFilters narrows the access-log listing; zero values are omitted
// from the query string.
type LogsFilters struct {
	Page       int
	Limit      int
	UserID     string
	Email      string
	Method     string
	Path       string
	StatusCode int
	Success    *bool
	StartDate  string
	EndDate    string
	IP         string
}
