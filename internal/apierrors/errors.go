// Package apierrors defines the typed errors surfaced by backend calls.
// Every error carries a machine-readable code and a human message intended
// for direct display; callers switch on the code, the UI prints the message.
//
// The mapping from HTTP status to code is fixed: 401 is invalid credentials,
// 403 access denied, 429 too many requests, 500 server error. Failures that
// happen before any response is received become CONNECTION_ERROR, and a
// refused connection (the backend is simply not there) becomes
// SERVER_UNAVAILABLE. Everything else is UNKNOWN_ERROR, keeping whatever
// message the response body offered.
package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// Code is a machine-readable error category.
type Code string

const (
	ConnectionError    Code = "CONNECTION_ERROR"
	ServerUnavailable  Code = "SERVER_UNAVAILABLE"
	InvalidCredentials Code = "INVALID_CREDENTIALS"
	AccessDenied       Code = "ACCESS_DENIED"
	TooManyRequests    Code = "TOO_MANY_REQUESTS"
	ServerError        Code = "SERVER_ERROR"
	UnknownError       Code = "UNKNOWN_ERROR"
)

// E wraps an error with a code and a user-displayable message.
type E struct {
	Code    Code
	Message string
	Details any
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func New(code Code, msg string) *E             { return &E{Code: code, Message: msg} }
func Wrap(code Code, msg string, err error) *E { return &E{Code: code, Message: msg, Err: err} }

// CodeOf extracts the code from an error chain; UNKNOWN_ERROR when untyped.
func CodeOf(err error) Code {
	var e *E
	if errors.As(err, &e) {
		return e.Code
	}
	return UnknownError
}

// MessageOf extracts the display message; falls back to the raw error text.
func MessageOf(err error) string {
	var e *E
	if errors.As(err, &e) {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// FromStatus maps an HTTP response status and body to a typed error.
// The body is consulted only for the unknown-status case, where a
// {"message": "..."} payload supplies the display text.
func FromStatus(status int, body []byte) *E {
	switch status {
	case 401:
		return New(InvalidCredentials, "Email ou senha incorretos.")
	case 403:
		return New(AccessDenied, "Acesso negado.")
	case 429:
		return New(TooManyRequests, "Muitas tentativas. Tente novamente em alguns minutos.")
	case 500:
		return New(ServerError, "Erro interno do servidor. Tente novamente mais tarde.")
	default:
		msg := "Erro desconhecido."
		var payload struct {
			Message string `json:"message"`
		}
		if len(body) > 0 && json.Unmarshal(body, &payload) == nil && payload.Message != "" {
			msg = payload.Message
		}
		e := New(UnknownError, msg)
		if len(body) > 0 {
			e.Details = strings.TrimSpace(string(body))
		}
		return e
	}
}

// FromTransport maps a failure that happened before any response arrived.
// A refused connection means the backend is down rather than the network,
// which mirrors the status-0 case of browser HTTP clients.
func FromTransport(err error) *E {
	if isConnectionRefused(err) {
		return Wrap(ServerUnavailable, "Servidor não disponível. Verifique se a API está rodando.", err)
	}
	return Wrap(ConnectionError, "Erro de conexão. Verifique sua internet.", err)
}

// isConnectionRefused reports whether the chain contains ECONNREFUSED.
func isConnectionRefused(err error) bool {
	if err == nil {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}
