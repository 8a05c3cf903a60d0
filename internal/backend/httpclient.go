package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"ptladmin/cli/internal/apierrors"
)

// HTTP implements API over REST endpoints.
type HTTP struct {
	// baseURL is the API base including the version prefix
	// (e.g. "http://localhost:3000/api/v1")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// newHTTP creates a new HTTP client with the given base URL.
// It configures a 10-second timeout for all requests.
func newHTTP(baseURL string) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// AttachSession wraps the client transport so every non-auth request
// carries the session's bearer token and gets one refresh-and-retry on 401.
func (h *HTTP) AttachSession(s Session) {
	base := h.client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	h.client.Transport = &AuthTransport{Base: base, Session: s}
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out (when out is non-nil). Transport failures and non-2xx
// statuses come back as typed apierrors values.
func (h *HTTP) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return apierrors.FromTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return apierrors.FromStatus(resp.StatusCode, b)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierrors.Wrap(apierrors.UnknownError, "Erro desconhecido.", err)
	}
	return nil
}

// Version calls GET /version and returns the version string when available.
// No authentication required; "unknown" is returned for any non-OK status
// so connectivity checks degrade gracefully.
func (h *HTTP) Version(ctx context.Context) (string, error) {
	var out struct {
		Version string `json:"version"`
	}
	if err := h.doJSON(ctx, http.MethodGet, "/version", nil, &out); err != nil {
		if apierrors.CodeOf(err) == apierrors.UnknownError {
			return "unknown", nil
		}
		return "", err
	}
	if out.Version == "" {
		return "unknown", nil
	}
	return out.Version, nil
}
