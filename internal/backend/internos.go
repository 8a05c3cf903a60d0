// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ListInternos calls GET /internos.
func (h *HTTP) ListInternos(ctx context.Context) ([]Interno, error) {
	var out []Interno
	if err := h.doJSON(ctx, http.MethodGet, "/internos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInterno calls GET /internos/{id}.
func (h *HTTP) GetInterno(ctx context.Context, id string) (*Interno, error) {
	var out Interno
	if err := h.doJSON(ctx, http.MethodGet, "/internos/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInterno calls POST /internos.
func (h *HTTP) CreateInterno(ctx context.Context, in Interno) (*Interno, error) {
	var out Interno
	if err := h.doJSON(ctx, http.MethodPost, "/internos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInterno calls PUT /internos/{id}.
func (h *HTTP) UpdateInterno(ctx context.Context, id string, in Interno) (*Interno, error) {
	var out Interno
	if err := h.doJSON(ctx, http.MethodPut, "/internos/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInterno calls DELETE /internos/{id}.
func (h *HTTP) DeleteInterno(ctx context.Context, id string) error {
	return h.doJSON(ctx, http.MethodDelete, "/internos/"+url.PathEscape(id), nil, nil)
}
