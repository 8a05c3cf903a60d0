// Copyright (c) 2025 PTL
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AccessLogs calls GET /logs/access with the non-zero filters encoded as
// query parameters.
func (h *HTTP) AccessLogs(ctx context.Context, f LogsFilters) (*LogsResponse, error) {
	q := url.Values{}
	setInt := func(k string, v int) {
		if v != 0 {
			q.Set(k, strconv.Itoa(v))
		}
	}
	setStr := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	setInt("page", f.Page)
	setInt("limit", f.Limit)
	setStr("userId", f.UserID)
	setStr("email", f.Email)
	setStr("method", f.Method)
	setStr("path", f.Path)
	setInt("statusCode", f.StatusCode)
	if f.Success != nil {
		q.Set("success", strconv.FormatBool(*f.Success))
	}
	setStr("startDate", f.StartDate)
	setStr("endDate", f.EndDate)
	setStr("ip", f.IP)

	path := "/logs/access"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out LogsResponse
	if err := h.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
