package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// NewRequestWithURLParams creates an HTTP request with chi URL parameters.
// This helper simplifies testing chi handlers that use chi.URLParam() to
// extract path parameters.
//
// Example:
//
//	req := testutil.NewRequestWithURLParams(
//	    http.MethodGet,
//	    "/api/position/VOO",
//	    map[string]string{"fund": "VOO"},
//	)
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

// NewSeriesRequest creates a request for the position endpoints: a chi
// {fund} URL parameter plus token and duration query parameters. Empty query
// values are omitted.
func NewSeriesRequest(path, fund, token, duration string) *http.Request {
	req := NewRequestWithURLParams(http.MethodGet, path, map[string]string{"fund": fund})

	q := req.URL.Query()
	if token != "" {
		q.Add("token", token)
	}
	if duration != "" {
		q.Add("duration", duration)
	}
	req.URL.RawQuery = q.Encode()

	return req
}
