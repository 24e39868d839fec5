package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ChiPathParams reads the URL parameters matched by a chi router.
// It returns nil outside of a chi route.
func ChiPathParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	keys := rctx.URLParams.Keys
	params := make(map[string]string, len(keys))
	for i, key := range keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
