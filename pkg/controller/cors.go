package controller

import (
	"net/http"
	"slices"
)

// CORSOptions restricts the origins allowed to call the API. An empty
// AllowedOrigins list allows every origin.
type CORSOptions struct {
	AllowedOrigins []string
}

// WithCORS returns a middleware that sets CORS headers for the read-only API
// and short-circuits OPTIONS preflight requests with 204 No Content. Requests
// from an origin outside AllowedOrigins get no CORS headers.
func WithCORS(next http.Handler, opts CORSOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(opts.AllowedOrigins) == 0:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case slices.Contains(opts.AllowedOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		default:
			next.ServeHTTP(w, r)

			return
		}
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Accept, Authorization, Cache-Control, X-Request-Id, Mcp-Session-Id")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id, Mcp-Session-Id")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
