package controller_test

import (
	"coursesearch/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/courses/1/search", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(next, controller.CORSOptions{}).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "GET")
}

func TestWithCORS_AllowedOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})
	opts := controller.CORSOptions{AllowedOrigins: []string{"https://school.instructure.com"}}

	req := httptest.NewRequest(http.MethodGet, "/path", nil)
	req.Header.Set("Origin", "https://school.instructure.com")
	rec := httptest.NewRecorder()

	controller.WithCORS(next, opts).ServeHTTP(rec, req)

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "https://school.instructure.com", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))
}

func TestWithCORS_ForeignOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	opts := controller.CORSOptions{AllowedOrigins: []string{"https://school.instructure.com"}}

	req := httptest.NewRequest(http.MethodOptions, "/path", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()

	controller.WithCORS(next, opts).ServeHTTP(rec, req)

	require.True(t, called, "preflight from a foreign origin is passed through without CORS headers")
	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Origin"))
}
