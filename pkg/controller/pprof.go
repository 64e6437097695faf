package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path the profiling handlers are served under.
const PprofPrefix = "/debug/pprof/"

// PprofMux returns an http.ServeMux with the net/http/pprof handlers
// registered under PprofPrefix. pprof.Index resolves named profiles (heap,
// goroutine, ...) relative to that prefix, so the mux must be mounted at it
// without stripping.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+PprofPrefix, pprof.Index)
	mux.HandleFunc("GET "+PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc("GET "+PprofPrefix+"trace", pprof.Trace)

	return mux
}
