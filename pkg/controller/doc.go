// Package controller contains HTTP middlewares and helper handlers used by the
// API server and the MCP HTTP transport.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for read-only cross-origin use and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context, echoes the
//     ID in the response and logs access info.
//   - WithMetrics: Records request count and latency per matched route pattern.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers under /debug/pprof/.
package controller
