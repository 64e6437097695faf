// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the course search service.
package api

import (
	"context"
	"coursesearch/internal/api/handler/v1handler"
	"coursesearch/internal/api/specs/v1specs"
	"coursesearch/internal/config"
	"coursesearch/internal/search"
	"coursesearch/pkg/controller"
	"coursesearch/pkg/logger"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures bearer token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// CORS restricts the origins allowed to call the API.
	CORS controller.CORSOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Registerer receives the OpenTelemetry exporter's collectors. It
	// defaults to the Prometheus default registerer.
	Registerer prometheus.Registerer
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		CORS:              controller.CORSOptions{AllowedOrigins: cfg.HTTP.AllowedOrigins},

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	Searcher search.Searcher
	// BaseURL is the Canvas instance the API searches.
	BaseURL string
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus) feeding the v1 handler meter
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes backed by the generated server and handlers
// - pprof endpoints for profiling
// It also wraps the mux with metrics, CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(ctx, deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// NewHandler builds the server's root handler.
func NewHandler(ctx context.Context, deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	// prometheus metrics server
	mux.Handle("GET "+opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(opts.Registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("GET /v1/docs/", v5emb.New(
		"Course Search Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	if !secHandler.Enabled() {
		logger.Warn(ctx, "no JWT public key configured, v1 API is unauthenticated")
	}
	v1, err := v1handler.New(v1handler.Deps{
		Searcher: deps.Searcher,
		BaseURL:  deps.BaseURL,
		Meter:    mp.Meter("coursesearch/internal/api"),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create v1 handler: %w", err)
	}
	v1Srv, err := v1specs.NewServer(v1,
		secHandler,
		v1specs.WithMeterProvider(mp),
		v1specs.WithPathPrefix("/v1"))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	mux.Handle("/v1/", secHandler.AllowAnonymous(v1Srv))

	// pprof
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	handler := controller.WithMetrics(mux)
	handler = controller.WithCORS(handler, opts.CORS)
	handler = controller.WithLogger(handler)

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = opts.ReadTimeout
	}
	if timeout > 0 {
		handler = http.TimeoutHandler(handler, timeout, `{"error":"request timed out","kind":"TIMEOUT"}`)
	}

	return handler, nil
}
