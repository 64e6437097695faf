// Package mcp exposes course search to MCP clients. It registers the
// search_course and get_content tools and serves them over stdio or the
// streamable HTTP transport.
package mcp

import (
	"context"
	"coursesearch/internal/search"
	"coursesearch/pkg/controller"
	"coursesearch/pkg/logger"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	Name    = "Canvas Course Search"
	Version = "1.0.0"
	// EndpointPath is where the streamable HTTP transport is mounted.
	EndpointPath = "/mcp"
)

// NewServer creates an MCP server with the course search tools registered.
func NewServer(searcher search.Searcher, baseURL string) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	t := NewTools(searcher, baseURL)

	s.AddTool(mcp.NewTool("search_course",
		mcp.WithDescription("Search the assignments, discussions, quizzes, pages and module links of a Canvas course. "+
			"Returns matching items ranked by number of hits, each with highlighted snippets and a link."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description(`Search terms. Wrap a phrase in double quotes to match it as a whole, e.g. "cell wall".`),
		),
		mcp.WithString("course_id",
			mcp.Description("Numeric Canvas course ID. Either course_id or course_url is required."),
		),
		mcp.WithString("course_url",
			mcp.Description("Any Canvas URL below the course, e.g. https://school.instructure.com/courses/123/modules."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	), mcp.NewTypedToolHandler(t.SearchCourse))

	s.AddTool(mcp.NewTool("get_content",
		mcp.WithDescription("Fetch one assignment, discussion, quiz or page of a Canvas course as markdown."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Content kind: assignments, discussion_topics, quizzes or pages."),
			mcp.Enum("assignments", "discussion_topics", "quizzes", "pages"),
		),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Numeric ID, or the URL slug for pages (the id field of a search match)."),
		),
		mcp.WithString("course_id",
			mcp.Description("Numeric Canvas course ID. Either course_id or course_url is required."),
		),
		mcp.WithString("course_url",
			mcp.Description("Any Canvas URL below the course."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	), mcp.NewTypedToolHandler(t.GetContent))

	return s
}

// httpContextFunc carries the request-scoped logger set by controller.WithLogger
// into tool calls.
func httpContextFunc(ctx context.Context, r *http.Request) context.Context {
	ctx = logger.WithLogger(ctx, logger.Get(r.Context()))
	if id := controller.RequestID(r.Context()); id != "" {
		ctx = context.WithValue(ctx, controller.RequestIDKey, id)
	}

	return ctx
}

// HTTPOptions configures the streamable HTTP transport.
type HTTPOptions struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	CORS              controller.CORSOptions
}

// NewHTTPHandler mounts the streamable HTTP transport at EndpointPath.
func NewHTTPHandler(s *server.MCPServer, opts HTTPOptions) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(EndpointPath, server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath(EndpointPath),
		server.WithHTTPContextFunc(httpContextFunc),
	))

	handler := controller.WithMetrics(mux)
	handler = controller.WithCORS(handler, opts.CORS)

	return controller.WithLogger(handler)
}

// NewHTTPServer returns an http.Server serving the MCP endpoint.
func NewHTTPServer(s *server.MCPServer, opts HTTPOptions) *http.Server {
	return &http.Server{
		Addr:              opts.Addr,
		Handler:           NewHTTPHandler(s, opts),
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
	}
}

// ServeStdio serves s on stdin/stdout until ctx is cancelled or stdin closes.
func ServeStdio(ctx context.Context, s *server.MCPServer) error {
	stdio := server.NewStdioServer(s)

	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
