// Package canvas talks to the Canvas LMS REST API. It defines the transport
// primitive used to reach the host, the endpoint and course descriptors, and
// the Paginator that turns Canvas' inconsistent pagination schemes into one
// aggregated result per endpoint.
package canvas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

const (
	// PageSize is the per_page value sent on every paginated request. A page
	// holding fewer items is the last one.
	PageSize = 100
	// DefaultBatchSize bounds the number of concurrent requests in the bulk phase.
	DefaultBatchSize = 25
	// APIRoot prefixes every endpoint path.
	APIRoot = "/api/v1"
)

// Request is a single call handed to a Transport. Query is only sent for GET
// requests; Body is JSON-encoded for every other method.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Response is what a Transport returns for any status code. Interpreting the
// status is left to the caller.
type Response struct {
	Status    int
	Header    http.Header
	Body      []byte
	RateLimit RateLimitStatus
}

// Result is the aggregate of every page fetched for one endpoint call.
type Result struct {
	// Items holds the elements of collection responses in the order pages were merged.
	Items []json.RawMessage
	// Object holds the body of item, progress and non-GET responses.
	Object json.RawMessage
	// Pages is the number of responses that contributed to the result,
	// including the dropped ones.
	Pages int
	// Dropped lists bulk-phase page numbers skipped without error.
	Dropped []int
}

// IsObject reports whether Canvas answered with a single object rather than a collection.
func (r *Result) IsObject() bool { return r.Object != nil }

// Transport issues one HTTP request against the Canvas host, injecting
// credentials, and returns the raw response.
//
//go:generate mockgen -package mockcanvas -source=interface.go -destination=mock/mockcanvas.go *
type Transport interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// Fetcher retrieves every page of an endpoint and returns the merged result.
type Fetcher interface {
	// FetchAll fetches endpoint with the given method and query parameters.
	// The pagination strategy is chosen from the endpoint shape. params is
	// never modified.
	FetchAll(ctx context.Context, method string, endpoint Endpoint, params url.Values) (*Result, error)
}
