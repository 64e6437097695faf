package canvas

import (
	"bytes"
	"context"
	"coursesearch/pkg/metrics"
	"coursesearch/pkg/serrors"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// RateLimitStatus is Canvas' view of the caller's request budget. Canvas
// uses a leaky bucket and reports fractional values.
type RateLimitStatus struct {
	Remaining float64 // Remaining is the budget left after this request (X-Rate-Limit-Remaining).
	Cost      float64 // Cost is what this request consumed (X-Request-Cost).
	Known     bool    // Known is false when Canvas sent no rate-limit headers.
}

// ParseRateLimit reads Canvas rate-limit headers. Missing or malformed
// headers yield a zero status with Known unset.
func ParseRateLimit(h http.Header) RateLimitStatus {
	remaining, err := strconv.ParseFloat(h.Get("X-Rate-Limit-Remaining"), 64)
	if err != nil {
		return RateLimitStatus{}
	}
	cost, _ := strconv.ParseFloat(h.Get("X-Request-Cost"), 64)

	return RateLimitStatus{Remaining: remaining, Cost: cost, Known: true}
}

// Credentials authenticate requests against Canvas. A browser session is
// reused through SessionCookie plus CSRFToken; a developer key uses AccessToken.
type Credentials struct {
	AccessToken   string
	CSRFToken     string
	SessionCookie string
}

// HTTPTransport is the Transport backed by net/http. It is safe for concurrent use.
type HTTPTransport struct {
	httpClient  *http.Client
	baseURL     *url.URL
	credentials Credentials
}

// Ensure HTTPTransport conforms to the Transport interface at compile time.
var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport constructs a transport for the Canvas instance at baseURL.
func NewHTTPTransport(httpClient *http.Client, baseURL string, credentials Credentials) (*HTTPTransport, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("could not parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPTransport{
		httpClient:  httpClient,
		baseURL:     u,
		credentials: credentials,
	}, nil
}

// Do sends req to Canvas. Any HTTP status is returned as a Response; only
// failures to build, send or read the request are errors.
func (t *HTTPTransport) Do(ctx context.Context, req Request) (*Response, error) {
	target := t.baseURL.JoinPath(req.Path)

	var body io.Reader
	if req.Method == http.MethodGet {
		target.RawQuery = req.Query.Encode()
	} else if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json;charset=utf-8")
	if t.credentials.CSRFToken != "" {
		httpReq.Header.Set("X-CSRF-Token", t.credentials.CSRFToken)
	}
	if t.credentials.SessionCookie != "" {
		httpReq.Header.Set("Cookie", t.credentials.SessionCookie)
	}
	if t.credentials.AccessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+t.credentials.AccessToken)
	}

	start := time.Now()
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		metrics.CanvasRequests.WithLabelValues(req.Method, "error").Inc()

		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	metrics.CanvasRequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())
	metrics.CanvasRequests.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()

	return &Response{
		Status:    resp.StatusCode,
		Header:    resp.Header,
		Body:      b,
		RateLimit: ParseRateLimit(resp.Header),
	}, nil
}

// StatusError converts a non-200 response into a semantic error. Canvas
// signals throttling with 403 and a "Rate Limit Exceeded" body, which is
// reported as ErrRateLimited like a 429.
func StatusError(resp *Response, what string) error {
	msg := strings.TrimSpace(string(StripJSONPrefix(resp.Body)))
	msg = truncate(msg, maxErrorBody)

	kind := serrors.FromStatus(resp.Status)
	if resp.Status == http.StatusForbidden && strings.Contains(msg, "Rate Limit Exceeded") {
		kind = serrors.ErrRateLimited
	}

	return serrors.With(kind, "%s failed with status %d: %s", what, resp.Status, msg)
}

const maxErrorBody = 256

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n] + "..."
}
