package canvas

import (
	"context"
	"coursesearch/pkg/logger"
	"coursesearch/pkg/metrics"
	"coursesearch/pkg/serrors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// firstCursor is the page token that starts a cursor paginated listing.
const firstCursor = "first"

var tracer = otel.Tracer("coursesearch/pkg/canvas") //nolint: gochecknoglobals

// Options configure a Paginator.
type Options struct {
	// BatchSize is the maximum number of concurrent page requests in the bulk
	// phase. Zero means DefaultBatchSize.
	BatchSize int
}

// Paginator is the Fetcher implementation. It picks a pagination strategy
// from the endpoint shape:
//
//   - non-GET requests and progress endpoints: one request, no pagination;
//   - audit endpoints: cursor pagination, following the page token of the
//     Link header's rel="next" entry while pages come back full;
//   - everything else: integer pages. Page 1 is fetched first. A full page
//     whose Link header advertises an integer rel="last" switches to the
//     bulk phase, which fetches the remaining pages in sequential batches of
//     at most BatchSize concurrent requests. Without a known last page the
//     following pages are fetched one by one until a page is not full.
//
// In the bulk phase a page answered with a non-200 status, or with a body
// that is not an array, is skipped: it is logged, counted and listed in
// Result.Dropped, and the fetch carries on. Every other failure aborts the
// endpoint fetch with an error.
type Paginator struct {
	transport Transport
	batchSize int
}

// Ensure Paginator conforms to the Fetcher interface at compile time.
var _ Fetcher = (*Paginator)(nil)

// NewPaginator returns a Paginator sending its requests through transport.
func NewPaginator(transport Transport, opts Options) *Paginator {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	return &Paginator{
		transport: transport,
		batchSize: opts.BatchSize,
	}
}

// FetchAll implements Fetcher.
func (p *Paginator) FetchAll(ctx context.Context,
	method string,
	endpoint Endpoint,
	params url.Values) (res *Result, err error) {
	ctx, span := tracer.Start(ctx, "canvas.FetchAll", trace.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("canvas.endpoint", endpoint.Path()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("canvas.pages", res.Pages), attribute.Int("canvas.items", len(res.Items)))
		}
		span.End()
	}()

	ctx = logger.WithFields(ctx, zap.String("endpoint", endpoint.Path()), zap.String("method", method))
	target := APIRoot + "/" + endpoint.Path()

	switch {
	case method != http.MethodGet || endpoint.IsProgress():
		return p.fetchOne(ctx, method, target, params)
	case endpoint.IsAudit():
		return p.fetchCursor(ctx, target, params)
	default:
		return p.fetchIndexed(ctx, target, params)
	}
}

// fetchOne issues a single request and returns its body unchanged.
func (p *Paginator) fetchOne(ctx context.Context, method, target string, params url.Values) (*Result, error) {
	req := Request{Method: method, Path: target}
	if method == http.MethodGet {
		req.Query = params
	} else if len(params) > 0 {
		req.Body = valuesToJSON(params)
	}

	resp, err := p.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not call %s: %w", target, err)
	}
	if resp.Status != http.StatusOK {
		return nil, StatusError(resp, method+" "+target)
	}

	body, err := DecodeBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", target, err)
	}

	return &Result{Items: body.Items, Object: body.Object, Pages: 1}, nil
}

// fetchCursor walks an audit log. Canvas answers {"events": [...]} and puts
// the next cursor in the Link header.
func (p *Paginator) fetchCursor(ctx context.Context, target string, params url.Values) (*Result, error) {
	res := &Result{}
	cursor := firstCursor

	for {
		resp, err := p.page(ctx, target, params, cursor)
		if err != nil {
			return nil, fmt.Errorf("could not fetch page %q: %w", cursor, err)
		}
		if resp.Status != http.StatusOK {
			return nil, StatusError(resp, "GET "+target)
		}
		events, err := DecodeEvents(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("could not decode page %q: %w", cursor, err)
		}
		res.Items = append(res.Items, events...)
		res.Pages++

		if len(events) < PageSize {
			return res, nil
		}

		next, ok := ParseLinks(resp.Header.Get("Link")).Page("next")
		if !ok {
			logger.Debug(ctx, "full audit page without next link, stopping", zap.Int("pages", res.Pages))

			return res, nil
		}
		cursor = next
	}
}

// fetchIndexed walks integer pages starting from page 1.
func (p *Paginator) fetchIndexed(ctx context.Context, target string, params url.Values) (*Result, error) {
	resp, err := p.page(ctx, target, params, "1")
	if err != nil {
		return nil, fmt.Errorf("could not fetch page 1: %w", err)
	}
	if resp.Status != http.StatusOK {
		return nil, StatusError(resp, "GET "+target)
	}
	body, err := DecodeBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not decode page 1: %w", err)
	}

	res := &Result{Pages: 1}
	if !body.IsArray {
		res.Object = body.Object

		return res, nil
	}
	res.Items = body.Items
	if len(body.Items) < PageSize {
		return res, nil
	}

	if last, ok := ParseLinks(resp.Header.Get("Link")).LastPage(); ok && last > 1 {
		logger.Debug(ctx, "last page known, fetching remaining pages in batches",
			zap.Int("lastPage", last), zap.Int("batchSize", p.batchSize))

		return p.fetchBulk(ctx, target, params, res, 2, last)
	}

	logger.Debug(ctx, "last page unknown, fetching sequentially")

	return p.fetchSequential(ctx, target, params, res, 2)
}

// fetchSequential fetches pages from start on until one is not full.
func (p *Paginator) fetchSequential(ctx context.Context,
	target string,
	params url.Values,
	res *Result,
	start int) (*Result, error) {
	for n := start; ; n++ {
		resp, err := p.page(ctx, target, params, strconv.Itoa(n))
		if err != nil {
			return nil, fmt.Errorf("could not fetch page %d: %w", n, err)
		}
		if resp.Status != http.StatusOK {
			return nil, StatusError(resp, "GET "+target)
		}
		body, err := DecodeBody(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("could not decode page %d: %w", n, err)
		}
		if !body.IsArray {
			return nil, serrors.With(serrors.ErrMalformed, "page %d of %s is not a collection", n, target)
		}
		res.Items = append(res.Items, body.Items...)
		res.Pages++

		if len(body.Items) < PageSize {
			return res, nil
		}
	}
}

// fetchBulk fetches pages first..last in batches of at most batchSize
// concurrent requests. Batches run one after the other; within a batch the
// pages are merged in page order once every request has returned.
func (p *Paginator) fetchBulk(ctx context.Context,
	target string,
	params url.Values,
	res *Result,
	first, last int) (*Result, error) {
	for start := first; start <= last; start += p.batchSize {
		end := min(start+p.batchSize-1, last)
		responses := make([]*Response, end-start+1)

		g, gctx := errgroup.WithContext(ctx)
		for i := range responses {
			n := start + i
			g.Go(func() error {
				resp, err := p.page(gctx, target, params, strconv.Itoa(n))
				if err != nil {
					return fmt.Errorf("could not fetch page %d: %w", n, err)
				}
				responses[i] = resp

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err //nolint: wrapcheck
		}

		for i, resp := range responses {
			n := start + i
			res.Pages++

			if resp.Status != http.StatusOK {
				p.drop(ctx, res, n, "status", zap.Int("status", resp.Status))

				continue
			}
			body, err := DecodeBody(resp.Body)
			if err != nil {
				return nil, fmt.Errorf("could not decode page %d: %w", n, err)
			}
			if !body.IsArray {
				p.drop(ctx, res, n, "not_array")

				continue
			}
			res.Items = append(res.Items, body.Items...)
		}
	}

	return res, nil
}

func (p *Paginator) drop(ctx context.Context, res *Result, page int, reason string, fields ...zap.Field) {
	res.Dropped = append(res.Dropped, page)
	metrics.DroppedPages.WithLabelValues(reason).Inc()
	logger.Warn(ctx, "dropping page from bulk fetch",
		append(fields, zap.Int("page", page), zap.String("reason", reason))...)
}

// page requests a single page. params is copied so that concurrent requests
// never share the map.
func (p *Paginator) page(ctx context.Context, target string, params url.Values, page string) (*Response, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", page)
	q.Set("per_page", strconv.Itoa(PageSize))

	resp, err := p.transport.Do(ctx, Request{Method: http.MethodGet, Path: target, Query: q})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if resp.RateLimit.Known {
		logger.Debug(ctx, "page fetched",
			zap.String("page", page),
			zap.Int("status", resp.Status),
			zap.Float64("rateLimitRemaining", resp.RateLimit.Remaining),
			zap.Float64("requestCost", resp.RateLimit.Cost))
	}

	return resp, nil
}

// valuesToJSON turns query parameters into a JSON object for non-GET bodies:
// single values become strings, repeated ones arrays.
func valuesToJSON(params url.Values) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		if len(v) == 1 {
			out[k] = v[0]
		} else {
			out[k] = v
		}
	}

	return out
}
