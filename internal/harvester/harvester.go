// Package harvester builds the content index of a course. It walks the
// course's collection endpoints one after the other, then resolves module
// items whose content was not returned by those collections with paced
// single-item fetches.
package harvester

import (
	"context"
	"coursesearch/pkg/canvas"
	"coursesearch/pkg/domain"
	"coursesearch/pkg/logger"
	"coursesearch/pkg/metrics"
	"coursesearch/pkg/serrors"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("coursesearch/internal/harvester") //nolint: gochecknoglobals

const resourceModules = "modules"

// collection describes one top-level endpoint walked by a harvest.
type collection struct {
	kind   domain.Kind
	params url.Values
}

func collections() []collection {
	return []collection{
		{kind: domain.KindAssignment},
		{kind: domain.KindDiscussion},
		{kind: domain.KindQuiz},
		{kind: domain.KindPage, params: url.Values{"include[]": {"body"}}},
	}
}

// Failure records a fetch that did not contribute to the index.
type Failure struct {
	// Resource is the Canvas collection, e.g. "quizzes" or "modules".
	Resource string `json:"resource" yaml:"resource"`
	// Key is set for dependent fetches of a single item.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`
	Err error  `json:"-" yaml:"-"`
	// Message is Err rendered for output formats.
	Message string `json:"message" yaml:"message"`
}

// Result is the outcome of one harvest run.
type Result struct {
	RunID    string
	Index    *domain.Index
	Failures []Failure
	// DependentFetches counts single-item fetches issued for module items.
	DependentFetches int
	Duration         time.Duration
}

// Harvester fetches course content through a canvas.Fetcher.
type Harvester struct {
	fetcher canvas.Fetcher
	pacer   Pacer
}

// New creates a Harvester. A nil pacer defaults to FixedDelay(DefaultItemDelay).
func New(fetcher canvas.Fetcher, pacer Pacer) *Harvester {
	if pacer == nil {
		pacer = FixedDelay(DefaultItemDelay)
	}

	return &Harvester{
		fetcher: fetcher,
		pacer:   pacer,
	}
}

// Harvest fetches every searchable item of the course. Failing endpoints are
// recorded in Result.Failures and do not stop the run; only context
// cancellation does. The returned index is complete once Harvest returns.
func (h *Harvester) Harvest(ctx context.Context, course canvas.Course) (res *Result, err error) {
	runID := uuid.NewString()
	ctx = logger.WithFields(ctx, zap.String("run_id", runID), zap.String("course", course.String()))
	ctx, span := tracer.Start(ctx, "harvester.Harvest", traceAttrs(runID, course)...)
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("harvest.items", res.Index.Len("")),
				attribute.Int("harvest.failures", len(res.Failures)))
		}
		span.End()
	}()

	res = &Result{
		RunID: runID,
		Index: domain.NewIndex(),
	}
	logger.Info(ctx, "harvest started")

	for _, c := range collections() {
		if err := h.collect(ctx, course, c, res.Index); err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("could not harvest %s: %w", c.kind.Resource(), ctx.Err())
			}
			res.fail(ctx, c.kind.Resource(), "", err)
		}
	}

	modules, err := h.modules(ctx, course)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("could not harvest modules: %w", ctx.Err())
		}
		res.fail(ctx, resourceModules, "", err)
	}
	if err := h.resolveItems(ctx, course, modules, res); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	metrics.HarvestDuration.Observe(res.Duration.Seconds())
	logger.Info(ctx, "harvest finished",
		zap.Int("items", res.Index.Len("")),
		zap.Int("dependent_fetches", res.DependentFetches),
		zap.Int("failures", len(res.Failures)),
		zap.Duration("duration", res.Duration))

	return res, nil
}

// FetchContent fetches a single assignment, discussion, quiz or page. Module
// items have no endpoint of their own and are rejected.
func (h *Harvester) FetchContent(ctx context.Context,
	course canvas.Course,
	kind domain.Kind,
	key string) (domain.Content, error) {
	resource := kind.Resource()
	if resource == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "%s content cannot be fetched on its own", kind)
	}
	if key == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "content key is required")
	}

	fetched, err := h.fetcher.FetchAll(ctx, http.MethodGet, course.Endpoint(resource, key), url.Values{"include[]": {"body"}})
	if err != nil {
		return nil, fmt.Errorf("could not fetch %s %s: %w", kind, key, err)
	}
	if !fetched.IsObject() {
		return nil, serrors.With(serrors.ErrMalformed, "%s %s: expected an object", kind, key)
	}

	return decodeContent(kind, fetched.Object)
}

func (h *Harvester) collect(ctx context.Context, course canvas.Course, c collection, idx *domain.Index) error {
	fetched, err := h.fetcher.FetchAll(ctx, http.MethodGet, course.Endpoint(c.kind.Resource()), c.params)
	if err != nil {
		return fmt.Errorf("could not fetch %s: %w", c.kind.Resource(), err)
	}
	if fetched.IsObject() {
		return serrors.With(serrors.ErrMalformed, "%s: expected an array", c.kind.Resource())
	}

	for _, raw := range fetched.Items {
		content, err := decodeContent(c.kind, raw)
		if err != nil {
			return err
		}
		idx.Put(content)
	}
	logger.Debug(ctx, "collection fetched",
		zap.String("resource", c.kind.Resource()),
		zap.Int("items", len(fetched.Items)),
		zap.Int("pages", fetched.Pages),
		zap.Ints("dropped_pages", fetched.Dropped))

	return nil
}

func (h *Harvester) modules(ctx context.Context, course canvas.Course) ([]domain.Module, error) {
	fetched, err := h.fetcher.FetchAll(ctx, http.MethodGet, course.Endpoint(resourceModules), url.Values{"include[]": {"items"}})
	if err != nil {
		return nil, fmt.Errorf("could not fetch modules: %w", err)
	}
	if fetched.IsObject() {
		return nil, serrors.With(serrors.ErrMalformed, "modules: expected an array")
	}

	modules := make([]domain.Module, 0, len(fetched.Items))
	for _, raw := range fetched.Items {
		var m domain.Module
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformed, err, "could not decode module")
		}
		modules = append(modules, m)
	}

	return modules, nil
}

// resolveItems stores external items and fetches the content of items whose
// target is missing from its bucket, pausing after every fetch.
func (h *Harvester) resolveItems(ctx context.Context, course canvas.Course, modules []domain.Module, res *Result) error {
	attempted := make(map[domain.Kind]map[string]struct{})

	for _, module := range modules {
		for _, item := range module.Items {
			if item.IsExternal() {
				res.Index.Put(item)

				continue
			}

			kind, key, ok := item.Target()
			if !ok || res.Index.Has(kind, key) {
				continue
			}
			if _, done := attempted[kind][key]; done {
				continue
			}
			if attempted[kind] == nil {
				attempted[kind] = make(map[string]struct{})
			}
			attempted[kind][key] = struct{}{}

			content, err := h.FetchContent(ctx, course, kind, key)
			res.DependentFetches++
			metrics.DependentFetches.WithLabelValues(string(kind)).Inc()
			switch {
			case ctx.Err() != nil:
				return fmt.Errorf("could not resolve module items: %w", ctx.Err())
			case err != nil:
				res.fail(ctx, kind.Resource(), key, err)
			default:
				res.Index.Put(content)
				logger.Debug(ctx, "module item content fetched",
					zap.Int64("module_id", module.ID),
					zap.Int64("item_id", item.ID),
					zap.String("kind", string(kind)),
					zap.String("key", key))
			}

			if err := h.pacer.Pause(ctx); err != nil {
				return fmt.Errorf("could not resolve module items: %w", err)
			}
		}
	}

	return nil
}

func (r *Result) fail(ctx context.Context, resource, key string, err error) {
	r.Failures = append(r.Failures, Failure{
		Resource: resource,
		Key:      key,
		Err:      err,
		Message:  err.Error(),
	})
	metrics.HarvestFailures.WithLabelValues(resource).Inc()
	logger.Warn(ctx, "harvest fetch failed",
		zap.String("resource", resource),
		zap.String("key", key),
		zap.Error(err))
}

func decodeContent(kind domain.Kind, raw json.RawMessage) (domain.Content, error) {
	var (
		content domain.Content
		err     error
	)
	switch kind {
	case domain.KindAssignment:
		var a domain.Assignment
		err = json.Unmarshal(raw, &a)
		content = a
	case domain.KindDiscussion:
		var d domain.Discussion
		err = json.Unmarshal(raw, &d)
		content = d
	case domain.KindQuiz:
		var q domain.Quiz
		err = json.Unmarshal(raw, &q)
		content = q
	case domain.KindPage:
		var p domain.Page
		err = json.Unmarshal(raw, &p)
		content = p
	case domain.KindModuleItem:
		var m domain.ModuleItem
		err = json.Unmarshal(raw, &m)
		content = m
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown content kind %q", kind)
	}
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformed, err, "could not decode %s", kind)
	}

	return content, nil
}

func traceAttrs(runID string, course canvas.Course) []trace.SpanStartOption {
	return []trace.SpanStartOption{trace.WithAttributes(
		attribute.String("harvest.run_id", runID),
		attribute.String("canvas.course_id", course.ID),
	)}
}
