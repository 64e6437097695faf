package v1handler

import (
	"context"
	"coursesearch/internal/api/specs/v1specs"
	"coursesearch/internal/search"
	"coursesearch/pkg/canvas"
	"coursesearch/pkg/serrors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func SearchResponseToV1Specs(in *search.Response) *v1specs.SearchResponse {
	out := &v1specs.SearchResponse{
		RunId: in.RunID,
		Course: v1specs.Course{
			BaseUrl: in.Course.BaseURL,
			Server:  string(in.Course.Server),
			ID:      in.Course.ID,
		},
		Query:    append([]string{}, in.Query...),
		Matches:  make([]v1specs.Match, 0, len(in.Matches)),
		Searched: in.Searched,
	}

	for _, m := range in.Matches {
		out.Matches = append(out.Matches, v1specs.Match{
			ID:       m.ID,
			Kind:     string(m.Kind),
			Type:     m.Type,
			Name:     m.Name,
			Link:     m.Link,
			Snippets: append([]string{}, m.Snippets...),
		})
	}
	for _, f := range in.Failures {
		out.Failures = append(out.Failures, v1specs.Failure{
			Resource: f.Resource,
			Key:      f.Key,
			Message:  f.Message,
		})
	}

	return out
}

// SearchCourse harvests the course and returns the items matching params.Q.
func (h *Handler) SearchCourse(ctx context.Context, params v1specs.SearchCourseParams) (*v1specs.SearchResponse, error) {
	if strings.TrimSpace(params.Q) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "query parameter q is required")
	}

	res, err := h.deps.Searcher.Search(ctx, canvas.NewCourse(h.deps.BaseURL, params.CourseID), params.Q)
	if err != nil {
		h.searches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))

		return nil, err //nolint: wrapcheck
	}

	outcome := "complete"
	if len(res.Failures) > 0 {
		outcome = "partial"
	}
	h.searches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	h.matches.Record(ctx, int64(len(res.Matches)))

	return SearchResponseToV1Specs(res), nil
}
