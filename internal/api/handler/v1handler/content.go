package v1handler

import (
	"context"
	"coursesearch/internal/api/specs/v1specs"
	"coursesearch/internal/render"
	"coursesearch/pkg/canvas"
	"coursesearch/pkg/domain"
	"coursesearch/pkg/serrors"
)

// GetContent fetches one content item and returns its body as markdown.
func (h *Handler) GetContent(ctx context.Context, params v1specs.GetContentParams) (*v1specs.ContentResponse, error) {
	kind, ok := domain.ParseKind(params.Kind)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown content kind %q", params.Kind)
	}

	c, err := h.deps.Searcher.Content(ctx, canvas.NewCourse(h.deps.BaseURL, params.CourseID), kind, params.Key)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	md, err := render.Content(c)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.ContentResponse{
		Kind:     string(c.Kind()),
		Key:      c.Key(),
		Name:     c.DisplayName(),
		Link:     domain.ContentLink(params.CourseID, c.Kind(), c.Key()),
		Markdown: md,
	}, nil
}
