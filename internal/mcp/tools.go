package mcp

import (
	"context"
	"coursesearch/internal/render"
	"coursesearch/internal/search"
	"coursesearch/pkg/canvas"
	"coursesearch/pkg/domain"
	"coursesearch/pkg/logger"
	"coursesearch/pkg/serrors"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// SearchRequest are the search_course arguments.
type SearchRequest struct {
	Query     string `json:"query"`
	CourseID  string `json:"course_id"`
	CourseURL string `json:"course_url"`
}

// ContentRequest are the get_content arguments.
type ContentRequest struct {
	Kind      string `json:"kind"`
	Key       string `json:"key"`
	CourseID  string `json:"course_id"`
	CourseURL string `json:"course_url"`
}

// SearchResult is the JSON payload returned by search_course.
type SearchResult struct {
	*search.Response

	// Summary is the markdown rendition of the matches.
	Summary string `json:"summary"`
}

// Tools holds the tool handlers. Tool failures are reported as tool results
// with IsError set, never as protocol errors.
type Tools struct {
	searcher search.Searcher
	baseURL  string
}

func NewTools(searcher search.Searcher, baseURL string) *Tools {
	return &Tools{searcher: searcher, baseURL: baseURL}
}

// SearchCourse handles search_course.
func (t *Tools) SearchCourse(ctx context.Context, _ mcp.CallToolRequest, args SearchRequest) (*mcp.CallToolResult, error) {
	if strings.TrimSpace(args.Query) == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	course, err := t.course(args.CourseID, args.CourseURL)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx = logger.WithFields(ctx, zap.String("tool", "search_course"))
	res, err := t.searcher.Search(ctx, course, args.Query)
	if err != nil {
		logger.Warn(ctx, "search failed", zap.Error(err))

		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return jsonResult(SearchResult{Response: res, Summary: render.Results(res, course.BaseURL)})
}

// GetContent handles get_content.
func (t *Tools) GetContent(ctx context.Context, _ mcp.CallToolRequest, args ContentRequest) (*mcp.CallToolResult, error) {
	kind, ok := domain.ParseKind(args.Kind)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown content kind %q", args.Kind)), nil
	}
	if args.Key == "" {
		return mcp.NewToolResultError("key is required"), nil
	}
	course, err := t.course(args.CourseID, args.CourseURL)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx = logger.WithFields(ctx, zap.String("tool", "get_content"))
	c, err := t.searcher.Content(ctx, course, kind, args.Key)
	if err != nil {
		logger.Warn(ctx, "get content failed", zap.Error(err))

		return mcp.NewToolResultError(fmt.Sprintf("could not get content: %v", err)), nil
	}

	md, err := render.Content(c)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(md), nil
}

// course resolves the course arguments. A course URL must point at the
// configured Canvas instance, since every request goes through its transport.
func (t *Tools) course(courseID, courseURL string) (canvas.Course, error) {
	if courseURL == "" {
		if courseID == "" {
			return canvas.Course{}, serrors.With(serrors.ErrBadRequest, "course_id or course_url is required")
		}

		return canvas.NewCourse(t.baseURL, courseID), nil
	}

	course, err := canvas.ParseCourseURL(courseURL)
	if err != nil {
		return canvas.Course{}, err
	}
	if t.baseURL != "" && !strings.EqualFold(course.BaseURL, strings.TrimRight(t.baseURL, "/")) {
		return canvas.Course{}, serrors.With(serrors.ErrBadRequest,
			"course_url %q is not on the configured Canvas instance %s", courseURL, t.baseURL)
	}

	return course, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(b)), nil
}
