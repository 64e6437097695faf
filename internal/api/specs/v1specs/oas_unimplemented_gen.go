// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// GetContent implements getContent operation.
//
// Get a single content item.
//
// GET /courses/{courseID}/content/{kind}/{key}
func (UnimplementedHandler) GetContent(ctx context.Context, params GetContentParams) (r *ContentResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// SearchCourse implements searchCourse operation.
//
// Search a course.
//
// GET /courses/{courseID}/search
func (UnimplementedHandler) SearchCourse(ctx context.Context, params SearchCourseParams) (r *SearchResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ServerErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ServerErrorStatusCode) {
	r = new(ServerErrorStatusCode)
	return r
}
