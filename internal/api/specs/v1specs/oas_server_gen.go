// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// GetContent implements getContent operation.
	//
	// Get a single content item.
	//
	// GET /courses/{courseID}/content/{kind}/{key}
	GetContent(ctx context.Context, params GetContentParams) (*ContentResponse, error)
	// SearchCourse implements searchCourse operation.
	//
	// Search a course.
	//
	// GET /courses/{courseID}/search
	SearchCourse(ctx context.Context, params SearchCourseParams) (*SearchResponse, error)
	// NewError creates *ServerErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ServerErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
