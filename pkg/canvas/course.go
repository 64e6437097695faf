package canvas

import (
	"coursesearch/pkg/serrors"
	"fmt"
	"net/url"
	"strings"
)

// Server names the Canvas environment a course lives in.
type Server string

const (
	ServerLive Server = "live"
	ServerBeta Server = "beta"
	ServerTest Server = "test"
)

// CoursesView is the path segment Canvas uses for course-scoped resources.
const CoursesView = "courses"

// Course identifies the course whose content is harvested. It is parsed once
// from a course URL (or built from configuration) and passed explicitly to
// everything that needs it.
type Course struct {
	// BaseURL is the scheme and host of the Canvas instance, e.g. https://school.instructure.com.
	BaseURL string `json:"baseUrl"`
	// Server is derived from the host: beta and test instances carry a subdomain marker.
	Server Server `json:"server"`
	// View is the first path segment, "courses" for course pages.
	View string `json:"view"`
	// ID is the course identifier as it appears in the URL.
	ID string `json:"id"`
}

// NewCourse builds a Course for the given Canvas base URL and course ID.
func NewCourse(baseURL, id string) Course {
	c := Course{
		BaseURL: strings.TrimRight(baseURL, "/"),
		View:    CoursesView,
		ID:      id,
	}
	if u, err := url.Parse(c.BaseURL); err == nil {
		c.Server = serverFromHost(u.Hostname())
	} else {
		c.Server = ServerLive
	}

	return c
}

// ParseCourseURL extracts the course context from any URL below a course,
// e.g. https://school.beta.instructure.com/courses/123/modules.
func ParseCourseURL(raw string) (Course, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Course{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid course URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return Course{}, serrors.With(serrors.ErrBadRequest, "course URL %q must be absolute", raw)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[0] != CoursesView || segments[1] == "" {
		return Course{}, serrors.With(serrors.ErrBadRequest, "%q is not a course URL", raw)
	}

	return Course{
		BaseURL: u.Scheme + "://" + u.Host,
		Server:  serverFromHost(u.Hostname()),
		View:    segments[0],
		ID:      segments[1],
	}, nil
}

func serverFromHost(host string) Server {
	host = strings.ToLower(host)
	switch {
	case strings.HasSuffix(host, ".beta.instructure.com"):
		return ServerBeta
	case strings.HasSuffix(host, ".test.instructure.com"):
		return ServerTest
	default:
		return ServerLive
	}
}

// Endpoint returns the course-scoped endpoint for the given resource segments.
func (c Course) Endpoint(segments ...string) Endpoint {
	return NewEndpoint(append([]string{c.View, c.ID}, segments...)...)
}

// String renders the course as view/id, the form used in logs.
func (c Course) String() string {
	return fmt.Sprintf("%s/%s", c.View, c.ID)
}

// Endpoint is an ordered, immutable sequence of path segments below the API
// root, e.g. courses/12/assignments/7.
type Endpoint struct {
	segments []string
}

// NewEndpoint copies segments into a new Endpoint.
func NewEndpoint(segments ...string) Endpoint {
	return Endpoint{segments: append([]string(nil), segments...)}
}

// Segments returns a copy of the endpoint's path segments.
func (e Endpoint) Segments() []string {
	return append([]string(nil), e.segments...)
}

// Path returns the escaped path of the endpoint without a leading slash.
func (e Endpoint) Path() string {
	escaped := make([]string, len(e.segments))
	for i, s := range e.segments {
		escaped[i] = url.PathEscape(s)
	}

	return strings.Join(escaped, "/")
}

func (e Endpoint) String() string { return e.Path() }

// IsProgress reports whether the endpoint is a progress polling resource,
// which is never paginated.
func (e Endpoint) IsProgress() bool { return e.hasSegment("progress") }

// IsAudit reports whether the endpoint is an audit or event log, which is
// paginated with opaque cursor tokens.
func (e Endpoint) IsAudit() bool { return e.hasSegment("audit") }

// hasSegment matches whole segments only, so a page slug such as
// "course-audit-checklist" does not change how an endpoint is paginated.
func (e Endpoint) hasSegment(s string) bool {
	for _, seg := range e.segments {
		if seg == s {
			return true
		}
	}

	return false
}
