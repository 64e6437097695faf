package canvas_test

import (
	"context"
	"coursesearch/pkg/canvas"
	"coursesearch/pkg/serrors"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestTransport(t *testing.T, creds canvas.Credentials, fn rtFunc) *canvas.HTTPTransport {
	t.Helper()
	tr, err := canvas.NewHTTPTransport(&http.Client{Transport: fn}, "https://school.instructure.com/", creds)
	require.NoError(t, err)

	return tr
}

func TestParseRateLimit(t *testing.T) {
	h := http.Header{}
	h.Set("X-Rate-Limit-Remaining", "699.25")
	h.Set("X-Request-Cost", "0.75")

	rl := canvas.ParseRateLimit(h)
	require.True(t, rl.Known)
	require.InDelta(t, 699.25, rl.Remaining, 0.0001)
	require.InDelta(t, 0.75, rl.Cost, 0.0001)

	require.False(t, canvas.ParseRateLimit(http.Header{}).Known)
}

func TestNewHTTPTransport_RequiresAbsoluteURL(t *testing.T) {
	_, err := canvas.NewHTTPTransport(nil, "school.instructure.com", canvas.Credentials{})
	require.Error(t, err)
}

func TestHTTPTransport_GET(t *testing.T) {
	tr := newTestTransport(t, canvas.Credentials{
		AccessToken:   "tok",
		CSRFToken:     "csrf",
		SessionCookie: "canvas_session=abc",
	}, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "school.instructure.com", r.URL.Host)
		require.Equal(t, "/api/v1/courses/12/pages", r.URL.Path)
		require.Equal(t, "body", r.URL.Query().Get("include[]"))
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "csrf", r.Header.Get("X-CSRF-Token"))
		require.Equal(t, "canvas_session=abc", r.Header.Get("Cookie"))
		require.Equal(t, "application/json;charset=utf-8", r.Header.Get("Content-Type"))

		h := http.Header{}
		h.Set("X-Rate-Limit-Remaining", "600")
		h.Set("Link", `<https://school.instructure.com/api/v1/courses/12/pages?page=3>; rel="next"`)

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader(`while(1);[]`)),
		}, nil
	})

	resp, err := tr.Do(context.Background(), canvas.Request{
		Method: http.MethodGet,
		Path:   "/api/v1/courses/12/pages",
		Query:  url.Values{"include[]": {"body"}, "page": {"2"}},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, `while(1);[]`, string(resp.Body))
	require.True(t, resp.RateLimit.Known)
	require.NotEmpty(t, resp.Header.Get("Link"))
}

func TestHTTPTransport_POSTSendsJSONBody(t *testing.T) {
	tr := newTestTransport(t, canvas.Credentials{}, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Empty(t, r.URL.RawQuery)
		require.Empty(t, r.Header.Get("Authorization"))
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"title":"x"}`, string(b))

		return &http.Response{StatusCode: http.StatusCreated, Body: io.NopCloser(strings.NewReader(`{}`))}, nil
	})

	resp, err := tr.Do(context.Background(), canvas.Request{
		Method: http.MethodPost,
		Path:   "/api/v1/courses/12/pages",
		Query:  url.Values{"ignored": {"1"}},
		Body:   map[string]string{"title": "x"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.Status)
}

func TestHTTPTransport_Non2xxIsNotAnError(t *testing.T) {
	tr := newTestTransport(t, canvas.Credentials{}, func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader("bad upstream"))}, nil
	})

	resp, err := tr.Do(context.Background(), canvas.Request{Method: http.MethodGet, Path: "/api/v1/courses/1/quizzes"})
	require.NoError(t, err)
	require.Equal(t, http.StatusBadGateway, resp.Status)
}

func TestHTTPTransport_SendError(t *testing.T) {
	boom := errors.New("dial tcp: no route to host")
	tr := newTestTransport(t, canvas.Credentials{}, func(r *http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := tr.Do(context.Background(), canvas.Request{Method: http.MethodGet, Path: "/api/v1/courses/1/quizzes"})
	require.ErrorIs(t, err, boom)
}

func TestStatusError(t *testing.T) {
	err := canvas.StatusError(&canvas.Response{
		Status: http.StatusNotFound,
		Body:   []byte(`while(1);{"errors":[{"message":"The specified resource does not exist."}]}`),
	}, "GET assignments")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Contains(t, err.Error(), "status 404")
	require.NotContains(t, err.Error(), "while(1);")

	err = canvas.StatusError(&canvas.Response{Status: http.StatusForbidden, Body: []byte("403 Forbidden (Rate Limit Exceeded)")}, "GET")
	require.ErrorIs(t, err, serrors.ErrRateLimited)

	err = canvas.StatusError(&canvas.Response{Status: http.StatusForbidden, Body: []byte("unauthorized")}, "GET")
	require.ErrorIs(t, err, serrors.ErrForbidden)

	err = canvas.StatusError(&canvas.Response{Status: http.StatusInternalServerError, Body: []byte(strings.Repeat("x", 1000))}, "GET")
	require.Less(t, len(err.Error()), 400)
}

func TestStatusError_TruncatesOnRuneBoundary(t *testing.T) {
	// "a" shifts every two-byte "é" so that byte 256 falls inside a rune.
	body := "a" + strings.Repeat("é", 200)

	err := canvas.StatusError(&canvas.Response{Status: http.StatusBadGateway, Body: []byte(body)}, "GET pages")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.True(t, utf8.ValidString(err.Error()))
	require.True(t, strings.HasSuffix(err.Error(), "é..."))
	require.Contains(t, err.Error(), "a"+strings.Repeat("é", 127)+"...")
	require.NotContains(t, err.Error(), strings.Repeat("é", 128))
}
