package serrors_test

import (
	"context"
	"coursesearch/pkg/serrors"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
		serrors.ErrUpstream,
		serrors.ErrMalformed,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection reset")

	e1 := serrors.With(serrors.ErrNotFound, "assignment %d not found", 42)
	require.Equal(t, "assignment 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "fetching quizzes")
	require.Equal(t, "fetching quizzes: connection reset", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestFromStatus(t *testing.T) {
	cases := map[int]serrors.Kind{
		http.StatusBadRequest:          serrors.ErrBadRequest,
		http.StatusUnauthorized:        serrors.ErrUnauthorized,
		http.StatusForbidden:           serrors.ErrForbidden,
		http.StatusNotFound:            serrors.ErrNotFound,
		http.StatusTooManyRequests:     serrors.ErrRateLimited,
		http.StatusGatewayTimeout:      serrors.ErrTimeout,
		http.StatusBadGateway:          serrors.ErrUnavailable,
		http.StatusInternalServerError: serrors.ErrUnavailable,
		http.StatusTeapot:              serrors.ErrUpstream,
	}
	for status, want := range cases {
		require.Equal(t, want, serrors.FromStatus(status), "status %d", status)
	}
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, http.StatusOK, serrors.HTTPStatus(nil))
	require.Equal(t, http.StatusBadRequest, serrors.HTTPStatus(serrors.With(serrors.ErrBadRequest, "empty query")))
	require.Equal(t, http.StatusNotFound,
		serrors.HTTPStatus(fmt.Errorf("could not fetch page: %w", serrors.KindOnly(serrors.ErrNotFound))))
	require.Equal(t, http.StatusBadGateway, serrors.HTTPStatus(serrors.KindOnly(serrors.ErrMalformed)))
	require.Equal(t, http.StatusTooManyRequests, serrors.HTTPStatus(serrors.KindOnly(serrors.ErrRateLimited)))
	require.Equal(t, http.StatusGatewayTimeout,
		serrors.HTTPStatus(fmt.Errorf("could not harvest course: %w", context.DeadlineExceeded)))
	require.Equal(t, http.StatusInternalServerError, serrors.HTTPStatus(errors.New("boom")))
}
