// Package v1handler implements the generated v1 API handler: course search
// and single content retrieval, guarded by bearer token verification.
package v1handler

import (
	"context"
	"coursesearch/internal/api/specs/v1specs"
	"coursesearch/internal/search"
	"coursesearch/pkg/logger"
	"coursesearch/pkg/serrors"
	"errors"
	"fmt"
	"net/http"

	"github.com/ogen-go/ogen/ogenerrors"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// Deps are the services the handlers call.
type Deps struct {
	Searcher search.Searcher
	// BaseURL is the Canvas instance searched courses live on.
	BaseURL string
	// Meter records API level search metrics. A nil meter disables them.
	Meter metric.Meter
}

type Handler struct {
	deps Deps

	searches metric.Int64Counter
	matches  metric.Int64Histogram
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) (*Handler, error) {
	if deps.Meter == nil {
		deps.Meter = noop.NewMeterProvider().Meter("")
	}

	searches, err := deps.Meter.Int64Counter("coursesearch.api.searches",
		metric.WithDescription("Searches served by the v1 API, by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create searches counter: %w", err)
	}
	matches, err := deps.Meter.Int64Histogram("coursesearch.api.matches",
		metric.WithDescription("Match records returned per search."))
	if err != nil {
		return nil, fmt.Errorf("could not create matches histogram: %w", err)
	}

	return &Handler{
		deps:     deps,
		searches: searches,
		matches:  matches,
	}, nil
}

// NewError maps err to the API error response. Server side failures are
// logged and their details are not sent to the client.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ServerErrorStatusCode {
	status := serrors.HTTPStatus(err)
	code := serrors.ErrInternal.Error()
	message := err.Error()

	var kind serrors.Kind
	if errors.As(err, &kind) {
		code = kind.Error()
	}
	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Message() != "" {
		message = sErr.Message()
	}

	var secErr *ogenerrors.SecurityError
	if errors.As(err, &secErr) && status == http.StatusInternalServerError {
		status = http.StatusUnauthorized
		code = serrors.ErrUnauthorized.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		if status == http.StatusInternalServerError {
			code = serrors.ErrInternal.Error()
			message = "internal error"
		}
	}

	return &v1specs.ServerErrorStatusCode{
		StatusCode: status,
		Response: v1specs.ServerError{
			Code:    code,
			Message: message,
		},
	}
}
