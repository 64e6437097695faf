package main

import (
	"coursesearch/internal/config"
	"coursesearch/internal/harvester"
	"coursesearch/internal/search"
	"coursesearch/pkg/canvas"
	"fmt"
	"net/http"
)

// newSearcher wires the Canvas transport, paginator and harvester for the
// instance at baseURL.
func newSearcher(cfg *config.Config, baseURL string) (search.Searcher, error) {
	transport, err := canvas.NewHTTPTransport(
		&http.Client{Timeout: cfg.Canvas.RequestTimeout},
		baseURL,
		canvas.Credentials{
			AccessToken:   cfg.Canvas.AccessToken,
			CSRFToken:     cfg.Canvas.CSRFToken,
			SessionCookie: cfg.Canvas.SessionCookie,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("could not create canvas transport: %w", err)
	}

	paginator := canvas.NewPaginator(transport, canvas.Options{BatchSize: cfg.Canvas.BatchSize})
	h := harvester.New(paginator, harvester.NewPacer(cfg.Canvas.ItemDelay, cfg.Canvas.ItemBurst))

	return search.New(h), nil
}

// resolveCourse accepts a course URL, whose instance then overrides the
// configured one, or a bare course ID on the configured instance.
func resolveCourse(cfg *config.Config, arg string) (canvas.Course, error) {
	if course, err := canvas.ParseCourseURL(arg); err == nil {
		return course, nil
	}
	if cfg.Canvas.BaseURL == "" {
		return canvas.Course{}, fmt.Errorf("%q is not a course URL and no canvas base URL is configured", arg)
	}

	return canvas.NewCourse(cfg.Canvas.BaseURL, arg), nil
}
