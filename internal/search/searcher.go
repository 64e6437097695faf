package search

import (
	"context"
	"coursesearch/pkg/canvas"
	"coursesearch/pkg/domain"
	"coursesearch/pkg/logger"
	"fmt"

	"go.uber.org/zap"
)

// searcher is the concrete implementation of the Searcher interface.
type searcher struct {
	harvester Harvester
}

// Search parses the query before harvesting so that an empty query never
// reaches Canvas.
func (s searcher) Search(ctx context.Context, course canvas.Course, query string) (*Response, error) {
	q, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}

	res, err := s.harvester.Harvest(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("could not harvest course: %w", err)
	}

	matches := Match(course.ID, res.Index, q)
	logger.Info(ctx, "search finished",
		zap.String("run_id", res.RunID),
		zap.String("course", course.String()),
		zap.Strings("terms", q.Terms),
		zap.Int("matches", len(matches)))

	return &Response{
		RunID:    res.RunID,
		Course:   course,
		Query:    q.Terms,
		Matches:  matches,
		Searched: res.Index.Len(""),
		Failures: res.Failures,
	}, nil
}

// Content fetches a single item straight from Canvas.
func (s searcher) Content(ctx context.Context,
	course canvas.Course,
	kind domain.Kind,
	key string) (domain.Content, error) {
	c, err := s.harvester.FetchContent(ctx, course, kind, key)
	if err != nil {
		return nil, fmt.Errorf("could not get content: %w", err)
	}

	return c, nil
}

// New creates a Searcher backed by the given harvester.
func New(harvester Harvester) Searcher {
	return &searcher{harvester: harvester}
}
