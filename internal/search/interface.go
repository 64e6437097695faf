// Package search runs a course search: it harvests the course, scans the
// content index for the query terms and returns ranked match records.
package search

import (
	"context"
	"coursesearch/internal/harvester"
	"coursesearch/pkg/canvas"
	"coursesearch/pkg/domain"
)

// Response is the outcome of one search.
type Response struct {
	RunID   string         `json:"runId" yaml:"runId"`
	Course  canvas.Course  `json:"course" yaml:"course"`
	Query   []string       `json:"query" yaml:"query"`
	Matches []domain.Match `json:"matches" yaml:"matches"`
	// Searched is the number of content items scanned.
	Searched int                 `json:"searched" yaml:"searched"`
	Failures []harvester.Failure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

//go:generate mockgen -package mocksearch -source=interface.go -destination=mock/mocksearch.go *
type Searcher interface {
	// Search harvests course and returns the items matching query.
	Search(ctx context.Context, course canvas.Course, query string) (*Response, error)
	// Content fetches a single content item.
	Content(ctx context.Context, course canvas.Course, kind domain.Kind, key string) (domain.Content, error)
}

// Harvester is the part of harvester.Harvester a Searcher depends on.
type Harvester interface {
	Harvest(ctx context.Context, course canvas.Course) (*harvester.Result, error)
	FetchContent(ctx context.Context, course canvas.Course, kind domain.Kind, key string) (domain.Content, error)
}
