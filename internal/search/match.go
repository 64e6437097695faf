package search

import (
	"coursesearch/pkg/domain"
	"sort"
)

// Match scans every bucket of idx and returns one record per item that
// contains a query term. Records are ordered by snippet count, highest
// first; ties keep bucket order.
func Match(courseID string, idx *domain.Index, q *Query) []domain.Match {
	matches := []domain.Match{}
	for _, kind := range domain.Kinds {
		for _, c := range idx.Bucket(kind) {
			snippets := q.Snippets(Text(c))
			if len(snippets) == 0 {
				continue
			}
			matches = append(matches, domain.NewMatch(courseID, c, snippets))
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].Snippets) > len(matches[j].Snippets)
	})

	return matches
}
