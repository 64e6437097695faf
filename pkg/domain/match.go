package domain

import (
	"fmt"
)

// Match is one content item that contains at least one query term.
type Match struct {
	ID   string `json:"id" yaml:"id"`
	Kind Kind   `json:"kind" yaml:"kind"`
	// Type is the lower-case record type: assignment, discussion_topic,
	// quiz, page, or the Canvas item type for module items.
	Type     string   `json:"type" yaml:"type"`
	Name     string   `json:"name" yaml:"name"`
	Link     string   `json:"link" yaml:"link"`
	Snippets []string `json:"snippets" yaml:"snippets"`
}

// NewMatch builds the match record of c found in courseID.
func NewMatch(courseID string, c Content, snippets []string) Match {
	return Match{
		ID:       c.Key(),
		Kind:     c.Kind(),
		Type:     MatchType(c),
		Name:     c.DisplayName(),
		Link:     ContentLink(courseID, c.Kind(), c.Key()),
		Snippets: snippets,
	}
}

// MatchType returns the record type reported for c.
func MatchType(c Content) string {
	switch v := c.(type) {
	case Assignment:
		return "assignment"
	case Discussion:
		return "discussion_topic"
	case Quiz:
		return "quiz"
	case Page:
		return "page"
	case ModuleItem:
		return v.Type
	default:
		return ""
	}
}

// Label is the human readable type shown next to a match.
func (m Match) Label() string {
	switch m.Type {
	case "assignment":
		return "Assignment"
	case "discussion_topic":
		return "Discussion Topic"
	case "quiz":
		return "Quiz"
	case "page":
		return "Page"
	case ItemExternalURL:
		return "External URL"
	case ItemExternalTool:
		return "External Tool"
	default:
		return m.Type
	}
}

// ContentLink returns the course-relative path of a content item in the
// Canvas web UI.
func ContentLink(courseID string, kind Kind, key string) string {
	resource := kind.Resource()
	if kind == KindModuleItem {
		resource = "modules/items"
	}

	return fmt.Sprintf("/courses/%s/%s/%s", courseID, resource, key)
}
