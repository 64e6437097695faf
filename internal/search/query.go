package search

import (
	"coursesearch/pkg/serrors"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`(?:"[^"]*"|[^"\s]+)+`) //nolint: gochecknoglobals

// Query is a parsed search string. Terms are matched literally and
// case-insensitively; a term matches inside a longer word.
type Query struct {
	Terms []string

	snippet *regexp.Regexp
	term    *regexp.Regexp
}

// ParseQuery splits raw on whitespace, keeping double-quoted phrases
// together and dropping the quotes.
func ParseQuery(raw string) (*Query, error) {
	var terms []string
	for _, tok := range tokenPattern.FindAllString(raw, -1) {
		tok = strings.ReplaceAll(tok, `"`, "")
		if strings.TrimSpace(tok) == "" {
			continue
		}
		terms = append(terms, tok)
	}
	if len(terms) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "search query is empty")
	}

	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	alt := strings.Join(quoted, "|")

	return &Query{
		Terms: terms,
		// a word of context on each side of the token holding the term.
		snippet: regexp.MustCompile(`(?i)(\w*\s+)?[^\s]*(` + alt + `)[^\s]*(\s+\w*)?`),
		term:    regexp.MustCompile(`(?i)` + alt),
	}, nil
}

// Snippets returns every match of the query in text, with surrounding
// context and each term occurrence wrapped in ***.
func (q *Query) Snippets(text string) []string {
	found := q.snippet.FindAllString(text, -1)
	if len(found) == 0 {
		return nil
	}

	out := make([]string, 0, len(found))
	for _, s := range found {
		s = strings.Join(strings.Fields(s), " ")
		out = append(out, q.term.ReplaceAllString(s, "***${0}***"))
	}

	return out
}

func (q *Query) String() string {
	return strings.Join(q.Terms, " ")
}
