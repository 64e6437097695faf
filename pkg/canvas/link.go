package canvas

import (
	"net/url"
	"strconv"
	"strings"
)

// Links maps a relation name (next, prev, first, last, current) to the URL
// Canvas advertised for it in the Link response header.
type Links map[string]*url.URL

// ParseLinks parses an RFC 8288 Link header value such as
//
//	<https://x/api/v1/courses/1/users?page=2&per_page=100>; rel="next", <...>; rel="last"
//
// Entries with unparsable URLs are skipped. A relation listed more than once
// keeps its first URL.
func ParseLinks(header string) Links {
	links := Links{}
	rest := header
	for {
		open := strings.IndexByte(rest, '<')
		if open < 0 {
			return links
		}
		closing := strings.IndexByte(rest[open:], '>')
		if closing < 0 {
			return links
		}
		raw := rest[open+1 : open+closing]
		rest = rest[open+closing+1:]

		params := rest
		if next := strings.IndexByte(rest, '<'); next >= 0 {
			params = rest[:next]
		}

		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		for _, rel := range relations(params) {
			if _, ok := links[rel]; !ok {
				links[rel] = u
			}
		}
	}
}

// relations extracts the space separated values of the rel parameter.
func relations(params string) []string {
	for _, p := range strings.Split(params, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "rel") {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)

		return strings.Fields(strings.ToLower(value))
	}

	return nil
}

// Page returns the page query parameter of the given relation. For cursor
// paginated endpoints this is an opaque token.
func (l Links) Page(rel string) (string, bool) {
	u, ok := l[rel]
	if !ok {
		return "", false
	}
	page := u.Query().Get("page")

	return page, page != ""
}

// LastPage returns the integer page number of the last relation, when Canvas
// is able to tell it.
func (l Links) LastPage() (int, bool) {
	page, ok := l.Page("last")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(page)
	if err != nil || n < 1 {
		return 0, false
	}

	return n, true
}
