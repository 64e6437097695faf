package domain

import (
	"strconv"
	"strings"
)

// Kind tags the content buckets of an Index.
type Kind string

const (
	KindAssignment Kind = "Assignment"
	KindDiscussion Kind = "Discussion"
	KindQuiz       Kind = "Quiz"
	KindPage       Kind = "Page"
	KindModuleItem Kind = "ModuleItem"
)

// Kinds lists every content kind in the order buckets are harvested and searched.
var Kinds = []Kind{KindAssignment, KindDiscussion, KindQuiz, KindPage, KindModuleItem} //nolint: gochecknoglobals

// ParseKind accepts a kind name in any case, or the Canvas resource name
// ("assignments", "discussion_topics", "quizzes", "pages").
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), s) || (k != KindModuleItem && k.Resource() == s) {
			return k, true
		}
	}

	return "", false
}

// Resource returns the Canvas API collection a kind is fetched from. Module
// items have no collection of their own.
func (k Kind) Resource() string {
	switch k {
	case KindAssignment:
		return "assignments"
	case KindDiscussion:
		return "discussion_topics"
	case KindQuiz:
		return "quizzes"
	case KindPage:
		return "pages"
	default:
		return ""
	}
}

// Content is the closed set of searchable content kinds. Only the types of
// this package implement it.
type Content interface {
	// Kind returns the bucket the content belongs to.
	Kind() Kind
	// Key returns the bucket key: the numeric ID, or the URL slug for pages.
	Key() string
	// DisplayName is the title shown in results.
	DisplayName() string
	// SearchableText returns the text the matcher scans. It is HTML unless
	// IsHTML reports false.
	SearchableText() string
	IsHTML() bool

	sealed()
}

// Assignment is a Canvas assignment.
type Assignment struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url,omitempty"`
	Published   bool   `json:"published"`
}

func (a Assignment) Kind() Kind             { return KindAssignment }
func (a Assignment) Key() string            { return strconv.FormatInt(a.ID, 10) }
func (a Assignment) DisplayName() string    { return a.Name }
func (a Assignment) SearchableText() string { return a.Description }
func (a Assignment) IsHTML() bool           { return true }
func (a Assignment) sealed()                {}

// Discussion is a Canvas discussion topic.
type Discussion struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	HTMLURL   string `json:"html_url,omitempty"`
	Published bool   `json:"published"`
}

func (d Discussion) Kind() Kind             { return KindDiscussion }
func (d Discussion) Key() string            { return strconv.FormatInt(d.ID, 10) }
func (d Discussion) DisplayName() string    { return d.Title }
func (d Discussion) SearchableText() string { return d.Message }
func (d Discussion) IsHTML() bool           { return true }
func (d Discussion) sealed()                {}

// Quiz is a classic Canvas quiz.
type Quiz struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url,omitempty"`
	Published   bool   `json:"published"`
}

func (q Quiz) Kind() Kind             { return KindQuiz }
func (q Quiz) Key() string            { return strconv.FormatInt(q.ID, 10) }
func (q Quiz) DisplayName() string    { return q.Title }
func (q Quiz) SearchableText() string { return q.Description }
func (q Quiz) IsHTML() bool           { return true }
func (q Quiz) sealed()                {}

// Page is a Canvas wiki page. Pages are addressed by their URL slug.
type Page struct {
	PageID    int64  `json:"page_id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	HTMLURL   string `json:"html_url,omitempty"`
	Published bool   `json:"published"`
}

func (p Page) Kind() Kind             { return KindPage }
func (p Page) Key() string            { return p.URL }
func (p Page) DisplayName() string    { return p.Title }
func (p Page) SearchableText() string { return p.Body }
func (p Page) IsHTML() bool           { return true }
func (p Page) sealed()                {}

// Module item types as reported by Canvas.
const (
	ItemAssignment   = "Assignment"
	ItemDiscussion   = "Discussion"
	ItemQuiz         = "Quiz"
	ItemPage         = "Page"
	ItemExternalURL  = "ExternalUrl"
	ItemExternalTool = "ExternalTool"
	ItemSubHeader    = "SubHeader"
	ItemFile         = "File"
)

// ModuleItem is an entry of a course module. Only external URL and external
// tool items are stored as content; the other types point at content that
// lives in its own bucket.
type ModuleItem struct {
	ID          int64  `json:"id"`
	ModuleID    int64  `json:"module_id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	ContentID   int64  `json:"content_id,omitempty"`
	PageURL     string `json:"page_url,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
	HTMLURL     string `json:"html_url,omitempty"`
}

func (m ModuleItem) Kind() Kind             { return KindModuleItem }
func (m ModuleItem) Key() string            { return strconv.FormatInt(m.ID, 10) }
func (m ModuleItem) DisplayName() string    { return m.Title }
func (m ModuleItem) SearchableText() string { return m.ExternalURL }
func (m ModuleItem) IsHTML() bool           { return false }
func (m ModuleItem) sealed()                {}

// Target returns the kind and bucket key of the content the item points at.
// ok is false for items that are content themselves or are not searchable.
func (m ModuleItem) Target() (kind Kind, key string, ok bool) {
	switch m.Type {
	case ItemAssignment:
		return KindAssignment, strconv.FormatInt(m.ContentID, 10), m.ContentID != 0
	case ItemDiscussion:
		return KindDiscussion, strconv.FormatInt(m.ContentID, 10), m.ContentID != 0
	case ItemQuiz:
		return KindQuiz, strconv.FormatInt(m.ContentID, 10), m.ContentID != 0
	case ItemPage:
		return KindPage, m.PageURL, m.PageURL != ""
	default:
		return "", "", false
	}
}

// IsExternal reports whether the item is searchable on its own.
func (m ModuleItem) IsExternal() bool {
	return m.Type == ItemExternalURL || m.Type == ItemExternalTool
}

// Module is a course module with its items inlined.
type Module struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Items []ModuleItem `json:"items"`
}
