package domain_test

import (
	"coursesearch/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndex_PutIsIdempotent(t *testing.T) {
	idx := domain.NewIndex()

	require.True(t, idx.Put(domain.Assignment{ID: 7, Name: "first"}))
	require.False(t, idx.Put(domain.Assignment{ID: 7, Name: "second"}))

	require.Equal(t, 1, idx.Len(domain.KindAssignment))
	c, ok := idx.Get(domain.KindAssignment, "7")
	require.True(t, ok)
	require.Equal(t, "second", c.DisplayName())
}

func TestIndex_BucketsAreSeparate(t *testing.T) {
	idx := domain.NewIndex()
	idx.Put(domain.Assignment{ID: 1})
	idx.Put(domain.Quiz{ID: 1})
	idx.Put(domain.Page{URL: "syllabus"})

	require.True(t, idx.Has(domain.KindAssignment, "1"))
	require.True(t, idx.Has(domain.KindQuiz, "1"))
	require.False(t, idx.Has(domain.KindDiscussion, "1"))
	require.True(t, idx.Has(domain.KindPage, "syllabus"))
	require.Equal(t, 3, idx.Len(""))
	require.Equal(t, map[domain.Kind]int{
		domain.KindAssignment: 1,
		domain.KindDiscussion: 0,
		domain.KindQuiz:       1,
		domain.KindPage:       1,
		domain.KindModuleItem: 0,
	}, idx.Counts())
}

func TestIndex_BucketOrder(t *testing.T) {
	idx := domain.NewIndex()
	for _, id := range []int64{100, 9, 25} {
		idx.Put(domain.Discussion{ID: id})
	}
	idx.Put(domain.Page{URL: "week-2"})
	idx.Put(domain.Page{URL: "intro"})

	var keys []string
	for _, c := range idx.Bucket(domain.KindDiscussion) {
		keys = append(keys, c.Key())
	}
	require.Equal(t, []string{"9", "25", "100"}, keys)

	pages := idx.Bucket(domain.KindPage)
	require.Equal(t, "intro", pages[0].Key())
	require.Equal(t, "week-2", pages[1].Key())
}

func TestModuleItem_Target(t *testing.T) {
	tests := []struct {
		name string
		item domain.ModuleItem
		kind domain.Kind
		key  string
		ok   bool
	}{
		{"assignment", domain.ModuleItem{Type: domain.ItemAssignment, ContentID: 4}, domain.KindAssignment, "4", true},
		{"discussion", domain.ModuleItem{Type: domain.ItemDiscussion, ContentID: 5}, domain.KindDiscussion, "5", true},
		{"quiz", domain.ModuleItem{Type: domain.ItemQuiz, ContentID: 6}, domain.KindQuiz, "6", true},
		{"page by slug", domain.ModuleItem{Type: domain.ItemPage, ContentID: 99, PageURL: "intro"}, domain.KindPage, "intro", true},
		{"page without slug", domain.ModuleItem{Type: domain.ItemPage}, domain.KindPage, "", false},
		{"external url", domain.ModuleItem{Type: domain.ItemExternalURL}, "", "", false},
		{"sub header", domain.ModuleItem{Type: domain.ItemSubHeader}, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, key, ok := tt.item.Target()
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.kind, kind)
				require.Equal(t, tt.key, key)
			}
		})
	}
}

func TestModuleItem_IsSearchableByURL(t *testing.T) {
	item := domain.ModuleItem{ID: 3, Type: domain.ItemExternalTool, ExternalURL: "https://tool.example.com/launch"}

	require.True(t, item.IsExternal())
	require.False(t, item.IsHTML())
	require.Equal(t, "https://tool.example.com/launch", item.SearchableText())
	require.Equal(t, "3", item.Key())
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]domain.Kind{
		"assignment":        domain.KindAssignment,
		"Quiz":              domain.KindQuiz,
		"discussion_topics": domain.KindDiscussion,
		"pages":             domain.KindPage,
		"moduleitem":        domain.KindModuleItem,
	} {
		got, ok := domain.ParseKind(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}

	_, ok := domain.ParseKind("files")
	require.False(t, ok)
}

func TestContentLink(t *testing.T) {
	require.Equal(t, "/courses/12/assignments/4", domain.ContentLink("12", domain.KindAssignment, "4"))
	require.Equal(t, "/courses/12/discussion_topics/5", domain.ContentLink("12", domain.KindDiscussion, "5"))
	require.Equal(t, "/courses/12/pages/intro", domain.ContentLink("12", domain.KindPage, "intro"))
	require.Equal(t, "/courses/12/modules/items/8", domain.ContentLink("12", domain.KindModuleItem, "8"))
}

func TestNewMatch(t *testing.T) {
	m := domain.NewMatch("12", domain.Discussion{ID: 4, Title: "Welcome"}, []string{"say ***hello***"})
	require.Equal(t, domain.Match{
		ID:       "4",
		Kind:     domain.KindDiscussion,
		Type:     "discussion_topic",
		Name:     "Welcome",
		Link:     "/courses/12/discussion_topics/4",
		Snippets: []string{"say ***hello***"},
	}, m)
	require.Equal(t, "Discussion Topic", m.Label())

	item := domain.NewMatch("12", domain.ModuleItem{ID: 9, Type: domain.ItemExternalURL, Title: "Docs"}, nil)
	require.Equal(t, "ExternalUrl", item.Type)
	require.Equal(t, "External URL", item.Label())
	require.Equal(t, "/courses/12/modules/items/9", item.Link)

	require.Equal(t, "assignment", domain.MatchType(domain.Assignment{}))
	require.Equal(t, "page", domain.MatchType(domain.Page{}))
}
