package search_test

import (
	"coursesearch/internal/search"
	"coursesearch/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatch_OrderBySnippetCount(t *testing.T) {
	idx := domain.NewIndex()
	idx.Put(domain.Assignment{ID: 1, Name: "Lab", Description: "<p>bring goggles</p>"})
	idx.Put(domain.Discussion{ID: 2, Title: "Safety", Message: "<p>goggles required</p>"})
	idx.Put(domain.Page{URL: "rules", Title: "Rules", Body: "<p>goggles on. goggles off. goggles stored.</p>"})
	idx.Put(domain.Quiz{ID: 3, Title: "Quiz", Description: "<p>no match</p>"})
	idx.Put(domain.ModuleItem{ID: 4, Title: "Shop", Type: domain.ItemExternalURL, ExternalURL: "https://shop.example.com/goggles"})

	q, err := search.ParseQuery("goggles")
	require.NoError(t, err)

	got := search.Match("12", idx, q)
	require.Len(t, got, 4)

	require.Equal(t, "rules", got[0].ID)
	require.Len(t, got[0].Snippets, 3)
	// ties keep the Assignment, Discussion, Quiz, Page, ModuleItem order.
	require.Equal(t, "assignment", got[1].Type)
	require.Equal(t, "discussion_topic", got[2].Type)
	require.Equal(t, "ExternalUrl", got[3].Type)
	require.Equal(t, "/courses/12/modules/items/4", got[3].Link)
}

func TestMatch_NoMatchesIsEmpty(t *testing.T) {
	idx := domain.NewIndex()
	idx.Put(domain.Assignment{ID: 1, Description: "<p>hello</p>"})

	q, err := search.ParseQuery("absent")
	require.NoError(t, err)

	got := search.Match("12", idx, q)
	require.NotNil(t, got)
	require.Empty(t, got)
}
