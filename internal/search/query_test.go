package search_test

import (
	"coursesearch/internal/search"
	"coursesearch/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		raw   string
		terms []string
	}{
		{"cell", []string{"cell"}},
		{`cell "mitochondria membrane"  ATP`, []string{"cell", "mitochondria membrane", "ATP"}},
		{`"unterminated phrase`, []string{"unterminated", "phrase"}},
		{`  spaced   out `, []string{"spaced", "out"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q, err := search.ParseQuery(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.terms, q.Terms)
		})
	}
}

func TestParseQuery_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", `""`} {
		_, err := search.ParseQuery(raw)
		require.ErrorIs(t, err, serrors.ErrBadRequest, raw)
	}
}

func TestQuery_Snippets(t *testing.T) {
	q, err := search.ParseQuery("photo")
	require.NoError(t, err)

	got := q.Snippets("Write about photosynthesis in plants. Bring a PHOTO tomorrow")
	require.Equal(t, []string{
		"about ***photo***synthesis in",
		"a ***PHOTO*** tomorrow",
	}, got)
}

func TestQuery_SnippetsPhrase(t *testing.T) {
	q, err := search.ParseQuery(`"cell wall"`)
	require.NoError(t, err)

	got := q.Snippets("The plant\ncell wall is rigid; a cell membrane is not.")
	require.Equal(t, []string{"plant ***cell wall*** is"}, got)
}

func TestQuery_SnippetsLiteral(t *testing.T) {
	q, err := search.ParseQuery("a.b (x)")
	require.NoError(t, err)

	require.Nil(t, q.Snippets("axb and x"))
	require.Equal(t, []string{"see ***a.b*** now"}, q.Snippets("see a.b now"))
	require.Equal(t, []string{"call ***(x)***"}, q.Snippets("call (x)"))
}

func TestQuery_NoMatch(t *testing.T) {
	q, err := search.ParseQuery("zebra")
	require.NoError(t, err)
	require.Nil(t, q.Snippets("nothing to see here"))
	require.Nil(t, q.Snippets(""))
}
