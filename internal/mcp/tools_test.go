package mcp_test

import (
	"context"
	coursemcp "coursesearch/internal/mcp"
	"coursesearch/internal/search"
	mocksearch "coursesearch/internal/search/mock"
	"coursesearch/pkg/canvas"
	"coursesearch/pkg/domain"
	"coursesearch/pkg/serrors"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const baseURL = "https://school.instructure.com"

func newTools(t *testing.T) (*mocksearch.MockSearcher, *coursemcp.Tools) {
	t.Helper()

	s := mocksearch.NewMockSearcher(gomock.NewController(t))

	return s, coursemcp.NewTools(s, baseURL)
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestTools_SearchCourse(t *testing.T) {
	s, tools := newTools(t)
	course := canvas.NewCourse(baseURL, "12")

	s.EXPECT().Search(gomock.Any(), course, "cell").Return(&search.Response{
		RunID:  "run-1",
		Course: course,
		Query:  []string{"cell"},
		Matches: []domain.Match{
			domain.NewMatch("12", domain.Assignment{ID: 3, Name: "Essay"}, []string{"a ***cell*** wall"}),
		},
		Searched: 1,
	}, nil)

	res, err := tools.SearchCourse(context.Background(), mcp.CallToolRequest{},
		coursemcp.SearchRequest{Query: "cell", CourseID: "12"})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var body struct {
		RunID   string         `json:"runId"`
		Matches []domain.Match `json:"matches"`
		Summary string         `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	require.Equal(t, "run-1", body.RunID)
	require.Len(t, body.Matches, 1)
	require.Equal(t, "/courses/12/assignments/3", body.Matches[0].Link)
	require.Contains(t, body.Summary, "Essay")
}

func TestTools_SearchCourse_CourseURL(t *testing.T) {
	s, tools := newTools(t)

	s.EXPECT().Search(gomock.Any(), canvas.NewCourse(baseURL, "77"), "quiz").
		Return(&search.Response{Course: canvas.NewCourse(baseURL, "77"), Matches: []domain.Match{}}, nil)

	res, err := tools.SearchCourse(context.Background(), mcp.CallToolRequest{},
		coursemcp.SearchRequest{Query: "quiz", CourseURL: baseURL + "/courses/77/modules"})
	require.NoError(t, err)
	require.False(t, res.IsError)
}

func TestTools_SearchCourse_InvalidArguments(t *testing.T) {
	_, tools := newTools(t)

	tests := []struct {
		name string
		args coursemcp.SearchRequest
		want string
	}{
		{name: "empty query", args: coursemcp.SearchRequest{Query: "  ", CourseID: "12"}, want: "query is required"},
		{name: "no course", args: coursemcp.SearchRequest{Query: "cell"}, want: "course_id or course_url is required"},
		{
			name: "foreign instance",
			args: coursemcp.SearchRequest{Query: "cell", CourseURL: "https://other.example.com/courses/1"},
			want: "not on the configured Canvas instance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tools.SearchCourse(context.Background(), mcp.CallToolRequest{}, tt.args)
			require.NoError(t, err)
			require.True(t, res.IsError)
			require.Contains(t, resultText(t, res), tt.want)
		})
	}
}

func TestTools_SearchCourse_SearchError(t *testing.T) {
	s, tools := newTools(t)

	s.EXPECT().Search(gomock.Any(), gomock.Any(), "cell").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid access token"))

	res, err := tools.SearchCourse(context.Background(), mcp.CallToolRequest{},
		coursemcp.SearchRequest{Query: "cell", CourseID: "12"})
	require.NoError(t, err)
	require.True(t, res.IsError)
	require.Contains(t, resultText(t, res), "invalid access token")
}

func TestTools_GetContent(t *testing.T) {
	s, tools := newTools(t)
	course := canvas.NewCourse(baseURL, "12")

	s.EXPECT().Content(gomock.Any(), course, domain.KindAssignment, "3").Return(domain.Assignment{
		ID:          3,
		Name:        "Essay",
		Description: "<p>Write <strong>500</strong> words</p>",
	}, nil)

	res, err := tools.GetContent(context.Background(), mcp.CallToolRequest{},
		coursemcp.ContentRequest{Kind: "assignments", Key: "3", CourseID: "12"})
	require.NoError(t, err)
	require.False(t, res.IsError)

	md := resultText(t, res)
	require.True(t, strings.HasPrefix(md, "# Essay"))
	require.Contains(t, md, "**500**")
}

func TestTools_GetContent_Errors(t *testing.T) {
	s, tools := newTools(t)

	res, err := tools.GetContent(context.Background(), mcp.CallToolRequest{},
		coursemcp.ContentRequest{Kind: "modules", Key: "3", CourseID: "12"})
	require.NoError(t, err)
	require.True(t, res.IsError)
	require.Contains(t, resultText(t, res), `unknown content kind "modules"`)

	res, err = tools.GetContent(context.Background(), mcp.CallToolRequest{},
		coursemcp.ContentRequest{Kind: "pages", CourseID: "12"})
	require.NoError(t, err)
	require.True(t, res.IsError)

	s.EXPECT().Content(gomock.Any(), gomock.Any(), domain.KindPage, "syllabus").
		Return(nil, errors.New("pages/syllabus failed with status 404"))

	res, err = tools.GetContent(context.Background(), mcp.CallToolRequest{},
		coursemcp.ContentRequest{Kind: "pages", Key: "syllabus", CourseID: "12"})
	require.NoError(t, err)
	require.True(t, res.IsError)
	require.Contains(t, resultText(t, res), "status 404")
}

func TestHTTPHandler_Initialize(t *testing.T) {
	s := mocksearch.NewMockSearcher(gomock.NewController(t))
	h := coursemcp.NewHTTPHandler(coursemcp.NewServer(s, baseURL), coursemcp.HTTPOptions{})

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{` +
		`"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0.0.1"}}}`
	req := httptest.NewRequest(http.MethodPost, coursemcp.EndpointPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), coursemcp.Name)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
