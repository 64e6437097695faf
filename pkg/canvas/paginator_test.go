package canvas_test

import (
	"context"
	"coursesearch/pkg/canvas"
	"coursesearch/pkg/serrors"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// transportFunc allows using a function as a canvas.Transport.
type transportFunc func(ctx context.Context, req canvas.Request) (*canvas.Response, error)

func (f transportFunc) Do(ctx context.Context, req canvas.Request) (*canvas.Response, error) {
	return f(ctx, req)
}

// pageBody renders n objects numbered from (page-1)*100+1, prefixed the way
// Canvas prefixes its JSON.
func pageBody(page, n int) []byte {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"id":%d}`, (page-1)*canvas.PageSize+i+1)
	}

	return []byte("while(1);[" + strings.Join(parts, ",") + "]")
}

func okResponse(body []byte, link string) *canvas.Response {
	h := http.Header{}
	if link != "" {
		h.Set("Link", link)
	}

	return &canvas.Response{Status: http.StatusOK, Header: h, Body: body}
}

func lastLink(last int) string {
	return fmt.Sprintf(`<https://school.instructure.com/api/v1/courses/1/assignments?page=2&per_page=100>; rel="next",`+
		` <https://school.instructure.com/api/v1/courses/1/assignments?page=%d&per_page=100>; rel="last"`, last)
}

func pageOf(t *testing.T, req canvas.Request) int {
	t.Helper()
	n, err := strconv.Atoi(req.Query.Get("page"))
	require.NoError(t, err)

	return n
}

func TestPaginator_ShortFirstPage_SingleRequest(t *testing.T) {
	params := url.Values{"include[]": {"body"}}
	var calls int
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		calls++
		require.Equal(t, http.MethodGet, req.Method)
		require.Equal(t, "/api/v1/courses/1/pages", req.Path)
		require.Equal(t, "1", req.Query.Get("page"))
		require.Equal(t, "100", req.Query.Get("per_page"))
		require.Equal(t, []string{"body"}, req.Query["include[]"])

		return okResponse(pageBody(1, 3), ""), nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("courses", "1", "pages"), params)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Len(t, res.Items, 3)
	require.Equal(t, 1, res.Pages)
	require.False(t, res.IsObject())
	// the caller's parameters are left untouched
	require.Equal(t, url.Values{"include[]": {"body"}}, params)
}

func TestPaginator_FullPages_FollowedUntilShortPage(t *testing.T) {
	var requested []int
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		n := pageOf(t, req)
		requested = append(requested, n)
		if n == 1 {
			return okResponse(pageBody(1, 100), ""), nil
		}

		return okResponse(pageBody(n, 40), ""), nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet,
		canvas.NewEndpoint("courses", "1", "discussion_topics"), nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, requested, "no third page may be requested")
	require.Len(t, res.Items, 140)
	require.Equal(t, 2, res.Pages)
	require.JSONEq(t, `{"id":101}`, string(res.Items[100]))
}

func TestPaginator_ExactMultipleOfPageSize(t *testing.T) {
	var calls int
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		calls++
		n := pageOf(t, req)
		if n <= 2 {
			return okResponse(pageBody(n, 100), ""), nil
		}

		return okResponse([]byte("[]"), ""), nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("courses", "1", "quizzes"), nil)
	require.NoError(t, err)
	require.Equal(t, 3, calls)
	require.Len(t, res.Items, 200)
}

func TestPaginator_BulkPhase_BatchesBoundedAndSequential(t *testing.T) {
	const last = 60
	const batch = canvas.DefaultBatchSize

	var (
		inFlight, maxInFlight atomic.Int32
		completedBulk         atomic.Int32
		outOfOrder            atomic.Bool
		mu                    sync.Mutex
		requested             = map[int]int{}
	)

	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		n, err := strconv.Atoi(req.Query.Get("page"))
		if err != nil {
			return nil, err
		}
		mu.Lock()
		requested[n]++
		mu.Unlock()

		if n == 1 {
			return okResponse(pageBody(1, 100), lastLink(last)), nil
		}

		// every page of the previous batches must be done before this one starts
		if int(completedBulk.Load()) < (n-2)/batch*batch {
			outOfOrder.Store(true)
		}
		cur := inFlight.Add(1)
		for {
			prev := maxInFlight.Load()
			if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		completedBulk.Add(1)

		if n == last {
			return okResponse(pageBody(n, 30), ""), nil
		}

		return okResponse(pageBody(n, 100), ""), nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet,
		canvas.NewEndpoint("courses", "1", "assignments"), nil)
	require.NoError(t, err)

	require.Len(t, requested, last)
	for n := 1; n <= last; n++ {
		require.Equal(t, 1, requested[n], "page %d requested %d times", n, requested[n])
	}
	require.LessOrEqual(t, maxInFlight.Load(), int32(batch))
	require.Greater(t, maxInFlight.Load(), int32(1), "bulk pages should run concurrently")
	require.False(t, outOfOrder.Load(), "a batch started before the previous one finished")

	require.Equal(t, last, res.Pages)
	require.Len(t, res.Items, (last-1)*100+30)
	require.Empty(t, res.Dropped)
	require.JSONEq(t, `{"id":101}`, string(res.Items[100]))
	require.JSONEq(t, `{"id":5901}`, string(res.Items[5900]))
}

func TestPaginator_BulkPhase_CustomBatchSize(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		n, _ := strconv.Atoi(req.Query.Get("page"))
		if n == 1 {
			return okResponse(pageBody(1, 100), lastLink(9)), nil
		}
		cur := inFlight.Add(1)
		for {
			prev := maxInFlight.Load()
			if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)

		return okResponse(pageBody(n, 100), ""), nil
	}), canvas.Options{BatchSize: 3})

	res, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("courses", "1", "assignments"), nil)
	require.NoError(t, err)
	require.Len(t, res.Items, 900)
	require.LessOrEqual(t, maxInFlight.Load(), int32(3))
}

func TestPaginator_BulkPhase_FailedPagesAreDropped(t *testing.T) {
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		switch n, _ := strconv.Atoi(req.Query.Get("page")); n {
		case 1:
			return okResponse(pageBody(1, 100), lastLink(5)), nil
		case 3:
			return &canvas.Response{Status: http.StatusInternalServerError, Body: []byte(`<html>oops</html>`)}, nil
		case 4:
			return okResponse([]byte(`while(1);{"errors":[{"message":"gone"}]}`), ""), nil
		default:
			return okResponse(pageBody(n, 100), ""), nil
		}
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("courses", "1", "assignments"), nil)
	require.NoError(t, err, "bulk failures are not reported as errors")
	require.Equal(t, []int{3, 4}, res.Dropped)
	require.Len(t, res.Items, 300)
	require.Equal(t, 5, res.Pages)
}

func TestPaginator_BulkPhase_MalformedPageAborts(t *testing.T) {
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		n, _ := strconv.Atoi(req.Query.Get("page"))
		if n == 1 {
			return okResponse(pageBody(1, 100), lastLink(3)), nil
		}
		if n == 2 {
			return okResponse([]byte(`while(1);[{"id":`), ""), nil
		}

		return okResponse(pageBody(n, 10), ""), nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("courses", "1", "assignments"), nil)
	require.Error(t, err)
	require.Nil(t, res)
	require.ErrorIs(t, err, serrors.ErrMalformed)
}

func TestPaginator_BulkPhase_TransportErrorAborts(t *testing.T) {
	boom := errors.New("connection reset")
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		n, _ := strconv.Atoi(req.Query.Get("page"))
		if n == 1 {
			return okResponse(pageBody(1, 100), lastLink(3)), nil
		}
		if n == 3 {
			return nil, boom
		}

		return okResponse(pageBody(n, 100), ""), nil
	}), canvas.Options{})

	_, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("courses", "1", "assignments"), nil)
	require.ErrorIs(t, err, boom)
}

func TestPaginator_FirstPageNon200(t *testing.T) {
	var calls int
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, _ canvas.Request) (*canvas.Response, error) {
		calls++

		return &canvas.Response{
			Status: http.StatusUnauthorized,
			Body:   []byte(`while(1);{"errors":[{"message":"Invalid access token."}]}`),
		}, nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("courses", "1", "quizzes"), nil)
	require.Error(t, err)
	require.Nil(t, res)
	require.Equal(t, 1, calls)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.Contains(t, err.Error(), "Invalid access token.")
}

func TestPaginator_SequentialPageNon200(t *testing.T) {
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		if req.Query.Get("page") == "1" {
			return okResponse(pageBody(1, 100), ""), nil
		}

		return &canvas.Response{Status: http.StatusForbidden, Body: []byte("403 Forbidden (Rate Limit Exceeded)")}, nil
	}), canvas.Options{})

	_, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("courses", "1", "assignments"), nil)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestPaginator_MalformedFirstPage(t *testing.T) {
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, _ canvas.Request) (*canvas.Response, error) {
		return okResponse([]byte("while(1);<html></html>"), ""), nil
	}), canvas.Options{})

	_, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("courses", "1", "assignments"), nil)
	require.ErrorIs(t, err, serrors.ErrMalformed)
}

func TestPaginator_ItemEndpointReturnsObject(t *testing.T) {
	var calls int
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		calls++
		require.Equal(t, "/api/v1/courses/1/assignments/7", req.Path)

		return okResponse([]byte(`while(1);{"id":7,"name":"Essay"}`), ""), nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet,
		canvas.NewEndpoint("courses", "1", "assignments", "7"), url.Values{"include[]": {"body"}})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.True(t, res.IsObject())
	require.JSONEq(t, `{"id":7,"name":"Essay"}`, string(res.Object))
}

func TestPaginator_AuditCursorFollowsNextLink(t *testing.T) {
	events := func(n int) []byte {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = fmt.Sprintf(`{"id":"e%d"}`, i)
		}

		return []byte(`while(1);{"events":[` + strings.Join(parts, ",") + `],"linked":{}}`)
	}

	var cursors []string
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		require.Equal(t, "/api/v1/audit/grade_change/courses/1", req.Path)
		cursor := req.Query.Get("page")
		cursors = append(cursors, cursor)

		switch cursor {
		case "first":
			// the cursor comes from rel="next", never from rel="last" or the item count
			link := `<https://school.instructure.com/api/v1/audit/grade_change/courses/1?page=bookmark:WzEwMF0&per_page=100>; rel="next",` +
				` <https://school.instructure.com/api/v1/audit/grade_change/courses/1?page=first&per_page=100>; rel="first"`

			return okResponse(events(100), link), nil
		case "bookmark:WzEwMF0":
			return okResponse(events(7), ""), nil
		default:
			return nil, fmt.Errorf("unexpected cursor %q", cursor)
		}
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet,
		canvas.NewEndpoint("audit", "grade_change", "courses", "1"), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "bookmark:WzEwMF0"}, cursors)
	require.Len(t, res.Items, 107)
	require.Equal(t, 2, res.Pages)
}

func TestPaginator_AuditFullPageWithoutNextStops(t *testing.T) {
	var calls int
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, _ canvas.Request) (*canvas.Response, error) {
		calls++
		parts := make([]string, 100)
		for i := range parts {
			parts[i] = `{}`
		}

		return okResponse([]byte(`{"events":[`+strings.Join(parts, ",")+`]}`), ""), nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet,
		canvas.NewEndpoint("audit", "authentication", "users", "5"), nil)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Len(t, res.Items, 100)
}

func TestPaginator_ProgressIsNotPaginated(t *testing.T) {
	var calls int
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		calls++
		require.Equal(t, "/api/v1/progress/42", req.Path)
		require.Empty(t, req.Query.Get("page"))
		require.Empty(t, req.Query.Get("per_page"))

		return okResponse([]byte(`while(1);{"id":42,"workflow_state":"running","completion":50}`), ""), nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodGet, canvas.NewEndpoint("progress", "42"), nil)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.JSONEq(t, `{"id":42,"workflow_state":"running","completion":50}`, string(res.Object))
}

func TestPaginator_NonGETSendsParamsAsBody(t *testing.T) {
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, req canvas.Request) (*canvas.Response, error) {
		require.Equal(t, http.MethodPut, req.Method)
		require.Nil(t, req.Query)
		require.Equal(t, map[string]any{"published": "true", "ids": []string{"1", "2"}}, req.Body)

		return okResponse([]byte(`{"ok":true}`), ""), nil
	}), canvas.Options{})

	res, err := p.FetchAll(context.Background(), http.MethodPut, canvas.NewEndpoint("courses", "1", "pages", "intro"),
		url.Values{"published": {"true"}, "ids": {"1", "2"}})
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(res.Object))
}

func TestPaginator_NonGETNon200(t *testing.T) {
	p := canvas.NewPaginator(transportFunc(func(_ context.Context, _ canvas.Request) (*canvas.Response, error) {
		return &canvas.Response{Status: http.StatusNotFound, Body: []byte(`{"errors":[{"message":"The specified resource does not exist."}]}`)}, nil
	}), canvas.Options{})

	_, err := p.FetchAll(context.Background(), http.MethodDelete, canvas.NewEndpoint("courses", "1", "pages", "x"), nil)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
