package controller_test

import (
	"coursesearch/pkg/controller"
	"coursesearch/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"x-forwarded-for", map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, "", "1.2.3.4"},
		{"x-real-ip", map[string]string{"X-Real-IP": "9.8.7.6"}, "", "9.8.7.6"},
		{"remote addr", nil, "10.0.0.1:12345", "10.0.0.1"},
		{"invalid remote addr", nil, "not-an-addr", "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_SetsRequestIDAndPassesStatus(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment))

	// handler echoes request ID from context into a header so we can assert it.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	req1.Header.Set("X-Request-Id", "abc-123")
	rec1 := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec1, req1)
	res1 := rec1.Result()
	require.Equal(t, http.StatusCreated, res1.StatusCode)
	require.Equal(t, "abc-123", res1.Header.Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", res1.Header.Get("X-Request-Id"))

	// without the header a request ID is generated
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	rec2 := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec2, req2)
	res2 := rec2.Result()
	require.NotEmpty(t, res2.Header.Get("X-Echo-Request-Id"))
	require.Equal(t, res2.Header.Get("X-Echo-Request-Id"), res2.Header.Get("X-Request-Id"))
}

func TestWithMetrics_LabelsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	h := controller.WithMetrics(mux)

	before := routeCount(t, "GET /things/{id}", "202")

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/"+id, nil))
		require.Equal(t, http.StatusAccepted, rec.Code)
	}

	require.InDelta(t, before+2, routeCount(t, "GET /things/{id}", "202"), 0)
}

// routeCount reads coursesearch_http_requests_total for one route and status
// from the default registry.
func routeCount(t *testing.T, route, status string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "coursesearch_http_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == route && labels["status"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}
