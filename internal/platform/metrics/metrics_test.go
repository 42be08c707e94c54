package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRouter(m *HTTP) chi.Router {
	router := chi.NewRouter()
	router.Use(m.Middleware())
	router.Get("/hello", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hi"))
	})
	router.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	return router
}

func TestMiddlewareCountsMatchedRoutes(t *testing.T) {
	m := New()
	router := newTestRouter(m)

	for range 3 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/hello", nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teapot", nil))

	if got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/hello", "200")); got != 3 {
		t.Fatalf("expected 3 /hello requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/teapot", "418")); got != 1 {
		t.Fatalf("expected 1 /teapot request, got %v", got)
	}
	if n := testutil.CollectAndCount(m.duration); n != 2 {
		t.Fatalf("expected 2 duration series, got %d", n)
	}
}

func TestMiddlewareLabelsUnmatchedRoutes(t *testing.T) {
	m := New()
	router := newTestRouter(m)

	for _, path := range []string{"/nonexistent", "/ip", "/a/b/c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")); got != 3 {
		t.Fatalf("expected 3 unmatched requests, got %v", got)
	}
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	newTestRouter(m).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/hello", nil))

	resp := httptest.NewRecorder()
	m.Handler().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{
		`http_requests_total{method="GET",route="/hello",status="200"} 1`,
		"http_request_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected exposition to contain %q", want)
		}
	}
	if m.Registry() == nil {
		t.Fatal("expected registry")
	}
}
