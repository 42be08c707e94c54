package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/hello-service/internal/platform/respond"
)

func newTestRouter(docs bool) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	api := humachi.New(router, APIConfig("test", docs))
	Register(api)
	return router
}

func TestRegisterRoutesHello(t *testing.T) {
	router := newTestRouter(false)

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-hello")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if link := resp.Header().Get("Link"); link != "" {
		t.Fatalf("expected no schema Link header, got %q", link)
	}
}

func TestDocsDisabledMountsNoExtraRoutes(t *testing.T) {
	router := newTestRouter(false)

	for _, path := range []string{"/openapi.json", "/openapi.yaml", DocsPath(), "/schemas/Data.json"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404 with docs disabled, got %d", path, resp.Code)
		}
	}
}

func TestDocsEnabledServesOpenAPI(t *testing.T) {
	router := newTestRouter(true)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for OpenAPI document, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, DocsPath(), nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for docs UI, got %d", resp.Code)
	}
}

func TestAPIConfigTitleAndVersion(t *testing.T) {
	cfg := APIConfig("1.2.3", false)
	if cfg.Info.Title != apiTitle || cfg.Info.Version != "1.2.3" {
		t.Fatalf("unexpected info: %+v", cfg.Info)
	}
	if len(cfg.CreateHooks) != 0 {
		t.Fatalf("expected schema link hook to be removed")
	}
}
