package health

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	Handler(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var h Response
	if err := json.Unmarshal(resp.Body.Bytes(), &h); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if h.Status != "ok" {
		t.Fatalf("expected status 'ok', got %s", h.Status)
	}
}

func TestHealthHandlerBodyIsExact(t *testing.T) {
	resp := httptest.NewRecorder()
	Handler(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := bytes.TrimSpace(resp.Body.Bytes()); string(got) != `{"status":"ok"}` {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestHealthHandlerIsIdempotent(t *testing.T) {
	var first []byte
	for i := range 10 {
		resp := httptest.NewRecorder()
		Handler(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, resp.Code)
		}
		if first == nil {
			first = resp.Body.Bytes()
			continue
		}
		if !bytes.Equal(first, resp.Body.Bytes()) {
			t.Fatalf("request %d: body %q differs from %q", i, resp.Body.Bytes(), first)
		}
	}
}
