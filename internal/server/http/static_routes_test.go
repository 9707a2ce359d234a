package httpserver

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestServeStatic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>othello</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer()
	if err := srv.ServeStatic(dir); err != nil {
		t.Fatalf("ServeStatic: %v", err)
	}

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/web/" {
		t.Fatalf("GET / = %d %q", rr.Code, rr.Header().Get("Location"))
	}

	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/web/", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "othello") {
		t.Fatalf("GET /web/ = %d %q", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("GET /nope = %d", rr.Code)
	}
}

func TestServeStaticMissingDir(t *testing.T) {
	srv := newTestServer()
	if err := srv.ServeStatic(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing dir")
	}
}
