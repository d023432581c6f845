package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/archemics/salessnap/internal/auth"
	"github.com/archemics/salessnap/internal/kv"
	"github.com/archemics/salessnap/internal/pdf"
	"github.com/archemics/salessnap/internal/pricing"
	"github.com/archemics/salessnap/internal/store"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	db := kv.NewMemory()
	return New(Deps{
		Store:    store.New(db, false),
		Users:    auth.NewStore(db),
		Renderer: pdf.NewRenderer(pricing.StandardRate, nil),
	})
}

func TestHealthIsOpen(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", w.Code)
	}
	if w.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("Allow = %q", w.Header().Get("Allow"))
	}
}

func TestUnknownPath(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
}
