package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/archemics/salessnap/internal/auth"
	"github.com/archemics/salessnap/internal/kv"
	"github.com/archemics/salessnap/internal/pdf"
	"github.com/archemics/salessnap/internal/pricing"
	"github.com/archemics/salessnap/internal/server"
	"github.com/archemics/salessnap/internal/store"
)

type fixture struct {
	handler http.Handler
	store   *store.Store
	users   *auth.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := kv.NewMemory()
	st := store.New(db, true)
	users := auth.NewStore(db)
	h := server.New(server.Deps{
		Store:    st,
		Users:    users,
		Renderer: pdf.NewRenderer(pricing.StandardRate, nil),
	})
	return &fixture{handler: h, store: st, users: users}
}

// login authenticates through the real endpoint and returns the session
// cookie for subsequent requests.
func (f *fixture) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	f.handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func (f *fixture) do(t *testing.T, method, path string, payload any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
