package handlers_test

import (
	"net/http"
	"testing"
)

func TestUserManagementIsAdminOnly(t *testing.T) {
	f := newFixture(t)
	sales := f.login(t, "sales1", "sales123")
	manager := f.login(t, "manager1", "manager123")

	w := f.do(t, http.MethodGet, "/users", nil, sales)
	if w.Code != http.StatusForbidden {
		t.Fatalf("sales list users: status %d", w.Code)
	}
	w = f.do(t, http.MethodGet, "/users", nil, manager)
	if w.Code != http.StatusForbidden {
		t.Fatalf("manager list users: status %d", w.Code)
	}
}

func TestAdminManagesAccounts(t *testing.T) {
	f := newFixture(t)
	admin := f.login(t, "admin", "admin123")

	w := f.do(t, http.MethodPost, "/users", map[string]any{
		"username": "sales2", "password": "sales234", "role": "sales", "fullName": "Sarah Miller",
	}, admin)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	created := decodeBody[map[string]any](t, w)
	if _, leaked := created["password"]; leaked {
		t.Fatal("password leaked in user response")
	}
	id := created["id"].(string)

	// Duplicate username is a conflict.
	w = f.do(t, http.MethodPost, "/users", map[string]any{
		"username": "sales2", "password": "x", "role": "sales",
	}, admin)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate: status %d", w.Code)
	}

	w = f.do(t, http.MethodPost, "/users/toggle-active?id="+id, nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: status %d", w.Code)
	}
	toggled := decodeBody[map[string]any](t, w)
	if toggled["active"] != false {
		t.Fatalf("account still active: %v", toggled)
	}

	// Deactivated account cannot log in, even with the right password.
	w = f.do(t, http.MethodPost, "/auth/login",
		map[string]string{"username": "sales2", "password": "sales234"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("deactivated login: status %d", w.Code)
	}

	w = f.do(t, http.MethodPost, "/users/password?id="+id, map[string]string{"password": "newpass"}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("password change: status %d", w.Code)
	}
}

func TestDashboardStatsEndpoint(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t, "manager1", "manager123")

	w := f.do(t, http.MethodGet, "/dashboard/stats", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	stats := decodeBody[map[string]float64](t, w)
	// Seeded: 2 quotations, 3 clients, 4 products; 1 accepted of 2 decided.
	if stats["totalQuotations"] != 2 || stats["totalClients"] != 3 || stats["totalProducts"] != 4 {
		t.Fatalf("counts wrong: %v", stats)
	}
	if stats["conversionRate"] != 50 {
		t.Fatalf("conversionRate = %v, want 50", stats["conversionRate"])
	}
}

func TestDocumentLibraryEndpoints(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t, "sales1", "sales123")

	w := f.do(t, http.MethodPost, "/documents", map[string]string{
		"productId": "1", "type": "TDS", "filename": "washer-tds.pdf", "fileUrl": "/files/washer-tds.pdf",
	}, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	doc := decodeBody[map[string]any](t, w)

	w = f.do(t, http.MethodGet, "/documents?q=washer", nil, cookie)
	results := decodeBody[[]map[string]any](t, w)
	if len(results) != 1 {
		t.Fatalf("search got %d results", len(results))
	}

	w = f.do(t, http.MethodPost, "/documents/delete?id="+doc["id"].(string), nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}
}
