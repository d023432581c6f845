// Package handlers holds the JSON HTTP boundary. Request bodies are decoded
// and validated here; the store and pricing packages assume validated input.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/archemics/salessnap/internal/auth"
	"github.com/archemics/salessnap/internal/httpx"
	"github.com/archemics/salessnap/internal/models"
)

func decode(r *http.Request, dst any) bool {
	return json.NewDecoder(r.Body).Decode(dst) == nil
}

func badBody(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
}

func notFound(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
}

func queryID(r *http.Request) string {
	return r.URL.Query().Get("id")
}

// requester resolves the acting user from the session context. Handlers
// behind RequireAuth can still see a stale session for a deleted user, so
// the lookup can fail.
func requester(r *http.Request, users *auth.Store) (models.User, bool) {
	uid, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		return models.User{}, false
	}
	return users.ByID(uid)
}

// userView is the wire shape for accounts; the password never leaves the
// server.
type userView struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	FullName string      `json:"fullName"`
	Active   bool        `json:"active"`
}

func viewOf(u models.User) userView {
	return userView{ID: u.ID, Username: u.Username, Role: u.Role, FullName: u.FullName, Active: u.Active}
}
