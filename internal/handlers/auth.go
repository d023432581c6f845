package handlers

import (
	"net/http"

	"github.com/archemics/salessnap/internal/auth"
	"github.com/archemics/salessnap/internal/httpx"
)

type AuthHandler struct {
	Users *auth.Store
}

func NewAuthHandler(users *auth.Store) *AuthHandler { return &AuthHandler{Users: users} }

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login issues a session cookie. Every failure mode answers with the same
// status and body so callers cannot probe which usernames exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(r, &req) {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	u, err := h.Users.Login(req.Username, req.Password)
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	auth.CreateSession(w, u.ID)
	httpx.JSON(w, http.StatusOK, viewOf(u))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Users.Logout()
	auth.ClearSession(w)
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := requester(r, h.Users)
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "not_authenticated", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, viewOf(u))
}
