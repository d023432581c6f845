package handlers

import (
	"net/http"

	"github.com/archemics/salessnap/internal/auth"
	"github.com/archemics/salessnap/internal/gate"
	"github.com/archemics/salessnap/internal/httpx"
	"github.com/archemics/salessnap/internal/models"
	"github.com/archemics/salessnap/internal/validation"
)

// UserHandler is the admin-only account management surface.
type UserHandler struct {
	Users *auth.Store
	Gate  *gate.Gate
}

func NewUserHandler(users *auth.Store, g *gate.Gate) *UserHandler {
	return &UserHandler{Users: users, Gate: g}
}

func (h *UserHandler) authorize(w http.ResponseWriter, r *http.Request, action gate.Action) bool {
	u, ok := requester(r, h.Users)
	var user *models.User
	if ok {
		user = &u
	}
	if err := h.Gate.Authorize(r.Context(), user, action, ResourceUser); err != nil {
		httpx.JSONError(w, http.StatusForbidden, "forbidden", nil)
		return false
	}
	return true
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, gate.ActionList) {
		return
	}
	users := h.Users.Users()
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, viewOf(u))
	}
	httpx.JSON(w, http.StatusOK, views)
}

type userRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	FullName string      `json:"fullName"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, gate.ActionCreate) {
		return
	}
	var req userRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("username", req.Username, v)
	validation.Required("password", req.Password, v)
	if !models.ValidRole(req.Role) {
		v["role"] = "unknown_role"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	u, err := h.Users.AddUser(auth.UserInput{
		Username: req.Username, Password: req.Password,
		Role: req.Role, FullName: req.FullName, Active: true,
	})
	if err != nil {
		httpx.JSONError(w, http.StatusConflict, "username_taken", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, viewOf(u))
}

type userUpdateRequest struct {
	Username *string      `json:"username"`
	Role     *models.Role `json:"role"`
	FullName *string      `json:"fullName"`
	Active   *bool        `json:"active"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, gate.ActionUpdate) {
		return
	}
	var req userUpdateRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	if req.Role != nil && !models.ValidRole(*req.Role) {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed",
			validation.Violations{"role": "unknown_role"})
		return
	}
	u, ok := h.Users.UpdateUser(queryID(r), auth.UserUpdate{
		Username: req.Username, Role: req.Role,
		FullName: req.FullName, Active: req.Active,
	})
	if !ok {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, viewOf(u))
}

// ToggleActive flips login eligibility; deactivation leaves any live session
// cookie alone, the account just cannot log in again.
func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, gate.ActionUpdate) {
		return
	}
	u, ok := h.Users.ToggleActive(queryID(r))
	if !ok {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, viewOf(u))
}

type passwordRequest struct {
	Password string `json:"password"`
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, gate.ActionUpdate) {
		return
	}
	var req passwordRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("password", req.Password, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if !h.Users.ChangePassword(queryID(r), req.Password) {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
