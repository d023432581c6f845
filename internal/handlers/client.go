package handlers

import (
	"net/http"

	"github.com/archemics/salessnap/internal/httpx"
	"github.com/archemics/salessnap/internal/store"
	"github.com/archemics/salessnap/internal/validation"
)

type ClientHandler struct {
	Store *store.Store
}

func NewClientHandler(s *store.Store) *ClientHandler { return &ClientHandler{Store: s} }

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.Store.Clients())
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := h.Store.ClientByID(queryID(r))
	if !ok {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

type clientRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	validation.Required("surname", req.Surname, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	c := h.Store.AddClient(store.ClientInput{
		Name: req.Name, Surname: req.Surname, Company: req.Company,
		Phone: req.Phone, Email: req.Email,
	})
	httpx.JSON(w, http.StatusCreated, c)
}

type clientUpdateRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req clientUpdateRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	c, ok := h.Store.UpdateClient(queryID(r), store.ClientUpdate{
		Name: req.Name, Surname: req.Surname, Company: req.Company,
		Phone: req.Phone, Email: req.Email,
	})
	if !ok {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Delete removes the client unconditionally; quotations referencing it keep
// their clientId and degrade to a placeholder label at display time.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteClient(queryID(r)) {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
