package handlers

import (
	"net/http"
	"strings"

	"github.com/archemics/salessnap/internal/httpx"
	"github.com/archemics/salessnap/internal/store"
	"github.com/archemics/salessnap/internal/validation"
)

type DocumentHandler struct {
	Store *store.Store
}

func NewDocumentHandler(s *store.Store) *DocumentHandler { return &DocumentHandler{Store: s} }

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	httpx.JSON(w, http.StatusOK, h.Store.SearchDocuments(q))
}

type documentRequest struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"`
	Filename  string `json:"filename"`
	FileURL   string `json:"fileUrl"`
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("filename", req.Filename, v)
	validation.Required("type", req.Type, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	d := h.Store.AddDocument(store.DocumentInput{
		ProductID: req.ProductID, Type: req.Type,
		Filename: req.Filename, FileURL: req.FileURL,
	})
	httpx.JSON(w, http.StatusCreated, d)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteDocument(queryID(r)) {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
