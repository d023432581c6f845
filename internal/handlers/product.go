package handlers

import (
	"net/http"
	"strings"

	"github.com/archemics/salessnap/internal/httpx"
	"github.com/archemics/salessnap/internal/models"
	"github.com/archemics/salessnap/internal/store"
	"github.com/archemics/salessnap/internal/validation"
)

type ProductHandler struct {
	Store *store.Store
}

func NewProductHandler(s *store.Store) *ProductHandler { return &ProductHandler{Store: s} }

// List serves the catalog; with ?q= it becomes the any-term substring search.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	httpx.JSON(w, http.StatusOK, h.Store.SearchProducts(q))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Store.ProductByID(queryID(r))
	if !ok {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

type productRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       float64              `json:"price"`
	Category    string               `json:"category"`
	Tags        []string             `json:"tags"`
	Stock       int                  `json:"stock"`
	Status      models.ProductStatus `json:"status"`
	ImageURL    string               `json:"imageUrl"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("name", req.Name, v)
	validation.UnitPrice("price", req.Price, v)
	if req.Status != "" && !models.ValidProductStatus(req.Status) {
		v["status"] = "unknown_status"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if req.Status == "" {
		req.Status = models.StatusInStock
	}
	p := h.Store.AddProduct(store.ProductInput{
		Name: req.Name, Description: req.Description, Price: req.Price,
		Category: req.Category, Tags: req.Tags, Stock: req.Stock,
		Status: req.Status, ImageURL: req.ImageURL,
	})
	httpx.JSON(w, http.StatusCreated, p)
}

type productUpdateRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Price       *float64              `json:"price"`
	Category    *string               `json:"category"`
	Tags        []string              `json:"tags"`
	Stock       *int                  `json:"stock"`
	Status      *models.ProductStatus `json:"status"`
	ImageURL    *string               `json:"imageUrl"`
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req productUpdateRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	if req.Price != nil {
		validation.UnitPrice("price", *req.Price, v)
	}
	if req.Status != nil && !models.ValidProductStatus(*req.Status) {
		v["status"] = "unknown_status"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	p, ok := h.Store.UpdateProduct(queryID(r), store.ProductUpdate{
		Name: req.Name, Description: req.Description, Price: req.Price,
		Category: req.Category, Tags: req.Tags, Stock: req.Stock,
		Status: req.Status, ImageURL: req.ImageURL,
	})
	if !ok {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteProduct(queryID(r)) {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
