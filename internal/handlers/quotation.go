package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/archemics/salessnap/internal/auth"
	"github.com/archemics/salessnap/internal/httpx"
	"github.com/archemics/salessnap/internal/models"
	"github.com/archemics/salessnap/internal/pdf"
	"github.com/archemics/salessnap/internal/pricing"
	"github.com/archemics/salessnap/internal/store"
	"github.com/archemics/salessnap/internal/validation"
)

type QuotationHandler struct {
	Store    *store.Store
	Users    *auth.Store
	Renderer *pdf.Renderer
}

func NewQuotationHandler(s *store.Store, users *auth.Store, r *pdf.Renderer) *QuotationHandler {
	return &QuotationHandler{Store: s, Users: users, Renderer: r}
}

func (h *QuotationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q != "" {
		httpx.JSON(w, http.StatusOK, h.Store.SearchQuotations(q))
		return
	}
	httpx.JSON(w, http.StatusOK, h.Store.Quotations())
}

func (h *QuotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, ok := h.Store.QuotationByID(queryID(r))
	if !ok {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

type quotationRequest struct {
	ClientID string                 `json:"clientId"`
	Items    []models.QuotationItem `json:"items"`
	Status   models.QuotationStatus `json:"status"`
}

func validateItems(items []models.QuotationItem, v validation.Violations) {
	if len(items) == 0 {
		v["items"] = "required"
		return
	}
	for i, it := range items {
		prefix := fmt.Sprintf("items[%d].", i)
		validation.Required(prefix+"productId", it.ProductID, v)
		validation.Quantity(prefix+"quantity", it.Quantity, v)
		validation.UnitPrice(prefix+"price", it.Price, v)
		validation.DiscountPercent(prefix+"discount", it.Discount, v)
	}
}

func (h *QuotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req quotationRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("clientId", req.ClientID, v)
	validateItems(req.Items, v)
	if req.Status != "" && !models.ValidQuotationStatus(req.Status) {
		v["status"] = "unknown_status"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if req.Status == "" {
		req.Status = models.QuotationDraft
	}
	createdBy := ""
	if u, ok := requester(r, h.Users); ok {
		createdBy = u.ID
	}
	q := h.Store.AddQuotation(store.QuotationInput{
		ClientID:  req.ClientID,
		Items:     req.Items,
		Total:     pricing.Subtotal(req.Items),
		Status:    req.Status,
		CreatedBy: createdBy,
	})
	httpx.JSON(w, http.StatusCreated, q)
}

type quotationUpdateRequest struct {
	ClientID *string                 `json:"clientId"`
	Items    []models.QuotationItem  `json:"items"`
	Status   *models.QuotationStatus `json:"status"`
}

// Update recomputes the stored total whenever the item list changes; the
// store itself never touches pricing.
func (h *QuotationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req quotationUpdateRequest
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	if req.Items != nil {
		validateItems(req.Items, v)
	}
	if req.Status != nil && !models.ValidQuotationStatus(*req.Status) {
		v["status"] = "unknown_status"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	upd := store.QuotationUpdate{ClientID: req.ClientID, Status: req.Status}
	if req.Items != nil {
		upd.Items = req.Items
		total := pricing.Subtotal(req.Items)
		upd.Total = &total
	}
	q, ok := h.Store.UpdateQuotation(queryID(r), upd)
	if !ok {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

func (h *QuotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteQuotation(queryID(r)) {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ExportPDF streams the rendered quotation document. ?images=1 embeds
// product thumbnails.
func (h *QuotationHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	q, ok := h.Store.QuotationByID(queryID(r))
	if !ok {
		notFound(w)
		return
	}
	var client *models.Client
	if c, found := h.Store.ClientByID(q.ClientID); found {
		client = &c
	}
	issuedBy := "Sales Team"
	if u, found := h.Users.ByID(q.CreatedBy); found {
		issuedBy = u.FullName
	}
	includeImages := r.URL.Query().Get("images") == "1"

	data, err := h.Renderer.QuotationPDF(q, client, h.Store.Products(), issuedBy, includeImages)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	httpx.PDF(w, "quotation-Q-"+q.ID+".pdf", data)
}
