package handlers

import (
	"fmt"
	"net/http"

	"github.com/archemics/salessnap/internal/auth"
	"github.com/archemics/salessnap/internal/gate"
	"github.com/archemics/salessnap/internal/httpx"
	"github.com/archemics/salessnap/internal/models"
	"github.com/archemics/salessnap/internal/pdf"
	"github.com/archemics/salessnap/internal/store"
	"github.com/archemics/salessnap/internal/validation"
)

// Resource names registered with the gate.
const (
	ResourceSampleRequest = "sample_request"
	ResourceDeliveryNote  = "delivery_note"
	ResourceUser          = "user"
)

type RequestHandler struct {
	Store    *store.Store
	Users    *auth.Store
	Gate     *gate.Gate
	Renderer *pdf.Renderer
}

func NewRequestHandler(s *store.Store, users *auth.Store, g *gate.Gate, r *pdf.Renderer) *RequestHandler {
	return &RequestHandler{Store: s, Users: users, Gate: g, Renderer: r}
}

func (h *RequestHandler) authorize(w http.ResponseWriter, r *http.Request, action gate.Action, resource string) (models.User, bool) {
	u, ok := requester(r, h.Users)
	var user *models.User
	if ok {
		user = &u
	}
	if err := h.Gate.Authorize(r.Context(), user, action, resource); err != nil {
		httpx.JSONError(w, http.StatusForbidden, "forbidden", nil)
		return models.User{}, false
	}
	return u, true
}

// --- Sample requests ---

func (h *RequestHandler) ListSamples(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.Store.SampleRequests())
}

type sampleRequestBody struct {
	ProductIDs []string `json:"productIds"`
	ClientID   string   `json:"clientId"`
	Notes      string   `json:"notes"`
}

func (h *RequestHandler) CreateSample(w http.ResponseWriter, r *http.Request) {
	u, ok := h.authorize(w, r, gate.ActionCreate, ResourceSampleRequest)
	if !ok {
		return
	}
	var req sampleRequestBody
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("clientId", req.ClientID, v)
	if len(req.ProductIDs) == 0 {
		v["productIds"] = "required"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	s := h.Store.AddSampleRequest(store.SampleRequestInput{
		ProductIDs: req.ProductIDs, ClientID: req.ClientID,
		Notes: req.Notes, RequestedBy: u.ID,
	})
	httpx.JSON(w, http.StatusCreated, s)
}

// SetSampleStatus drives the lifecycle: approve records the approver,
// reject and deliver just move the status.
func (h *RequestHandler) SetSampleStatus(w http.ResponseWriter, r *http.Request, status models.RequestStatus) {
	action := gate.ActionUpdate
	if status == models.RequestApproved || status == models.RequestRejected {
		action = gate.ActionApprove
	}
	u, ok := h.authorize(w, r, action, ResourceSampleRequest)
	if !ok {
		return
	}
	var (
		s     models.SampleRequest
		found bool
	)
	if status == models.RequestApproved {
		s, found = h.Store.ApproveSampleRequest(queryID(r), u.ID)
	} else {
		s, found = h.Store.SetSampleRequestStatus(queryID(r), status)
	}
	if !found {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}

// --- Delivery notes ---

func (h *RequestHandler) ListDeliveryNotes(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.Store.DeliveryNotes())
}

type deliveryNoteBody struct {
	ClientID string                    `json:"clientId"`
	Items    []models.DeliveryNoteItem `json:"items"`
	Notes    string                    `json:"notes"`
}

func (h *RequestHandler) CreateDeliveryNote(w http.ResponseWriter, r *http.Request) {
	u, ok := h.authorize(w, r, gate.ActionCreate, ResourceDeliveryNote)
	if !ok {
		return
	}
	var req deliveryNoteBody
	if !decode(r, &req) {
		badBody(w)
		return
	}
	v := validation.Violations{}
	validation.Required("clientId", req.ClientID, v)
	if len(req.Items) == 0 {
		v["items"] = "required"
	}
	for i, it := range req.Items {
		prefix := fmt.Sprintf("items[%d].", i)
		validation.Required(prefix+"productId", it.ProductID, v)
		validation.Quantity(prefix+"quantity", it.Quantity, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	n := h.Store.AddDeliveryNote(store.DeliveryNoteInput{
		ClientID: req.ClientID, Items: req.Items,
		Notes: req.Notes, RequestedBy: u.ID,
	})
	httpx.JSON(w, http.StatusCreated, n)
}

func (h *RequestHandler) SetDeliveryNoteStatus(w http.ResponseWriter, r *http.Request, status models.RequestStatus) {
	action := gate.ActionUpdate
	if status == models.RequestApproved || status == models.RequestRejected {
		action = gate.ActionApprove
	}
	u, ok := h.authorize(w, r, action, ResourceDeliveryNote)
	if !ok {
		return
	}
	var (
		n     models.DeliveryNote
		found bool
	)
	if status == models.RequestApproved {
		n, found = h.Store.ApproveDeliveryNote(queryID(r), u.ID)
	} else {
		n, found = h.Store.SetDeliveryNoteStatus(queryID(r), status)
	}
	if !found {
		notFound(w)
		return
	}
	httpx.JSON(w, http.StatusOK, n)
}

func (h *RequestHandler) ExportDeliveryNotePDF(w http.ResponseWriter, r *http.Request) {
	n, ok := h.Store.DeliveryNoteByID(queryID(r))
	if !ok {
		notFound(w)
		return
	}
	var client *models.Client
	if c, found := h.Store.ClientByID(n.ClientID); found {
		client = &c
	}
	issuedBy := "Sales Team"
	if u, found := h.Users.ByID(n.RequestedBy); found {
		issuedBy = u.FullName
	}
	data, err := h.Renderer.DeliveryNotePDF(n, client, h.Store.Products(), issuedBy)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	httpx.PDF(w, "delivery-note-DN-"+n.ID+".pdf", data)
}
