package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/archemics/salessnap/internal/models"
)

// QuotationInput is the validated payload for a new quotation. Total is the
// pre-VAT subtotal the caller computed via the pricing engine; the store just
// records it.
type QuotationInput struct {
	ClientID  string
	Items     []models.QuotationItem
	Total     float64
	Status    models.QuotationStatus
	CreatedBy string
}

// QuotationUpdate carries the mutable fields. When Items is set the caller
// must set Total alongside it, recomputed from the new items.
type QuotationUpdate struct {
	ClientID *string
	Items    []models.QuotationItem
	Total    *float64
	Status   *models.QuotationStatus
}

func (s *Store) Quotations() []models.Quotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Quotation, len(s.quotations))
	copy(out, s.quotations)
	return out
}

func (s *Store) QuotationByID(id string) (models.Quotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quotations {
		if q.ID == id {
			return q, true
		}
	}
	return models.Quotation{}, false
}

func (s *Store) AddQuotation(in QuotationInput) models.Quotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	q := models.Quotation{
		ID:        uuid.NewString(),
		ClientID:  in.ClientID,
		Items:     append([]models.QuotationItem(nil), in.Items...),
		Total:     in.Total,
		Status:    in.Status,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.quotations = append(s.quotations, q)
	s.persist(quotationsKey, s.quotations)
	return q
}

// UpdateQuotation refreshes UpdatedAt on every mutation.
func (s *Store) UpdateQuotation(id string, upd QuotationUpdate) (models.Quotation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotations {
		if s.quotations[i].ID != id {
			continue
		}
		if upd.ClientID != nil {
			s.quotations[i].ClientID = *upd.ClientID
		}
		if upd.Items != nil {
			s.quotations[i].Items = append([]models.QuotationItem(nil), upd.Items...)
		}
		if upd.Total != nil {
			s.quotations[i].Total = *upd.Total
		}
		if upd.Status != nil {
			s.quotations[i].Status = *upd.Status
		}
		s.quotations[i].UpdatedAt = time.Now()
		s.persist(quotationsKey, s.quotations)
		return s.quotations[i], true
	}
	return models.Quotation{}, false
}

func (s *Store) DeleteQuotation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotations {
		if s.quotations[i].ID == id {
			s.quotations = append(s.quotations[:i], s.quotations[i+1:]...)
			s.persist(quotationsKey, s.quotations)
			return true
		}
	}
	return false
}

// SearchQuotations matches on the related client's name, surname and company
// plus the quotation id. Quotations whose client was deleted only match by id.
func (s *Store) SearchQuotations(query string) []models.Quotation {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.Quotations()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Quotation, 0)
	for _, q := range s.quotations {
		haystack := q.ID
		for _, c := range s.clients {
			if c.ID == q.ClientID {
				haystack = c.Name + " " + c.Surname + " " + c.Company + " " + q.ID
				break
			}
		}
		if strings.Contains(strings.ToLower(haystack), query) {
			out = append(out, q)
		}
	}
	return out
}
