package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/archemics/salessnap/internal/models"
)

// Sample requests and delivery notes share the pending/approved/rejected/
// delivered lifecycle. Approvals record who approved and when; rejection and
// delivery only move the status.

type SampleRequestInput struct {
	ProductIDs  []string
	ClientID    string
	Notes       string
	RequestedBy string
}

func (s *Store) SampleRequests() []models.SampleRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SampleRequest, len(s.samples))
	copy(out, s.samples)
	return out
}

func (s *Store) AddSampleRequest(in SampleRequestInput) models.SampleRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := models.SampleRequest{
		ID:          uuid.NewString(),
		ProductIDs:  append([]string(nil), in.ProductIDs...),
		ClientID:    in.ClientID,
		Notes:       in.Notes,
		Status:      models.RequestPending,
		RequestedBy: in.RequestedBy,
		RequestedAt: time.Now(),
	}
	s.samples = append(s.samples, r)
	s.persist(samplesKey, s.samples)
	return r
}

func (s *Store) ApproveSampleRequest(id, approverID string) (models.SampleRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.samples {
		if s.samples[i].ID == id {
			now := time.Now()
			s.samples[i].Status = models.RequestApproved
			s.samples[i].ApprovedBy = approverID
			s.samples[i].ApprovedAt = &now
			s.persist(samplesKey, s.samples)
			return s.samples[i], true
		}
	}
	return models.SampleRequest{}, false
}

func (s *Store) SetSampleRequestStatus(id string, status models.RequestStatus) (models.SampleRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.samples {
		if s.samples[i].ID == id {
			s.samples[i].Status = status
			s.persist(samplesKey, s.samples)
			return s.samples[i], true
		}
	}
	return models.SampleRequest{}, false
}

type DeliveryNoteInput struct {
	ClientID    string
	Items       []models.DeliveryNoteItem
	Notes       string
	RequestedBy string
}

func (s *Store) DeliveryNotes() []models.DeliveryNote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DeliveryNote, len(s.deliveryNotes))
	copy(out, s.deliveryNotes)
	return out
}

func (s *Store) DeliveryNoteByID(id string) (models.DeliveryNote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.deliveryNotes {
		if n.ID == id {
			return n, true
		}
	}
	return models.DeliveryNote{}, false
}

func (s *Store) AddDeliveryNote(in DeliveryNoteInput) models.DeliveryNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := models.DeliveryNote{
		ID:          uuid.NewString(),
		ClientID:    in.ClientID,
		Items:       append([]models.DeliveryNoteItem(nil), in.Items...),
		Notes:       in.Notes,
		Status:      models.RequestPending,
		RequestedBy: in.RequestedBy,
		RequestedAt: time.Now(),
	}
	s.deliveryNotes = append(s.deliveryNotes, n)
	s.persist(deliveryNotesKey, s.deliveryNotes)
	return n
}

func (s *Store) ApproveDeliveryNote(id, approverID string) (models.DeliveryNote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.deliveryNotes {
		if s.deliveryNotes[i].ID == id {
			now := time.Now()
			s.deliveryNotes[i].Status = models.RequestApproved
			s.deliveryNotes[i].ApprovedBy = approverID
			s.deliveryNotes[i].ApprovedAt = &now
			s.persist(deliveryNotesKey, s.deliveryNotes)
			return s.deliveryNotes[i], true
		}
	}
	return models.DeliveryNote{}, false
}

func (s *Store) SetDeliveryNoteStatus(id string, status models.RequestStatus) (models.DeliveryNote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.deliveryNotes {
		if s.deliveryNotes[i].ID == id {
			s.deliveryNotes[i].Status = status
			s.persist(deliveryNotesKey, s.deliveryNotes)
			return s.deliveryNotes[i], true
		}
	}
	return models.DeliveryNote{}, false
}
