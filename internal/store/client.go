package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/archemics/salessnap/internal/models"
)

// ClientInput carries validated form input for a new client.
type ClientInput struct {
	Name    string
	Surname string
	Company string
	Phone   string
	Email   string
}

// ClientUpdate lists the mutable client fields; nil leaves a field unchanged.
type ClientUpdate struct {
	Name    *string
	Surname *string
	Company *string
	Phone   *string
	Email   *string
}

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) ClientByID(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

// ClientLabel resolves a client reference for display, tolerating dangling
// ids left behind by deletes.
func (s *Store) ClientLabel(id string) string {
	c, ok := s.ClientByID(id)
	if !ok {
		return models.UnknownClientLabel
	}
	return c.Name + " " + c.Surname
}

func (s *Store) AddClient(in ClientInput) models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Client{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Surname:   in.Surname,
		Company:   in.Company,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: time.Now(),
	}
	s.clients = append(s.clients, c)
	s.persist(clientsKey, s.clients)
	return c
}

func (s *Store) UpdateClient(id string, upd ClientUpdate) (models.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.clients[i].Name = *upd.Name
		}
		if upd.Surname != nil {
			s.clients[i].Surname = *upd.Surname
		}
		if upd.Company != nil {
			s.clients[i].Company = *upd.Company
		}
		if upd.Phone != nil {
			s.clients[i].Phone = *upd.Phone
		}
		if upd.Email != nil {
			s.clients[i].Email = *upd.Email
		}
		s.persist(clientsKey, s.clients)
		return s.clients[i], true
	}
	return models.Client{}, false
}

// DeleteClient is unconditional: quotations, samples and delivery notes
// referencing the client keep their now-dangling id.
func (s *Store) DeleteClient(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			s.persist(clientsKey, s.clients)
			return true
		}
	}
	return false
}
