package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/archemics/salessnap/internal/models"
)

type DocumentInput struct {
	ProductID string
	Type      string
	Filename  string
	FileURL   string
}

func (s *Store) Documents() []models.DocumentFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DocumentFile, len(s.documents))
	copy(out, s.documents)
	return out
}

func (s *Store) AddDocument(in DocumentInput) models.DocumentFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := models.DocumentFile{
		ID:         uuid.NewString(),
		ProductID:  in.ProductID,
		Type:       in.Type,
		Filename:   in.Filename,
		FileURL:    in.FileURL,
		UploadedAt: time.Now(),
	}
	s.documents = append(s.documents, d)
	s.persist(documentsKey, s.documents)
	return d
}

func (s *Store) DeleteDocument(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			s.persist(documentsKey, s.documents)
			return true
		}
	}
	return false
}

// SearchDocuments matches filename, document type or the related product's
// name, case-insensitively.
func (s *Store) SearchDocuments(query string) []models.DocumentFile {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.Documents()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DocumentFile, 0)
	for _, d := range s.documents {
		productName := ""
		for _, p := range s.products {
			if p.ID == d.ProductID {
				productName = p.Name
				break
			}
		}
		haystack := strings.ToLower(d.Filename + " " + d.Type + " " + productName)
		if strings.Contains(haystack, query) {
			out = append(out, d)
		}
	}
	return out
}
