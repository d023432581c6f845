package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/archemics/salessnap/internal/models"
)

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Tags        []string
	Stock       int
	Status      models.ProductStatus
	ImageURL    string
}

// ProductUpdate lists the mutable product fields. Status and Stock are
// independently settable; the store never derives one from the other.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Tags        []string
	Stock       *int
	Status      *models.ProductStatus
	ImageURL    *string
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// normalizeTags lowercases tags, preserving insertion order for display.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) AddProduct(in ProductInput) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Tags:        normalizeTags(in.Tags),
		Stock:       in.Stock,
		Status:      in.Status,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}
	s.products = append(s.products, p)
	s.persist(productsKey, s.products)
	return p
}

func (s *Store) UpdateProduct(id string, upd ProductUpdate) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.products[i].Name = *upd.Name
		}
		if upd.Description != nil {
			s.products[i].Description = *upd.Description
		}
		if upd.Price != nil {
			s.products[i].Price = *upd.Price
		}
		if upd.Category != nil {
			s.products[i].Category = *upd.Category
		}
		if upd.Tags != nil {
			s.products[i].Tags = normalizeTags(upd.Tags)
		}
		if upd.Stock != nil {
			s.products[i].Stock = *upd.Stock
		}
		if upd.Status != nil {
			s.products[i].Status = *upd.Status
		}
		if upd.ImageURL != nil {
			s.products[i].ImageURL = *upd.ImageURL
		}
		s.persist(productsKey, s.products)
		return s.products[i], true
	}
	return models.Product{}, false
}

func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(productsKey, s.products)
			return true
		}
	}
	return false
}

// SearchProducts splits the query into whitespace-separated terms and matches
// a product when any term is a case-insensitive substring of its concatenated
// name, description, category and tags. An empty query returns the whole
// catalog.
func (s *Store) SearchProducts(query string) []models.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Products()
	}
	terms := strings.Fields(strings.ToLower(query))

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0)
	for _, p := range s.products {
		haystack := strings.ToLower(strings.Join(append([]string{p.Name, p.Description, p.Category}, p.Tags...), " "))
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
