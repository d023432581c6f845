package models

import "time"

// Product availability status. Status is settable independently of Stock;
// stock hitting zero never flips the status on its own.
type ProductStatus string

const (
	StatusInStock    ProductStatus = "in-stock"
	StatusOutOfStock ProductStatus = "out-of-stock"
	StatusOnCommand  ProductStatus = "on-command"
)

// ValidProductStatus reports whether s is one of the known statuses.
func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case StatusInStock, StatusOutOfStock, StatusOnCommand:
		return true
	}
	return false
}

// Product catalog entry. Tags are stored lowercase in insertion order.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

const UnknownProductLabel = "Unknown Product"
