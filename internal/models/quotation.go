package models

import "time"

type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "draft"
	QuotationSent     QuotationStatus = "sent"
	QuotationAccepted QuotationStatus = "accepted"
	QuotationDeclined QuotationStatus = "declined"
)

func ValidQuotationStatus(s QuotationStatus) bool {
	switch s {
	case QuotationDraft, QuotationSent, QuotationAccepted, QuotationDeclined:
		return true
	}
	return false
}

// QuotationItem references a product by id and captures the unit price at
// quotation time, so later catalog price changes leave the quotation stable.
// Discount is a percentage in [0,100]; zero means none.
type QuotationItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount,omitempty"`
}

// Quotation holds an ordered item list plus a stored pre-VAT subtotal.
// Total is redundant: writers keep it in sync with Items via the pricing
// engine; the store never recomputes it.
type Quotation struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"clientId"`
	Items     []QuotationItem `json:"items"`
	Total     float64         `json:"total"`
	Status    QuotationStatus `json:"status"`
	CreatedBy string          `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
