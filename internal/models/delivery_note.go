package models

import "time"

// DeliveryNoteItem carries no pricing; delivery documents list goods only.
type DeliveryNoteItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// DeliveryNote follows the same pending/approved/rejected/delivered lifecycle
// as sample requests and can be exported as a signed delivery document.
type DeliveryNote struct {
	ID          string             `json:"id"`
	ClientID    string             `json:"clientId"`
	Items       []DeliveryNoteItem `json:"items"`
	Notes       string             `json:"notes,omitempty"`
	Status      RequestStatus      `json:"status"`
	RequestedBy string             `json:"requestedBy"`
	RequestedAt time.Time          `json:"requestedAt"`
	ApprovedBy  string             `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time         `json:"approvedAt,omitempty"`
}
