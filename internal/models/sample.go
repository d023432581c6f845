package models

import "time"

// Request lifecycle shared by sample requests and delivery notes:
// pending -> approved -> delivered, or pending -> rejected.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestDelivered RequestStatus = "delivered"
)

// SampleRequest asks the lab to prepare product samples for a client.
type SampleRequest struct {
	ID          string        `json:"id"`
	ProductIDs  []string      `json:"productIds"`
	ClientID    string        `json:"clientId"`
	Notes       string        `json:"notes,omitempty"`
	Status      RequestStatus `json:"status"`
	RequestedBy string        `json:"requestedBy"`
	RequestedAt time.Time     `json:"requestedAt"`
	ApprovedBy  string        `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time    `json:"approvedAt,omitempty"`
}
