package models

import "time"

// Client entity
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnknownClientLabel is substituted by readers when a quotation or delivery
// note references a client that has since been deleted.
const UnknownClientLabel = "Unknown Client"
