package models

import "time"

// DocumentFile is a library record attached to a product (TDS, MSDS, ...).
// No file bytes are stored; FileURL points at wherever the upload landed.
type DocumentFile struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	Type       string    `json:"type"`
	Filename   string    `json:"filename"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}
