package dto

import "github.com/shopspring/decimal"

// CatalogItemResponse is the public view of a product. Reserved and sold items
// still appear, but only available ones carry a contact link — the others get
// an informational notice instead.
type CatalogItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Stock        int             `json:"stock"`
	Status       string          `json:"status"`
	ImageURL     *string         `json:"image_url"`
	ContactURL   string          `json:"contact_url,omitempty"`
	StatusNotice string          `json:"status_notice,omitempty"`
}

type CatalogResponse struct {
	Data  []CatalogItemResponse `json:"data"`
	Total int                   `json:"total"`
}

// UploadResponse is returned by the image upload endpoint.
type UploadResponse struct {
	URL string `json:"url"`
}
