package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateProductRequest deliberately carries no status field: every new product
// is persisted as available no matter what the client sends.
// Price and Stock bind through pointers so an absent key is distinguishable
// from an explicit zero: omitting either fails required, sending 0 is legal.
type CreateProductRequest struct {
	Name        string           `json:"name"        validate:"required,min=1,max=120"`
	Description string           `json:"description" validate:"required,min=1"`
	Price       *decimal.Decimal `json:"price"       validate:"required,min=0"`
	Category    string           `json:"category"    validate:"required,min=1,max=60"`
	Stock       *int             `json:"stock"       validate:"required,min=0"`
	ImageURL    *string          `json:"image_url"   validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	Name        string           `json:"name"        validate:"required,min=1,max=120"`
	Description string           `json:"description" validate:"required,min=1"`
	Price       *decimal.Decimal `json:"price"       validate:"required,min=0"`
	Category    string           `json:"category"    validate:"required,min=1,max=60"`
	Stock       *int             `json:"stock"       validate:"required,min=0"`
	Status      string           `json:"status"      validate:"required,oneof=available reserved sold"`
	ImageURL    *string          `json:"image_url"   validate:"omitempty,url"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available reserved sold"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// ProductFilter carries the two admin list filters. Status accepts the three
// states plus "all" (the identity filter, also the default when empty).
type ProductFilter struct {
	Search string `form:"search"`
	Status string `form:"status,default=all" validate:"omitempty,oneof=available reserved sold all"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Status      string          `json:"status"`
	ImageURL    *string         `json:"image_url"`
	CreatedAt   string          `json:"created_at"` // RFC 3339
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}

// ProductStatsResponse aggregates over the FULL list, never the filtered view.
type ProductStatsResponse struct {
	Total      int             `json:"total"`
	Available  int             `json:"available"`
	Reserved   int             `json:"reserved"`
	Sold       int             `json:"sold"`
	TotalValue decimal.Decimal `json:"total_value"` // Σ price × stock, all statuses
}
