package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Categories is the label set offered by the admin form. Free text is still
// accepted on the wire — the list is a convention, not a constraint.
var Categories = []string{
	"Electronics", "Clothing", "Home", "Sports", "Books", "Toys", "Tools", "Other",
}

// Product is the only listed entity: one row per item offered in the store.
// Status starts as available on every create and only changes through an
// explicit transition; stock is never touched by a status change.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"index;not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category    string          `gorm:"not null"`
	Stock       int             `gorm:"not null;default:0"`
	Status      Status          `gorm:"type:varchar(16);not null;default:'available';check:chk_products_status,status IN ('available','reserved','sold')"`
	ImageURL    *string
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}
