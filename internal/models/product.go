package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product entity in the catalog. ImagePath holds the
// download URL of the product image, empty until one is uploaded.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImagePath string          `json:"imagePath"`
}
