package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product represents a product record as exposed by the remote API
type Product struct {
	ID          int             `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"isActive"`
}

// StatusLabel returns the human-readable active state
func (p Product) StatusLabel() string {
	if p.IsActive {
		return "Active"
	}
	return "Inactive"
}

// Matches reports whether the product matches a case-insensitive search term.
// Search covers SKU and name.
func (p Product) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.SKU), term) ||
		strings.Contains(strings.ToLower(p.Name), term)
}

// ProductForm is the payload for creating or updating a product
type ProductForm struct {
	ID          int             `json:"id"`
	SKU         string          `json:"sku" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	IsActive    bool            `json:"isActive"`
}

// IsEditing reports whether the form targets an existing record
func (f ProductForm) IsEditing() bool {
	return f.ID != 0
}
