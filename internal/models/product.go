package models

import (
	"encoding/json"
	"fmt"
)

// Placeholder values used when a product is synthesized from an ID alone
const (
	PlaceholderProductID    = "123"
	PlaceholderPrice        = 1000
	PlaceholderDescription  = "This is a sample product"
	PlaceholderCategoryName = "electronics"
)

// Product represents a product in the demo catalog
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
}

// PlaceholderProduct synthesizes the product record returned for an arbitrary ID
func PlaceholderProduct(id string) *Product {
	return &Product{
		ID:          id,
		Name:        fmt.Sprintf("Product %s", id),
		Price:       PlaceholderPrice,
		Description: stringPtr(PlaceholderDescription),
		Category:    PlaceholderCategoryName,
	}
}

// GetDescription returns the product description or empty string if nil
func (p *Product) GetDescription() string {
	if p.Description == nil {
		return ""
	}
	return *p.Description
}

// Attributes returns the product as a free-form attribute set
func (p *Product) Attributes() Attributes {
	attrs := Attributes{
		"id":       p.ID,
		"name":     p.Name,
		"price":    p.Price,
		"category": p.Category,
	}
	if p.Description != nil {
		attrs["description"] = *p.Description
	}
	return attrs
}

// UpdatableFields lists the product fields a client may override on update
var UpdatableFields = []string{"name", "price", "description", "category"}

// ApplyUpdate overlays the updatable fields present in update onto the product.
// Present fields win even when their value is null; unknown fields are ignored.
func (p *Product) ApplyUpdate(update Attributes) Attributes {
	return p.Attributes().Overlay(update, UpdatableFields...)
}

// ProductDraft captures which of the required fields a create request carries.
// A field holding JSON null still counts as present.
type ProductDraft struct {
	Name     json.RawMessage `json:"name" validate:"required"`
	Price    json.RawMessage `json:"price" validate:"required"`
	Category json.RawMessage `json:"category" validate:"required"`
}

// DraftFromAttributes records which required fields appear in submitted.
// Keys must match exactly; "NAME" does not satisfy "name".
func DraftFromAttributes(submitted Attributes) ProductDraft {
	return ProductDraft{
		Name:     rawField(submitted, "name"),
		Price:    rawField(submitted, "price"),
		Category: rawField(submitted, "category"),
	}
}

func rawField(a Attributes, key string) json.RawMessage {
	v, ok := a[key]
	if !ok {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return raw
}

// Validate reports the first missing required field
func (d *ProductDraft) Validate() error {
	return validateStruct(d)
}

// NewProductFromDraft echoes the submitted attributes with the placeholder ID
func NewProductFromDraft(submitted Attributes) Attributes {
	product := submitted.Clone()
	product["id"] = PlaceholderProductID
	return product
}
