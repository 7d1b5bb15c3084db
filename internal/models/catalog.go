package models

import "github.com/google/uuid"

type ProductType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Brand struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Color struct {
	ID    uuid.UUID `json:"id"`
	Value string    `json:"value"`
}

type Size struct {
	ID    uuid.UUID `json:"id"`
	Value string    `json:"value"`
}

// BrandType associates a brand with a product type. It is the scoping
// unit for size availability and the foreign key orders reference.
type BrandType struct {
	ID      uuid.UUID `json:"id"`
	BrandID uuid.UUID `json:"brand_id"`
	TypeID  uuid.UUID `json:"type_id"`
}

// Product is the canonical flat view of a catalog product row joined to
// its optional brand, color and product type. All reads go through a
// single mapping into this shape.
type Product struct {
	ID          uuid.UUID    `json:"id"`
	ProductName string       `json:"product_name"`
	Image       string       `json:"image"`
	Brand       *Brand       `json:"brand,omitempty"`
	Color       *Color       `json:"color,omitempty"`
	ProductType *ProductType `json:"product_type,omitempty"`
}
