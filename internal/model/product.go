package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product type wire values. The menu is split into breakfast and lunch
// offerings; clients send and receive these literals.
const (
	TypeBreakfast = "Desayuno"
	TypeLunch     = "Almuerzo"
)

// ValidProductType reports whether t is a known product type.
func ValidProductType(t string) bool {
	return t == TypeBreakfast || t == TypeLunch
}

type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image" json:"image"`
	Type      string             `bson:"type" json:"type"`
	DateEntry time.Time          `bson:"dateEntry" json:"dateEntry"`
}

func (p *Product) GetID() primitive.ObjectID   { return p.ID }
func (p *Product) SetID(id primitive.ObjectID) { p.ID = id }

// CreateProductRequest is the body of POST /products. Price is a pointer so
// a missing price can be told apart from an explicit zero.
type CreateProductRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Image string   `json:"image"`
	Type  string   `json:"type"`
}

// UpdateProductRequest is the body of PATCH /products/:id.
type UpdateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Image *string  `json:"image"`
	Type  *string  `json:"type"`
}

// IsEmpty reports whether the patch contains nothing to apply.
func (r *UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Price == nil && r.Image == nil && r.Type == nil
}
