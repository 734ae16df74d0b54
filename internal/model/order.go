package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status wire values. An order starts in preparation, moves to the bar
// when the kitchen is done, and ends delivered.
const (
	StatusPreparing = "En preparación"
	StatusReady     = "Listo en barra"
	StatusDelivered = "Entregado"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// ProductSnapshot is a copy of a product's fields taken when it is added to
// an order. Later edits to the product do not touch orders already placed,
// which keeps historical names and prices intact.
type ProductSnapshot struct {
	ID        primitive.ObjectID `bson:"id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Image     string             `bson:"image" json:"image"`
	Type      string             `bson:"type" json:"type"`
	DateEntry time.Time          `bson:"dateEntry" json:"dateEntry"`
}

// SnapshotOf captures a product's current fields.
func SnapshotOf(p *Product) ProductSnapshot {
	return ProductSnapshot{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Type:      p.Type,
		DateEntry: p.DateEntry,
	}
}

type OrderItem struct {
	Qty     int             `bson:"qty" json:"qty"`
	Product ProductSnapshot `bson:"product" json:"product"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Client    string             `bson:"client" json:"client"`
	Table     int                `bson:"table" json:"table"`
	Products  []OrderItem        `bson:"products" json:"products"`
	Status    string             `bson:"status" json:"status"`
	DateEntry time.Time          `bson:"dateEntry" json:"dateEntry"`
}

func (o *Order) GetID() primitive.ObjectID   { return o.ID }
func (o *Order) SetID(id primitive.ObjectID) { o.ID = id }

// OrderItemRequest references a product by id; the service resolves it into
// a snapshot at creation or replacement time.
type OrderItemRequest struct {
	Qty       int    `json:"qty"`
	ProductID string `json:"productId"`
}

// CreateOrderRequest is the body of POST /orders. Status is optional; when
// present it must be a valid status, otherwise the order starts in
// preparation.
type CreateOrderRequest struct {
	Client   string             `json:"client"`
	Table    *int               `json:"table"`
	Products []OrderItemRequest `json:"products"`
	Status   string             `json:"status"`
}

// UpdateOrderRequest is the body of PATCH /orders/:id. Absent fields are
// left untouched; a status change requires admin privilege.
type UpdateOrderRequest struct {
	Client   *string            `json:"client"`
	Table    *int               `json:"table"`
	Products []OrderItemRequest `json:"products"`
	Status   *string            `json:"status"`
}

// IsEmpty reports whether the patch contains nothing to apply.
func (r *UpdateOrderRequest) IsEmpty() bool {
	return r.Client == nil && r.Table == nil && r.Products == nil && r.Status == nil
}
