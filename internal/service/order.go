package service

import (
	"context"
	"fmt"
	"time"

	"comanda/internal/model"
	"comanda/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService handles the order lifecycle: creation with embedded product
// snapshots, owner-or-admin access and the admin-only status transitions.
type OrderService struct {
	orders   repository.IOrderRepository
	products repository.IProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(orders repository.IOrderRepository, products repository.IProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// List returns all orders. Listing is visible to any authenticated identity,
// not owner-filtered.
func (s *OrderService) List(ctx context.Context) ([]*model.Order, error) {
	return s.orders.FindAll(ctx)
}

// Get returns an order by id. Only the owner or an admin may read it.
func (s *OrderService) Get(ctx context.Context, ident model.Identity, id primitive.ObjectID) (*model.Order, error) {
	order, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ident.IsAdmin() && order.UserID.Hex() != ident.UserID {
		return nil, model.ErrForbidden
	}
	return order, nil
}

// Create places a new order owned by the caller. Products are resolved by id
// and embedded as snapshots of their current fields, so later product edits
// leave the order untouched. An explicit valid initial status is accepted;
// the default is "En preparación".
func (s *OrderService) Create(ctx context.Context, ident model.Identity, req *model.CreateOrderRequest) (*model.Order, error) {
	if req.Client == "" || req.Table == nil || len(req.Products) == 0 {
		return nil, fmt.Errorf("%w: client, table and products are required", model.ErrInvalid)
	}

	status := model.StatusPreparing
	if req.Status != "" {
		if !model.ValidOrderStatus(req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", model.ErrInvalid, req.Status)
		}
		status = req.Status
	}

	items, err := s.resolveItems(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	ownerID, err := primitive.ObjectIDFromHex(ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	order := &model.Order{
		UserID:    ownerID,
		Client:    req.Client,
		Table:     *req.Table,
		Products:  items,
		Status:    status,
		DateEntry: time.Now(),
	}
	return s.orders.Create(ctx, order)
}

// Update applies a partial update to an order. Only the owner or an admin
// may update it; a status change is admin-only. Replacing the products list
// re-resolves snapshots at this moment.
func (s *OrderService) Update(ctx context.Context, ident model.Identity, id primitive.ObjectID, patch *model.UpdateOrderRequest) (*model.Order, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", model.ErrInvalid)
	}
	if patch.Status != nil && !model.ValidOrderStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", model.ErrInvalid, *patch.Status)
	}

	order, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ident.IsAdmin() && order.UserID.Hex() != ident.UserID {
		return nil, model.ErrForbidden
	}
	if patch.Status != nil && !ident.IsAdmin() {
		return nil, fmt.Errorf("%w: only an admin may change order status", model.ErrForbidden)
	}

	if patch.Client != nil {
		if *patch.Client == "" {
			return nil, fmt.Errorf("%w: client must not be empty", model.ErrInvalid)
		}
		order.Client = *patch.Client
	}
	if patch.Table != nil {
		order.Table = *patch.Table
	}
	if patch.Products != nil {
		if len(patch.Products) == 0 {
			return nil, fmt.Errorf("%w: products must not be empty", model.ErrInvalid)
		}
		items, err := s.resolveItems(ctx, patch.Products)
		if err != nil {
			return nil, err
		}
		order.Products = items
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes an order by id and returns the deleted record. Only the
// owner or an admin may delete it.
func (s *OrderService) Delete(ctx context.Context, ident model.Identity, id primitive.ObjectID) (*model.Order, error) {
	order, err := s.Get(ctx, ident, id)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) lookup(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", model.ErrNotFound, id.Hex())
	}
	return order, nil
}

func (s *OrderService) resolveItems(ctx context.Context, reqs []model.OrderItemRequest) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0, len(reqs))
	for _, item := range reqs {
		if item.Qty <= 0 {
			return nil, fmt.Errorf("%w: qty must be greater than zero", model.ErrInvalid)
		}
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid product id %q", model.ErrInvalid, item.ProductID)
		}
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: unknown product %s", model.ErrInvalid, item.ProductID)
		}
		items = append(items, model.OrderItem{
			Qty:     item.Qty,
			Product: model.SnapshotOf(product),
		})
	}
	return items, nil
}
