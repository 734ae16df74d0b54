package repository

import (
	"context"
	"errors"

	"comanda/internal/model"
	"comanda/pkg/generic"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IOrderRepository defines order persistence
type IOrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	FindAll(ctx context.Context) ([]*model.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// OrderRepository implements order persistence over the orders collection
type OrderRepository struct {
	*generic.MongoBaseRepository[*model.Order]
}

func NewOrderRepository(db *mongo.Database) IOrderRepository {
	return &OrderRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Order](db.Collection("orders")),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if err := r.MongoBaseRepository.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// FindByID returns (nil, nil) when no order has the given id.
func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	order, err := r.GetByID(ctx, id)
	if errors.Is(err, generic.ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}
