package repository

import (
	"context"
	"errors"

	"comanda/internal/model"
	"comanda/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IProductRepository defines product persistence
type IProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	FindAll(ctx context.Context) ([]*model.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductRepository implements product persistence over the products collection
type ProductRepository struct {
	*generic.MongoBaseRepository[*model.Product]
}

func NewProductRepository(db *mongo.Database) IProductRepository {
	return &ProductRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.Product](db.Collection("products")),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := r.MongoBaseRepository.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// FindByID returns (nil, nil) when no product has the given id.
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	product, err := r.GetByID(ctx, id)
	if errors.Is(err, generic.ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// FindByName returns (nil, nil) when no product has the given name.
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var product *model.Product
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}
