package service

import (
	"context"
	"fmt"
	"time"

	"comanda/internal/model"
	"comanda/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService handles product business logic
type ProductService struct {
	products repository.IProductRepository
}

// NewProductService creates a new product service
func NewProductService(products repository.IProductRepository) *ProductService {
	return &ProductService{products: products}
}

// List returns all products
func (s *ProductService) List(ctx context.Context) ([]*model.Product, error) {
	return s.products.FindAll(ctx)
}

// Get returns a product by id
func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %s", model.ErrNotFound, id.Hex())
	}
	return product, nil
}

// Create registers a new product. Name and a positive price are required;
// the type must be a known menu section. Duplicate names are rejected.
// DateEntry is set at creation time.
func (s *ProductService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if req.Name == "" || req.Price == nil {
		return nil, fmt.Errorf("%w: name and price are required", model.ErrInvalid)
	}
	if *req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", model.ErrInvalid)
	}
	if !model.ValidProductType(req.Type) {
		return nil, fmt.Errorf("%w: type must be %q or %q", model.ErrInvalid, model.TypeBreakfast, model.TypeLunch)
	}

	existing, err := s.products.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: product %s", model.ErrDuplicate, req.Name)
	}

	product := &model.Product{
		Name:      req.Name,
		Price:     *req.Price,
		Image:     req.Image,
		Type:      req.Type,
		DateEntry: time.Now(),
	}
	return s.products.Create(ctx, product)
}

// Update applies a partial update to a product. DateEntry is fixed at
// creation and never patched.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, patch *model.UpdateProductRequest) (*model.Product, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", model.ErrInvalid)
	}

	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		if *patch.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be greater than zero", model.ErrInvalid)
		}
		product.Price = *patch.Price
	}
	if patch.Image != nil {
		product.Image = *patch.Image
	}
	if patch.Type != nil {
		if !model.ValidProductType(*patch.Type) {
			return nil, fmt.Errorf("%w: type must be %q or %q", model.ErrInvalid, model.TypeBreakfast, model.TypeLunch)
		}
		product.Type = *patch.Type
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product by id and returns the deleted record.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return nil, err
	}
	return product, nil
}
