package service

import (
	"context"

	"comanda/internal/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockUserRepo implements repository.IUserRepository. Create assigns an id
// and echoes the input, mirroring the Mongo implementation.
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	user.ID = primitive.NewObjectID()
	return user, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByIDOrEmail(ctx context.Context, uid string) (*model.User, error) {
	args := m.Called(ctx, uid)
	if res := args.Get(0); res != nil {
		return res.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockProductRepo implements repository.IProductRepository.
type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, product)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	product.ID = primitive.NewObjectID()
	return product, nil
}

func (m *mockProductRepo) FindAll(ctx context.Context) ([]*model.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	args := m.Called(ctx, name)
	if res := args.Get(0); res != nil {
		return res.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockOrderRepo implements repository.IOrderRepository.
type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	args := m.Called(ctx, order)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	order.ID = primitive.NewObjectID()
	return order, nil
}

func (m *mockOrderRepo) FindAll(ctx context.Context) ([]*model.Order, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
