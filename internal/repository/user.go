package repository

import (
	"context"
	"errors"

	"comanda/internal/model"
	"comanda/pkg/generic"
	"comanda/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IUserRepository defines user persistence
type IUserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDOrEmail(ctx context.Context, uid string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserRepository implements user persistence over the users collection
type UserRepository struct {
	*generic.MongoBaseRepository[*model.User]
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.User](db.Collection("users")),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.MongoBaseRepository.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail returns (nil, nil) when no user has the given email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// FindByIDOrEmail resolves uid as an ObjectID hex when it parses as one,
// otherwise as an email address. Returns (nil, nil) when nothing matches.
func (r *UserRepository) FindByIDOrEmail(ctx context.Context, uid string) (*model.User, error) {
	if !util.IsValidObjectID(uid) {
		return r.FindByEmail(ctx, uid)
	}
	objID, err := util.ParseObjectID(uid)
	if err != nil {
		return nil, err
	}
	user, err := r.GetByID(ctx, objID)
	if errors.Is(err, generic.ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
