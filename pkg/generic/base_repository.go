package generic

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoDocument is returned when a lookup matches nothing.
var ErrNoDocument = errors.New("document not found")

// BaseRepository covers the persistence operations shared by all entities.
type BaseRepository[T Entity] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id primitive.ObjectID) (T, error)
	FindAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoBaseRepository implements BaseRepository over a single collection.
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection}
}

func (r *MongoBaseRepository[T]) Create(ctx context.Context, entity T) error {
	entity.SetID(primitive.NewObjectID())
	_, err := r.Collection.InsertOne(ctx, entity)
	return err
}

func (r *MongoBaseRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	var entity T
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, ErrNoDocument
	}
	return entity, err
}

func (r *MongoBaseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entities := []T{}
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// Update performs a full replace of the stored document. Concurrent updates
// to the same document are last-write-wins.
func (r *MongoBaseRepository[T]) Update(ctx context.Context, entity T) error {
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": entity.GetID()}, entity)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *MongoBaseRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
