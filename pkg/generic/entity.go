package generic

import "go.mongodb.org/mongo-driver/bson/primitive"

// Entity is implemented by every model persisted through a base repository.
type Entity interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}
