package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is the slice of *mongo.Collection this application uses.
// Handlers and validators depend on it instead of the concrete driver
// type so the query paths can be tested without a running database.
type Collection interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...options.Lister[options.CountOptions]) (int64, error)
	InsertOne(ctx context.Context, document interface{}, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	InsertMany(ctx context.Context, documents interface{}, opts ...options.Lister[options.InsertManyOptions]) (*mongo.InsertManyResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
}

// DB hands out named collections.
type DB interface {
	Collection(name string) Collection
}

// Wrap adapts a driver database to the DB seam.
func Wrap(db *mongo.Database) DB {
	return mongoDatabase{db: db}
}

type mongoDatabase struct {
	db *mongo.Database
}

func (m mongoDatabase) Collection(name string) Collection {
	return m.db.Collection(name)
}
