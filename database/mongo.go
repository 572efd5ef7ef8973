package database

import (
	"context"
	"log"
	"time"

	"gingallery/config"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	UsersCollection    = "users"
	ClustersCollection = "clusters"
	ImagesCollection   = "images"
)

func Connect(cfg *config.Config) (DB, error) {
	connectionString := options.Client().ApplyURI(cfg.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectionString)
	if err != nil {
		log.Println("Mongo Connect error:", err)
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		log.Println("Mongo Ping error:", err)
		return nil, err
	}

	db := client.Database(cfg.DatabaseName)
	if err := EnsureIndexes(ctx, db); err != nil {
		log.Println("Mongo index error:", err)
		return nil, err
	}

	log.Println("MongoDB connected successfully")
	return Wrap(db), nil
}

// EnsureIndexes creates the unique indexes backing every uniqueness rule in
// the system. The pre-insert existence checks give friendly errors, but
// under concurrent requests these indexes are the source of truth: a lost
// check-then-act race surfaces as a duplicate-key error on insert.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	specs := map[string][]mongo.IndexModel{
		UsersCollection:    {unique("username")},
		ClustersCollection: {unique("clusterName"), unique("clusterURI")},
		ImagesCollection:   {unique("image")},
	}

	for collection, indexes := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}
	return nil
}
