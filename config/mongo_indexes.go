package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}

	db := MongoClient.Database(MongoDatabaseName())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// saved_paths indexes
	paths := db.Collection("saved_paths")
	_, err := paths.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// One roadmap per (user, career); regeneration overwrites.
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "career_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_user_career").
				SetUnique(true),
		},
		// Query helper for "my paths" listings
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("by_user_updated"),
		},
	})
	return err
}
