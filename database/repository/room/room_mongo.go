// File: database/repository/room/room_mongo.go
package roomRepo

import (
	"context"
	"fmt"
	"time"

	"hotelify/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() *MongoRoomRepo {
	return &MongoRoomRepo{
		coll: database.DB().Collection("rooms"),
	}
}

// EnsureIndexes creates the unique room number index.
func (r *MongoRoomRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create room indexes: %w", err)
	}
	return nil
}
