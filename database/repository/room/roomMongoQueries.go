// File: database/repository/room/roomMongoQueries.go
package roomRepo

import (
	"context"
	"fmt"

	"hotelify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a room by its unique ID.
func (r *MongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("room with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch room %s: %w", id, err)
	}
	return &room, nil
}

// List retrieves rooms matching the filter.
func (r *MongoRoomRepo) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

// Search finds rooms whose number or type matches the query,
// case-insensitively.
func (r *MongoRoomRepo) Search(ctx context.Context, query string, limit int64) ([]models.Room, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"number": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"type": bson.M{"$regex": query, "$options": "i"}},
		},
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}
