// File: database/repository/room/roomMongoCrud.go
package roomRepo

import (
	"context"
	"fmt"
	"time"

	"hotelify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new room document.
func (r *MongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// Update replaces an existing room document.
func (r *MongoRoomRepo) Update(ctx context.Context, room *models.Room) error {
	room.UpdatedAt = time.Now()
	filter := bson.M{"id": room.ID}
	update := bson.M{"$set": room}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update room with id %s: %w", room.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", room.ID)
	}
	return nil
}

// Delete removes a room document by its ID.
func (r *MongoRoomRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	return nil
}

// SetStatus updates only the status field. Used by the booking cascade so a
// room flip rides the same session as the booking write.
func (r *MongoRoomRepo) SetStatus(ctx context.Context, id, status string) error {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set status for room %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	return nil
}
