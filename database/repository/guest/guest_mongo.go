// File: database/repository/guest/guest_mongo.go
package guestRepo

import (
	"context"
	"fmt"
	"time"

	"hotelify/database"
	"hotelify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo constructs a new MongoDB GuestRepository.
func NewMongoGuestRepo() *MongoGuestRepo {
	return &MongoGuestRepo{
		coll: database.DB().Collection("guests"),
	}
}

// EnsureIndexes creates the unique phone index.
func (r *MongoGuestRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create guest indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a guest by its unique ID.
func (r *MongoGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	var guest models.Guest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("guest with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch guest %s: %w", id, err)
	}
	return &guest, nil
}

// List retrieves all guests.
func (r *MongoGuestRepo) List(ctx context.Context) ([]models.Guest, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guests: %w", err)
	}
	defer cursor.Close(ctx)

	var guests []models.Guest
	if err := cursor.All(ctx, &guests); err != nil {
		return nil, fmt.Errorf("error decoding guests: %w", err)
	}
	return guests, nil
}

// Create inserts a new guest document.
func (r *MongoGuestRepo) Create(ctx context.Context, guest *models.Guest) error {
	now := time.Now()
	guest.CreatedAt = now
	guest.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, guest)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("phone number already exists: %w", err)
		}
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// Update replaces an existing guest document.
func (r *MongoGuestRepo) Update(ctx context.Context, guest *models.Guest) error {
	guest.UpdatedAt = time.Now()
	filter := bson.M{"id": guest.ID}
	update := bson.M{"$set": guest}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update guest with id %s: %w", guest.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("guest with id %s not found", guest.ID)
	}
	return nil
}

// Delete removes a guest document by its ID.
func (r *MongoGuestRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete guest with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("guest with id %s not found", id)
	}
	return nil
}

// IncrementVisits bumps the visits counter by one. Used by the booking
// cascade so the bump rides the same session as the booking write.
func (r *MongoGuestRepo) IncrementVisits(ctx context.Context, id string) error {
	update := bson.M{
		"$inc": bson.M{"visits": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment visits for guest %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("guest with id %s not found", id)
	}
	return nil
}

// Search finds guests whose name, email or phone matches the query,
// case-insensitively.
func (r *MongoGuestRepo) Search(ctx context.Context, query string, limit int64) ([]models.Guest, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"name": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"phone": bson.M{"$regex": query, "$options": "i"}},
		},
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to search guests: %w", err)
	}
	defer cursor.Close(ctx)

	var guests []models.Guest
	if err := cursor.All(ctx, &guests); err != nil {
		return nil, fmt.Errorf("error decoding guests: %w", err)
	}
	return guests, nil
}
