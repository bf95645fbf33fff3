// File: database/repository/inventory/inventory_mongo.go
package inventoryRepo

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

// InventoryRepository defines methods for inventory data access.
type InventoryRepository interface {
	GetByID(ctx context.Context, id string) (*models.InventoryItem, error)
	List(ctx context.Context) ([]models.InventoryItem, error)
	Create(ctx context.Context, item *models.InventoryItem) error
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id string) error
}

type MongoInventoryRepo struct {
	coll *mongo.Collection
}

func NewMongoInventoryRepo() *MongoInventoryRepo {
	return &MongoInventoryRepo{coll: database.DB().Collection("inventory")}
}

func (r *MongoInventoryRepo) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("inventory item with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch inventory item %s: %w", id, err)
	}
	return &item, nil
}

func (r *MongoInventoryRepo) List(ctx context.Context) ([]models.InventoryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding inventory items: %w", err)
	}
	return items, nil
}

func (r *MongoInventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

func (r *MongoInventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	item.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": item.ID}, bson.M{"$set": item})
	if err != nil {
		return fmt.Errorf("failed to update inventory item with id %s: %w", item.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inventory item with id %s not found", item.ID)
	}
	return nil
}

func (r *MongoInventoryRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete inventory item with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("inventory item with id %s not found", id)
	}
	return nil
}
