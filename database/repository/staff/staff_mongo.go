// File: database/repository/staff/staff_mongo.go
package staffRepo

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

// StaffRepository defines methods for staff data access.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	List(ctx context.Context) ([]models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id string) error
}

type MongoStaffRepo struct {
	coll *mongo.Collection
}

func NewMongoStaffRepo() *MongoStaffRepo {
	return &MongoStaffRepo{coll: database.DB().Collection("staff")}
}

// EnsureIndexes creates the unique email index.
func (r *MongoStaffRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("staff member with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch staff member %s: %w", id, err)
	}
	return &staff, nil
}

func (r *MongoStaffRepo) List(ctx context.Context) ([]models.Staff, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff members: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff members: %w", err)
	}
	return staff, nil
}

func (r *MongoStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email already exists: %w", err)
		}
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) Update(ctx context.Context, staff *models.Staff) error {
	staff.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": staff.ID}, bson.M{"$set": staff})
	if err != nil {
		return fmt.Errorf("failed to update staff member with id %s: %w", staff.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff member with id %s not found", staff.ID)
	}
	return nil
}

func (r *MongoStaffRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff member with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("staff member with id %s not found", id)
	}
	return nil
}
