// File: database/repository/settings/settings_mongo.go
package settingsRepo

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

// SettingsRepository defines access to the singleton settings document.
type SettingsRepository interface {
	// Get returns the settings document, or nil when none exists yet.
	Get(ctx context.Context) (*models.Setting, error)
	// Create inserts the settings document.
	Create(ctx context.Context, setting *models.Setting) error
	// Replace upserts the settings document.
	Replace(ctx context.Context, setting *models.Setting) error
}

type MongoSettingsRepo struct {
	coll *mongo.Collection
}

func NewMongoSettingsRepo() *MongoSettingsRepo {
	return &MongoSettingsRepo{coll: database.DB().Collection("settings")}
}

func (r *MongoSettingsRepo) Get(ctx context.Context) (*models.Setting, error) {
	var setting models.Setting
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&setting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return &setting, nil
}

func (r *MongoSettingsRepo) Create(ctx context.Context, setting *models.Setting) error {
	now := time.Now()
	setting.CreatedAt = now
	setting.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, setting); err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}
	return nil
}

func (r *MongoSettingsRepo) Replace(ctx context.Context, setting *models.Setting) error {
	setting.UpdatedAt = time.Now()
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": setting.ID}, bson.M{"$set": setting}, opts)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
