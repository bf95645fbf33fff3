// File: database/repository/room/room_interface.go
package roomRepo

import (
	"context"

	"hotelify/models"
)

// RoomFilter narrows room listings.
type RoomFilter struct {
	Status string
	Type   string
}

// RoomRepository defines methods for room data access. Every method takes a
// context so that a mongo session context can flow through transactional
// call paths.
type RoomRepository interface {
	// GetByID retrieves a room by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Room, error)
	// List retrieves rooms matching the filter.
	List(ctx context.Context, filter RoomFilter) ([]models.Room, error)
	// Create inserts a new room record.
	Create(ctx context.Context, room *models.Room) error
	// Update replaces an existing room record.
	Update(ctx context.Context, room *models.Room) error
	// Delete removes a room record by its ID.
	Delete(ctx context.Context, id string) error
	// SetStatus updates only the status field of a room.
	SetStatus(ctx context.Context, id, status string) error
	// Search finds rooms whose number or type matches the query.
	Search(ctx context.Context, query string, limit int64) ([]models.Room, error)
}
