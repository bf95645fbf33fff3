// File: database/repository/guest/guest_interface.go
package guestRepo

import (
	"context"

	"hotelify/models"
)

// GuestRepository defines methods for guest data access. Every method takes
// a context so that a mongo session context can flow through transactional
// call paths.
type GuestRepository interface {
	// GetByID retrieves a guest by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	// List retrieves all guests.
	List(ctx context.Context) ([]models.Guest, error)
	// Create inserts a new guest record.
	Create(ctx context.Context, guest *models.Guest) error
	// Update replaces an existing guest record.
	Update(ctx context.Context, guest *models.Guest) error
	// Delete removes a guest record by its ID.
	Delete(ctx context.Context, id string) error
	// IncrementVisits bumps the visits counter by one.
	IncrementVisits(ctx context.Context, id string) error
	// Search finds guests whose name, email or phone matches the query.
	Search(ctx context.Context, query string, limit int64) ([]models.Guest, error)
}
